package entities

// User is the session principal. Its id partitions the blob store: every
// collection key is stored under the owning user's id.

type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}
