package entities

// Client is a customer entity.
//
// Jobs reference a client by id but are not owned by it: deleting a client
// neither cascades nor re-parents its jobs, so lookups must tolerate a
// dangling clientId.

type Client struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Company      string `json:"company,omitempty"`
	Email        string `json:"email"`
	Phone        string `json:"phone,omitempty"`
	CPF          string `json:"cpf,omitempty"`
	Observations string `json:"observations,omitempty"`
	CreatedAt    string `json:"createdAt"`
}
