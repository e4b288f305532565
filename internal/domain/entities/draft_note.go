package entities

// DraftType distinguishes free-text notes from structured scripts.

type DraftType string

const (
	DraftTypeText   DraftType = "TEXT"
	DraftTypeScript DraftType = "SCRIPT"
)

// ScriptLine is one scene row of a SCRIPT draft.

type ScriptLine struct {
	ID          string `json:"id"`
	Scene       string `json:"scene"`
	Description string `json:"description"`
	Duration    int    `json:"duration"`
}

// Attachment is an external reference attached to a draft.

type Attachment struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	URL  string `json:"url"`
}

// DraftNote is a free-form or script note, independent of jobs and clients.

type DraftNote struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Type        DraftType    `json:"type"`
	Content     string       `json:"content"`
	ScriptLines []ScriptLine `json:"scriptLines"`
	Attachments []Attachment `json:"attachments"`
	CreatedAt   string       `json:"createdAt"`
	UpdatedAt   string       `json:"updatedAt"`
}
