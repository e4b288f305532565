package request

import "big_studio/internal/domain/entities"

type DraftCreateRequest struct {
	Title string `json:"title" binding:"required"`
	Type  string `json:"type" binding:"required"`
}

// DraftUpdateRequest carries the full draft state; the id comes from the
// path and updatedAt is set server-side.

type DraftUpdateRequest struct {
	Title       string                `json:"title" binding:"required"`
	Type        string                `json:"type"`
	Content     string                `json:"content"`
	ScriptLines []entities.ScriptLine `json:"scriptLines"`
	Attachments []entities.Attachment `json:"attachments"`
	CreatedAt   string                `json:"createdAt"`
}

func (r DraftUpdateRequest) ToEntity(draftID string) entities.DraftNote {
	draft := entities.DraftNote{
		ID:          draftID,
		Title:       r.Title,
		Type:        entities.DraftType(r.Type),
		Content:     r.Content,
		ScriptLines: r.ScriptLines,
		Attachments: r.Attachments,
		CreatedAt:   r.CreatedAt,
	}
	if draft.ScriptLines == nil {
		draft.ScriptLines = []entities.ScriptLine{}
	}
	if draft.Attachments == nil {
		draft.Attachments = []entities.Attachment{}
	}
	return draft
}
