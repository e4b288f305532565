package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"big_studio/internal/domain/entities"
	"big_studio/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrDraftNotFound     = errors.New("draft not found")
	ErrInvalidDraftID    = errors.New("invalid draft id")
	ErrInvalidDraftTitle = errors.New("invalid draft title")
	ErrInvalidDraftType  = errors.New("invalid draft type")
)

// IDraftUseCase owns free-form notes and structured scripts.

type IDraftUseCase interface {
	List(ctx context.Context, ownerID string) ([]entities.DraftNote, error)
	Create(ctx context.Context, ownerID, title string, draftType entities.DraftType) (entities.DraftNote, error)
	Update(ctx context.Context, ownerID string, draft entities.DraftNote) (entities.DraftNote, error)
	Delete(ctx context.Context, ownerID, draftID string) error
}

type DraftUseCase struct {
	store interfaces.IBlobStore
	now   func() time.Time
}

var _ IDraftUseCase = (*DraftUseCase)(nil)

func NewDraftUseCase(store interfaces.IBlobStore) *DraftUseCase {
	return &DraftUseCase{store: store, now: time.Now}
}

func (u *DraftUseCase) List(ctx context.Context, ownerID string) ([]entities.DraftNote, error) {
	return loadDrafts(ctx, u.store, ownerID)
}

func (u *DraftUseCase) Create(ctx context.Context, ownerID, title string, draftType entities.DraftType) (entities.DraftNote, error) {
	if strings.TrimSpace(title) == "" {
		return entities.DraftNote{}, ErrInvalidDraftTitle
	}
	if draftType != entities.DraftTypeText && draftType != entities.DraftTypeScript {
		return entities.DraftNote{}, ErrInvalidDraftType
	}
	drafts, err := loadDrafts(ctx, u.store, ownerID)
	if err != nil {
		return entities.DraftNote{}, err
	}

	now := entities.FormatISOTime(u.now())
	draft := entities.DraftNote{
		ID:          uuid.NewString(),
		Title:       strings.TrimSpace(title),
		Type:        draftType,
		ScriptLines: []entities.ScriptLine{},
		Attachments: []entities.Attachment{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if draftType == entities.DraftTypeScript {
		// Scripts start with one empty scene line.
		draft.ScriptLines = append(draft.ScriptLines, entities.ScriptLine{ID: uuid.NewString(), Scene: "1"})
	}

	// Newest first, matching how drafts are listed.
	if err := saveDrafts(ctx, u.store, ownerID, append([]entities.DraftNote{draft}, drafts...)); err != nil {
		return entities.DraftNote{}, err
	}
	return draft, nil
}

func (u *DraftUseCase) Update(ctx context.Context, ownerID string, draft entities.DraftNote) (entities.DraftNote, error) {
	if strings.TrimSpace(draft.ID) == "" {
		return entities.DraftNote{}, ErrInvalidDraftID
	}
	drafts, err := loadDrafts(ctx, u.store, ownerID)
	if err != nil {
		return entities.DraftNote{}, err
	}
	draft.UpdatedAt = entities.FormatISOTime(u.now())
	found := false
	for i := range drafts {
		if drafts[i].ID == draft.ID {
			drafts[i] = draft
			found = true
		}
	}
	if !found {
		return entities.DraftNote{}, ErrDraftNotFound
	}
	if err := saveDrafts(ctx, u.store, ownerID, drafts); err != nil {
		return entities.DraftNote{}, err
	}
	return draft, nil
}

func (u *DraftUseCase) Delete(ctx context.Context, ownerID, draftID string) error {
	draftID = strings.TrimSpace(draftID)
	if draftID == "" {
		return ErrInvalidDraftID
	}
	drafts, err := loadDrafts(ctx, u.store, ownerID)
	if err != nil {
		return err
	}
	next := make([]entities.DraftNote, 0, len(drafts))
	found := false
	for _, d := range drafts {
		if d.ID == draftID {
			found = true
			continue
		}
		next = append(next, d)
	}
	if !found {
		return ErrDraftNotFound
	}
	return saveDrafts(ctx, u.store, ownerID, next)
}
