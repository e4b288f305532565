package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"big_studio/internal/domain/entities"
	"big_studio/internal/usecase/interfaces"
)

var ErrInvalidBackup = errors.New("invalid backup payload")

// backupVersion tags exported envelopes so older dumps can be rejected or
// migrated explicitly instead of half-imported.
const backupVersion = "2.0-blob"

type BackupData struct {
	Jobs           []entities.Job           `json:"jobs"`
	Clients        []entities.Client        `json:"clients"`
	DraftNotes     []entities.DraftNote     `json:"draftNotes"`
	Settings       entities.AppSettings     `json:"settings"`
	CalendarEvents []entities.CalendarEvent `json:"calendarEvents"`
}

type BackupEnvelope struct {
	Version    string     `json:"version"`
	ExportedAt string     `json:"exportedAt"`
	Data       BackupData `json:"data"`
}

// IBackupUseCase exports and restores a user's entire dataset as one JSON
// envelope. Import replaces every collection it carries.

type IBackupUseCase interface {
	Export(ctx context.Context, ownerID string) (BackupEnvelope, error)
	Import(ctx context.Context, ownerID string, raw []byte) (BackupEnvelope, error)
}

type BackupUseCase struct {
	store interfaces.IBlobStore
	now   func() time.Time
}

var _ IBackupUseCase = (*BackupUseCase)(nil)

func NewBackupUseCase(store interfaces.IBlobStore) *BackupUseCase {
	return &BackupUseCase{store: store, now: time.Now}
}

func (u *BackupUseCase) Export(ctx context.Context, ownerID string) (BackupEnvelope, error) {
	jobs, err := loadJobs(ctx, u.store, ownerID)
	if err != nil {
		return BackupEnvelope{}, err
	}
	clients, err := loadClients(ctx, u.store, ownerID)
	if err != nil {
		return BackupEnvelope{}, err
	}
	drafts, err := loadDrafts(ctx, u.store, ownerID)
	if err != nil {
		return BackupEnvelope{}, err
	}
	settings, err := loadSettings(ctx, u.store, ownerID)
	if err != nil {
		return BackupEnvelope{}, err
	}
	events, err := loadCalendarEvents(ctx, u.store, ownerID)
	if err != nil {
		return BackupEnvelope{}, err
	}

	return BackupEnvelope{
		Version:    backupVersion,
		ExportedAt: entities.FormatISOTime(u.now()),
		Data: BackupData{
			Jobs:           jobs,
			Clients:        clients,
			DraftNotes:     drafts,
			Settings:       settings,
			CalendarEvents: events,
		},
	}, nil
}

// importEnvelope keeps the job and draft collections as raw JSON so the
// per-record legacy-shape migration sees the uploaded bytes, not a lossy
// pre-decode that would drop fields like the old "cloudLink".
type importEnvelope struct {
	Version    string `json:"version"`
	ExportedAt string `json:"exportedAt"`
	Data       struct {
		Jobs           json.RawMessage          `json:"jobs"`
		Clients        []entities.Client        `json:"clients"`
		DraftNotes     json.RawMessage          `json:"draftNotes"`
		Settings       entities.AppSettings     `json:"settings"`
		CalendarEvents []entities.CalendarEvent `json:"calendarEvents"`
	} `json:"data"`
}

func (u *BackupUseCase) Import(ctx context.Context, ownerID string, raw []byte) (BackupEnvelope, error) {
	var in importEnvelope
	if err := json.Unmarshal(raw, &in); err != nil {
		return BackupEnvelope{}, fmt.Errorf("%w: %v", ErrInvalidBackup, err)
	}
	if in.Version != backupVersion {
		return BackupEnvelope{}, fmt.Errorf("%w: unsupported version %q", ErrInvalidBackup, in.Version)
	}

	jobs, err := entities.DecodeJobs(in.Data.Jobs)
	if err != nil {
		return BackupEnvelope{}, fmt.Errorf("%w: %v", ErrInvalidBackup, err)
	}
	drafts, err := entities.DecodeDrafts(in.Data.DraftNotes)
	if err != nil {
		return BackupEnvelope{}, fmt.Errorf("%w: %v", ErrInvalidBackup, err)
	}

	envelope := BackupEnvelope{
		Version:    in.Version,
		ExportedAt: in.ExportedAt,
		Data: BackupData{
			Jobs:           jobs,
			Clients:        in.Data.Clients,
			DraftNotes:     drafts,
			Settings:       in.Data.Settings.MergeDefaults(),
			CalendarEvents: in.Data.CalendarEvents,
		},
	}
	if envelope.Data.Clients == nil {
		envelope.Data.Clients = []entities.Client{}
	}
	if envelope.Data.CalendarEvents == nil {
		envelope.Data.CalendarEvents = []entities.CalendarEvent{}
	}

	if err := saveJobs(ctx, u.store, ownerID, envelope.Data.Jobs); err != nil {
		return BackupEnvelope{}, err
	}
	if err := saveClients(ctx, u.store, ownerID, envelope.Data.Clients); err != nil {
		return BackupEnvelope{}, err
	}
	if err := saveDrafts(ctx, u.store, ownerID, envelope.Data.DraftNotes); err != nil {
		return BackupEnvelope{}, err
	}
	if err := saveSettings(ctx, u.store, ownerID, envelope.Data.Settings); err != nil {
		return BackupEnvelope{}, err
	}
	if err := saveCalendarEvents(ctx, u.store, ownerID, envelope.Data.CalendarEvents); err != nil {
		return BackupEnvelope{}, err
	}
	log.Printf("[backup][usecase] import done owner=%s jobs=%d clients=%d drafts=%d events=%d",
		ownerID, len(envelope.Data.Jobs), len(envelope.Data.Clients), len(envelope.Data.DraftNotes), len(envelope.Data.CalendarEvents))
	return envelope, nil
}
