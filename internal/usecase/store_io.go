package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"big_studio/internal/domain/entities"
	"big_studio/internal/usecase/interfaces"
)

// Collection round-trips through the blob store. Every save is a full
// overwrite of the collection document (last-writer-wins, see IBlobStore).

func loadJobs(ctx context.Context, store interfaces.IBlobStore, ownerID string) ([]entities.Job, error) {
	raw, err := store.Get(ctx, ownerID, interfaces.BlobKeyJobs)
	if err != nil {
		return nil, fmt.Errorf("load jobs: %w", err)
	}
	jobs, err := entities.DecodeJobs(raw)
	if err != nil {
		return nil, fmt.Errorf("decode jobs: %w", err)
	}
	return jobs, nil
}

func saveJobs(ctx context.Context, store interfaces.IBlobStore, ownerID string, jobs []entities.Job) error {
	return saveCollection(ctx, store, ownerID, interfaces.BlobKeyJobs, jobs)
}

func loadClients(ctx context.Context, store interfaces.IBlobStore, ownerID string) ([]entities.Client, error) {
	raw, err := store.Get(ctx, ownerID, interfaces.BlobKeyClients)
	if err != nil {
		return nil, fmt.Errorf("load clients: %w", err)
	}
	if len(raw) == 0 {
		return []entities.Client{}, nil
	}
	var clients []entities.Client
	if err := json.Unmarshal(raw, &clients); err != nil {
		return nil, fmt.Errorf("decode clients: %w", err)
	}
	return clients, nil
}

func saveClients(ctx context.Context, store interfaces.IBlobStore, ownerID string, clients []entities.Client) error {
	return saveCollection(ctx, store, ownerID, interfaces.BlobKeyClients, clients)
}

func loadDrafts(ctx context.Context, store interfaces.IBlobStore, ownerID string) ([]entities.DraftNote, error) {
	raw, err := store.Get(ctx, ownerID, interfaces.BlobKeyDraftNotes)
	if err != nil {
		return nil, fmt.Errorf("load drafts: %w", err)
	}
	drafts, err := entities.DecodeDrafts(raw)
	if err != nil {
		return nil, fmt.Errorf("decode drafts: %w", err)
	}
	return drafts, nil
}

func saveDrafts(ctx context.Context, store interfaces.IBlobStore, ownerID string, drafts []entities.DraftNote) error {
	return saveCollection(ctx, store, ownerID, interfaces.BlobKeyDraftNotes, drafts)
}

func loadCalendarEvents(ctx context.Context, store interfaces.IBlobStore, ownerID string) ([]entities.CalendarEvent, error) {
	raw, err := store.Get(ctx, ownerID, interfaces.BlobKeyCalendarEvents)
	if err != nil {
		return nil, fmt.Errorf("load calendar events: %w", err)
	}
	if len(raw) == 0 {
		return []entities.CalendarEvent{}, nil
	}
	var events []entities.CalendarEvent
	if err := json.Unmarshal(raw, &events); err != nil {
		return nil, fmt.Errorf("decode calendar events: %w", err)
	}
	return events, nil
}

func saveCalendarEvents(ctx context.Context, store interfaces.IBlobStore, ownerID string, events []entities.CalendarEvent) error {
	return saveCollection(ctx, store, ownerID, interfaces.BlobKeyCalendarEvents, events)
}

func loadSettings(ctx context.Context, store interfaces.IBlobStore, ownerID string) (entities.AppSettings, error) {
	raw, err := store.Get(ctx, ownerID, interfaces.BlobKeySettings)
	if err != nil {
		return entities.AppSettings{}, fmt.Errorf("load settings: %w", err)
	}
	if len(raw) == 0 {
		return entities.DefaultSettings(), nil
	}
	var settings entities.AppSettings
	if err := json.Unmarshal(raw, &settings); err != nil {
		return entities.AppSettings{}, fmt.Errorf("decode settings: %w", err)
	}
	return settings.MergeDefaults(), nil
}

func saveSettings(ctx context.Context, store interfaces.IBlobStore, ownerID string, settings entities.AppSettings) error {
	return saveCollection(ctx, store, ownerID, interfaces.BlobKeySettings, settings)
}

func saveCollection(ctx context.Context, store interfaces.IBlobStore, ownerID, key string, v any) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := store.Set(ctx, ownerID, key, payload); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}
