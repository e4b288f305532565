package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"big_studio/internal/domain/entities"
	"big_studio/internal/usecase/interfaces"
)

func TestBackupUseCase_ExportImportRoundTrip(t *testing.T) {
	owner := "u1"
	now := time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)

	store := newMemStore()
	store.putJSON(t, owner, interfaces.BlobKeyJobs, []entities.Job{
		{ID: "j1", Name: "Clipe", Deadline: "2026-09-10T12:00:00.000Z", Payments: []entities.Payment{}},
	})
	store.putJSON(t, owner, interfaces.BlobKeyClients, []entities.Client{{ID: "c1", Name: "Padaria"}})
	uc := NewBackupUseCase(store)
	uc.now = fixedNow(now)

	envelope, err := uc.Export(context.Background(), owner)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if envelope.Version != "2.0-blob" {
		t.Fatalf("unexpected version %q", envelope.Version)
	}
	if envelope.ExportedAt != entities.FormatISOTime(now) {
		t.Fatalf("unexpected exportedAt %q", envelope.ExportedAt)
	}
	if len(envelope.Data.Jobs) != 1 || len(envelope.Data.Clients) != 1 {
		t.Fatalf("unexpected data %#v", envelope.Data)
	}

	raw, err := json.Marshal(envelope)
	if err != nil {
		t.Fatalf("marshal envelope: %v", err)
	}

	other := newMemStore()
	ucOther := NewBackupUseCase(other)
	if _, err := ucOther.Import(context.Background(), "u2", raw); err != nil {
		t.Fatalf("Import: %v", err)
	}

	jobs, err := loadJobs(context.Background(), other, "u2")
	if err != nil {
		t.Fatalf("loadJobs: %v", err)
	}
	if len(jobs) != 1 || jobs[0].ID != "j1" {
		t.Fatalf("unexpected imported jobs %#v", jobs)
	}
	clients, err := loadClients(context.Background(), other, "u2")
	if err != nil {
		t.Fatalf("loadClients: %v", err)
	}
	if len(clients) != 1 || clients[0].Name != "Padaria" {
		t.Fatalf("unexpected imported clients %#v", clients)
	}
}

func TestBackupUseCase_Import(t *testing.T) {
	owner := "u1"

	t.Run("invalid json", func(t *testing.T) {
		uc := NewBackupUseCase(newMemStore())
		_, err := uc.Import(context.Background(), owner, []byte("{nope"))
		if !errors.Is(err, ErrInvalidBackup) {
			t.Fatalf("expected ErrInvalidBackup, got %v", err)
		}
	})

	t.Run("unsupported version", func(t *testing.T) {
		uc := NewBackupUseCase(newMemStore())
		_, err := uc.Import(context.Background(), owner, []byte(`{"version":"1.0","data":{}}`))
		if !errors.Is(err, ErrInvalidBackup) {
			t.Fatalf("expected ErrInvalidBackup, got %v", err)
		}
	})

	t.Run("legacy job records are migrated", func(t *testing.T) {
		store := newMemStore()
		uc := NewBackupUseCase(store)

		raw := []byte(`{
			"version": "2.0-blob",
			"exportedAt": "2026-08-31T10:00:00.000Z",
			"data": {
				"jobs": [{"name": "Antigo", "cloudLink": "https://drive/x"}],
				"draftNotes": [{"id": "d1", "title": "Roteiro", "content": "Cena de abertura"}],
				"settings": {}
			}
		}`)
		envelope, err := uc.Import(context.Background(), owner, raw)
		if err != nil {
			t.Fatalf("Import: %v", err)
		}
		job := envelope.Data.Jobs[0]
		if job.ID == "" {
			t.Fatalf("expected generated id for legacy record")
		}
		if len(job.CloudLinks) != 1 || job.CloudLinks[0] != "https://drive/x" {
			t.Fatalf("expected migrated cloud link, got %#v", job.CloudLinks)
		}
		draft := envelope.Data.DraftNotes[0]
		if draft.Type != entities.DraftTypeScript || len(draft.ScriptLines) != 1 || draft.ScriptLines[0].Description != "Cena de abertura" {
			t.Fatalf("expected migrated draft, got %#v", draft)
		}
		if envelope.Data.Settings.PrimaryColor == "" {
			t.Fatalf("expected settings defaults merged")
		}

		jobs, err := loadJobs(context.Background(), store, owner)
		if err != nil {
			t.Fatalf("loadJobs: %v", err)
		}
		if len(jobs[0].CloudLinks) != 1 {
			t.Fatalf("expected migrated record persisted, got %#v", jobs[0])
		}
	})
}
