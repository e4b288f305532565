package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"big_studio/internal/domain/entities"
	"big_studio/internal/usecase/interfaces"
)

func TestClientUseCase_Create(t *testing.T) {
	t.Run("empty name", func(t *testing.T) {
		uc := NewClientUseCase(newMemStore())
		_, err := uc.Create(context.Background(), "u1", ClientParams{Name: " "})
		if !errors.Is(err, ErrInvalidClientName) {
			t.Fatalf("expected ErrInvalidClientName, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		store := newMemStore()
		uc := NewClientUseCase(store)
		uc.now = fixedNow(time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC))

		client, err := uc.Create(context.Background(), "u1", ClientParams{Name: " Padaria Sol ", Email: "contato@padaria.com"})
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		if client.ID == "" || client.Name != "Padaria Sol" {
			t.Fatalf("unexpected client %#v", client)
		}
		if client.CreatedAt != "2026-08-01T10:00:00.000Z" {
			t.Fatalf("unexpected createdAt %q", client.CreatedAt)
		}

		got, err := uc.GetByID(context.Background(), "u1", client.ID)
		if err != nil {
			t.Fatalf("GetByID: %v", err)
		}
		if got.Email != "contato@padaria.com" {
			t.Fatalf("client not persisted: %#v", got)
		}
	})
}

func TestClientUseCase_UpdateAndDelete(t *testing.T) {
	owner := "u1"
	seed := entities.Client{ID: "c1", Name: "Padaria", CreatedAt: "2026-08-01T10:00:00.000Z"}

	t.Run("update replaces the record", func(t *testing.T) {
		store := newMemStore()
		store.putJSON(t, owner, interfaces.BlobKeyClients, []entities.Client{seed})
		uc := NewClientUseCase(store)

		updated := seed
		updated.Phone = "11 99999-0000"
		got, err := uc.Update(context.Background(), owner, updated)
		if err != nil {
			t.Fatalf("Update: %v", err)
		}
		if got.Phone != "11 99999-0000" {
			t.Fatalf("unexpected client %#v", got)
		}
	})

	t.Run("update unknown client", func(t *testing.T) {
		uc := NewClientUseCase(newMemStore())
		_, err := uc.Update(context.Background(), owner, entities.Client{ID: "missing", Name: "x"})
		if !errors.Is(err, ErrClientNotFound) {
			t.Fatalf("expected ErrClientNotFound, got %v", err)
		}
	})

	t.Run("delete removes the record without touching jobs", func(t *testing.T) {
		store := newMemStore()
		store.putJSON(t, owner, interfaces.BlobKeyClients, []entities.Client{seed})
		store.putJSON(t, owner, interfaces.BlobKeyJobs, []entities.Job{{ID: "j1", Name: "Clipe", ClientID: "c1"}})
		uc := NewClientUseCase(store)

		if err := uc.Delete(context.Background(), owner, "c1"); err != nil {
			t.Fatalf("Delete: %v", err)
		}
		clients, _ := uc.List(context.Background(), owner)
		if len(clients) != 0 {
			t.Fatalf("expected empty directory, got %#v", clients)
		}

		jobs, err := loadJobs(context.Background(), store, owner)
		if err != nil {
			t.Fatalf("loadJobs: %v", err)
		}
		if len(jobs) != 1 || jobs[0].ClientID != "c1" {
			t.Fatalf("jobs must keep the dangling reference, got %#v", jobs)
		}
	})
}
