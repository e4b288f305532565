package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"big_studio/internal/domain/entities"
	"big_studio/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrClientNotFound    = errors.New("client not found")
	ErrInvalidClientID   = errors.New("invalid client id")
	ErrInvalidClientName = errors.New("invalid client name")
)

// IClientUseCase owns the client directory. Deleting a client does not
// cascade to its jobs: they keep the dangling clientId and job views render
// an unknown-client fallback.

type IClientUseCase interface {
	List(ctx context.Context, ownerID string) ([]entities.Client, error)
	GetByID(ctx context.Context, ownerID, clientID string) (entities.Client, error)
	Create(ctx context.Context, ownerID string, params ClientParams) (entities.Client, error)
	Update(ctx context.Context, ownerID string, client entities.Client) (entities.Client, error)
	Delete(ctx context.Context, ownerID, clientID string) error
}

type ClientParams struct {
	Name         string
	Company      string
	Email        string
	Phone        string
	CPF          string
	Observations string
}

type ClientUseCase struct {
	store interfaces.IBlobStore
	now   func() time.Time
}

var _ IClientUseCase = (*ClientUseCase)(nil)

func NewClientUseCase(store interfaces.IBlobStore) *ClientUseCase {
	return &ClientUseCase{store: store, now: time.Now}
}

func (u *ClientUseCase) List(ctx context.Context, ownerID string) ([]entities.Client, error) {
	return loadClients(ctx, u.store, ownerID)
}

func (u *ClientUseCase) GetByID(ctx context.Context, ownerID, clientID string) (entities.Client, error) {
	clientID = strings.TrimSpace(clientID)
	if clientID == "" {
		return entities.Client{}, ErrInvalidClientID
	}
	clients, err := loadClients(ctx, u.store, ownerID)
	if err != nil {
		return entities.Client{}, err
	}
	for _, c := range clients {
		if c.ID == clientID {
			return c, nil
		}
	}
	return entities.Client{}, ErrClientNotFound
}

func (u *ClientUseCase) Create(ctx context.Context, ownerID string, params ClientParams) (entities.Client, error) {
	if strings.TrimSpace(params.Name) == "" {
		return entities.Client{}, ErrInvalidClientName
	}
	clients, err := loadClients(ctx, u.store, ownerID)
	if err != nil {
		return entities.Client{}, err
	}
	client := entities.Client{
		ID:           uuid.NewString(),
		Name:         strings.TrimSpace(params.Name),
		Company:      params.Company,
		Email:        params.Email,
		Phone:        params.Phone,
		CPF:          params.CPF,
		Observations: params.Observations,
		CreatedAt:    entities.FormatISOTime(u.now()),
	}
	if err := saveClients(ctx, u.store, ownerID, append(clients, client)); err != nil {
		return entities.Client{}, err
	}
	log.Printf("[client][usecase] created client_id=%s owner=%s", client.ID, ownerID)
	return client, nil
}

func (u *ClientUseCase) Update(ctx context.Context, ownerID string, client entities.Client) (entities.Client, error) {
	if strings.TrimSpace(client.ID) == "" {
		return entities.Client{}, ErrInvalidClientID
	}
	if strings.TrimSpace(client.Name) == "" {
		return entities.Client{}, ErrInvalidClientName
	}
	clients, err := loadClients(ctx, u.store, ownerID)
	if err != nil {
		return entities.Client{}, err
	}
	found := false
	for i := range clients {
		if clients[i].ID == client.ID {
			clients[i] = client
			found = true
		}
	}
	if !found {
		return entities.Client{}, ErrClientNotFound
	}
	if err := saveClients(ctx, u.store, ownerID, clients); err != nil {
		return entities.Client{}, err
	}
	return client, nil
}

func (u *ClientUseCase) Delete(ctx context.Context, ownerID, clientID string) error {
	clientID = strings.TrimSpace(clientID)
	if clientID == "" {
		return ErrInvalidClientID
	}
	clients, err := loadClients(ctx, u.store, ownerID)
	if err != nil {
		return err
	}
	next := make([]entities.Client, 0, len(clients))
	found := false
	for _, c := range clients {
		if c.ID == clientID {
			found = true
			continue
		}
		next = append(next, c)
	}
	if !found {
		return ErrClientNotFound
	}
	return saveClients(ctx, u.store, ownerID, next)
}
