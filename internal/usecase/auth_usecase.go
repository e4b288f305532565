package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"big_studio/internal/domain/entities"
	"big_studio/internal/usecase/interfaces"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidUsername    = errors.New("invalid username")
	ErrInvalidEmail       = errors.New("invalid email")
	ErrWeakPassword       = errors.New("password too short")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

const minPasswordLen = 6

// IAuthUseCase registers accounts and exchanges credentials for tokens.
// The user directory and per-user password hashes live under the system
// owner, apart from any one account's data.

type IAuthUseCase interface {
	Register(ctx context.Context, username, email, password string) (entities.User, string, error)
	Login(ctx context.Context, username, password string) (entities.User, string, error)
}

type AuthUseCase struct {
	store  interfaces.IBlobStore
	tokens interfaces.ITokenManager
}

var _ IAuthUseCase = (*AuthUseCase)(nil)

func NewAuthUseCase(store interfaces.IBlobStore, tokens interfaces.ITokenManager) *AuthUseCase {
	return &AuthUseCase{store: store, tokens: tokens}
}

func (u *AuthUseCase) Register(ctx context.Context, username, email, password string) (entities.User, string, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(strings.ToLower(email))
	if len(username) < 3 {
		return entities.User{}, "", ErrInvalidUsername
	}
	// "admin" is reserved for the bundled demo account.
	if strings.EqualFold(username, "admin") {
		return entities.User{}, "", ErrUsernameTaken
	}
	if email == "" || !strings.Contains(email, "@") {
		return entities.User{}, "", ErrInvalidEmail
	}
	if len(password) < minPasswordLen {
		return entities.User{}, "", ErrWeakPassword
	}

	users, err := u.loadUsers(ctx)
	if err != nil {
		return entities.User{}, "", err
	}
	for _, existing := range users {
		if strings.EqualFold(existing.Username, username) {
			return entities.User{}, "", ErrUsernameTaken
		}
		if strings.EqualFold(existing.Email, email) {
			return entities.User{}, "", ErrEmailTaken
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return entities.User{}, "", fmt.Errorf("hash password: %w", err)
	}

	user := entities.User{ID: uuid.NewString(), Username: username, Email: email}
	if err := u.saveUsers(ctx, append(users, user)); err != nil {
		return entities.User{}, "", err
	}
	if err := u.store.Set(ctx, interfaces.SystemOwnerID, passwordKey(username), hash); err != nil {
		return entities.User{}, "", fmt.Errorf("save password hash: %w", err)
	}

	token, err := u.tokens.Issue(user)
	if err != nil {
		return entities.User{}, "", fmt.Errorf("issue token: %w", err)
	}
	log.Printf("[auth][usecase] user registered username=%s", username)
	return user, token, nil
}

func (u *AuthUseCase) Login(ctx context.Context, username, password string) (entities.User, string, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return entities.User{}, "", ErrInvalidCredentials
	}
	users, err := u.loadUsers(ctx)
	if err != nil {
		return entities.User{}, "", err
	}
	var user entities.User
	found := false
	for _, candidate := range users {
		if strings.EqualFold(candidate.Username, username) {
			user = candidate
			found = true
			break
		}
	}
	if !found {
		return entities.User{}, "", ErrInvalidCredentials
	}

	hash, err := u.store.Get(ctx, interfaces.SystemOwnerID, passwordKey(user.Username))
	if err != nil {
		return entities.User{}, "", fmt.Errorf("load password hash: %w", err)
	}
	if len(hash) == 0 {
		return entities.User{}, "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(hash, []byte(password)); err != nil {
		return entities.User{}, "", ErrInvalidCredentials
	}

	token, err := u.tokens.Issue(user)
	if err != nil {
		return entities.User{}, "", fmt.Errorf("issue token: %w", err)
	}
	log.Printf("[auth][usecase] user logged in username=%s", user.Username)
	return user, token, nil
}

func (u *AuthUseCase) loadUsers(ctx context.Context) ([]entities.User, error) {
	raw, err := u.store.Get(ctx, interfaces.SystemOwnerID, interfaces.BlobKeyUsers)
	if err != nil {
		return nil, fmt.Errorf("load users: %w", err)
	}
	if len(raw) == 0 {
		return []entities.User{}, nil
	}
	var users []entities.User
	if err := json.Unmarshal(raw, &users); err != nil {
		return nil, fmt.Errorf("decode users: %w", err)
	}
	return users, nil
}

func (u *AuthUseCase) saveUsers(ctx context.Context, users []entities.User) error {
	return saveCollection(ctx, u.store, interfaces.SystemOwnerID, interfaces.BlobKeyUsers, users)
}

func passwordKey(username string) string {
	return "user_pass_" + strings.ToLower(username)
}
