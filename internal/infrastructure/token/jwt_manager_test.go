package token

import (
	"errors"
	"testing"
	"time"

	"big_studio/internal/domain/entities"
)

func TestJWTManager_RoundTrip(t *testing.T) {
	m := NewJWTManager("test-secret", time.Hour)

	user := entities.User{ID: "u1", Username: "lara", Email: "lara@studio.com"}
	tokenString, err := m.Issue(user)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	got, err := m.Verify(tokenString)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if got != user {
		t.Fatalf("round trip mismatch: %#v != %#v", got, user)
	}
}

func TestJWTManager_Expired(t *testing.T) {
	issuedAt := time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)

	m := NewJWTManager("test-secret", time.Hour)
	m.now = func() time.Time { return issuedAt }

	tokenString, err := m.Issue(entities.User{ID: "u1", Username: "lara"})
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	m.now = func() time.Time { return issuedAt.Add(2 * time.Hour) }
	if _, err := m.Verify(tokenString); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestJWTManager_WrongSecret(t *testing.T) {
	issuer := NewJWTManager("secret-a", time.Hour)
	verifier := NewJWTManager("secret-b", time.Hour)

	tokenString, err := issuer.Issue(entities.User{ID: "u1", Username: "lara"})
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if _, err := verifier.Verify(tokenString); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for tampered signature, got %v", err)
	}
}

func TestJWTManager_Garbage(t *testing.T) {
	m := NewJWTManager("test-secret", time.Hour)
	if _, err := m.Verify("not.a.token"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
	if _, err := m.Verify(""); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}
