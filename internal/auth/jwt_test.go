package auth

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestJWTManager_RoundTrip(t *testing.T) {
	t.Parallel()

	m := NewJWTManager(testSecret, "companions")
	userID := uuid.New()

	token, err := m.SignToken(userID, time.Minute)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	got, err := m.ValidateToken(context.Background(), token)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if got != userID {
		t.Fatalf("got %s, want %s", got, userID)
	}
}

func TestJWTManager_EmptyToken(t *testing.T) {
	t.Parallel()

	m := NewJWTManager(testSecret, "companions")
	if _, err := m.ValidateToken(context.Background(), ""); err == nil {
		t.Fatal("expected error for empty token")
	}
}

func TestJWTManager_WrongIssuer(t *testing.T) {
	t.Parallel()

	issuer := NewJWTManager(testSecret, "someone-else")
	validator := NewJWTManager(testSecret, "companions")

	token, err := issuer.SignToken(uuid.New(), time.Minute)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := validator.ValidateToken(context.Background(), token); err == nil {
		t.Fatal("expected error for wrong issuer")
	}
}

func TestJWTManager_WrongSecret(t *testing.T) {
	t.Parallel()

	issuer := NewJWTManager("another-secret-that-is-32-chars!", "companions")
	validator := NewJWTManager(testSecret, "companions")

	token, err := issuer.SignToken(uuid.New(), time.Minute)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := validator.ValidateToken(context.Background(), token); err == nil {
		t.Fatal("expected error for wrong signing key")
	}
}

func TestJWTManager_Expired(t *testing.T) {
	t.Parallel()

	m := NewJWTManager(testSecret, "companions")

	token, err := m.SignToken(uuid.New(), -time.Minute)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := m.ValidateToken(context.Background(), token); err == nil {
		t.Fatal("expected error for expired token")
	}
}

func TestJWTManager_NonUUIDSubject(t *testing.T) {
	t.Parallel()

	m := NewJWTManager(testSecret, "companions")

	// A correctly signed token with a non-UUID subject must be rejected.
	claims := jwt.RegisteredClaims{
		Subject:   "not-a-uuid",
		Issuer:    "companions",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := m.ValidateToken(context.Background(), token); err == nil {
		t.Fatal("expected error for non-UUID subject")
	}
}
