package jwt

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

func newTestService() *HMACService {
	return NewHMACService("access-secret", "refresh-secret", 15*time.Minute, 7*24*time.Hour)
}

func TestAccessTokenRoundTrip(t *testing.T) {
	svc := newTestService()
	userID := uuid.New()

	tok, err := svc.GenerateAccessToken(userID, "alice")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims, err := svc.ValidateToken(tok)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if claims.UserID != userID {
		t.Fatalf("user id = %s, want %s", claims.UserID, userID)
	}
	if claims.Username != "alice" {
		t.Fatalf("username = %q", claims.Username)
	}
	if claims.TokenType != TokenTypeAccess || svc.IsRefreshToken(claims) {
		t.Fatalf("unexpected token type %q", claims.TokenType)
	}
}

func TestRefreshTokenType(t *testing.T) {
	svc := newTestService()

	tok, err := svc.GenerateRefreshToken(uuid.New())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims, err := svc.ValidateToken(tok)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if !svc.IsRefreshToken(claims) {
		t.Fatalf("expected refresh token, got %q", claims.TokenType)
	}
}

func TestExpiredToken(t *testing.T) {
	svc := newTestService()
	svc.now = func() time.Time { return time.Now().Add(-time.Hour) }

	tok, err := svc.GenerateAccessToken(uuid.New(), "bob")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	svc.now = time.Now
	if _, err := svc.ValidateToken(tok); !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestTokenSignedWithWrongSecret(t *testing.T) {
	svc := newTestService()
	other := NewHMACService("other-access", "other-refresh", 15*time.Minute, time.Hour)

	tok, err := other.GenerateAccessToken(uuid.New(), "eve")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if _, err := svc.ValidateToken(tok); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestGarbageToken(t *testing.T) {
	svc := newTestService()
	if _, err := svc.ValidateToken("not.a.token"); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}
