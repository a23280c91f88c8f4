package jwt

import (
	"errors"
	"testing"
	"time"
)

func newService() *HMACService {
	return NewHMACService("access-secret", "refresh-secret", 15*time.Minute, time.Hour)
}

func TestAccessTokenRoundTrip(t *testing.T) {
	s := newService()

	tok, err := s.GenerateAccessToken("admin")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims, err := s.ValidateToken(tok)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if claims.Username != "admin" {
		t.Fatalf("expected username admin, got %q", claims.Username)
	}
	if claims.TokenType != TokenTypeAccess {
		t.Fatalf("expected access token, got %q", claims.TokenType)
	}
	if s.IsRefreshToken(claims) {
		t.Fatalf("access token misclassified as refresh")
	}
}

func TestRefreshTokenClassification(t *testing.T) {
	s := newService()

	tok, err := s.GenerateRefreshToken("admin")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims, err := s.ValidateToken(tok)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if !s.IsRefreshToken(claims) {
		t.Fatalf("refresh token not classified as refresh")
	}
}

func TestExpiredTokenRejected(t *testing.T) {
	s := newService()
	s.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	tok, err := s.GenerateAccessToken("admin")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	s.now = time.Now
	if _, err := s.ValidateToken(tok); !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestForeignSecretRejected(t *testing.T) {
	s := newService()
	other := NewHMACService("other-access", "other-refresh", 15*time.Minute, time.Hour)

	tok, err := other.GenerateAccessToken("admin")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if _, err := s.ValidateToken(tok); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}
