package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"jobboard/internal/pkg/jwt"

	"golang.org/x/crypto/bcrypt"
)

func newAuthFixture(t *testing.T) *Auth {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("correct horse"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	svc := jwt.NewHMACService("access-secret", "refresh-secret", 15*time.Minute, time.Hour)
	return NewAuthUsecase("admin", string(hash), svc)
}

func TestAuthLogin_Success(t *testing.T) {
	uc := newAuthFixture(t)

	access, refresh, err := uc.Login(context.Background(), "admin", "correct horse")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if access == "" || refresh == "" {
		t.Fatalf("expected token pair")
	}
}

func TestAuthLogin_WrongPassword(t *testing.T) {
	uc := newAuthFixture(t)

	_, _, err := uc.Login(context.Background(), "admin", "wrong")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthLogin_WrongUsername(t *testing.T) {
	uc := newAuthFixture(t)

	_, _, err := uc.Login(context.Background(), "root", "correct horse")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthRefresh_RejectsAccessToken(t *testing.T) {
	uc := newAuthFixture(t)

	access, _, err := uc.Login(context.Background(), "admin", "correct horse")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	_, _, err = uc.Refresh(context.Background(), access)
	if !errors.Is(err, ErrInvalidRefreshToken) {
		t.Fatalf("expected ErrInvalidRefreshToken, got %v", err)
	}
}

func TestAuthRefresh_IssuesNewPair(t *testing.T) {
	uc := newAuthFixture(t)

	_, refresh, err := uc.Login(context.Background(), "admin", "correct horse")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	access2, refresh2, err := uc.Refresh(context.Background(), refresh)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if access2 == "" || refresh2 == "" {
		t.Fatalf("expected new token pair")
	}
}
