package usecase

import (
	"context"
	"crypto/subtle"
	"errors"
	"strings"

	"jobboard/internal/pkg/jwt"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
	ErrRefreshTokenExpired = errors.New("refresh token expired")
)

type AuthUsecase interface {
	Login(ctx context.Context, username, password string) (access, refresh string, err error)
	Refresh(ctx context.Context, refreshToken string) (access, refresh string, err error)
}

// Auth checks the single administrator credential. The password is supplied
// as a bcrypt hash through configuration and compared server-side on every
// login; successful logins are exchanged for short-lived bearer tokens.
type Auth struct {
	adminUsername     string
	adminPasswordHash string
	jwt               jwt.Service
}

func NewAuthUsecase(adminUsername, adminPasswordHash string, jwtSvc jwt.Service) *Auth {
	return &Auth{
		adminUsername:     strings.TrimSpace(adminUsername),
		adminPasswordHash: strings.TrimSpace(adminPasswordHash),
		jwt:               jwtSvc,
	}
}

func (u *Auth) Login(ctx context.Context, username, password string) (string, string, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return "", "", ErrInvalidCredentials
	}
	if u.adminUsername == "" || u.adminPasswordHash == "" {
		return "", "", ErrInvalidCredentials
	}

	usernameOK := subtle.ConstantTimeCompare([]byte(username), []byte(u.adminUsername)) == 1
	passwordErr := bcrypt.CompareHashAndPassword([]byte(u.adminPasswordHash), []byte(password))
	if !usernameOK || passwordErr != nil {
		return "", "", ErrInvalidCredentials
	}

	return u.issueTokens()
}

func (u *Auth) Refresh(ctx context.Context, refreshToken string) (string, string, error) {
	if refreshToken == "" {
		return "", "", ErrInvalidRefreshToken
	}

	claims, err := u.jwt.ValidateToken(refreshToken)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", "", ErrRefreshTokenExpired
		}
		return "", "", ErrInvalidRefreshToken
	}

	if !u.jwt.IsRefreshToken(claims) || claims.Username != u.adminUsername {
		return "", "", ErrInvalidRefreshToken
	}

	return u.issueTokens()
}

func (u *Auth) issueTokens() (string, string, error) {
	access, err := u.jwt.GenerateAccessToken(u.adminUsername)
	if err != nil {
		return "", "", ErrInternal
	}
	refresh, err := u.jwt.GenerateRefreshToken(u.adminUsername)
	if err != nil {
		return "", "", ErrInternal
	}
	return access, refresh, nil
}
