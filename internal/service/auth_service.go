package service

import (
	"context"
	"time"

	"chambers-practice-be/internal/config"
	"chambers-practice-be/internal/dto"
	"chambers-practice-be/internal/pkg/serverutils"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const sessionTTL = 12 * time.Hour

type IAuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
}

type authService struct {
	cfg config.AuthConfig
}

func NewAuthService(cfg config.AuthConfig) IAuthService {
	return &authService{cfg: cfg}
}

// Login compares the shared passphrase against the configured bcrypt
// hash and issues a short-lived session token. There is a single
// account, so the token carries no subject beyond its expiry.
func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	if s.cfg.PassphraseHash == "" || s.cfg.SessionSecret == "" {
		return nil, serverutils.NewUnauthorizedError("Login is not configured")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(s.cfg.PassphraseHash), []byte(req.Passphrase)); err != nil {
		return nil, serverutils.NewUnauthorizedError("Invalid passphrase")
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"iat": now.Unix(),
		"exp": now.Add(sessionTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.SessionSecret))
	if err != nil {
		return nil, serverutils.NewStoreError("Token signing failed", err)
	}

	return &dto.LoginResponse{Token: signed}, nil
}
