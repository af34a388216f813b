package service

import (
	"log/slog"
	"time"

	"gecos_backend/internal/repository"
	"gecos_backend/internal/utils"
)

// TokenService tracks revoked JWTs so logout actually invalidates a token.
type TokenService struct {
	tokenRepo repository.TokenRepository
	log       *slog.Logger
}

func NewTokenService(tokenRepo repository.TokenRepository, log *slog.Logger) *TokenService {
	return &TokenService{tokenRepo: tokenRepo, log: log}
}

// Revoke blacklists the token identified by the claims until it would have
// expired on its own.
func (s *TokenService) Revoke(claims *utils.Claims) error {
	if err := s.tokenRepo.Revoke(claims.Id, time.Unix(claims.ExpiresAt, 0)); err != nil {
		return err
	}
	s.log.Info("token revoked", slog.Uint64("user_id", uint64(claims.UserID)))
	return nil
}

// IsRevoked reports whether the token was invalidated by a logout.
func (s *TokenService) IsRevoked(claims *utils.Claims) (bool, error) {
	return s.tokenRepo.IsRevoked(claims.Id)
}
