package repository

import (
	"time"

	"gecos_backend/internal/models"
	"gecos_backend/internal/storage"
)

type TokenRepository interface {
	Revoke(jti string, expiresAt time.Time) error
	IsRevoked(jti string) (bool, error)
}

type tokenRepository struct {
	db *storage.PostgresDB
}

func NewTokenRepository(db *storage.PostgresDB) TokenRepository {
	return &tokenRepository{db: db}
}

func (r *tokenRepository) Revoke(jti string, expiresAt time.Time) error {
	return r.db.Create(&models.RevokedToken{JTI: jti, ExpiresAt: expiresAt}).Error
}

func (r *tokenRepository) IsRevoked(jti string) (bool, error) {
	var count int64
	err := r.db.Model(&models.RevokedToken{}).Where("jti = ?", jti).Count(&count).Error
	return count > 0, err
}
