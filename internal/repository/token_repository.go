package repository

import (
	"context"

	"gorm.io/gorm"

	"bragboard/internal/model"
)

// TokenRepository defines bearer token persistence operations.
type TokenRepository interface {
	Create(ctx context.Context, token *model.Token) error
	FindByToken(ctx context.Context, token string) (*model.Token, error)
}

type tokenRepository struct {
	db *gorm.DB
}

// NewTokenRepository creates a new token repository.
func NewTokenRepository(db *gorm.DB) TokenRepository {
	return &tokenRepository{db: db}
}

// Create creates a new token row.
func (r *tokenRepository) Create(ctx context.Context, token *model.Token) error {
	return r.db.WithContext(ctx).Create(token).Error
}

// FindByToken finds a token row by its opaque value.
func (r *tokenRepository) FindByToken(ctx context.Context, token string) (*model.Token, error) {
	var t model.Token
	if err := r.db.WithContext(ctx).Where("token = ?", token).First(&t).Error; err != nil {
		return nil, err
	}
	return &t, nil
}
