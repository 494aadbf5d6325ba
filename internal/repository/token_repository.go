package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mainakmishra/equinox/internal/domain"
)

type TokenRepository interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.GoogleToken, error)
	Save(ctx context.Context, token *domain.GoogleToken) error
	Delete(ctx context.Context, userID uuid.UUID) error
	ListLinkedUserIDs(ctx context.Context) ([]uuid.UUID, error)
}

type tokenRepository struct {
	db *gorm.DB
}

func NewTokenRepository(db *gorm.DB) TokenRepository {
	return &tokenRepository{db: db}
}

func (r *tokenRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.GoogleToken, error) {
	var token domain.GoogleToken
	err := r.db.WithContext(ctx).First(&token, "user_id = ?", userID).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &token, nil
}

func (r *tokenRepository) Save(ctx context.Context, token *domain.GoogleToken) error {
	existing, err := r.GetByUserID(ctx, token.UserID)
	if err != nil && err != domain.ErrNotFound {
		return err
	}
	if existing != nil {
		token.ID = existing.ID
		token.CreatedAt = existing.CreatedAt
	}
	return r.db.WithContext(ctx).Save(token).Error
}

func (r *tokenRepository) Delete(ctx context.Context, userID uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&domain.GoogleToken{}, "user_id = ?", userID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *tokenRepository) ListLinkedUserIDs(ctx context.Context) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.WithContext(ctx).
		Model(&domain.GoogleToken{}).
		Pluck("user_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}
