package subscription

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"foodgram/internal/database"
	"foodgram/internal/domain"
	"foodgram/internal/pkg/pagination"
)

type Repository interface {
	Add(ctx context.Context, userID, authorID int64) error
	Remove(ctx context.Context, userID, authorID int64) error
	Exists(ctx context.Context, userID, authorID int64) (bool, error)
	// ListAuthors returns the authors userID follows, most recent first.
	ListAuthors(ctx context.Context, userID int64, p pagination.Params) ([]domain.User, int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Add(ctx context.Context, userID, authorID int64) error {
	exists, err := r.Exists(ctx, userID, authorID)
	if err != nil {
		return err
	}
	if exists {
		return ErrAlreadySubscribed
	}

	err = r.db.WithContext(ctx).Create(&domain.Subscribe{UserID: userID, AuthorID: authorID}).Error
	if database.IsUniqueViolation(err) {
		return ErrAlreadySubscribed
	}
	return err
}

func (r *repository) Remove(ctx context.Context, userID, authorID int64) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND author_id = ?", userID, authorID).
		Delete(&domain.Subscribe{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotSubscribed
	}
	return nil
}

func (r *repository) Exists(ctx context.Context, userID, authorID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.Subscribe{}).
		Where("user_id = ? AND author_id = ?", userID, authorID).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) ListAuthors(ctx context.Context, userID int64, p pagination.Params) ([]domain.User, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).
		Model(&domain.Subscribe{}).
		Where("user_id = ?", userID).
		Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count subscriptions: %w", err)
	}

	var authors []domain.User
	err := r.db.WithContext(ctx).
		Model(&domain.User{}).
		Select("users.*").
		Joins("JOIN subscribes s ON s.author_id = users.id").
		Where("s.user_id = ?", userID).
		Order("s.created_at DESC").
		Order("s.id DESC").
		Offset(p.Offset()).
		Limit(p.Limit).
		Find(&authors).Error
	if err != nil {
		return nil, 0, fmt.Errorf("list subscriptions: %w", err)
	}
	return authors, total, nil
}
