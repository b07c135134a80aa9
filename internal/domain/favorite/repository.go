package favorite

import (
	"context"

	"gorm.io/gorm"

	"foodgram/internal/database"
	"foodgram/internal/domain"
)

// Repository manages the favorites join table.
type Repository interface {
	Add(ctx context.Context, userID, recipeID int64) error
	Remove(ctx context.Context, userID, recipeID int64) error
	Exists(ctx context.Context, userID, recipeID int64) (bool, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// Add returns ErrAlreadyFavorited if the pair is already stored, including
// when a concurrent insert wins the unique index.
func (r *repository) Add(ctx context.Context, userID, recipeID int64) error {
	exists, err := r.Exists(ctx, userID, recipeID)
	if err != nil {
		return err
	}
	if exists {
		return ErrAlreadyFavorited
	}

	err = r.db.WithContext(ctx).Create(&domain.Favorite{UserID: userID, RecipeID: recipeID}).Error
	if database.IsUniqueViolation(err) {
		return ErrAlreadyFavorited
	}
	return err
}

func (r *repository) Remove(ctx context.Context, userID, recipeID int64) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Delete(&domain.Favorite{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFavorited
	}
	return nil
}

func (r *repository) Exists(ctx context.Context, userID, recipeID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.Favorite{}).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Count(&count).Error
	return count > 0, err
}
