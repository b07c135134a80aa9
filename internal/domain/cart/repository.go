package cart

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"foodgram/internal/database"
	"foodgram/internal/domain"
)

// Line is one aggregated shopping list entry.
type Line struct {
	Name            string
	MeasurementUnit string
	Total           int64
}

type Repository interface {
	Add(ctx context.Context, userID, recipeID int64) error
	Remove(ctx context.Context, userID, recipeID int64) error
	Exists(ctx context.Context, userID, recipeID int64) (bool, error)
	// Aggregate sums ingredient amounts over every recipe in the user's
	// cart, grouped by ingredient name and measurement unit. Order is
	// unspecified.
	Aggregate(ctx context.Context, userID int64) ([]Line, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Add(ctx context.Context, userID, recipeID int64) error {
	exists, err := r.Exists(ctx, userID, recipeID)
	if err != nil {
		return err
	}
	if exists {
		return ErrAlreadyInCart
	}

	err = r.db.WithContext(ctx).Create(&domain.ShoppingCart{UserID: userID, RecipeID: recipeID}).Error
	if database.IsUniqueViolation(err) {
		return ErrAlreadyInCart
	}
	return err
}

func (r *repository) Remove(ctx context.Context, userID, recipeID int64) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Delete(&domain.ShoppingCart{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotInCart
	}
	return nil
}

func (r *repository) Exists(ctx context.Context, userID, recipeID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.ShoppingCart{}).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) Aggregate(ctx context.Context, userID int64) ([]Line, error) {
	var lines []Line
	err := r.db.WithContext(ctx).
		Table("shopping_carts AS sc").
		Select("i.name AS name, i.measurement_unit AS measurement_unit, SUM(ir.amount) AS total").
		Joins("JOIN recipes r ON r.id = sc.recipe_id").
		Joins("JOIN ingredient_in_recipes ir ON ir.recipe_id = r.id").
		Joins("JOIN ingredients i ON i.id = ir.ingredient_id").
		Where("sc.user_id = ?", userID).
		Group("i.name, i.measurement_unit").
		Scan(&lines).Error
	if err != nil {
		return nil, fmt.Errorf("aggregate shopping cart: %w", err)
	}
	return lines, nil
}
