package ingredient

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"foodgram/internal/database"
	"foodgram/internal/domain"
)

// Repository handles persistence for ingredients
type Repository interface {
	List(ctx context.Context, namePrefix string) ([]domain.Ingredient, error)
	GetByID(ctx context.Context, id int64) (*domain.Ingredient, error)
	Create(ctx context.Context, i *domain.Ingredient) error
	Update(ctx context.Context, i *domain.Ingredient) error
	Delete(ctx context.Context, id int64) error
	CreateMissing(ctx context.Context, items []domain.Ingredient) (int, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// NamePrefix filters ingredients whose name starts with prefix, ignoring case.
func NamePrefix(prefix string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		prefix = strings.TrimSpace(prefix)
		if prefix == "" {
			return db
		}
		pattern := likeEscaper.Replace(domain.FoldName(prefix)) + "%"
		return db.Where(`name_lower LIKE ? ESCAPE '\'`, pattern)
	}
}

func (r *repository) List(ctx context.Context, namePrefix string) ([]domain.Ingredient, error) {
	var items []domain.Ingredient
	err := r.db.WithContext(ctx).
		Scopes(NamePrefix(namePrefix)).
		Order("name ASC, measurement_unit ASC").
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("list ingredients: %w", err)
	}
	return items, nil
}

func (r *repository) GetByID(ctx context.Context, id int64) (*domain.Ingredient, error) {
	var i domain.Ingredient
	err := r.db.WithContext(ctx).First(&i, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrIngredientNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get ingredient %d: %w", id, err)
	}
	return &i, nil
}

func (r *repository) Create(ctx context.Context, i *domain.Ingredient) error {
	err := r.db.WithContext(ctx).Create(i).Error
	if database.IsUniqueViolation(err) {
		return ErrDuplicateIngredient
	}
	return err
}

func (r *repository) Update(ctx context.Context, i *domain.Ingredient) error {
	err := r.db.WithContext(ctx).
		Session(&gorm.Session{SkipHooks: true}).
		Model(&domain.Ingredient{ID: i.ID}).
		Updates(map[string]any{
			"name":             i.Name,
			"name_lower":       domain.FoldName(i.Name),
			"measurement_unit": i.MeasurementUnit,
		}).Error
	if database.IsUniqueViolation(err) {
		return ErrDuplicateIngredient
	}
	return err
}

// Delete removes the ingredient and every recipe row that references it.
func (r *repository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("ingredient_id = ?", id).Delete(&domain.IngredientInRecipe{}).Error; err != nil {
			return fmt.Errorf("delete recipe ingredients: %w", err)
		}
		res := tx.Delete(&domain.Ingredient{}, id)
		if res.Error != nil {
			return fmt.Errorf("delete ingredient: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrIngredientNotFound
		}
		return nil
	})
}

// CreateMissing inserts the (name, unit) pairs that are not stored yet and
// returns how many were inserted.
func (r *repository) CreateMissing(ctx context.Context, items []domain.Ingredient) (int, error) {
	created := 0
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, item := range items {
			var count int64
			if err := tx.Model(&domain.Ingredient{}).
				Where("name = ? AND measurement_unit = ?", item.Name, item.MeasurementUnit).
				Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				continue
			}
			row := domain.Ingredient{Name: item.Name, MeasurementUnit: item.MeasurementUnit}
			if err := tx.Create(&row).Error; err != nil {
				return fmt.Errorf("create ingredient %q: %w", item.Name, err)
			}
			created++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return created, nil
}
