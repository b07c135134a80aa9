package tag

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"foodgram/internal/database"
	"foodgram/internal/domain"
)

type Repository interface {
	List(ctx context.Context) ([]domain.Tag, error)
	GetByID(ctx context.Context, id int64) (*domain.Tag, error)
	Create(ctx context.Context, t *domain.Tag) error
	Update(ctx context.Context, t *domain.Tag) error
	Delete(ctx context.Context, id int64) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) List(ctx context.Context) ([]domain.Tag, error) {
	var tags []domain.Tag
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&tags).Error; err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}
	return tags, nil
}

func (r *repository) GetByID(ctx context.Context, id int64) (*domain.Tag, error) {
	var t domain.Tag
	err := r.db.WithContext(ctx).First(&t, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrTagNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get tag %d: %w", id, err)
	}
	return &t, nil
}

func (r *repository) Create(ctx context.Context, t *domain.Tag) error {
	err := r.db.WithContext(ctx).Create(t).Error
	if database.IsUniqueViolation(err) {
		return ErrDuplicateTag
	}
	return err
}

func (r *repository) Update(ctx context.Context, t *domain.Tag) error {
	err := r.db.WithContext(ctx).
		Model(&domain.Tag{ID: t.ID}).
		Updates(map[string]any{"name": t.Name, "color": t.Color, "slug": t.Slug}).Error
	if database.IsUniqueViolation(err) {
		return ErrDuplicateTag
	}
	return err
}

// Delete removes the tag and detaches it from every recipe.
func (r *repository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("tag_id = ?", id).Delete(&domain.RecipeTag{}).Error; err != nil {
			return fmt.Errorf("delete recipe tags: %w", err)
		}
		res := tx.Delete(&domain.Tag{}, id)
		if res.Error != nil {
			return fmt.Errorf("delete tag: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrTagNotFound
		}
		return nil
	})
}
