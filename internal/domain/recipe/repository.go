package recipe

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"foodgram/internal/database"
	"foodgram/internal/domain"
	"foodgram/internal/pkg/pagination"
	"foodgram/internal/pkg/validator"
)

// Repository handles recipe persistence. Create, Update and Delete run in a
// single transaction each.
type Repository interface {
	List(ctx context.Context, scopes []func(*gorm.DB) *gorm.DB, p pagination.Params) ([]domain.Recipe, int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Recipe, error)
	GetShort(ctx context.Context, id int64) (*domain.Recipe, error)
	Create(ctx context.Context, r *domain.Recipe, ingredients []IngredientAmount, tagIDs []int64) error
	Update(ctx context.Context, r *domain.Recipe, ingredients []IngredientAmount, tagIDs []int64) error
	Delete(ctx context.Context, id int64) error
	Flags(ctx context.Context, userID int64, recipeIDs []int64) (favorited, inCart map[int64]bool, err error)
	ListByAuthors(ctx context.Context, authorIDs []int64) ([]domain.Recipe, error)
	CountByAuthors(ctx context.Context, authorIDs []int64) (map[int64]int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func withDetails(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Author").
		Preload("Tags", func(db *gorm.DB) *gorm.DB { return db.Order("tags.name ASC") }).
		Preload("Ingredients", func(db *gorm.DB) *gorm.DB { return db.Order("ingredient_in_recipes.id ASC") }).
		Preload("Ingredients.Ingredient")
}

func (r *repository) List(ctx context.Context, scopes []func(*gorm.DB) *gorm.DB, p pagination.Params) ([]domain.Recipe, int64, error) {
	query := func() *gorm.DB {
		return r.db.WithContext(ctx).Model(&domain.Recipe{}).Scopes(scopes...)
	}

	var total int64
	if err := query().Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count recipes: %w", err)
	}

	var recipes []domain.Recipe
	err := query().
		Scopes(Newest, withDetails).
		Offset(p.Offset()).
		Limit(p.Limit).
		Find(&recipes).Error
	if err != nil {
		return nil, 0, fmt.Errorf("list recipes: %w", err)
	}
	return recipes, total, nil
}

func (r *repository) GetByID(ctx context.Context, id int64) (*domain.Recipe, error) {
	return r.get(r.db.WithContext(ctx).Scopes(withDetails), id)
}

func (r *repository) GetShort(ctx context.Context, id int64) (*domain.Recipe, error) {
	return r.get(r.db.WithContext(ctx), id)
}

func (r *repository) get(db *gorm.DB, id int64) (*domain.Recipe, error) {
	var rec domain.Recipe
	err := db.First(&rec, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrRecipeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get recipe %d: %w", id, err)
	}
	return &rec, nil
}

func (r *repository) Create(ctx context.Context, rec *domain.Recipe, ingredients []IngredientAmount, tagIDs []int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(rec).Error; err != nil {
			return fmt.Errorf("create recipe: %w", err)
		}
		return replaceAssociations(tx, rec.ID, ingredients, tagIDs)
	})
}

func (r *repository) Update(ctx context.Context, rec *domain.Recipe, ingredients []IngredientAmount, tagIDs []int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&domain.Recipe{ID: rec.ID}).Updates(map[string]any{
			"name":         rec.Name,
			"text":         rec.Text,
			"image":        rec.Image,
			"cooking_time": rec.CookingTime,
		})
		if res.Error != nil {
			return fmt.Errorf("update recipe: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrRecipeNotFound
		}

		if err := tx.Where("recipe_id = ?", rec.ID).Delete(&domain.IngredientInRecipe{}).Error; err != nil {
			return fmt.Errorf("clear recipe ingredients: %w", err)
		}
		if err := tx.Where("recipe_id = ?", rec.ID).Delete(&domain.RecipeTag{}).Error; err != nil {
			return fmt.Errorf("clear recipe tags: %w", err)
		}
		return replaceAssociations(tx, rec.ID, ingredients, tagIDs)
	})
}

// replaceAssociations verifies that every referenced ingredient and tag
// exists, then inserts the association rows. A missing reference aborts
// the surrounding transaction.
func replaceAssociations(tx *gorm.DB, recipeID int64, ingredients []IngredientAmount, tagIDs []int64) error {
	ingredientIDs := make([]int64, 0, len(ingredients))
	for _, in := range ingredients {
		ingredientIDs = append(ingredientIDs, in.ID)
	}

	if missing, err := missingIDs(tx, &domain.Ingredient{}, ingredientIDs); err != nil {
		return err
	} else if len(missing) > 0 {
		return validator.NewError("ingredients", "unknown ingredient id(s): "+joinIDs(missing))
	}
	if missing, err := missingIDs(tx, &domain.Tag{}, tagIDs); err != nil {
		return err
	} else if len(missing) > 0 {
		return validator.NewError("tags", "unknown tag id(s): "+joinIDs(missing))
	}

	rows := make([]domain.IngredientInRecipe, 0, len(ingredients))
	for _, in := range ingredients {
		rows = append(rows, domain.IngredientInRecipe{RecipeID: recipeID, IngredientID: in.ID, Amount: in.Amount})
	}
	if err := tx.Create(&rows).Error; err != nil {
		return fmt.Errorf("insert recipe ingredients: %w", err)
	}

	tags := make([]domain.RecipeTag, 0, len(tagIDs))
	for _, id := range tagIDs {
		tags = append(tags, domain.RecipeTag{RecipeID: recipeID, TagID: id})
	}
	if err := tx.Create(&tags).Error; err != nil {
		return fmt.Errorf("insert recipe tags: %w", err)
	}
	return nil
}

func missingIDs(tx *gorm.DB, model any, ids []int64) ([]int64, error) {
	var found []int64
	if err := tx.Model(model).Where("id IN ?", ids).Pluck("id", &found).Error; err != nil {
		return nil, err
	}

	present := make(map[int64]bool, len(found))
	for _, id := range found {
		present[id] = true
	}
	var missing []int64
	for _, id := range ids {
		if !present[id] {
			missing = append(missing, id)
		}
	}
	sort.Slice(missing, func(i, j int) bool { return missing[i] < missing[j] })
	return missing, nil
}

func joinIDs(ids []int64) string {
	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		parts = append(parts, fmt.Sprint(id))
	}
	return strings.Join(parts, ", ")
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&domain.Recipe{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return ErrRecipeNotFound
		}
		return database.DeleteRecipes(tx, []int64{id})
	})
}

func (r *repository) Flags(ctx context.Context, userID int64, recipeIDs []int64) (map[int64]bool, map[int64]bool, error) {
	favorited := make(map[int64]bool)
	inCart := make(map[int64]bool)
	if userID == 0 || len(recipeIDs) == 0 {
		return favorited, inCart, nil
	}

	var ids []int64
	if err := r.db.WithContext(ctx).Model(&domain.Favorite{}).
		Where("user_id = ? AND recipe_id IN ?", userID, recipeIDs).
		Pluck("recipe_id", &ids).Error; err != nil {
		return nil, nil, fmt.Errorf("load favorites: %w", err)
	}
	for _, id := range ids {
		favorited[id] = true
	}

	ids = nil
	if err := r.db.WithContext(ctx).Model(&domain.ShoppingCart{}).
		Where("user_id = ? AND recipe_id IN ?", userID, recipeIDs).
		Pluck("recipe_id", &ids).Error; err != nil {
		return nil, nil, fmt.Errorf("load cart: %w", err)
	}
	for _, id := range ids {
		inCart[id] = true
	}
	return favorited, inCart, nil
}

// ListByAuthors returns the authors' recipes, newest first.
func (r *repository) ListByAuthors(ctx context.Context, authorIDs []int64) ([]domain.Recipe, error) {
	if len(authorIDs) == 0 {
		return nil, nil
	}
	var recipes []domain.Recipe
	err := r.db.WithContext(ctx).
		Where("author_id IN ?", authorIDs).
		Scopes(Newest).
		Find(&recipes).Error
	if err != nil {
		return nil, fmt.Errorf("list recipes by authors: %w", err)
	}
	return recipes, nil
}

func (r *repository) CountByAuthors(ctx context.Context, authorIDs []int64) (map[int64]int64, error) {
	out := make(map[int64]int64, len(authorIDs))
	if len(authorIDs) == 0 {
		return out, nil
	}

	var rows []struct {
		AuthorID int64
		Total    int64
	}
	err := r.db.WithContext(ctx).
		Model(&domain.Recipe{}).
		Select("author_id, COUNT(*) AS total").
		Where("author_id IN ?", authorIDs).
		Group("author_id").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("count recipes by authors: %w", err)
	}
	for _, row := range rows {
		out[row.AuthorID] = row.Total
	}
	return out, nil
}
