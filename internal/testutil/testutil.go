// Package testutil provides an in-memory database and fixtures for tests.
package testutil

import (
	"fmt"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"foodgram/internal/database"
	"foodgram/internal/domain"
)

var dbSeq atomic.Int64

// NewDB opens a fresh migrated in-memory SQLite database.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", name, dbSeq.Add(1))

	db, err := database.Connect(dsn)
	require.NoError(t, err, "connect test database")
	require.NoError(t, database.Migrate(db), "migrate test database")

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func CreateUser(t *testing.T, db *gorm.DB, username string) *domain.User {
	t.Helper()
	u := &domain.User{
		Email:        username + "@foodgram.test",
		Username:     username,
		FirstName:    strings.ToUpper(username[:1]) + username[1:],
		LastName:     "Tester",
		PasswordHash: "x",
		Role:         domain.RoleUser,
	}
	require.NoError(t, db.Create(u).Error)
	return u
}

func CreateAdmin(t *testing.T, db *gorm.DB, username string) *domain.User {
	t.Helper()
	u := CreateUser(t, db, username)
	require.NoError(t, db.Model(u).Update("role", domain.RoleAdmin).Error)
	u.Role = domain.RoleAdmin
	return u
}

func CreateIngredient(t *testing.T, db *gorm.DB, name, unit string) *domain.Ingredient {
	t.Helper()
	i := &domain.Ingredient{Name: name, MeasurementUnit: unit}
	require.NoError(t, db.Create(i).Error)
	return i
}

func CreateTag(t *testing.T, db *gorm.DB, name, slug, color string) *domain.Tag {
	t.Helper()
	tag := &domain.Tag{Name: name, Slug: slug, Color: color}
	require.NoError(t, db.Create(tag).Error)
	return tag
}

// Amounts maps ingredient id to amount.
type Amounts map[int64]int

// CreateRecipe inserts a recipe with its associations directly, bypassing
// service validation.
func CreateRecipe(t *testing.T, db *gorm.DB, author *domain.User, name string, amounts Amounts, tags ...*domain.Tag) *domain.Recipe {
	t.Helper()
	r := &domain.Recipe{
		AuthorID:    author.ID,
		Name:        name,
		Text:        name + " instructions",
		Image:       "recipes/images/" + strings.ReplaceAll(name, " ", "_") + ".png",
		CookingTime: 30,
	}
	require.NoError(t, db.Create(r).Error)

	for id, amount := range amounts {
		require.NoError(t, db.Create(&domain.IngredientInRecipe{
			RecipeID:     r.ID,
			IngredientID: id,
			Amount:       amount,
		}).Error)
	}
	for _, tag := range tags {
		require.NoError(t, db.Create(&domain.RecipeTag{RecipeID: r.ID, TagID: tag.ID}).Error)
	}
	return r
}

func AddToCart(t *testing.T, db *gorm.DB, user *domain.User, recipe *domain.Recipe) {
	t.Helper()
	require.NoError(t, db.Create(&domain.ShoppingCart{UserID: user.ID, RecipeID: recipe.ID}).Error)
}

func AddFavorite(t *testing.T, db *gorm.DB, user *domain.User, recipe *domain.Recipe) {
	t.Helper()
	require.NoError(t, db.Create(&domain.Favorite{UserID: user.ID, RecipeID: recipe.ID}).Error)
}

func Subscribe(t *testing.T, db *gorm.DB, user, author *domain.User) {
	t.Helper()
	require.NoError(t, db.Create(&domain.Subscribe{UserID: user.ID, AuthorID: author.ID}).Error)
}
