package database

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"foodgram/internal/domain"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := Connect("file:database_" + t.Name() + "?mode=memory&cache=shared")
	require.NoError(t, err)
	require.NoError(t, Migrate(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func TestIsUniqueViolation(t *testing.T) {
	assert.False(t, IsUniqueViolation(nil))
	assert.False(t, IsUniqueViolation(errors.New("boom")))
	assert.True(t, IsUniqueViolation(gorm.ErrDuplicatedKey))
	assert.True(t, IsUniqueViolation(&pgconn.PgError{Code: "23505"}))
	assert.False(t, IsUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.True(t, IsUniqueViolation(errors.New("UNIQUE constraint failed: tags.slug")))
}

func TestUniqueIndexesEnforced(t *testing.T) {
	db := openTestDB(t)
	user := &domain.User{Email: "a@b.c", Username: "a", PasswordHash: "x", Role: domain.RoleUser}
	require.NoError(t, db.Create(user).Error)
	recipe := &domain.Recipe{AuthorID: user.ID, Name: "Soup", Text: "Boil", Image: "i.png", CookingTime: 5}
	require.NoError(t, db.Create(recipe).Error)

	require.NoError(t, db.Create(&domain.Favorite{UserID: user.ID, RecipeID: recipe.ID}).Error)
	err := db.Create(&domain.Favorite{UserID: user.ID, RecipeID: recipe.ID}).Error
	assert.True(t, IsUniqueViolation(err), "got %v", err)
}

func TestDeleteUser_Cascades(t *testing.T) {
	db := openTestDB(t)

	alice := &domain.User{Email: "alice@x.io", Username: "alice", PasswordHash: "x", Role: domain.RoleUser}
	bob := &domain.User{Email: "bob@x.io", Username: "bob", PasswordHash: "x", Role: domain.RoleUser}
	require.NoError(t, db.Create(alice).Error)
	require.NoError(t, db.Create(bob).Error)

	flour := &domain.Ingredient{Name: "Flour", MeasurementUnit: "g"}
	require.NoError(t, db.Create(flour).Error)

	pie := &domain.Recipe{AuthorID: alice.ID, Name: "Pie", Text: "Bake", Image: "p.png", CookingTime: 40}
	stew := &domain.Recipe{AuthorID: bob.ID, Name: "Stew", Text: "Simmer", Image: "s.png", CookingTime: 90}
	require.NoError(t, db.Create(pie).Error)
	require.NoError(t, db.Create(stew).Error)
	require.NoError(t, db.Create(&domain.IngredientInRecipe{RecipeID: pie.ID, IngredientID: flour.ID, Amount: 200}).Error)

	require.NoError(t, db.Create(&domain.Favorite{UserID: bob.ID, RecipeID: pie.ID}).Error)
	require.NoError(t, db.Create(&domain.ShoppingCart{UserID: bob.ID, RecipeID: pie.ID}).Error)
	require.NoError(t, db.Create(&domain.Favorite{UserID: alice.ID, RecipeID: stew.ID}).Error)
	require.NoError(t, db.Create(&domain.Subscribe{UserID: bob.ID, AuthorID: alice.ID}).Error)
	require.NoError(t, db.Create(&domain.Subscribe{UserID: alice.ID, AuthorID: bob.ID}).Error)

	var deleted bool
	err := db.Transaction(func(tx *gorm.DB) error {
		var err error
		deleted, err = DeleteUser(tx, alice.ID)
		return err
	})
	require.NoError(t, err)
	assert.True(t, deleted)

	count := func(model any) int64 {
		var n int64
		require.NoError(t, db.Model(model).Count(&n).Error)
		return n
	}
	assert.Equal(t, int64(1), count(&domain.Recipe{}))
	assert.Equal(t, int64(0), count(&domain.IngredientInRecipe{}))
	assert.Equal(t, int64(0), count(&domain.Favorite{}))
	assert.Equal(t, int64(0), count(&domain.ShoppingCart{}))
	assert.Equal(t, int64(0), count(&domain.Subscribe{}))
	assert.Equal(t, int64(1), count(&domain.Ingredient{}))
}
