package database

import (
	"fmt"

	"gorm.io/gorm"

	"foodgram/internal/domain"
)

// DeleteRecipes removes the given recipes with their ingredient rows, tag
// rows, favorites and cart rows. It must run inside a transaction.
func DeleteRecipes(tx *gorm.DB, recipeIDs []int64) error {
	if len(recipeIDs) == 0 {
		return nil
	}

	dependents := []struct {
		name  string
		model any
	}{
		{"ingredient rows", &domain.IngredientInRecipe{}},
		{"tag rows", &domain.RecipeTag{}},
		{"favorites", &domain.Favorite{}},
		{"cart rows", &domain.ShoppingCart{}},
	}
	for _, d := range dependents {
		if err := tx.Where("recipe_id IN ?", recipeIDs).Delete(d.model).Error; err != nil {
			return fmt.Errorf("delete %s: %w", d.name, err)
		}
	}

	if err := tx.Where("id IN ?", recipeIDs).Delete(&domain.Recipe{}).Error; err != nil {
		return fmt.Errorf("delete recipes: %w", err)
	}
	return nil
}

// DeleteUser removes the user, their recipes, favorites, cart rows and
// subscriptions in both directions. It reports whether a user row was
// deleted and must run inside a transaction.
func DeleteUser(tx *gorm.DB, userID int64) (bool, error) {
	var recipeIDs []int64
	if err := tx.Model(&domain.Recipe{}).Where("author_id = ?", userID).Pluck("id", &recipeIDs).Error; err != nil {
		return false, fmt.Errorf("load recipes: %w", err)
	}
	if err := DeleteRecipes(tx, recipeIDs); err != nil {
		return false, err
	}

	if err := tx.Where("user_id = ?", userID).Delete(&domain.Favorite{}).Error; err != nil {
		return false, fmt.Errorf("delete favorites: %w", err)
	}
	if err := tx.Where("user_id = ?", userID).Delete(&domain.ShoppingCart{}).Error; err != nil {
		return false, fmt.Errorf("delete cart rows: %w", err)
	}
	if err := tx.Where("user_id = ? OR author_id = ?", userID, userID).Delete(&domain.Subscribe{}).Error; err != nil {
		return false, fmt.Errorf("delete subscriptions: %w", err)
	}

	res := tx.Delete(&domain.User{}, userID)
	if res.Error != nil {
		return false, fmt.Errorf("delete user: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}
