package domain

import "time"

// ShoppingCart is a recipe queued by a user for shopping list generation.
type ShoppingCart struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	UserID    int64     `json:"user_id" gorm:"not null;index;uniqueIndex:idx_cart_user_recipe"`
	RecipeID  int64     `json:"recipe_id" gorm:"not null;index;uniqueIndex:idx_cart_user_recipe"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (ShoppingCart) TableName() string {
	return "shopping_carts"
}
