package domain

import "time"

const (
	MinCookingTime = 1
	MaxCookingTime = 200
	MinAmount      = 1
	MaxAmount      = 2000
)

// Recipe is a dish published by an author.
type Recipe struct {
	ID          int64     `json:"id" gorm:"primaryKey"`
	AuthorID    int64     `json:"author_id" gorm:"not null;index"`
	Name        string    `json:"name" gorm:"size:200;not null"`
	Text        string    `json:"text" gorm:"type:text;not null"`
	Image       string    `json:"image" gorm:"not null"`
	CookingTime int       `json:"cooking_time" gorm:"not null;check:chk_recipes_cooking_time,cooking_time BETWEEN 1 AND 200"`
	CreatedAt   time.Time `json:"pub_date" gorm:"autoCreateTime;index"`
	UpdatedAt   time.Time `json:"-" gorm:"autoUpdateTime"`

	// Preload targets
	Author      *User                `json:"author,omitempty" gorm:"foreignKey:AuthorID"`
	Tags        []Tag                `json:"tags,omitempty" gorm:"many2many:recipe_tags"`
	Ingredients []IngredientInRecipe `json:"ingredients,omitempty" gorm:"foreignKey:RecipeID"`
}

func (Recipe) TableName() string {
	return "recipes"
}

// IngredientInRecipe links a recipe to an ingredient with an amount.
type IngredientInRecipe struct {
	ID           int64 `json:"id" gorm:"primaryKey"`
	RecipeID     int64 `json:"recipe_id" gorm:"not null;uniqueIndex:idx_recipe_ingredient"`
	IngredientID int64 `json:"ingredient_id" gorm:"not null;index;uniqueIndex:idx_recipe_ingredient"`
	Amount       int   `json:"amount" gorm:"not null;check:chk_ingredient_in_recipes_amount,amount BETWEEN 1 AND 2000"`

	Ingredient *Ingredient `json:"ingredient,omitempty" gorm:"foreignKey:IngredientID"`
}

func (IngredientInRecipe) TableName() string {
	return "ingredient_in_recipes"
}

// RecipeTag is the join row behind Recipe.Tags.
type RecipeTag struct {
	RecipeID int64 `gorm:"primaryKey"`
	TagID    int64 `gorm:"primaryKey;index"`
}

func (RecipeTag) TableName() string {
	return "recipe_tags"
}
