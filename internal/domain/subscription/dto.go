package subscription

import (
	"foodgram/internal/domain/recipe"
	"foodgram/internal/domain/user"
)

// AuthorResponse is a followed author with their recipes.
type AuthorResponse struct {
	user.UserResponse
	Recipes      []recipe.ShortResponse `json:"recipes"`
	RecipesCount int64                  `json:"recipes_count"`
}
