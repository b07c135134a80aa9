package recipe

import "errors"

var (
	ErrRecipeNotFound = errors.New("recipe not found")
	ErrNotAuthor      = errors.New("only the author can change this recipe")
)
