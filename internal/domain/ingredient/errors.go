package ingredient

import "errors"

var (
	ErrIngredientNotFound  = errors.New("ingredient not found")
	ErrDuplicateIngredient = errors.New("ingredient with this name and measurement unit already exists")
)
