package cart

import "errors"

var (
	ErrAlreadyInCart = errors.New("recipe already in shopping cart")
	ErrNotInCart     = errors.New("recipe is not in shopping cart")
)
