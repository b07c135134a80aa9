package favorite

import "errors"

var (
	ErrAlreadyFavorited = errors.New("recipe already in favorites")
	ErrNotFavorited     = errors.New("recipe is not in favorites")
)
