package recipe

import (
	"fmt"
	"strings"

	"foodgram/internal/pkg/validator"
)

// Validate checks the request shape. It never touches storage.
func (r *CreateRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	r.Text = strings.TrimSpace(r.Text)
	r.Image = strings.TrimSpace(r.Image)

	fields := validator.Validate(r)
	return collect(fields, r.Ingredients, r.Tags)
}

// Validate checks the request shape. It never touches storage.
func (r *UpdateRequest) Validate() error {
	for _, s := range []*string{r.Name, r.Text, r.Image} {
		if s != nil {
			*s = strings.TrimSpace(*s)
		}
	}

	fields := validator.Validate(r)
	return collect(fields, r.Ingredients, r.Tags)
}

// Validate rejects filter values that cannot match anything meaningful.
func (r *ListRequest) Validate() error {
	if r.Author < 0 {
		return validator.NewError("author", "must be a positive user id")
	}
	return nil
}

func collect(fields map[string]string, ingredients []IngredientAmount, tags []int64) error {
	if fields == nil {
		fields = map[string]string{}
	}

	seen := make(map[int64]bool, len(ingredients))
	for _, in := range ingredients {
		if seen[in.ID] {
			fields["ingredients"] = fmt.Sprintf("ingredient %d is listed more than once", in.ID)
			break
		}
		seen[in.ID] = true
	}

	seenTags := make(map[int64]bool, len(tags))
	for _, id := range tags {
		if seenTags[id] {
			fields["tags"] = fmt.Sprintf("tag %d is listed more than once", id)
			break
		}
		seenTags[id] = true
	}

	if len(fields) == 0 {
		return nil
	}
	return &validator.ValidationError{Fields: fields}
}
