package recipe

import (
	"time"

	"foodgram/internal/domain"
	"foodgram/internal/domain/user"
	"foodgram/internal/pkg/pagination"
)

// IngredientAmount is one ingredient line of a create/update request.
type IngredientAmount struct {
	ID     int64 `json:"id" validate:"gt=0"`
	Amount int   `json:"amount" validate:"gte=1,lte=2000"`
}

// ListRequest carries the recipe list filters parsed from the query string.
type ListRequest struct {
	Author           int64
	Tags             []string
	IsFavorited      bool
	IsInShoppingCart bool
	Page             pagination.Params
}

type CreateRequest struct {
	Ingredients []IngredientAmount `json:"ingredients" validate:"required,min=1,dive"`
	Tags        []int64            `json:"tags" validate:"required,min=1,dive,gt=0"`
	Image       string             `json:"image" validate:"required"`
	Name        string             `json:"name" validate:"required,max=200"`
	Text        string             `json:"text" validate:"required"`
	CookingTime int                `json:"cooking_time" validate:"gte=1,lte=200"`
}

// UpdateRequest replaces ingredients and tags; scalar fields are optional.
type UpdateRequest struct {
	Ingredients []IngredientAmount `json:"ingredients" validate:"required,min=1,dive"`
	Tags        []int64            `json:"tags" validate:"required,min=1,dive,gt=0"`
	Image       *string            `json:"image" validate:"omitnil,min=1"`
	Name        *string            `json:"name" validate:"omitnil,min=1,max=200"`
	Text        *string            `json:"text" validate:"omitnil,min=1"`
	CookingTime *int               `json:"cooking_time" validate:"omitnil,gte=1,lte=200"`
}

type TagResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
	Slug  string `json:"slug"`
}

type IngredientResponse struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	MeasurementUnit string `json:"measurement_unit"`
	Amount          int    `json:"amount"`
}

type RecipeResponse struct {
	ID               int64                `json:"id"`
	Tags             []TagResponse        `json:"tags"`
	Author           user.UserResponse    `json:"author"`
	Ingredients      []IngredientResponse `json:"ingredients"`
	IsFavorited      bool                 `json:"is_favorited"`
	IsInShoppingCart bool                 `json:"is_in_shopping_cart"`
	Name             string               `json:"name"`
	Image            string               `json:"image"`
	Text             string               `json:"text"`
	CookingTime      int                  `json:"cooking_time"`
	PubDate          time.Time            `json:"pub_date"`
}

// ShortResponse is the compact form used by favorites, the cart and
// subscriptions.
type ShortResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Image       string `json:"image"`
	CookingTime int    `json:"cooking_time"`
}

func ToShortResponse(r *domain.Recipe) ShortResponse {
	return ShortResponse{
		ID:          r.ID,
		Name:        r.Name,
		Image:       r.Image,
		CookingTime: r.CookingTime,
	}
}

func ToShortListResponse(recipes []domain.Recipe) []ShortResponse {
	out := make([]ShortResponse, 0, len(recipes))
	for i := range recipes {
		out = append(out, ToShortResponse(&recipes[i]))
	}
	return out
}

// flags are the per-viewer annotations of a recipe.
type flags struct {
	favorited    bool
	inCart       bool
	isSubscribed bool
}

func toRecipeResponse(r *domain.Recipe, f flags) RecipeResponse {
	resp := RecipeResponse{
		ID:               r.ID,
		Tags:             make([]TagResponse, 0, len(r.Tags)),
		Ingredients:      make([]IngredientResponse, 0, len(r.Ingredients)),
		IsFavorited:      f.favorited,
		IsInShoppingCart: f.inCart,
		Name:             r.Name,
		Image:            r.Image,
		Text:             r.Text,
		CookingTime:      r.CookingTime,
		PubDate:          r.CreatedAt,
	}
	if r.Author != nil {
		resp.Author = user.ToUserResponse(r.Author, f.isSubscribed)
	}
	for _, t := range r.Tags {
		resp.Tags = append(resp.Tags, TagResponse{ID: t.ID, Name: t.Name, Color: t.Color, Slug: t.Slug})
	}
	for _, ir := range r.Ingredients {
		item := IngredientResponse{ID: ir.IngredientID, Amount: ir.Amount}
		if ir.Ingredient != nil {
			item.Name = ir.Ingredient.Name
			item.MeasurementUnit = ir.Ingredient.MeasurementUnit
		}
		resp.Ingredients = append(resp.Ingredients, item)
	}
	return resp
}
