package ingredient

import (
	"strings"

	"foodgram/internal/domain"
)

type CreateIngredientRequest struct {
	Name            string `json:"name" validate:"required,max=200"`
	MeasurementUnit string `json:"measurement_unit" validate:"required,max=200"`
}

type UpdateIngredientRequest struct {
	Name            *string `json:"name" validate:"omitnil,min=1,max=200"`
	MeasurementUnit *string `json:"measurement_unit" validate:"omitnil,min=1,max=200"`
}

// normalize trims the fields that are present so blank values fail min=1.
func (r *UpdateIngredientRequest) normalize() {
	for _, s := range []*string{r.Name, r.MeasurementUnit} {
		if s != nil {
			*s = strings.TrimSpace(*s)
		}
	}
}

// ImportItem is one entry of the ingredients JSON file.
type ImportItem struct {
	Name            string `json:"name"`
	MeasurementUnit string `json:"measurement_unit"`
}

type IngredientResponse struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	MeasurementUnit string `json:"measurement_unit"`
}

func ToIngredientResponse(i *domain.Ingredient) IngredientResponse {
	return IngredientResponse{
		ID:              i.ID,
		Name:            i.Name,
		MeasurementUnit: i.MeasurementUnit,
	}
}

func ToIngredientListResponse(items []domain.Ingredient) []IngredientResponse {
	out := make([]IngredientResponse, 0, len(items))
	for i := range items {
		out = append(out, ToIngredientResponse(&items[i]))
	}
	return out
}
