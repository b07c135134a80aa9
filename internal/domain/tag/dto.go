package tag

import (
	"strings"

	"foodgram/internal/domain"
)

type CreateTagRequest struct {
	Name  string `json:"name" validate:"required,max=200"`
	Color string `json:"color" validate:"required,hexcolor,len=7"`
	Slug  string `json:"slug" validate:"required,max=200,slug"`
}

type UpdateTagRequest struct {
	Name  *string `json:"name" validate:"omitnil,min=1,max=200"`
	Color *string `json:"color" validate:"omitnil,hexcolor,len=7"`
	Slug  *string `json:"slug" validate:"omitnil,max=200,slug"`
}

// normalize trims the fields that are present and uppercases the color.
func (r *UpdateTagRequest) normalize() {
	for _, s := range []*string{r.Name, r.Color, r.Slug} {
		if s != nil {
			*s = strings.TrimSpace(*s)
		}
	}
	if r.Color != nil {
		*r.Color = strings.ToUpper(*r.Color)
	}
}

type TagResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
	Slug  string `json:"slug"`
}

func ToTagResponse(t *domain.Tag) TagResponse {
	return TagResponse{ID: t.ID, Name: t.Name, Color: t.Color, Slug: t.Slug}
}

func ToTagListResponse(tags []domain.Tag) []TagResponse {
	out := make([]TagResponse, 0, len(tags))
	for i := range tags {
		out = append(out, ToTagResponse(&tags[i]))
	}
	return out
}
