package pagination

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// Params is the page window requested by the client.
type Params struct {
	Page  int
	Limit int
}

func (p Params) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Page is the paginated payload returned by list endpoints.
type Page[T any] struct {
	Count   int64 `json:"count"`
	Page    int   `json:"page"`
	Limit   int   `json:"limit"`
	Results []T   `json:"results"`
}

// Paginator parses page/limit query parameters with configured bounds.
type Paginator struct {
	DefaultLimit int
	MaxLimit     int
}

func New(defaultLimit, maxLimit int) Paginator {
	return Paginator{DefaultLimit: defaultLimit, MaxLimit: maxLimit}
}

func (p Paginator) FromGin(c *gin.Context) Params {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	limit, err := strconv.Atoi(c.Query("limit"))
	if err != nil || limit < 1 {
		limit = p.DefaultLimit
	}
	if p.MaxLimit > 0 && limit > p.MaxLimit {
		limit = p.MaxLimit
	}

	return Params{Page: page, Limit: limit}
}

func NewPage[T any](items []T, total int64, params Params) Page[T] {
	if items == nil {
		items = []T{}
	}
	return Page[T]{
		Count:   total,
		Page:    params.Page,
		Limit:   params.Limit,
		Results: items,
	}
}
