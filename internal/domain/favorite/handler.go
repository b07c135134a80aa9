package favorite

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"foodgram/internal/domain/recipe"
	"foodgram/internal/pkg/reqctx"
	"foodgram/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// AddFavorite godoc
// @Summary Add recipe to favorites
// @Tags Favorites
// @Security BearerAuth
// @Produce json
// @Param id path int true "Recipe ID"
// @Success 201 {object} response.Response{data=recipe.ShortResponse}
// @Failure 400 {object} response.Response "Already in favorites"
// @Failure 404 {object} response.Response "Recipe not found"
// @Router /recipes/{id}/favorite [post]
func (h *Handler) AddFavorite(c *gin.Context) {
	id, ok := recipe.ParseID(c)
	if !ok {
		return
	}
	short, err := h.service.Add(c.Request.Context(), reqctx.FromGin(c), id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, short)
}

// RemoveFavorite godoc
// @Summary Remove recipe from favorites
// @Tags Favorites
// @Security BearerAuth
// @Param id path int true "Recipe ID"
// @Success 204
// @Failure 404 {object} response.Response "Not in favorites"
// @Router /recipes/{id}/favorite [delete]
func (h *Handler) RemoveFavorite(c *gin.Context) {
	id, ok := recipe.ParseID(c)
	if !ok {
		return
	}
	if err := h.service.Remove(c.Request.Context(), reqctx.FromGin(c), id); err != nil {
		h.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, recipe.ErrRecipeNotFound):
		response.CustomError(c, http.StatusNotFound, "RECIPE_NOT_FOUND", "Recipe not found")
	case errors.Is(err, ErrAlreadyFavorited):
		response.CustomError(c, http.StatusBadRequest, "ALREADY_IN_FAVORITES", "Recipe is already in favorites")
	case errors.Is(err, ErrNotFavorited):
		response.CustomError(c, http.StatusNotFound, "NOT_IN_FAVORITES", "Recipe is not in favorites")
	default:
		response.CustomError(c, http.StatusInternalServerError, "INTERNAL_ERROR", err)
	}
}
