package cart

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"foodgram/internal/domain/recipe"
	"foodgram/internal/pkg/reqctx"
	"foodgram/internal/pkg/response"
)

const contentTypeText = "text/plain; charset=utf-8"

type Handler struct {
	service  *Service
	filename string
}

func NewHandler(service *Service, filename string) *Handler {
	return &Handler{service: service, filename: filename}
}

// AddToCart godoc
// @Summary Add recipe to shopping cart
// @Tags Shopping cart
// @Security BearerAuth
// @Produce json
// @Param id path int true "Recipe ID"
// @Success 201 {object} response.Response{data=recipe.ShortResponse}
// @Failure 400 {object} response.Response "Already in cart"
// @Router /recipes/{id}/shopping_cart [post]
func (h *Handler) AddToCart(c *gin.Context) {
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

// RemoveFromCart godoc
// @Summary Remove recipe from shopping cart
// @Tags Shopping cart
// @Security BearerAuth
// @Param id path int true "Recipe ID"
// @Success 204
// @Failure 404 {object} response.Response "Not in cart"
// @Router /recipes/{id}/shopping_cart [delete]
func (h *Handler) RemoveFromCart(c *gin.Context) {
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

// DownloadShoppingCart godoc
// @Summary Download shopping list
// @Description Ingredients of every recipe in the cart, summed per name and unit.
// @Tags Shopping cart
// @Security BearerAuth
// @Produce plain
// @Success 200 {string} string "name (unit) — total lines"
// @Failure 401 {object} response.Response
// @Router /recipes/download_shopping_cart [get]
func (h *Handler) DownloadShoppingCart(c *gin.Context) {
	body, err := h.service.Export(c.Request.Context(), reqctx.FromGin(c))
	if err != nil {
		response.CustomError(c, http.StatusInternalServerError, "INTERNAL_ERROR", err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", h.filename))
	c.Data(http.StatusOK, contentTypeText, body)
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, recipe.ErrRecipeNotFound):
		response.CustomError(c, http.StatusNotFound, "RECIPE_NOT_FOUND", "Recipe not found")
	case errors.Is(err, ErrAlreadyInCart):
		response.CustomError(c, http.StatusBadRequest, "ALREADY_IN_CART", "Recipe is already in the shopping cart")
	case errors.Is(err, ErrNotInCart):
		response.CustomError(c, http.StatusNotFound, "NOT_IN_CART", "Recipe is not in the shopping cart")
	default:
		response.CustomError(c, http.StatusInternalServerError, "INTERNAL_ERROR", err)
	}
}
