package recipe

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"foodgram/internal/pkg/pagination"
	"foodgram/internal/pkg/reqctx"
	"foodgram/internal/pkg/response"
	"foodgram/internal/pkg/validator"
)

type Handler struct {
	service   *Service
	paginator pagination.Paginator
}

func NewHandler(service *Service, paginator pagination.Paginator) *Handler {
	return &Handler{service: service, paginator: paginator}
}

// ListRecipes godoc
// @Summary List recipes
// @Description Newest first. Filters combine with AND; tags match any of the given slugs.
// @Tags Recipes
// @Produce json
// @Param author query int false "Author user ID"
// @Param tags query []string false "Tag slugs" collectionFormat(multi)
// @Param is_favorited query string false "1 or true"
// @Param is_in_shopping_cart query string false "1 or true"
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} response.Response{data=pagination.Page[RecipeResponse]}
// @Router /recipes [get]
func (h *Handler) ListRecipes(c *gin.Context) {
	req, ok := h.parseListRequest(c)
	if !ok {
		return
	}

	page, err := h.service.List(c.Request.Context(), reqctx.FromGin(c), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, page)
}

// GetRecipe godoc
// @Summary Get recipe
// @Tags Recipes
// @Produce json
// @Param id path int true "Recipe ID"
// @Success 200 {object} response.Response{data=RecipeResponse}
// @Failure 404 {object} response.Response
// @Router /recipes/{id} [get]
func (h *Handler) GetRecipe(c *gin.Context) {
	id, ok := ParseID(c)
	if !ok {
		return
	}
	r, err := h.service.Get(c.Request.Context(), reqctx.FromGin(c), id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, r)
}

// CreateRecipe godoc
// @Summary Create recipe
// @Tags Recipes
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body CreateRequest true "Recipe"
// @Success 201 {object} response.Response{data=RecipeResponse}
// @Failure 400 {object} response.Response
// @Router /recipes [post]
func (h *Handler) CreateRecipe(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.CustomError(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}
	r, err := h.service.Create(c.Request.Context(), reqctx.FromGin(c), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, r)
}

// UpdateRecipe godoc
// @Summary Update recipe
// @Description Ingredients and tags are replaced as a whole.
// @Tags Recipes
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Recipe ID"
// @Param request body UpdateRequest true "Recipe"
// @Success 200 {object} response.Response{data=RecipeResponse}
// @Failure 403 {object} response.Response
// @Router /recipes/{id} [patch]
func (h *Handler) UpdateRecipe(c *gin.Context) {
	id, ok := ParseID(c)
	if !ok {
		return
	}
	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.CustomError(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}
	r, err := h.service.Update(c.Request.Context(), reqctx.FromGin(c), id, req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, r)
}

// DeleteRecipe godoc
// @Summary Delete recipe
// @Tags Recipes
// @Security BearerAuth
// @Param id path int true "Recipe ID"
// @Success 204
// @Router /recipes/{id} [delete]
func (h *Handler) DeleteRecipe(c *gin.Context) {
	id, ok := ParseID(c)
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), reqctx.FromGin(c), id); err != nil {
		h.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) parseListRequest(c *gin.Context) (ListRequest, bool) {
	req := ListRequest{
		Tags:             c.QueryArray("tags"),
		IsFavorited:      queryBool(c.Query("is_favorited")),
		IsInShoppingCart: queryBool(c.Query("is_in_shopping_cart")),
		Page:             h.paginator.FromGin(c),
	}
	if raw := c.Query("author"); raw != "" {
		author, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			response.CustomError(c, http.StatusBadRequest, "VALIDATION_ERROR", map[string]string{"author": "must be a user id"})
			return ListRequest{}, false
		}
		req.Author = author
	}
	return req, true
}

func queryBool(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true":
		return true
	}
	return false
}

func (h *Handler) writeError(c *gin.Context, err error) {
	var verr *validator.ValidationError
	switch {
	case errors.As(err, &verr):
		response.CustomError(c, http.StatusBadRequest, "VALIDATION_ERROR", verr.Fields)
	case errors.Is(err, ErrRecipeNotFound):
		response.CustomError(c, http.StatusNotFound, "RECIPE_NOT_FOUND", "Recipe not found")
	case errors.Is(err, ErrNotAuthor):
		response.CustomError(c, http.StatusForbidden, "FORBIDDEN", "Only the author can change this recipe")
	default:
		response.CustomError(c, http.StatusInternalServerError, "INTERNAL_ERROR", err)
	}
}

// ParseID reads the :id path parameter as a recipe id.
func ParseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.CustomError(c, http.StatusBadRequest, "INVALID_ID", "Invalid recipe ID")
		return 0, false
	}
	return id, true
}
