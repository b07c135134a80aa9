package ingredient

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"foodgram/internal/pkg/response"
	"foodgram/internal/pkg/validator"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// ListIngredients godoc
// @Summary List ingredients
// @Description Case-insensitive prefix search by name
// @Tags Ingredients
// @Produce json
// @Param name query string false "Name prefix"
// @Success 200 {object} response.Response{data=[]IngredientResponse}
// @Router /ingredients [get]
func (h *Handler) ListIngredients(c *gin.Context) {
	items, err := h.service.List(c.Request.Context(), c.Query("name"))
	if err != nil {
		response.CustomError(c, http.StatusInternalServerError, "INTERNAL_ERROR", err)
		return
	}
	response.Success(c, http.StatusOK, ToIngredientListResponse(items))
}

// GetIngredient godoc
// @Summary Get ingredient
// @Tags Ingredients
// @Produce json
// @Param id path int true "Ingredient ID"
// @Success 200 {object} response.Response{data=IngredientResponse}
// @Failure 404 {object} response.Response
// @Router /ingredients/{id} [get]
func (h *Handler) GetIngredient(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	i, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, ToIngredientResponse(i))
}

// CreateIngredient godoc
// @Summary Create ingredient
// @Tags Ingredients
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body CreateIngredientRequest true "Ingredient"
// @Success 201 {object} response.Response{data=IngredientResponse}
// @Failure 400 {object} response.Response
// @Router /ingredients [post]
func (h *Handler) CreateIngredient(c *gin.Context) {
	var req CreateIngredientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.CustomError(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}

	i, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, ToIngredientResponse(i))
}

// UpdateIngredient godoc
// @Summary Update ingredient
// @Tags Ingredients
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Ingredient ID"
// @Param request body UpdateIngredientRequest true "Fields to change"
// @Success 200 {object} response.Response{data=IngredientResponse}
// @Router /ingredients/{id} [patch]
func (h *Handler) UpdateIngredient(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UpdateIngredientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.CustomError(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}

	i, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, ToIngredientResponse(i))
}

// DeleteIngredient godoc
// @Summary Delete ingredient
// @Tags Ingredients
// @Security BearerAuth
// @Param id path int true "Ingredient ID"
// @Success 204
// @Router /ingredients/{id} [delete]
func (h *Handler) DeleteIngredient(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) writeError(c *gin.Context, err error) {
	var verr *validator.ValidationError
	switch {
	case errors.As(err, &verr):
		response.CustomError(c, http.StatusBadRequest, "VALIDATION_ERROR", verr.Fields)
	case errors.Is(err, ErrIngredientNotFound):
		response.CustomError(c, http.StatusNotFound, "INGREDIENT_NOT_FOUND", "Ingredient not found")
	case errors.Is(err, ErrDuplicateIngredient):
		response.CustomError(c, http.StatusBadRequest, "DUPLICATE_INGREDIENT", err.Error())
	default:
		response.CustomError(c, http.StatusInternalServerError, "INTERNAL_ERROR", err)
	}
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.CustomError(c, http.StatusBadRequest, "INVALID_ID", "Invalid ingredient ID")
		return 0, false
	}
	return id, true
}
