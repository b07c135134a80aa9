package tag

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

// ListTags godoc
// @Summary List tags
// @Tags Tags
// @Produce json
// @Success 200 {object} response.Response{data=[]TagResponse}
// @Router /tags [get]
func (h *Handler) ListTags(c *gin.Context) {
	tags, err := h.service.List(c.Request.Context())
	if err != nil {
		response.CustomError(c, http.StatusInternalServerError, "INTERNAL_ERROR", err)
		return
	}
	response.Success(c, http.StatusOK, ToTagListResponse(tags))
}

// GetTag godoc
// @Summary Get tag
// @Tags Tags
// @Produce json
// @Param id path int true "Tag ID"
// @Success 200 {object} response.Response{data=TagResponse}
// @Router /tags/{id} [get]
func (h *Handler) GetTag(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	t, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, ToTagResponse(t))
}

// CreateTag godoc
// @Summary Create tag
// @Tags Tags
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body CreateTagRequest true "Tag"
// @Success 201 {object} response.Response{data=TagResponse}
// @Router /tags [post]
func (h *Handler) CreateTag(c *gin.Context) {
	var req CreateTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.CustomError(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}
	t, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, ToTagResponse(t))
}

// UpdateTag godoc
// @Summary Update tag
// @Tags Tags
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Tag ID"
// @Param request body UpdateTagRequest true "Fields to change"
// @Success 200 {object} response.Response{data=TagResponse}
// @Router /tags/{id} [patch]
func (h *Handler) UpdateTag(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req UpdateTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.CustomError(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}
	t, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, ToTagResponse(t))
}

// DeleteTag godoc
// @Summary Delete tag
// @Tags Tags
// @Security BearerAuth
// @Param id path int true "Tag ID"
// @Success 204
// @Router /tags/{id} [delete]
func (h *Handler) DeleteTag(c *gin.Context) {
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
	case errors.Is(err, ErrTagNotFound):
		response.CustomError(c, http.StatusNotFound, "TAG_NOT_FOUND", "Tag not found")
	case errors.Is(err, ErrDuplicateTag):
		response.CustomError(c, http.StatusBadRequest, "DUPLICATE_TAG", err.Error())
	default:
		response.CustomError(c, http.StatusInternalServerError, "INTERNAL_ERROR", err)
	}
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.CustomError(c, http.StatusBadRequest, "INVALID_ID", "Invalid tag ID")
		return 0, false
	}
	return id, true
}
