package subscription

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"foodgram/internal/domain/user"
	"foodgram/internal/pkg/pagination"
	"foodgram/internal/pkg/reqctx"
	"foodgram/internal/pkg/response"
)

type Handler struct {
	service   *Service
	paginator pagination.Paginator
}

func NewHandler(service *Service, paginator pagination.Paginator) *Handler {
	return &Handler{service: service, paginator: paginator}
}

// ListSubscriptions godoc
// @Summary Authors the current user follows
// @Tags Subscriptions
// @Security BearerAuth
// @Produce json
// @Param recipes_limit query int false "Max recipes per author"
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} response.Response{data=pagination.Page[AuthorResponse]}
// @Router /users/subscriptions [get]
func (h *Handler) ListSubscriptions(c *gin.Context) {
	limit, ok := parseRecipesLimit(c)
	if !ok {
		return
	}
	page, err := h.service.List(c.Request.Context(), reqctx.FromGin(c), h.paginator.FromGin(c), limit)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, page)
}

// Subscribe godoc
// @Summary Follow an author
// @Tags Subscriptions
// @Security BearerAuth
// @Produce json
// @Param id path int true "Author ID"
// @Param recipes_limit query int false "Max recipes in the response"
// @Success 201 {object} response.Response{data=AuthorResponse}
// @Failure 400 {object} response.Response "Self or duplicate subscription"
// @Failure 404 {object} response.Response
// @Router /users/{id}/subscribe [post]
func (h *Handler) Subscribe(c *gin.Context) {
	authorID, ok := user.ParseID(c)
	if !ok {
		return
	}
	limit, ok := parseRecipesLimit(c)
	if !ok {
		return
	}
	author, err := h.service.Subscribe(c.Request.Context(), reqctx.FromGin(c), authorID, limit)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, author)
}

// Unsubscribe godoc
// @Summary Unfollow an author
// @Tags Subscriptions
// @Security BearerAuth
// @Param id path int true "Author ID"
// @Success 204
// @Failure 404 {object} response.Response
// @Router /users/{id}/subscribe [delete]
func (h *Handler) Unsubscribe(c *gin.Context) {
	authorID, ok := user.ParseID(c)
	if !ok {
		return
	}
	if err := h.service.Unsubscribe(c.Request.Context(), reqctx.FromGin(c), authorID); err != nil {
		h.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// parseRecipesLimit returns -1 when recipes_limit is absent.
func parseRecipesLimit(c *gin.Context) (int, bool) {
	raw := c.Query("recipes_limit")
	if raw == "" {
		return -1, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		response.CustomError(c, http.StatusBadRequest, "VALIDATION_ERROR", map[string]string{"recipes_limit": "must be a non-negative integer"})
		return 0, false
	}
	return n, true
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrSelfSubscription):
		response.CustomError(c, http.StatusBadRequest, "SELF_SUBSCRIPTION", "You cannot subscribe to yourself")
	case errors.Is(err, ErrAlreadySubscribed):
		response.CustomError(c, http.StatusBadRequest, "ALREADY_SUBSCRIBED", "You are already subscribed to this author")
	case errors.Is(err, ErrNotSubscribed):
		response.CustomError(c, http.StatusNotFound, "NOT_SUBSCRIBED", "You are not subscribed to this author")
	case errors.Is(err, user.ErrUserNotFound):
		response.CustomError(c, http.StatusNotFound, "USER_NOT_FOUND", "User not found")
	default:
		response.CustomError(c, http.StatusInternalServerError, "INTERNAL_ERROR", err)
	}
}
