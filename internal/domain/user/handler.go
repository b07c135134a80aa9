package user

import (
	"errors"
	"net/http"
	"strconv"

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

// ListUsers godoc
// @Summary List users
// @Tags Users
// @Produce json
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} response.Response{data=pagination.Page[UserResponse]}
// @Router /users [get]
func (h *Handler) ListUsers(c *gin.Context) {
	page, err := h.service.List(c.Request.Context(), reqctx.FromGin(c), h.paginator.FromGin(c))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, page)
}

// GetUser godoc
// @Summary Get user profile
// @Tags Users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} response.Response{data=UserResponse}
// @Failure 404 {object} response.Response
// @Router /users/{id} [get]
func (h *Handler) GetUser(c *gin.Context) {
	id, ok := ParseID(c)
	if !ok {
		return
	}
	u, err := h.service.Get(c.Request.Context(), reqctx.FromGin(c), id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, u)
}

// GetMe godoc
// @Summary Current user
// @Tags Users
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response{data=UserResponse}
// @Router /users/me [get]
func (h *Handler) GetMe(c *gin.Context) {
	actor := reqctx.FromGin(c)
	u, err := h.service.Get(c.Request.Context(), actor, actor.UserID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, u)
}

// Register godoc
// @Summary Register user
// @Tags Users
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Account"
// @Success 201 {object} response.Response{data=UserResponse}
// @Failure 400 {object} response.Response
// @Router /users [post]
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.CustomError(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}
	u, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, ToUserResponse(u, false))
}

// UpdateMe godoc
// @Summary Update current user
// @Tags Users
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body UpdateMeRequest true "Fields to change"
// @Success 200 {object} response.Response{data=UserResponse}
// @Router /users/me [patch]
func (h *Handler) UpdateMe(c *gin.Context) {
	var req UpdateMeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.CustomError(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}
	u, err := h.service.UpdateMe(c.Request.Context(), reqctx.FromGin(c), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, u)
}

// SetPassword godoc
// @Summary Change password
// @Tags Users
// @Security BearerAuth
// @Accept json
// @Param request body SetPasswordRequest true "Passwords"
// @Success 204
// @Router /users/set_password [post]
func (h *Handler) SetPassword(c *gin.Context) {
	var req SetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.CustomError(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}
	if err := h.service.SetPassword(c.Request.Context(), reqctx.FromGin(c), req); err != nil {
		h.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteUser godoc
// @Summary Delete user with everything they own
// @Tags Users
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 204
// @Router /users/{id} [delete]
func (h *Handler) DeleteUser(c *gin.Context) {
	id, ok := ParseID(c)
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
	case errors.Is(err, ErrUserNotFound):
		response.CustomError(c, http.StatusNotFound, "USER_NOT_FOUND", "User not found")
	case errors.Is(err, ErrEmailExists):
		response.CustomError(c, http.StatusBadRequest, "EMAIL_EXISTS", "This email is already registered")
	case errors.Is(err, ErrUsernameExists):
		response.CustomError(c, http.StatusBadRequest, "USERNAME_EXISTS", "This username is already taken")
	case errors.Is(err, ErrReservedUsername):
		response.CustomError(c, http.StatusBadRequest, "VALIDATION_ERROR", map[string]string{"username": "this username is reserved"})
	case errors.Is(err, ErrInvalidPassword):
		response.CustomError(c, http.StatusBadRequest, "INVALID_PASSWORD", "Current password is incorrect")
	case errors.Is(err, ErrSamePassword):
		response.CustomError(c, http.StatusBadRequest, "SAME_PASSWORD", "New password must differ from the current one")
	default:
		response.CustomError(c, http.StatusInternalServerError, "INTERNAL_ERROR", err)
	}
}

// ParseID reads the :id path parameter as a user id.
func ParseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.CustomError(c, http.StatusBadRequest, "INVALID_ID", "Invalid user ID")
		return 0, false
	}
	return id, true
}
