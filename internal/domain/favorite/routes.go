package favorite

import "github.com/gin-gonic/gin"

func RegisterProtectedRoutes(r *gin.RouterGroup, h *Handler) {
	r.POST("/recipes/:id/favorite", h.AddFavorite)
	r.DELETE("/recipes/:id/favorite", h.RemoveFavorite)
}
