package subscription

import "github.com/gin-gonic/gin"

func RegisterProtectedRoutes(r *gin.RouterGroup, h *Handler) {
	r.GET("/users/subscriptions", h.ListSubscriptions)
	r.POST("/users/:id/subscribe", h.Subscribe)
	r.DELETE("/users/:id/subscribe", h.Unsubscribe)
}
