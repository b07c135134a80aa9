package ingredient

import "github.com/gin-gonic/gin"

// RegisterPublicRoutes registers read-only ingredient routes
func RegisterPublicRoutes(r *gin.RouterGroup, h *Handler) {
	r.GET("/ingredients", h.ListIngredients)
	r.GET("/ingredients/:id", h.GetIngredient)
}

// RegisterAdminRoutes registers routes that require role=admin
func RegisterAdminRoutes(r *gin.RouterGroup, h *Handler) {
	r.POST("/ingredients", h.CreateIngredient)
	r.PATCH("/ingredients/:id", h.UpdateIngredient)
	r.DELETE("/ingredients/:id", h.DeleteIngredient)
}
