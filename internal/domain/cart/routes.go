package cart

import "github.com/gin-gonic/gin"

func RegisterProtectedRoutes(r *gin.RouterGroup, h *Handler) {
	r.GET("/recipes/download_shopping_cart", h.DownloadShoppingCart)
	r.POST("/recipes/:id/shopping_cart", h.AddToCart)
	r.DELETE("/recipes/:id/shopping_cart", h.RemoveFromCart)
}
