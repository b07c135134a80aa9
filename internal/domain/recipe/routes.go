package recipe

import "github.com/gin-gonic/gin"

func RegisterPublicRoutes(r *gin.RouterGroup, h *Handler) {
	r.GET("/recipes", h.ListRecipes)
	r.GET("/recipes/:id", h.GetRecipe)
}

func RegisterProtectedRoutes(r *gin.RouterGroup, h *Handler) {
	r.POST("/recipes", h.CreateRecipe)
	r.PATCH("/recipes/:id", h.UpdateRecipe)
	r.DELETE("/recipes/:id", h.DeleteRecipe)
}
