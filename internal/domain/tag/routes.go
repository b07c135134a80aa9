package tag

import "github.com/gin-gonic/gin"

func RegisterPublicRoutes(r *gin.RouterGroup, h *Handler) {
	r.GET("/tags", h.ListTags)
	r.GET("/tags/:id", h.GetTag)
}

func RegisterAdminRoutes(r *gin.RouterGroup, h *Handler) {
	r.POST("/tags", h.CreateTag)
	r.PATCH("/tags/:id", h.UpdateTag)
	r.DELETE("/tags/:id", h.DeleteTag)
}
