package user

import "github.com/gin-gonic/gin"

func RegisterPublicRoutes(r *gin.RouterGroup, h *Handler) {
	r.GET("/users", h.ListUsers)
	r.POST("/users", h.Register)
	r.GET("/users/:id", h.GetUser)
}

func RegisterProtectedRoutes(r *gin.RouterGroup, h *Handler) {
	r.GET("/users/me", h.GetMe)
	r.PATCH("/users/me", h.UpdateMe)
	r.POST("/users/set_password", h.SetPassword)
}

func RegisterAdminRoutes(r *gin.RouterGroup, h *Handler) {
	r.DELETE("/users/:id", h.DeleteUser)
}
