// Package reqctx carries the caller identity from the auth middleware to
// handlers and services as an explicit value.
package reqctx

import (
	"github.com/gin-gonic/gin"

	"foodgram/internal/domain"
)

const (
	KeyUserID = "user_id"
	KeyRole   = "role"
)

// Actor is the caller of a request. The zero value is an anonymous caller.
type Actor struct {
	UserID int64
	Role   domain.UserRole
}

func (a Actor) Authenticated() bool {
	return a.UserID > 0
}

func (a Actor) IsAdmin() bool {
	return a.Authenticated() && a.Role == domain.RoleAdmin
}

// FromGin reads the actor set by the auth middleware.
func FromGin(c *gin.Context) Actor {
	return Actor{
		UserID: c.GetInt64(KeyUserID),
		Role:   domain.UserRole(c.GetString(KeyRole)),
	}
}

// Set stores the actor on the gin context.
func Set(c *gin.Context, a Actor) {
	c.Set(KeyUserID, a.UserID)
	c.Set(KeyRole, string(a.Role))
}
