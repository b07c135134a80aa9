package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"foodgram/internal/domain"
	"foodgram/internal/pkg/jwt"
	"foodgram/internal/pkg/reqctx"
	"foodgram/internal/pkg/response"
)

// JWTAuth rejects requests without a valid bearer token.
func JWTAuth(j *jwt.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" {
			response.Abort(c, http.StatusUnauthorized, "AUTH_HEADER_MISSING", "Authorization header is required")
			return
		}
		authenticate(c, j, h)
	}
}

// OptionalJWTAuth lets anonymous requests through but still rejects a
// malformed or invalid token.
func OptionalJWTAuth(j *jwt.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" {
			c.Next()
			return
		}
		authenticate(c, j, h)
	}
}

func authenticate(c *gin.Context, j *jwt.Service, header string) {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		response.Abort(c, http.StatusUnauthorized, "INVALID_AUTH_FORMAT", "Authorization header must be 'Bearer <token>'")
		return
	}

	tokenStr := strings.TrimSpace(parts[1])
	if tokenStr == "" {
		response.Abort(c, http.StatusUnauthorized, "INVALID_TOKEN", "Empty token")
		return
	}

	claims, err := j.ValidateToken(tokenStr)
	if err != nil {
		response.Abort(c, http.StatusUnauthorized, "INVALID_TOKEN", "Invalid or expired token")
		return
	}

	role := domain.UserRole(claims.Role)
	if role == "" {
		role = domain.RoleUser
	}
	reqctx.Set(c, reqctx.Actor{UserID: claims.UserID, Role: role})

	c.Next()
}
