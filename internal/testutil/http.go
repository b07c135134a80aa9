package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"foodgram/internal/domain"
	"foodgram/internal/middleware"
	"foodgram/internal/pkg/jwt"
)

const testSecret = "test_secret_key_32_characters_min"

// JWT is the token service shared by routers built with NewRouter.
var JWT = jwt.New(testSecret, time.Hour)

// NewRouter returns a gin engine in test mode with the /api/v1 group passed
// to register.
func NewRouter(register func(v1 *gin.RouterGroup)) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.ErrorLogger())
	register(r.Group("/api/v1"))
	return r
}

// Token mints a bearer token for u.
func Token(t *testing.T, u *domain.User) string {
	t.Helper()
	if u == nil {
		return ""
	}
	token, err := JWT.GenerateToken(u.ID, string(u.Role))
	require.NoError(t, err)
	return token
}

// Do performs a JSON request as u (anonymous when u is nil).
func Do(t *testing.T, r http.Handler, method, path string, body any, u *domain.User) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body == nil {
		reader = bytes.NewReader(nil)
	} else {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if u != nil {
		req.Header.Set("Authorization", "Bearer "+Token(t, u))
	}

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

// Envelope is the decoded response envelope with raw data.
type Envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string            `json:"code"`
		Message string            `json:"message"`
		Details map[string]string `json:"details"`
	} `json:"error"`
}

// Decode parses the envelope and, when out is non-nil, its data.
func Decode(t *testing.T, rr *httptest.ResponseRecorder, out any) Envelope {
	t.Helper()
	var env Envelope
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &env), "body=%s", rr.Body.String())
	if out != nil && len(env.Data) > 0 {
		require.NoError(t, json.Unmarshal(env.Data, out))
	}
	return env
}

// Groups mirrors the API server's route groups: optional auth, required
// auth and admin only.
func Groups(v1 *gin.RouterGroup) (public, protected, admin *gin.RouterGroup) {
	public = v1.Group("", middleware.OptionalJWTAuth(JWT))
	protected = v1.Group("", middleware.JWTAuth(JWT))
	admin = v1.Group("", middleware.JWTAuth(JWT), middleware.AdminOnly())
	return public, protected, admin
}
