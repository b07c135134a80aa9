package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMiddleware_CountsByRoute(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Middleware())
	r.GET("/recipes/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

	before := testutil.ToFloat64(HTTPRequests.WithLabelValues(http.MethodGet, "/recipes/:id", "200"))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/recipes/7", nil))

	after := testutil.ToFloat64(HTTPRequests.WithLabelValues(http.MethodGet, "/recipes/:id", "200"))
	assert.Equal(t, before+1, after)
}

func TestRecordShoppingListExport(t *testing.T) {
	before := testutil.ToFloat64(ShoppingListExports)
	RecordShoppingListExport(3)
	assert.Equal(t, before+1, testutil.ToFloat64(ShoppingListExports))
}

func TestHandler_ServesExposition(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/metrics", Handler())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "foodgram_shopping_list_exports_total")
}
