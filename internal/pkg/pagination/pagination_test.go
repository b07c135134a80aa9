package pagination

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func paramsFor(t *testing.T, p Paginator, query string) Params {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/recipes?"+query, nil)
	return p.FromGin(c)
}

func TestFromGin(t *testing.T) {
	p := New(6, 50)

	cases := []struct {
		query string
		want  Params
	}{
		{"", Params{Page: 1, Limit: 6}},
		{"page=3&limit=10", Params{Page: 3, Limit: 10}},
		{"page=0&limit=-4", Params{Page: 1, Limit: 6}},
		{"page=abc&limit=xyz", Params{Page: 1, Limit: 6}},
		{"limit=1000", Params{Page: 1, Limit: 50}},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, paramsFor(t, p, tc.query), tc.query)
	}
}

func TestOffset(t *testing.T) {
	assert.Equal(t, 0, Params{Page: 1, Limit: 6}.Offset())
	assert.Equal(t, 12, Params{Page: 3, Limit: 6}.Offset())
}

func TestNewPage_NilBecomesEmpty(t *testing.T) {
	page := NewPage[int](nil, 0, Params{Page: 1, Limit: 6})
	assert.NotNil(t, page.Results)
	assert.Empty(t, page.Results)
}
