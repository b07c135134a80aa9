package subscription

import (
	"net/http"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"foodgram/internal/domain"
	"foodgram/internal/domain/recipe"
	"foodgram/internal/domain/user"
	"foodgram/internal/pkg/pagination"
	"foodgram/internal/testutil"
)

func setupTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	db := testutil.NewDB(t)
	svc := NewService(NewRepository(db), user.NewRepository(db), recipe.NewRepository(db))
	h := NewHandler(svc, pagination.New(6, 100))

	r := testutil.NewRouter(func(v1 *gin.RouterGroup) {
		_, protected, _ := testutil.Groups(v1)
		RegisterProtectedRoutes(protected, h)
	})
	return r, db
}

func subscribePath(id int64) string {
	return "/api/v1/users/" + strconv.FormatInt(id, 10) + "/subscribe"
}

func TestSubscribe_Self(t *testing.T) {
	r, db := setupTestRouter(t)
	alice := testutil.CreateUser(t, db, "alice")

	for i := 0; i < 2; i++ {
		rr := testutil.Do(t, r, http.MethodPost, subscribePath(alice.ID), nil, alice)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "SELF_SUBSCRIPTION", testutil.Decode(t, rr, nil).Error.Code)
	}

	var n int64
	require.NoError(t, db.Model(&domain.Subscribe{}).Count(&n).Error)
	assert.Zero(t, n)
}

func TestSubscribeToggle(t *testing.T) {
	r, db := setupTestRouter(t)
	alice := testutil.CreateUser(t, db, "alice")
	bob := testutil.CreateUser(t, db, "bob")
	flour := testutil.CreateIngredient(t, db, "flour", "g")
	testutil.CreateRecipe(t, db, alice, "Bread", testutil.Amounts{flour.ID: 500})
	testutil.CreateRecipe(t, db, alice, "Pie", testutil.Amounts{flour.ID: 200})

	rr := testutil.Do(t, r, http.MethodPost, subscribePath(alice.ID)+"?recipes_limit=1", nil, bob)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	var got AuthorResponse
	testutil.Decode(t, rr, &got)
	assert.Equal(t, alice.ID, got.ID)
	assert.True(t, got.IsSubscribed)
	assert.Equal(t, int64(2), got.RecipesCount)
	require.Len(t, got.Recipes, 1)
	assert.Equal(t, "Pie", got.Recipes[0].Name)

	rr = testutil.Do(t, r, http.MethodPost, subscribePath(alice.ID), nil, bob)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "ALREADY_SUBSCRIBED", testutil.Decode(t, rr, nil).Error.Code)

	rr = testutil.Do(t, r, http.MethodDelete, subscribePath(alice.ID), nil, bob)
	assert.Equal(t, http.StatusNoContent, rr.Code)

	rr = testutil.Do(t, r, http.MethodDelete, subscribePath(alice.ID), nil, bob)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "NOT_SUBSCRIBED", testutil.Decode(t, rr, nil).Error.Code)
}

func TestSubscribe_UnknownAuthor(t *testing.T) {
	r, db := setupTestRouter(t)
	bob := testutil.CreateUser(t, db, "bob")

	rr := testutil.Do(t, r, http.MethodPost, subscribePath(9999), nil, bob)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "USER_NOT_FOUND", testutil.Decode(t, rr, nil).Error.Code)

	rr = testutil.Do(t, r, http.MethodPost, subscribePath(9999), nil, nil)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestListSubscriptions(t *testing.T) {
	r, db := setupTestRouter(t)
	alice := testutil.CreateUser(t, db, "alice")
	bob := testutil.CreateUser(t, db, "bob")
	carol := testutil.CreateUser(t, db, "carol")
	flour := testutil.CreateIngredient(t, db, "flour", "g")
	for _, name := range []string{"A1", "A2", "A3"} {
		testutil.CreateRecipe(t, db, alice, name, testutil.Amounts{flour.ID: 1})
	}
	testutil.Subscribe(t, db, carol, alice)
	testutil.Subscribe(t, db, carol, bob)

	rr := testutil.Do(t, r, http.MethodGet, "/api/v1/users/subscriptions?recipes_limit=2", nil, carol)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var page pagination.Page[AuthorResponse]
	testutil.Decode(t, rr, &page)
	assert.Equal(t, int64(2), page.Count)
	require.Len(t, page.Results, 2)

	byName := map[string]AuthorResponse{}
	for _, a := range page.Results {
		byName[a.Username] = a
	}
	assert.Equal(t, int64(3), byName["alice"].RecipesCount)
	require.Len(t, byName["alice"].Recipes, 2)
	assert.Equal(t, "A3", byName["alice"].Recipes[0].Name)
	assert.Equal(t, int64(0), byName["bob"].RecipesCount)
	assert.NotNil(t, byName["bob"].Recipes)

	rr = testutil.Do(t, r, http.MethodGet, "/api/v1/users/subscriptions?recipes_limit=-1", nil, carol)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = testutil.Do(t, r, http.MethodGet, "/api/v1/users/subscriptions", nil, alice)
	testutil.Decode(t, rr, &page)
	assert.Zero(t, page.Count)
	assert.Empty(t, page.Results)
}
