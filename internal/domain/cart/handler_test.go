package cart

import (
	"net/http"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"foodgram/internal/domain/recipe"
	"foodgram/internal/testutil"
)

const downloadPath = "/api/v1/recipes/download_shopping_cart"

func setupTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	db := testutil.NewDB(t)
	h := NewHandler(NewService(NewRepository(db), recipe.NewRepository(db)), "foodgram_shopping_cart.txt")

	r := testutil.NewRouter(func(v1 *gin.RouterGroup) {
		_, protected, _ := testutil.Groups(v1)
		RegisterProtectedRoutes(protected, h)
	})
	return r, db
}

func cartPath(id int64) string {
	return "/api/v1/recipes/" + strconv.FormatInt(id, 10) + "/shopping_cart"
}

func TestDownload_SumsAcrossRecipes(t *testing.T) {
	r, db := setupTestRouter(t)
	cook := testutil.CreateUser(t, db, "cook")
	flour := testutil.CreateIngredient(t, db, "flour", "g")
	salt := testutil.CreateIngredient(t, db, "salt", "g")
	x := testutil.CreateRecipe(t, db, cook, "X", testutil.Amounts{flour.ID: 2})
	y := testutil.CreateRecipe(t, db, cook, "Y", testutil.Amounts{flour.ID: 3, salt.ID: 1})
	testutil.AddToCart(t, db, cook, x)
	testutil.AddToCart(t, db, cook, y)

	rr := testutil.Do(t, r, http.MethodGet, downloadPath, nil, cook)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "text/plain; charset=utf-8", rr.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="foodgram_shopping_cart.txt"`, rr.Header().Get("Content-Disposition"))
	assert.Equal(t, "flour (g) — 5\nsalt (g) — 1", rr.Body.String())
}

func TestDownload_SameNameDifferentUnitStaysSeparate(t *testing.T) {
	r, db := setupTestRouter(t)
	cook := testutil.CreateUser(t, db, "cook")
	sugarG := testutil.CreateIngredient(t, db, "sugar", "g")
	sugarSpoon := testutil.CreateIngredient(t, db, "sugar", "tbsp")
	milk := testutil.CreateIngredient(t, db, "milk", "ml")
	cake := testutil.CreateRecipe(t, db, cook, "Cake", testutil.Amounts{sugarG.ID: 100, sugarSpoon.ID: 2, milk.ID: 100})
	testutil.AddToCart(t, db, cook, cake)

	rr := testutil.Do(t, r, http.MethodGet, downloadPath, nil, cook)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "milk (ml) — 100\nsugar (g) — 100\nsugar (tbsp) — 2", rr.Body.String())
}

func TestDownload_Idempotent(t *testing.T) {
	r, db := setupTestRouter(t)
	cook := testutil.CreateUser(t, db, "cook")
	a := testutil.CreateIngredient(t, db, "apples", "pcs")
	b := testutil.CreateIngredient(t, db, "butter", "g")
	c := testutil.CreateIngredient(t, db, "cinnamon", "tsp")
	pie := testutil.CreateRecipe(t, db, cook, "Pie", testutil.Amounts{a.ID: 4, b.ID: 4, c.ID: 4})
	testutil.AddToCart(t, db, cook, pie)

	first := testutil.Do(t, r, http.MethodGet, downloadPath, nil, cook).Body.Bytes()
	second := testutil.Do(t, r, http.MethodGet, downloadPath, nil, cook).Body.Bytes()
	assert.Equal(t, first, second)
	assert.Equal(t, "apples (pcs) — 4\nbutter (g) — 4\ncinnamon (tsp) — 4", string(first))
}

func TestDownload_EmptyCart(t *testing.T) {
	r, db := setupTestRouter(t)
	cook := testutil.CreateUser(t, db, "cook")

	rr := testutil.Do(t, r, http.MethodGet, downloadPath, nil, cook)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Zero(t, rr.Body.Len())
}

func TestDownload_OnlyOwnCart(t *testing.T) {
	r, db := setupTestRouter(t)
	alice := testutil.CreateUser(t, db, "alice")
	bob := testutil.CreateUser(t, db, "bob")
	flour := testutil.CreateIngredient(t, db, "flour", "g")
	bread := testutil.CreateRecipe(t, db, alice, "Bread", testutil.Amounts{flour.ID: 500})
	testutil.AddToCart(t, db, alice, bread)

	rr := testutil.Do(t, r, http.MethodGet, downloadPath, nil, bob)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Empty(t, rr.Body.String())
}

func TestDownload_Unauthenticated(t *testing.T) {
	r, _ := setupTestRouter(t)

	rr := testutil.Do(t, r, http.MethodGet, downloadPath, nil, nil)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestCartToggle(t *testing.T) {
	r, db := setupTestRouter(t)
	cook := testutil.CreateUser(t, db, "cook")
	flour := testutil.CreateIngredient(t, db, "flour", "g")
	bread := testutil.CreateRecipe(t, db, cook, "Bread", testutil.Amounts{flour.ID: 500})

	rr := testutil.Do(t, r, http.MethodPost, cartPath(bread.ID), nil, cook)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	rr = testutil.Do(t, r, http.MethodPost, cartPath(bread.ID), nil, cook)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "ALREADY_IN_CART", testutil.Decode(t, rr, nil).Error.Code)

	assert.Equal(t, "flour (g) — 500", testutil.Do(t, r, http.MethodGet, downloadPath, nil, cook).Body.String())

	rr = testutil.Do(t, r, http.MethodDelete, cartPath(bread.ID), nil, cook)
	assert.Equal(t, http.StatusNoContent, rr.Code)

	rr = testutil.Do(t, r, http.MethodDelete, cartPath(bread.ID), nil, cook)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "NOT_IN_CART", testutil.Decode(t, rr, nil).Error.Code)

	rr = testutil.Do(t, r, http.MethodPost, cartPath(9999), nil, cook)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
