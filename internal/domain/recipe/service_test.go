package recipe

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"foodgram/internal/domain"
	"foodgram/internal/pkg/pagination"
	"foodgram/internal/pkg/reqctx"
	"foodgram/internal/pkg/validator"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) List(ctx context.Context, scopes []func(*gorm.DB) *gorm.DB, p pagination.Params) ([]domain.Recipe, int64, error) {
	args := m.Called(ctx, scopes, p)
	return args.Get(0).([]domain.Recipe), args.Get(1).(int64), args.Error(2)
}

func (m *MockRepository) GetByID(ctx context.Context, id int64) (*domain.Recipe, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Recipe), args.Error(1)
}

func (m *MockRepository) GetShort(ctx context.Context, id int64) (*domain.Recipe, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Recipe), args.Error(1)
}

func (m *MockRepository) Create(ctx context.Context, r *domain.Recipe, ingredients []IngredientAmount, tagIDs []int64) error {
	return m.Called(ctx, r, ingredients, tagIDs).Error(0)
}

func (m *MockRepository) Update(ctx context.Context, r *domain.Recipe, ingredients []IngredientAmount, tagIDs []int64) error {
	return m.Called(ctx, r, ingredients, tagIDs).Error(0)
}

func (m *MockRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockRepository) Flags(ctx context.Context, userID int64, recipeIDs []int64) (map[int64]bool, map[int64]bool, error) {
	args := m.Called(ctx, userID, recipeIDs)
	return args.Get(0).(map[int64]bool), args.Get(1).(map[int64]bool), args.Error(2)
}

func (m *MockRepository) ListByAuthors(ctx context.Context, authorIDs []int64) ([]domain.Recipe, error) {
	args := m.Called(ctx, authorIDs)
	return args.Get(0).([]domain.Recipe), args.Error(1)
}

func (m *MockRepository) CountByAuthors(ctx context.Context, authorIDs []int64) (map[int64]int64, error) {
	args := m.Called(ctx, authorIDs)
	return args.Get(0).(map[int64]int64), args.Error(1)
}

type MockSubscriptions struct {
	mock.Mock
}

func (m *MockSubscriptions) SubscribedTo(ctx context.Context, followerID int64, authorIDs []int64) (map[int64]bool, error) {
	args := m.Called(ctx, followerID, authorIDs)
	return args.Get(0).(map[int64]bool), args.Error(1)
}

func TestService_Update_DuplicateIngredientRejectedBeforeWrite(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo, new(MockSubscriptions))
	repo.On("GetShort", mock.Anything, int64(3)).Return(&domain.Recipe{ID: 3, AuthorID: 7}, nil)

	req := UpdateRequest{
		Ingredients: []IngredientAmount{{ID: 1, Amount: 10}, {ID: 1, Amount: 20}},
		Tags:        []int64{1},
	}
	_, err := svc.Update(context.Background(), reqctx.Actor{UserID: 7}, 3, req)

	var verr *validator.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "ingredients")
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestService_Update_NotAuthor(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo, new(MockSubscriptions))
	repo.On("GetShort", mock.Anything, int64(3)).Return(&domain.Recipe{ID: 3, AuthorID: 1}, nil)

	req := UpdateRequest{Ingredients: []IngredientAmount{{ID: 1, Amount: 10}}, Tags: []int64{1}}
	_, err := svc.Update(context.Background(), reqctx.Actor{UserID: 7}, 3, req)

	assert.ErrorIs(t, err, ErrNotAuthor)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestService_Update_NotAuthorWithInvalidBody(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo, new(MockSubscriptions))
	repo.On("GetShort", mock.Anything, int64(3)).Return(&domain.Recipe{ID: 3, AuthorID: 1}, nil)

	_, err := svc.Update(context.Background(), reqctx.Actor{UserID: 7}, 3, UpdateRequest{})

	assert.ErrorIs(t, err, ErrNotAuthor)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestService_List_AnonymousFavoritesIsEmpty(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo, new(MockSubscriptions))

	page, err := svc.List(context.Background(), reqctx.Actor{}, ListRequest{
		IsFavorited: true,
		Page:        pagination.Params{Page: 1, Limit: 6},
	})
	require.NoError(t, err)
	assert.Zero(t, page.Count)
	assert.Empty(t, page.Results)
	repo.AssertNotCalled(t, "List", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateRequest_Validate(t *testing.T) {
	blank := "  "
	zero := 0
	req := UpdateRequest{
		Ingredients: []IngredientAmount{{ID: 1, Amount: 1}},
		Tags:        []int64{2, 2},
		Name:        &blank,
		CookingTime: &zero,
	}
	err := req.Validate()

	var verr *validator.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "tags")
	assert.Contains(t, verr.Fields, "name")
	assert.Contains(t, verr.Fields, "cooking_time")
}

func TestFilters(t *testing.T) {
	_, ok := Filters(ListRequest{IsInShoppingCart: true}, 0)
	assert.False(t, ok)

	scopes, ok := Filters(ListRequest{Author: 1, Tags: []string{"a"}, IsFavorited: true}, 5)
	assert.True(t, ok)
	assert.Len(t, scopes, 3)

	scopes, ok = Filters(ListRequest{}, 0)
	assert.True(t, ok)
	assert.Empty(t, scopes)
}
