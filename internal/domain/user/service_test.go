package user

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"foodgram/internal/domain"
	"foodgram/internal/pkg/pagination"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) List(ctx context.Context, p pagination.Params) ([]domain.User, int64, error) {
	args := m.Called(ctx, p)
	return args.Get(0).([]domain.User), args.Get(1).(int64), args.Error(2)
}

func (m *MockRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockRepository) EmailTaken(ctx context.Context, email string, exceptID int64) (bool, error) {
	args := m.Called(ctx, email, exceptID)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepository) UsernameTaken(ctx context.Context, username string, exceptID int64) (bool, error) {
	args := m.Called(ctx, username, exceptID)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepository) Create(ctx context.Context, u *domain.User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *MockRepository) UpdateProfile(ctx context.Context, u *domain.User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *MockRepository) UpdatePassword(ctx context.Context, id int64, hash string) error {
	return m.Called(ctx, id, hash).Error(0)
}

func (m *MockRepository) UpdateRole(ctx context.Context, id int64, role domain.UserRole) error {
	return m.Called(ctx, id, role).Error(0)
}

func (m *MockRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockRepository) SubscribedTo(ctx context.Context, followerID int64, authorIDs []int64) (map[int64]bool, error) {
	args := m.Called(ctx, followerID, authorIDs)
	return args.Get(0).(map[int64]bool), args.Error(1)
}

func adminRequest() RegisterRequest {
	return RegisterRequest{
		Email:     "chef@example.com",
		Username:  "chef",
		FirstName: "Head",
		LastName:  "Chef",
		Password:  "s3cret-pass",
	}
}

func TestService_CreateAdmin_LookupFailureStops(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo)
	dbErr := errors.New("connection refused")

	repo.On("GetByEmail", mock.Anything, "chef@example.com").Return(nil, dbErr)

	_, err := svc.CreateAdmin(context.Background(), adminRequest())
	assert.ErrorIs(t, err, dbErr)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "UpdateRole", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_CreateAdmin_PromotesExisting(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo)

	existing := &domain.User{ID: 7, Email: "chef@example.com", Role: domain.RoleUser}
	repo.On("GetByEmail", mock.Anything, "chef@example.com").Return(existing, nil)
	repo.On("UpdateRole", mock.Anything, int64(7), domain.RoleAdmin).Return(nil)

	u, err := svc.CreateAdmin(context.Background(), adminRequest())
	assert.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, u.Role)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_CreateAdmin_RegistersWhenMissing(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo)

	repo.On("GetByEmail", mock.Anything, "chef@example.com").Return(nil, ErrUserNotFound)
	repo.On("EmailTaken", mock.Anything, "chef@example.com", int64(0)).Return(false, nil)
	repo.On("UsernameTaken", mock.Anything, "chef", int64(0)).Return(false, nil)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.User")).
		Run(func(args mock.Arguments) { args.Get(1).(*domain.User).ID = 3 }).
		Return(nil)
	repo.On("UpdateRole", mock.Anything, int64(3), domain.RoleAdmin).Return(nil)

	u, err := svc.CreateAdmin(context.Background(), adminRequest())
	assert.NoError(t, err)
	assert.Equal(t, int64(3), u.ID)
	assert.Equal(t, domain.RoleAdmin, u.Role)
	repo.AssertExpectations(t)
}
