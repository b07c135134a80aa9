package user

import (
	"context"
	"errors"
	"strings"

	"foodgram/internal/domain"
	"foodgram/internal/logging"
	"foodgram/internal/pkg/pagination"
	"foodgram/internal/pkg/reqctx"
	"foodgram/internal/pkg/validator"
)

// reservedUsername collides with the /users/me route.
const reservedUsername = "me"

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Register(ctx context.Context, req RegisterRequest) (*domain.User, error) {
	req.Email = strings.TrimSpace(req.Email)
	req.Username = strings.TrimSpace(req.Username)
	req.FirstName = strings.TrimSpace(req.FirstName)
	req.LastName = strings.TrimSpace(req.LastName)
	if err := validator.Check(&req); err != nil {
		return nil, err
	}
	if strings.EqualFold(req.Username, reservedUsername) {
		return nil, ErrReservedUsername
	}
	if err := s.ensureAvailable(ctx, req.Email, req.Username, 0); err != nil {
		return nil, err
	}

	hash, err := HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	u := &domain.User{
		Email:        req.Email,
		Username:     req.Username,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		PasswordHash: hash,
		Role:         domain.RoleUser,
	}
	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}

	logging.Ctx(ctx).Info().Int64("user_id", u.ID).Str("username", u.Username).Msg("user registered")
	return u, nil
}

// CreateAdmin registers an account with role=admin, or promotes the account
// that already owns email.
func (s *Service) CreateAdmin(ctx context.Context, req RegisterRequest) (*domain.User, error) {
	existing, err := s.repo.GetByEmail(ctx, strings.TrimSpace(req.Email))
	switch {
	case err == nil:
		if err := s.repo.UpdateRole(ctx, existing.ID, domain.RoleAdmin); err != nil {
			return nil, err
		}
		existing.Role = domain.RoleAdmin
		return existing, nil
	case !errors.Is(err, ErrUserNotFound):
		return nil, err
	}

	u, err := s.Register(ctx, req)
	if err != nil {
		return nil, err
	}
	if err := s.repo.UpdateRole(ctx, u.ID, domain.RoleAdmin); err != nil {
		return nil, err
	}
	u.Role = domain.RoleAdmin
	return u, nil
}

func (s *Service) List(ctx context.Context, actor reqctx.Actor, p pagination.Params) (pagination.Page[UserResponse], error) {
	users, total, err := s.repo.List(ctx, p)
	if err != nil {
		return pagination.Page[UserResponse]{}, err
	}

	items, err := s.Annotate(ctx, actor, users)
	if err != nil {
		return pagination.Page[UserResponse]{}, err
	}
	return pagination.NewPage(items, total, p), nil
}

func (s *Service) Get(ctx context.Context, actor reqctx.Actor, id int64) (UserResponse, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return UserResponse{}, err
	}
	items, err := s.Annotate(ctx, actor, []domain.User{*u})
	if err != nil {
		return UserResponse{}, err
	}
	return items[0], nil
}

// Annotate converts users to responses with is_subscribed computed for actor.
func (s *Service) Annotate(ctx context.Context, actor reqctx.Actor, users []domain.User) ([]UserResponse, error) {
	ids := make([]int64, 0, len(users))
	for _, u := range users {
		ids = append(ids, u.ID)
	}

	subscribed, err := s.repo.SubscribedTo(ctx, actor.UserID, ids)
	if err != nil {
		return nil, err
	}

	out := make([]UserResponse, 0, len(users))
	for i := range users {
		out = append(out, ToUserResponse(&users[i], subscribed[users[i].ID]))
	}
	return out, nil
}

func (s *Service) UpdateMe(ctx context.Context, actor reqctx.Actor, req UpdateMeRequest) (UserResponse, error) {
	req.normalize()
	if err := validator.Check(&req); err != nil {
		return UserResponse{}, err
	}

	u, err := s.repo.GetByID(ctx, actor.UserID)
	if err != nil {
		return UserResponse{}, err
	}

	email, username := u.Email, u.Username
	if req.Email != nil {
		email = *req.Email
	}
	if req.Username != nil {
		username = *req.Username
		if strings.EqualFold(username, reservedUsername) {
			return UserResponse{}, ErrReservedUsername
		}
	}
	if err := s.ensureAvailable(ctx, email, username, u.ID); err != nil {
		return UserResponse{}, err
	}

	u.Email, u.Username = email, username
	if req.FirstName != nil {
		u.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		u.LastName = *req.LastName
	}

	if err := s.repo.UpdateProfile(ctx, u); err != nil {
		return UserResponse{}, err
	}
	return ToUserResponse(u, false), nil
}

func (s *Service) SetPassword(ctx context.Context, actor reqctx.Actor, req SetPasswordRequest) error {
	if err := validator.Check(&req); err != nil {
		return err
	}

	u, err := s.repo.GetByID(ctx, actor.UserID)
	if err != nil {
		return err
	}
	if err := CheckPassword(req.CurrentPassword, u.PasswordHash); err != nil {
		return err
	}
	if req.CurrentPassword == req.NewPassword {
		return ErrSamePassword
	}

	hash, err := HashPassword(req.NewPassword)
	if err != nil {
		return err
	}
	return s.repo.UpdatePassword(ctx, u.ID, hash)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	logging.Ctx(ctx).Info().Int64("user_id", id).Msg("user deleted")
	return nil
}

func (s *Service) ensureAvailable(ctx context.Context, email, username string, exceptID int64) error {
	taken, err := s.repo.EmailTaken(ctx, email, exceptID)
	if err != nil {
		return err
	}
	if taken {
		return ErrEmailExists
	}

	taken, err = s.repo.UsernameTaken(ctx, username, exceptID)
	if err != nil {
		return err
	}
	if taken {
		return ErrUsernameExists
	}
	return nil
}
