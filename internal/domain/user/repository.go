package user

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"foodgram/internal/database"
	"foodgram/internal/domain"
	"foodgram/internal/pkg/pagination"
)

type Repository interface {
	List(ctx context.Context, p pagination.Params) ([]domain.User, int64, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	EmailTaken(ctx context.Context, email string, exceptID int64) (bool, error)
	UsernameTaken(ctx context.Context, username string, exceptID int64) (bool, error)
	Create(ctx context.Context, u *domain.User) error
	UpdateProfile(ctx context.Context, u *domain.User) error
	UpdatePassword(ctx context.Context, id int64, hash string) error
	UpdateRole(ctx context.Context, id int64, role domain.UserRole) error
	Delete(ctx context.Context, id int64) error
	// SubscribedTo returns the subset of authorIDs that followerID follows.
	SubscribedTo(ctx context.Context, followerID int64, authorIDs []int64) (map[int64]bool, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) List(ctx context.Context, p pagination.Params) ([]domain.User, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&domain.User{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count users: %w", err)
	}

	var users []domain.User
	err := r.db.WithContext(ctx).
		Order("id ASC").
		Offset(p.Offset()).
		Limit(p.Limit).
		Find(&users).Error
	if err != nil {
		return nil, 0, fmt.Errorf("list users: %w", err)
	}
	return users, total, nil
}

func (r *repository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	var u domain.User
	err := r.db.WithContext(ctx).First(&u, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get user %d: %w", id, err)
	}
	return &u, nil
}

func (r *repository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var u domain.User
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	return &u, nil
}

func (r *repository) EmailTaken(ctx context.Context, email string, exceptID int64) (bool, error) {
	return r.taken(ctx, "LOWER(email) = LOWER(?)", email, exceptID)
}

func (r *repository) UsernameTaken(ctx context.Context, username string, exceptID int64) (bool, error) {
	return r.taken(ctx, "username = ?", username, exceptID)
}

func (r *repository) taken(ctx context.Context, cond string, value string, exceptID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.User{}).
		Where(cond, value).
		Where("id <> ?", exceptID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *repository) Create(ctx context.Context, u *domain.User) error {
	err := r.db.WithContext(ctx).Create(u).Error
	if database.IsUniqueViolation(err) {
		return ErrEmailExists
	}
	return err
}

func (r *repository) UpdateProfile(ctx context.Context, u *domain.User) error {
	err := r.db.WithContext(ctx).
		Model(&domain.User{ID: u.ID}).
		Updates(map[string]any{
			"email":      u.Email,
			"username":   u.Username,
			"first_name": u.FirstName,
			"last_name":  u.LastName,
		}).Error
	if database.IsUniqueViolation(err) {
		return ErrUsernameExists
	}
	return err
}

func (r *repository) UpdatePassword(ctx context.Context, id int64, hash string) error {
	res := r.db.WithContext(ctx).Model(&domain.User{ID: id}).Update("password_hash", hash)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *repository) UpdateRole(ctx context.Context, id int64, role domain.UserRole) error {
	return r.db.WithContext(ctx).Model(&domain.User{ID: id}).Update("role", role).Error
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		deleted, err := database.DeleteUser(tx, id)
		if err != nil {
			return err
		}
		if !deleted {
			return ErrUserNotFound
		}
		return nil
	})
}

func (r *repository) SubscribedTo(ctx context.Context, followerID int64, authorIDs []int64) (map[int64]bool, error) {
	out := make(map[int64]bool, len(authorIDs))
	if followerID == 0 || len(authorIDs) == 0 {
		return out, nil
	}

	var ids []int64
	err := r.db.WithContext(ctx).
		Model(&domain.Subscribe{}).
		Where("user_id = ? AND author_id IN ?", followerID, authorIDs).
		Pluck("author_id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("load subscriptions: %w", err)
	}
	for _, id := range ids {
		out[id] = true
	}
	return out, nil
}
