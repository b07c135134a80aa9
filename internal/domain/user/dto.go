package user

import (
	"strings"

	"foodgram/internal/domain"
)

type RegisterRequest struct {
	Email     string `json:"email" validate:"required,email,max=254"`
	Username  string `json:"username" validate:"required,max=150,username"`
	FirstName string `json:"first_name" validate:"required,max=150"`
	LastName  string `json:"last_name" validate:"required,max=150"`
	Password  string `json:"password" validate:"required,min=8,max=128"`
}

type UpdateMeRequest struct {
	Email     *string `json:"email" validate:"omitnil,email,max=254"`
	Username  *string `json:"username" validate:"omitnil,max=150,username"`
	FirstName *string `json:"first_name" validate:"omitnil,min=1,max=150"`
	LastName  *string `json:"last_name" validate:"omitnil,min=1,max=150"`
}

func (r *UpdateMeRequest) normalize() {
	for _, s := range []*string{r.Email, r.Username, r.FirstName, r.LastName} {
		if s != nil {
			*s = strings.TrimSpace(*s)
		}
	}
}

type SetPasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8,max=128"`
}

// UserResponse is the public user representation. IsSubscribed is relative
// to the caller and always false for anonymous callers.
type UserResponse struct {
	ID           int64  `json:"id"`
	Email        string `json:"email"`
	Username     string `json:"username"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	IsSubscribed bool   `json:"is_subscribed"`
}

func ToUserResponse(u *domain.User, isSubscribed bool) UserResponse {
	return UserResponse{
		ID:           u.ID,
		Email:        u.Email,
		Username:     u.Username,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		IsSubscribed: isSubscribed,
	}
}
