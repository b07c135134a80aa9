package user

import "errors"

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrEmailExists      = errors.New("email already exists")
	ErrUsernameExists   = errors.New("username already exists")
	ErrInvalidPassword  = errors.New("current password is incorrect")
	ErrSamePassword     = errors.New("new password must differ from the current one")
	ErrReservedUsername = errors.New("username is reserved")
)
