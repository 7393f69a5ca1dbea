package user

import "blogapi/internal/pkg/apperr"

var (
	ErrUserNotFound  = apperr.New(apperr.NotFound, "User not found")
	ErrWrongPassword = apperr.New(apperr.Invalid, "Current password is incorrect")
	ErrWeakPassword  = apperr.New(apperr.Invalid, "Password must be 8-64 characters with upper, lower and digit")
)
