package auth

import "blogapi/internal/pkg/apperr"

var (
	ErrEmailAlreadyExists = apperr.New(apperr.Conflict, "Email already exists")
	ErrInvalidCredentials = apperr.New(apperr.Unauthorized, "Invalid email or password")
	ErrEmailNotVerified   = apperr.New(apperr.Forbidden, "Please verify your email before logging in")
	ErrUserNotFound       = apperr.New(apperr.NotFound, "User not found")

	ErrInvalidVerifyToken = apperr.New(apperr.Invalid, "Invalid verification token")
	ErrVerifyTokenExpired = apperr.New(apperr.Expired, "Verification token has expired")
	ErrAlreadyVerified    = apperr.New(apperr.Forbidden, "User is already verified")

	ErrResetTokenExpired = apperr.New(apperr.Expired, "Reset token has expired")

	ErrInvalidRefreshToken = apperr.New(apperr.Unauthorized, "Invalid refresh token")
	ErrRefreshTokenRevoked = apperr.New(apperr.Unauthorized, "Refresh token has been revoked")
	ErrRefreshTokenExpired = apperr.New(apperr.Unauthorized, "Refresh token has expired")
)
