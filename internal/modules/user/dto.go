package user

import (
	"time"

	"blogapi/internal/domain"
)

type UpdateProfileRequest struct {
	FirstName   *string `json:"firstName,omitempty"`
	LastName    *string `json:"lastName,omitempty"`
	AvatarURL   *string `json:"avatarUrl,omitempty" binding:"omitempty,url"`
	DateOfBirth *string `json:"dateOfBirth,omitempty"`
	Gender      *string `json:"gender,omitempty" binding:"omitempty,oneof=male female unspecified"`
	Address     *string `json:"address,omitempty"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required"`
}

type ProfileCounts struct {
	Posts    int64 `json:"posts"`
	Comments int64 `json:"comments"`
}

type ProfileResponse struct {
	ID          int64         `json:"id"`
	Email       string        `json:"email"`
	FirstName   string        `json:"firstName"`
	LastName    string        `json:"lastName"`
	AvatarURL   string        `json:"avatarUrl,omitempty"`
	DateOfBirth *time.Time    `json:"dateOfBirth,omitempty"`
	Gender      string        `json:"gender"`
	Address     string        `json:"address,omitempty"`
	IsVerified  bool          `json:"isVerified"`
	IsAdmin     bool          `json:"isAdmin"`
	CreatedAt   time.Time     `json:"createdAt"`
	Counts      ProfileCounts `json:"counts"`
}

func toProfile(u *domain.User, counts ProfileCounts) *ProfileResponse {
	return &ProfileResponse{
		ID:          u.ID,
		Email:       u.Email,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		AvatarURL:   u.AvatarURL,
		DateOfBirth: u.DateOfBirth,
		Gender:      string(u.Gender),
		Address:     u.Address,
		IsVerified:  u.IsVerified,
		IsAdmin:     u.IsAdmin,
		CreatedAt:   u.CreatedAt,
		Counts:      counts,
	}
}
