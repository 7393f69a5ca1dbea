package admin

import (
	"time"

	"blogapi/internal/domain"
)

// UserSummary is the redacted view returned to administrators. Password
// hashes and reset-token material never leave the service layer.
type UserSummary struct {
	ID         int64     `json:"id"`
	Email      string    `json:"email"`
	FirstName  string    `json:"firstName"`
	LastName   string    `json:"lastName"`
	AvatarURL  string    `json:"avatarUrl,omitempty"`
	IsVerified bool      `json:"isVerified"`
	IsAdmin    bool      `json:"isAdmin"`
	CreatedAt  time.Time `json:"createdAt"`
}

type DashboardStats struct {
	TotalUsers    int64 `json:"totalUsers"`
	TotalPosts    int64 `json:"totalPosts"`
	TotalComments int64 `json:"totalComments"`
}

type ModerateCommentRequest struct {
	Content string `json:"content" binding:"required,max=2000"`
}

func summarize(u *domain.User) UserSummary {
	return UserSummary{
		ID:         u.ID,
		Email:      u.Email,
		FirstName:  u.FirstName,
		LastName:   u.LastName,
		AvatarURL:  u.AvatarURL,
		IsVerified: u.IsVerified,
		IsAdmin:    u.IsAdmin,
		CreatedAt:  u.CreatedAt,
	}
}
