package user

import (
	"context"
	"mime/multipart"

	"blogapi/internal/domain"
)

type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	Update(ctx context.Context, u *domain.User) error
	UpdatePassword(ctx context.Context, userID int64, passwordHash string) error
	UpdateAvatar(ctx context.Context, userID int64, avatarURL string) error
}

type RefreshTokenRevoker interface {
	RevokeAllForUser(ctx context.Context, userID int64) error
}

type PostCounter interface {
	CountByAuthor(ctx context.Context, authorID int64) (int64, error)
}

type CommentCounter interface {
	CountByAuthor(ctx context.Context, authorID int64) (int64, error)
}

// AvatarUploader is implemented by the media service.
type AvatarUploader interface {
	UploadAvatar(ctx context.Context, userID int64, fh *multipart.FileHeader) (*domain.Media, error)
}
