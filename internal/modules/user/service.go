package user

import (
	"context"
	"mime/multipart"
	"time"

	"blogapi/internal/domain"
	"blogapi/internal/pkg/validator"
	"blogapi/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 10

type Service struct {
	users    UserRepository
	sessions RefreshTokenRevoker
	posts    PostCounter
	comments CommentCounter
	uploader AvatarUploader
}

func NewService(
	users UserRepository,
	sessions RefreshTokenRevoker,
	posts PostCounter,
	comments CommentCounter,
	uploader AvatarUploader,
) *Service {
	return &Service{
		users:    users,
		sessions: sessions,
		posts:    posts,
		comments: comments,
		uploader: uploader,
	}
}

func (s *Service) GetProfile(ctx context.Context, userID int64) (*ProfileResponse, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	var counts ProfileCounts
	if counts.Posts, err = s.posts.CountByAuthor(ctx, userID); err != nil {
		return nil, err
	}
	if counts.Comments, err = s.comments.CountByAuthor(ctx, userID); err != nil {
		return nil, err
	}

	return toProfile(u, counts), nil
}

func (s *Service) UpdateProfile(ctx context.Context, userID int64, req UpdateProfileRequest) (*domain.User, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if req.FirstName != nil {
		u.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		u.LastName = *req.LastName
	}
	if req.AvatarURL != nil {
		u.AvatarURL = *req.AvatarURL
	}
	if req.Gender != nil {
		u.Gender = domain.Gender(*req.Gender)
	}
	if req.Address != nil {
		u.Address = *req.Address
	}
	if req.DateOfBirth != nil {
		if dob, parseErr := time.Parse(time.RFC3339, *req.DateOfBirth); parseErr == nil {
			u.DateOfBirth = &dob
		}
	}

	if err := s.users.Update(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// ChangePassword verifies the current password, stores the new hash and
// revokes every refresh token so stale sessions end with the old credential.
func (s *Service) ChangePassword(ctx context.Context, userID int64, currentPassword, newPassword string) error {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if repository.IsNotFound(err) {
			return ErrUserNotFound
		}
		return err
	}

	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(currentPassword)) != nil {
		return ErrWrongPassword
	}
	if !validator.IsStrongPassword(newPassword) {
		return ErrWeakPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcryptCost)
	if err != nil {
		return err
	}
	if err := s.users.UpdatePassword(ctx, userID, string(hash)); err != nil {
		return err
	}
	return s.sessions.RevokeAllForUser(ctx, userID)
}

func (s *Service) UploadAvatar(ctx context.Context, userID int64, fh *multipart.FileHeader) (string, error) {
	media, err := s.uploader.UploadAvatar(ctx, userID, fh)
	if err != nil {
		return "", err
	}
	if err := s.users.UpdateAvatar(ctx, userID, media.URL); err != nil {
		return "", err
	}
	return media.URL, nil
}
