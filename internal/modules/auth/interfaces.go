package auth

import (
	"context"
	"time"

	"blogapi/internal/domain"
	"blogapi/internal/pkg/jwt"
	"blogapi/internal/pkg/mailer"
)

// UserRepository — only the methods the auth service uses.
type UserRepository interface {
	Create(ctx context.Context, u *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByResetToken(ctx context.Context, token string) (*domain.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	MarkVerified(ctx context.Context, userID int64) error
	SetResetToken(ctx context.Context, userID int64, token string, expiresAt time.Time) error
	UpdatePasswordClearReset(ctx context.Context, userID int64, passwordHash string) error
}

// VerificationRepository stores one-time email verification tokens.
type VerificationRepository interface {
	Upsert(ctx context.Context, v *domain.EmailVerification) error
	GetByToken(ctx context.Context, token string) (*domain.EmailVerification, error)
	Delete(ctx context.Context, id int64) error
}

// RefreshTokenRepository stores persisted session records.
type RefreshTokenRepository interface {
	ReplaceForFingerprint(ctx context.Context, t *domain.RefreshToken) error
	GetByToken(ctx context.Context, token string) (*domain.RefreshToken, error)
	RevokeAllForUser(ctx context.Context, userID int64) error
}

// TokenIssuer mints and verifies signed session tokens.
type TokenIssuer interface {
	GenerateAccessToken(id jwt.Identity) (string, error)
	GenerateRefreshToken(id jwt.Identity) (string, error)
	ParseRefreshToken(tokenStr string) (*jwt.Claims, error)
}

// Mailer re-exported for constructor signatures.
type Mailer = mailer.Mailer
