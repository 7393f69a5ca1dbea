package repository

import (
	"context"
	"time"

	"blogapi/internal/domain"

	"gorm.io/gorm"
)

type RefreshTokenRepository struct {
	db *gorm.DB
}

func NewRefreshTokenRepository(db *gorm.DB) *RefreshTokenRepository {
	return &RefreshTokenRepository{db: db}
}

// ReplaceForFingerprint deletes the prior token for the same
// (user, user-agent, IP) triple and inserts the new one in one transaction,
// so at most one live refresh token exists per device fingerprint.
func (r *RefreshTokenRepository) ReplaceForFingerprint(ctx context.Context, t *domain.RefreshToken) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("user_id = ? AND user_agent = ? AND ip_address = ?", t.UserID, t.UserAgent, t.IPAddress).
			Delete(&domain.RefreshToken{}).Error; err != nil {
			return err
		}
		return tx.Create(t).Error
	})
}

func (r *RefreshTokenRepository) GetByToken(ctx context.Context, token string) (*domain.RefreshToken, error) {
	var t domain.RefreshToken
	err := r.db.WithContext(ctx).Where("token = ?", token).First(&t).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// RevokeAllForUser flags every token of the user so stale sessions cannot
// continue after a credential change.
func (r *RefreshTokenRepository) RevokeAllForUser(ctx context.Context, userID int64) error {
	return r.db.WithContext(ctx).Model(&domain.RefreshToken{}).
		Where("user_id = ? AND revoked = ?", userID, false).
		Update("revoked", true).Error
}

func (r *RefreshTokenRepository) DeleteExpired(ctx context.Context) (int64, error) {
	tx := r.db.WithContext(ctx).
		Where("expires_at < ?", time.Now().UTC()).
		Delete(&domain.RefreshToken{})
	return tx.RowsAffected, tx.Error
}

// DeleteRevoked purges revoked tokens older than the cutoff. Recent
// revocations are kept so Refresh can still answer "revoked" instead of
// "unknown token".
func (r *RefreshTokenRepository) DeleteRevoked(ctx context.Context, olderThan time.Time) (int64, error) {
	tx := r.db.WithContext(ctx).
		Where("revoked = ? AND created_at < ?", true, olderThan).
		Delete(&domain.RefreshToken{})
	return tx.RowsAffected, tx.Error
}
