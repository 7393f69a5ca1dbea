package repository

import (
	"context"
	"time"

	"blogapi/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type EmailVerificationRepository struct {
	db *gorm.DB
}

func NewEmailVerificationRepository(db *gorm.DB) *EmailVerificationRepository {
	return &EmailVerificationRepository{db: db}
}

// Upsert installs a fresh token for the user, replacing any live one. The
// unique index on user_id makes the at-most-one invariant hold under
// concurrent resends; the conflict path overwrites token and expiry.
func (r *EmailVerificationRepository) Upsert(ctx context.Context, v *domain.EmailVerification) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"token", "expires_at", "created_at"}),
	}).Create(v).Error
}

func (r *EmailVerificationRepository) GetByToken(ctx context.Context, token string) (*domain.EmailVerification, error) {
	var v domain.EmailVerification
	err := r.db.WithContext(ctx).Where("token = ?", token).First(&v).Error
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *EmailVerificationRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&domain.EmailVerification{}, id).Error
}

func (r *EmailVerificationRepository) DeleteExpired(ctx context.Context) (int64, error) {
	tx := r.db.WithContext(ctx).
		Where("expires_at < ?", time.Now().UTC()).
		Delete(&domain.EmailVerification{})
	return tx.RowsAffected, tx.Error
}
