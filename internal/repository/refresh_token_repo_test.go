package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"blogapi/internal/database"
	"blogapi/internal/domain"
)

func setupTokenDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func seedTokenUser(t *testing.T, db *gorm.DB) *domain.User {
	t.Helper()
	u := &domain.User{Email: "tokens@example.com", PasswordHash: "x", IsVerified: true}
	require.NoError(t, db.Create(u).Error)
	return u
}

var tokenSeq int

func insertToken(t *testing.T, db *gorm.DB, userID int64, revoked bool, createdAt, expiresAt time.Time) *domain.RefreshToken {
	t.Helper()
	tokenSeq++
	rt := &domain.RefreshToken{
		UserID:    userID,
		Token:     fmt.Sprintf("tok-%d", tokenSeq),
		UserAgent: "test-agent",
		IPAddress: "127.0.0.1",
		ExpiresAt: expiresAt,
		Revoked:   revoked,
		CreatedAt: createdAt,
	}
	require.NoError(t, db.Create(rt).Error)
	return rt
}

func TestRefreshTokenRepository_DeleteExpired(t *testing.T) {
	db := setupTokenDB(t)
	user := seedTokenUser(t, db)
	repo := NewRefreshTokenRepository(db)
	now := time.Now()

	insertToken(t, db, user.ID, false, now.Add(-48*time.Hour), now.Add(-time.Hour))
	live := insertToken(t, db, user.ID, false, now, now.Add(time.Hour))

	removed, err := repo.DeleteExpired(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)

	_, err = repo.GetByToken(context.Background(), live.Token)
	assert.NoError(t, err)
}

func TestRefreshTokenRepository_DeleteRevoked_OnlyOldRows(t *testing.T) {
	db := setupTokenDB(t)
	user := seedTokenUser(t, db)
	repo := NewRefreshTokenRepository(db)
	now := time.Now()

	oldRevoked := insertToken(t, db, user.ID, true, now.Add(-60*24*time.Hour), now.Add(time.Hour))
	recentRevoked := insertToken(t, db, user.ID, true, now.Add(-time.Hour), now.Add(time.Hour))
	active := insertToken(t, db, user.ID, false, now.Add(-60*24*time.Hour), now.Add(time.Hour))

	removed, err := repo.DeleteRevoked(context.Background(), now.Add(-30*24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)

	_, err = repo.GetByToken(context.Background(), oldRevoked.Token)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	// a recently revoked token still answers "revoked" on refresh
	kept, err := repo.GetByToken(context.Background(), recentRevoked.Token)
	require.NoError(t, err)
	assert.True(t, kept.Revoked)

	// age alone never purges an unrevoked, unexpired session
	_, err = repo.GetByToken(context.Background(), active.Token)
	assert.NoError(t, err)
}
