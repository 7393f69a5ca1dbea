package main

import (
	"context"
	"log"
	"time"

	"blogapi/internal/config"
	"blogapi/internal/database"
	"blogapi/internal/repository"
)

// revokedRetention keeps revoked tokens around long enough for Refresh to
// report "revoked" on recent sessions before the rows are purged.
const revokedRetention = 30 * 24 * time.Hour

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("config load failed: ", err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}

	ctx := context.Background()

	verifications := repository.NewEmailVerificationRepository(db)
	refreshTokens := repository.NewRefreshTokenRepository(db)

	removedVerifications, err := verifications.DeleteExpired(ctx)
	if err != nil {
		log.Fatalf("cleanup email_verifications failed: %v", err)
	}

	removedExpired, err := refreshTokens.DeleteExpired(ctx)
	if err != nil {
		log.Fatalf("cleanup refresh_tokens failed: %v", err)
	}

	removedRevoked, err := refreshTokens.DeleteRevoked(ctx, time.Now().Add(-revokedRetention))
	if err != nil {
		log.Fatalf("cleanup revoked refresh_tokens failed: %v", err)
	}

	log.Printf("auth cleanup completed: email_verifications=%d refresh_tokens_expired=%d refresh_tokens_revoked=%d",
		removedVerifications, removedExpired, removedRevoked)
}
