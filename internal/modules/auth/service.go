package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"blogapi/internal/domain"
	"blogapi/internal/pkg/jwt"
	"blogapi/internal/pkg/logger"
	"blogapi/internal/pkg/token"
	"blogapi/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

// bcryptCost is fixed: raising it invalidates no existing hashes but slows
// every login, so it changes only deliberately.
const bcryptCost = 10

// Service holds the credential and token lifecycle logic. All collaborators
// are injected; it owns no state beyond configuration.
type Service struct {
	users         UserRepository
	verifications VerificationRepository
	refreshTokens RefreshTokenRepository
	issuer        TokenIssuer
	mailer        Mailer

	refreshTTL time.Duration
	oneTimeTTL time.Duration // verification and reset tokens share 24h
}

func NewService(
	users UserRepository,
	verifications VerificationRepository,
	refreshTokens RefreshTokenRepository,
	issuer TokenIssuer,
	mailer Mailer,
	refreshTTL time.Duration,
	oneTimeTTL time.Duration,
) *Service {
	return &Service{
		users:         users,
		verifications: verifications,
		refreshTokens: refreshTokens,
		issuer:        issuer,
		mailer:        mailer,
		refreshTTL:    refreshTTL,
		oneTimeTTL:    oneTimeTTL,
	}
}

// Register creates an unverified user and installs a fresh verification
// token. The raw token travels to the user by mail only.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*RegisterResult, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	exists, err := s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailAlreadyExists
	}

	hash, err := hashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	gender := domain.Gender(req.Gender)
	if gender == "" {
		gender = domain.GenderUnspecified
	}

	user := &domain.User{
		Email:        email,
		PasswordHash: hash,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Gender:       gender,
		Address:      req.Address,
		AvatarURL:    fmt.Sprintf("https://ui-avatars.com/api/?name=%s+%s&background=random", req.FirstName, req.LastName),
		IsVerified:   false,
	}
	if req.DateOfBirth != "" {
		if dob, parseErr := time.Parse(time.RFC3339, req.DateOfBirth); parseErr == nil {
			user.DateOfBirth = &dob
		}
	}

	if err := s.users.Create(ctx, user); err != nil {
		// a concurrent registration can slip past the existence check; the
		// unique index is the authority
		if repository.IsDuplicate(err) {
			return nil, ErrEmailAlreadyExists
		}
		return nil, err
	}

	raw, err := s.issueVerificationToken(ctx, user)
	if err != nil {
		return nil, err
	}

	return &RegisterResult{User: user, VerificationToken: raw}, nil
}

// VerifyEmail consumes a verification token. Expired tokens are deleted as a
// side effect; a consumed token fails Invalid on reuse.
func (s *Service) VerifyEmail(ctx context.Context, rawToken string) error {
	record, err := s.verifications.GetByToken(ctx, rawToken)
	if err != nil {
		if repository.IsNotFound(err) {
			return ErrInvalidVerifyToken
		}
		return err
	}

	if record.IsExpired(time.Now()) {
		if delErr := s.verifications.Delete(ctx, record.ID); delErr != nil {
			return delErr
		}
		return ErrVerifyTokenExpired
	}

	if err := s.users.MarkVerified(ctx, record.UserID); err != nil {
		return err
	}
	return s.verifications.Delete(ctx, record.ID)
}

// ResendVerification replaces the user's pending token with a fresh one.
func (s *Service) ResendVerification(ctx context.Context, email string) error {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if repository.IsNotFound(err) {
			return ErrUserNotFound
		}
		return err
	}
	if user.IsVerified {
		return ErrAlreadyVerified
	}

	_, err = s.issueVerificationToken(ctx, user)
	return err
}

// Login authenticates and opens a session: one live refresh token per
// (user, user-agent, IP) fingerprint.
func (s *Service) Login(ctx context.Context, req LoginRequest, userAgent, ip string) (*LoginResult, error) {
	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !user.IsVerified {
		return nil, ErrEmailNotVerified
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return nil, ErrInvalidCredentials
	}

	identity := jwt.Identity{UserID: user.ID, Email: user.Email, IsAdmin: user.IsAdmin}
	accessToken, err := s.issuer.GenerateAccessToken(identity)
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.issuer.GenerateRefreshToken(identity)
	if err != nil {
		return nil, err
	}

	if userAgent == "" {
		userAgent = "unknown"
	}
	record := &domain.RefreshToken{
		UserID:    user.ID,
		Token:     refreshToken,
		UserAgent: userAgent,
		IPAddress: ip,
		ExpiresAt: time.Now().Add(s.refreshTTL),
	}
	if err := s.refreshTokens.ReplaceForFingerprint(ctx, record); err != nil {
		return nil, err
	}

	return &LoginResult{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         summarize(user),
	}, nil
}

// RequestPasswordReset installs a reset token on the user row. A fresh
// request always supersedes a pending one.
func (s *Service) RequestPasswordReset(ctx context.Context, email string) (string, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if repository.IsNotFound(err) {
			return "", ErrUserNotFound
		}
		return "", err
	}

	raw, err := token.Generate(token.DefaultLength)
	if err != nil {
		return "", err
	}
	if err := s.users.SetResetToken(ctx, user.ID, raw, time.Now().Add(s.oneTimeTTL)); err != nil {
		return "", err
	}

	if mailErr := s.mailer.SendPasswordResetEmail(ctx, user.Email, user.FirstName, raw); mailErr != nil {
		logger.Log.WithError(mailErr).WithField("email", user.Email).
			Warn("failed to send password reset email")
	}
	return raw, nil
}

// ResetPassword consumes a reset token: stores the new hash, clears the
// reset fields in the same update, and revokes every open session.
func (s *Service) ResetPassword(ctx context.Context, rawToken, newPassword string) error {
	user, err := s.users.GetByResetToken(ctx, rawToken)
	if err != nil {
		if repository.IsNotFound(err) {
			return ErrUserNotFound
		}
		return err
	}

	if user.ResetTokenExpiresAt == nil || time.Now().After(*user.ResetTokenExpiresAt) {
		return ErrResetTokenExpired
	}

	hash, err := hashPassword(newPassword)
	if err != nil {
		return err
	}
	if err := s.users.UpdatePasswordClearReset(ctx, user.ID, hash); err != nil {
		return err
	}
	return s.refreshTokens.RevokeAllForUser(ctx, user.ID)
}

// Refresh exchanges a valid refresh token for a new access token. The
// persisted record and the signature must both agree; either alone is not
// enough.
func (s *Service) Refresh(ctx context.Context, rawToken string) (*RefreshResult, error) {
	record, err := s.refreshTokens.GetByToken(ctx, rawToken)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrInvalidRefreshToken
		}
		return nil, err
	}
	if record.Revoked {
		return nil, ErrRefreshTokenRevoked
	}
	if record.IsExpired(time.Now()) {
		return nil, ErrRefreshTokenExpired
	}

	claims, err := s.issuer.ParseRefreshToken(rawToken)
	if err != nil {
		return nil, ErrInvalidRefreshToken
	}

	user, err := s.users.GetByID(ctx, claims.UserID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	accessToken, err := s.issuer.GenerateAccessToken(jwt.Identity{
		UserID:  user.ID,
		Email:   user.Email,
		IsAdmin: user.IsAdmin,
	})
	if err != nil {
		return nil, err
	}
	return &RefreshResult{AccessToken: accessToken}, nil
}

func (s *Service) issueVerificationToken(ctx context.Context, user *domain.User) (string, error) {
	raw, err := token.Generate(token.DefaultLength)
	if err != nil {
		return "", err
	}

	record := &domain.EmailVerification{
		UserID:    user.ID,
		Token:     raw,
		ExpiresAt: time.Now().Add(s.oneTimeTTL),
		CreatedAt: time.Now(),
	}
	if err := s.verifications.Upsert(ctx, record); err != nil {
		return "", err
	}

	// best effort: a failed send never rolls back the token
	if mailErr := s.mailer.SendVerificationEmail(ctx, user.Email, user.FirstName, raw); mailErr != nil {
		logger.Log.WithError(mailErr).WithField("email", user.Email).
			Warn("failed to send verification email")
	}
	return raw, nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
