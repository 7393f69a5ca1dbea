package user

import (
	"context"
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"blogapi/internal/domain"
)

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserRepo) Update(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *mockUserRepo) UpdatePassword(ctx context.Context, userID int64, passwordHash string) error {
	args := m.Called(ctx, userID, passwordHash)
	return args.Error(0)
}

func (m *mockUserRepo) UpdateAvatar(ctx context.Context, userID int64, avatarURL string) error {
	args := m.Called(ctx, userID, avatarURL)
	return args.Error(0)
}

type mockRevoker struct {
	mock.Mock
}

func (m *mockRevoker) RevokeAllForUser(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

type mockCounter struct {
	mock.Mock
}

func (m *mockCounter) CountByAuthor(ctx context.Context, authorID int64) (int64, error) {
	args := m.Called(ctx, authorID)
	return args.Get(0).(int64), args.Error(1)
}

type mockUploader struct {
	mock.Mock
}

func (m *mockUploader) UploadAvatar(ctx context.Context, userID int64, fh *multipart.FileHeader) (*domain.Media, error) {
	args := m.Called(ctx, userID, fh)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Media), args.Error(1)
}

func newTestService() (*Service, *mockUserRepo, *mockRevoker, *mockCounter, *mockCounter, *mockUploader) {
	users := new(mockUserRepo)
	revoker := new(mockRevoker)
	posts := new(mockCounter)
	comments := new(mockCounter)
	uploader := new(mockUploader)
	svc := NewService(users, revoker, posts, comments, uploader)
	return svc, users, revoker, posts, comments, uploader
}

func TestService_GetProfile_IncludesCounts(t *testing.T) {
	svc, users, _, posts, comments, _ := newTestService()

	users.On("GetByID", mock.Anything, int64(1)).
		Return(&domain.User{ID: 1, Email: "a@example.com", FirstName: "Alice"}, nil)
	posts.On("CountByAuthor", mock.Anything, int64(1)).Return(int64(3), nil)
	comments.On("CountByAuthor", mock.Anything, int64(1)).Return(int64(8), nil)

	profile, err := svc.GetProfile(context.Background(), 1)

	assert.NoError(t, err)
	assert.Equal(t, int64(3), profile.Counts.Posts)
	assert.Equal(t, int64(8), profile.Counts.Comments)
	assert.Equal(t, "a@example.com", profile.Email)
}

func TestService_ChangePassword_WrongCurrent(t *testing.T) {
	svc, users, revoker, _, _, _ := newTestService()

	hash, _ := bcrypt.GenerateFromPassword([]byte("Current1pass"), bcrypt.MinCost)
	users.On("GetByID", mock.Anything, int64(1)).
		Return(&domain.User{ID: 1, PasswordHash: string(hash)}, nil)

	err := svc.ChangePassword(context.Background(), 1, "not-the-password", "NewStr0ngPass")

	assert.ErrorIs(t, err, ErrWrongPassword)
	users.AssertNotCalled(t, "UpdatePassword", mock.Anything, mock.Anything, mock.Anything)
	revoker.AssertNotCalled(t, "RevokeAllForUser", mock.Anything, mock.Anything)
}

func TestService_ChangePassword_WeakNewPassword(t *testing.T) {
	svc, users, _, _, _, _ := newTestService()

	hash, _ := bcrypt.GenerateFromPassword([]byte("Current1pass"), bcrypt.MinCost)
	users.On("GetByID", mock.Anything, int64(1)).
		Return(&domain.User{ID: 1, PasswordHash: string(hash)}, nil)

	err := svc.ChangePassword(context.Background(), 1, "Current1pass", "short")

	assert.ErrorIs(t, err, ErrWeakPassword)
	users.AssertNotCalled(t, "UpdatePassword", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_ChangePassword_RevokesSessions(t *testing.T) {
	svc, users, revoker, _, _, _ := newTestService()

	hash, _ := bcrypt.GenerateFromPassword([]byte("Current1pass"), bcrypt.MinCost)
	users.On("GetByID", mock.Anything, int64(1)).
		Return(&domain.User{ID: 1, PasswordHash: string(hash)}, nil)
	users.On("UpdatePassword", mock.Anything, int64(1), mock.Anything).Return(nil)
	revoker.On("RevokeAllForUser", mock.Anything, int64(1)).Return(nil)

	err := svc.ChangePassword(context.Background(), 1, "Current1pass", "NewStr0ngPass1")

	assert.NoError(t, err)
	users.AssertExpectations(t)
	revoker.AssertExpectations(t)
}

func TestService_UpdateProfile_PartialFields(t *testing.T) {
	svc, users, _, _, _, _ := newTestService()

	users.On("GetByID", mock.Anything, int64(1)).
		Return(&domain.User{ID: 1, FirstName: "Alice", LastName: "Smith", Gender: domain.GenderUnspecified}, nil)
	users.On("Update", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
		return u.FirstName == "Alicia" && u.LastName == "Smith"
	})).Return(nil)

	newName := "Alicia"
	updated, err := svc.UpdateProfile(context.Background(), 1, UpdateProfileRequest{FirstName: &newName})

	assert.NoError(t, err)
	assert.Equal(t, "Alicia", updated.FirstName)
	assert.Equal(t, "Smith", updated.LastName)
}

func TestService_UploadAvatar_UpdatesUserRecord(t *testing.T) {
	svc, users, _, _, _, uploader := newTestService()

	fh := &multipart.FileHeader{Filename: "me.png", Size: 100}
	uploader.On("UploadAvatar", mock.Anything, int64(1), fh).
		Return(&domain.Media{ID: "abc", URL: "/static/uploads/2026/08/31/abc.png"}, nil)
	users.On("UpdateAvatar", mock.Anything, int64(1), "/static/uploads/2026/08/31/abc.png").Return(nil)

	url, err := svc.UploadAvatar(context.Background(), 1, fh)

	assert.NoError(t, err)
	assert.Equal(t, "/static/uploads/2026/08/31/abc.png", url)
	users.AssertExpectations(t)
}
