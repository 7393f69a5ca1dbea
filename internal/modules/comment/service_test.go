package comment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"blogapi/internal/domain"
)

type mockCommentRepo struct {
	mock.Mock
}

func (m *mockCommentRepo) Create(ctx context.Context, c *domain.Comment) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *mockCommentRepo) GetByID(ctx context.Context, id int64) (*domain.Comment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Comment), args.Error(1)
}

func (m *mockCommentRepo) UpdateContent(ctx context.Context, id int64, content string) error {
	args := m.Called(ctx, id, content)
	return args.Error(0)
}

func (m *mockCommentRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockCommentRepo) ListByPost(ctx context.Context, postID int64, page, limit int) ([]domain.Comment, int64, error) {
	args := m.Called(ctx, postID, page, limit)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.Comment), args.Get(1).(int64), args.Error(2)
}

func (m *mockCommentRepo) ListByAuthor(ctx context.Context, authorID int64, page, limit int) ([]domain.Comment, int64, error) {
	args := m.Called(ctx, authorID, page, limit)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.Comment), args.Get(1).(int64), args.Error(2)
}

type mockPostReader struct {
	mock.Mock
}

func (m *mockPostReader) GetByID(ctx context.Context, id int64) (*domain.Post, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Post), args.Error(1)
}

func TestService_Create_PostMissing(t *testing.T) {
	comments := new(mockCommentRepo)
	posts := new(mockPostReader)

	posts.On("GetByID", mock.Anything, int64(99)).Return(nil, gorm.ErrRecordNotFound)

	svc := NewService(comments, posts)

	_, err := svc.Create(context.Background(), 1, CreateCommentRequest{PostID: 99, Content: "hi"})

	assert.ErrorIs(t, err, ErrPostNotFound)
	comments.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Create_Success(t *testing.T) {
	comments := new(mockCommentRepo)
	posts := new(mockPostReader)

	posts.On("GetByID", mock.Anything, int64(3)).Return(&domain.Post{ID: 3}, nil)
	comments.On("Create", mock.Anything, mock.MatchedBy(func(c *domain.Comment) bool {
		return c.PostID == 3 && c.AuthorID == 1 && c.Content == "nice post"
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*domain.Comment).ID = 10
	}).Return(nil)

	svc := NewService(comments, posts)

	resp, err := svc.Create(context.Background(), 1, CreateCommentRequest{PostID: 3, Content: "nice post"})

	assert.NoError(t, err)
	assert.Equal(t, int64(10), resp.ID)
	comments.AssertExpectations(t)
}

func TestService_Update_NotOwner(t *testing.T) {
	comments := new(mockCommentRepo)
	posts := new(mockPostReader)

	comments.On("GetByID", mock.Anything, int64(10)).
		Return(&domain.Comment{ID: 10, AuthorID: 1}, nil)

	svc := NewService(comments, posts)

	_, err := svc.Update(context.Background(), 10, 2, "edited")

	assert.ErrorIs(t, err, ErrNotOwner)
	comments.AssertNotCalled(t, "UpdateContent", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_Delete_AdminOverridesOwnership(t *testing.T) {
	comments := new(mockCommentRepo)
	posts := new(mockPostReader)

	comments.On("GetByID", mock.Anything, int64(10)).
		Return(&domain.Comment{ID: 10, AuthorID: 1}, nil)
	comments.On("Delete", mock.Anything, int64(10)).Return(nil)

	svc := NewService(comments, posts)

	assert.NoError(t, svc.Delete(context.Background(), 10, 99, true))
	comments.AssertExpectations(t)
}

func TestService_Delete_NotOwnerNotAdmin(t *testing.T) {
	comments := new(mockCommentRepo)
	posts := new(mockPostReader)

	comments.On("GetByID", mock.Anything, int64(10)).
		Return(&domain.Comment{ID: 10, AuthorID: 1}, nil)

	svc := NewService(comments, posts)

	assert.ErrorIs(t, svc.Delete(context.Background(), 10, 99, false), ErrNotOwner)
}

func TestService_ListByPost_PostMissing(t *testing.T) {
	comments := new(mockCommentRepo)
	posts := new(mockPostReader)

	posts.On("GetByID", mock.Anything, int64(8)).Return(nil, gorm.ErrRecordNotFound)

	svc := NewService(comments, posts)

	_, err := svc.ListByPost(context.Background(), 8, 1, 10)

	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestService_ListByPost_Paginates(t *testing.T) {
	comments := new(mockCommentRepo)
	posts := new(mockPostReader)

	posts.On("GetByID", mock.Anything, int64(8)).Return(&domain.Post{ID: 8}, nil)
	comments.On("ListByPost", mock.Anything, int64(8), 2, 5).
		Return([]domain.Comment{{ID: 1, PostID: 8}}, int64(12), nil)

	svc := NewService(comments, posts)

	list, err := svc.ListByPost(context.Background(), 8, 2, 5)

	assert.NoError(t, err)
	assert.Equal(t, int64(12), list.Meta.TotalCount)
	assert.Equal(t, 2, list.Meta.CurrentPage)
	assert.Equal(t, 3, list.Meta.TotalPages)
}
