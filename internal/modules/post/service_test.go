package post

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"blogapi/internal/domain"
)

type mockPostRepo struct {
	mock.Mock
}

func (m *mockPostRepo) Create(ctx context.Context, p *domain.Post) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *mockPostRepo) GetByID(ctx context.Context, id int64) (*domain.Post, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Post), args.Error(1)
}

func (m *mockPostRepo) Update(ctx context.Context, p *domain.Post) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *mockPostRepo) ReplaceCategories(ctx context.Context, p *domain.Post, categories []domain.Category) error {
	args := m.Called(ctx, p, categories)
	return args.Error(0)
}

func (m *mockPostRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockPostRepo) Search(ctx context.Context, q string, page, limit int) ([]domain.Post, int64, error) {
	args := m.Called(ctx, q, page, limit)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.Post), args.Get(1).(int64), args.Error(2)
}

func (m *mockPostRepo) ListByAuthor(ctx context.Context, authorID int64, page, limit int) ([]domain.Post, int64, error) {
	args := m.Called(ctx, authorID, page, limit)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.Post), args.Get(1).(int64), args.Error(2)
}

func (m *mockPostRepo) CommentCount(ctx context.Context, postID int64) (int64, error) {
	args := m.Called(ctx, postID)
	return args.Get(0).(int64), args.Error(1)
}

type mockCategoryReader struct {
	mock.Mock
}

func (m *mockCategoryReader) GetByIDs(ctx context.Context, ids []int64) ([]domain.Category, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}

func TestService_Create_UnknownCategory(t *testing.T) {
	posts := new(mockPostRepo)
	categories := new(mockCategoryReader)

	categories.On("GetByIDs", mock.Anything, []int64{1, 99}).
		Return([]domain.Category{{ID: 1, Name: "A"}}, nil)

	svc := NewService(posts, categories)

	_, err := svc.Create(context.Background(), 10, CreatePostRequest{
		Title:       "Hello",
		Content:     "World",
		CategoryIDs: []int64{1, 99},
	})

	assert.ErrorIs(t, err, ErrUnknownCategory)
	posts.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Create_DefaultsToPublished(t *testing.T) {
	posts := new(mockPostRepo)
	categories := new(mockCategoryReader)

	posts.On("Create", mock.Anything, mock.MatchedBy(func(p *domain.Post) bool {
		return p.Status == domain.PostStatusPublished && p.AuthorID == 10
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*domain.Post).ID = 1
	}).Return(nil)
	posts.On("GetByID", mock.Anything, int64(1)).
		Return(&domain.Post{ID: 1, Title: "Hello", Status: domain.PostStatusPublished, AuthorID: 10}, nil)

	svc := NewService(posts, categories)

	created, err := svc.Create(context.Background(), 10, CreatePostRequest{
		Title:   "Hello",
		Content: "World",
	})

	assert.NoError(t, err)
	assert.Equal(t, "published", created.Status)
	posts.AssertExpectations(t)
}

func TestService_GetByID_HidesDrafts(t *testing.T) {
	posts := new(mockPostRepo)
	categories := new(mockCategoryReader)

	posts.On("GetByID", mock.Anything, int64(5)).
		Return(&domain.Post{ID: 5, Status: domain.PostStatusDraft, AuthorID: 1}, nil)

	svc := NewService(posts, categories)

	_, err := svc.GetByID(context.Background(), 5)

	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestService_GetByID_IncludesCommentCount(t *testing.T) {
	posts := new(mockPostRepo)
	categories := new(mockCategoryReader)

	posts.On("GetByID", mock.Anything, int64(5)).
		Return(&domain.Post{ID: 5, Status: domain.PostStatusPublished, AuthorID: 1}, nil)
	posts.On("CommentCount", mock.Anything, int64(5)).Return(int64(7), nil)

	svc := NewService(posts, categories)

	resp, err := svc.GetByID(context.Background(), 5)

	assert.NoError(t, err)
	assert.Equal(t, int64(7), resp.CommentCount)
}

func TestService_Update_NotOwner(t *testing.T) {
	posts := new(mockPostRepo)
	categories := new(mockCategoryReader)

	posts.On("GetByID", mock.Anything, int64(5)).
		Return(&domain.Post{ID: 5, AuthorID: 1, Status: domain.PostStatusPublished}, nil)

	svc := NewService(posts, categories)

	title := "Edited"
	_, err := svc.Update(context.Background(), 5, 2, UpdatePostRequest{Title: &title})

	assert.ErrorIs(t, err, ErrNotOwner)
	posts.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestService_Delete_AdminOverridesOwnership(t *testing.T) {
	posts := new(mockPostRepo)
	categories := new(mockCategoryReader)

	posts.On("GetByID", mock.Anything, int64(5)).
		Return(&domain.Post{ID: 5, AuthorID: 1}, nil)
	posts.On("Delete", mock.Anything, int64(5)).Return(nil)

	svc := NewService(posts, categories)

	assert.NoError(t, svc.Delete(context.Background(), 5, 99, true))
	posts.AssertExpectations(t)
}

func TestService_Delete_NotOwnerNotAdmin(t *testing.T) {
	posts := new(mockPostRepo)
	categories := new(mockCategoryReader)

	posts.On("GetByID", mock.Anything, int64(5)).
		Return(&domain.Post{ID: 5, AuthorID: 1}, nil)

	svc := NewService(posts, categories)

	assert.ErrorIs(t, svc.Delete(context.Background(), 5, 99, false), ErrNotOwner)
}

func TestService_Delete_NotFound(t *testing.T) {
	posts := new(mockPostRepo)
	categories := new(mockCategoryReader)

	posts.On("GetByID", mock.Anything, int64(5)).Return(nil, gorm.ErrRecordNotFound)

	svc := NewService(posts, categories)

	assert.ErrorIs(t, svc.Delete(context.Background(), 5, 1, false), ErrPostNotFound)
}

func TestService_Search_NormalizesPaging(t *testing.T) {
	posts := new(mockPostRepo)
	categories := new(mockCategoryReader)

	posts.On("Search", mock.Anything, "go", 1, 10).
		Return([]domain.Post{{ID: 1, Status: domain.PostStatusPublished}}, int64(25), nil)
	posts.On("CommentCount", mock.Anything, int64(1)).Return(int64(0), nil)

	svc := NewService(posts, categories)

	list, err := svc.Search(context.Background(), SearchQuery{Q: "go", Page: 0, Limit: -3})

	assert.NoError(t, err)
	assert.Equal(t, int64(25), list.Meta.TotalCount)
	assert.Equal(t, 1, list.Meta.CurrentPage)
	assert.Equal(t, 3, list.Meta.TotalPages)
	assert.Equal(t, 10, list.Meta.PerPage)
	posts.AssertExpectations(t)
}
