package category

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"blogapi/internal/domain"
)

type mockCategoryRepo struct {
	mock.Mock
}

func (m *mockCategoryRepo) Create(ctx context.Context, c *domain.Category) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *mockCategoryRepo) GetByID(ctx context.Context, id int64) (*domain.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *mockCategoryRepo) ExistsByName(ctx context.Context, name string) (bool, error) {
	args := m.Called(ctx, name)
	return args.Bool(0), args.Error(1)
}

func (m *mockCategoryRepo) Update(ctx context.Context, c *domain.Category) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *mockCategoryRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockCategoryRepo) List(ctx context.Context) ([]domain.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}

func (m *mockCategoryRepo) PostCount(ctx context.Context, categoryID int64) (int64, error) {
	args := m.Called(ctx, categoryID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockCategoryRepo) PostCounts(ctx context.Context) (map[int64]int64, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int64]int64), args.Error(1)
}

func TestService_Create_Success(t *testing.T) {
	repo := new(mockCategoryRepo)
	repo.On("ExistsByName", mock.Anything, "Tech").Return(false, nil)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	svc := NewService(repo)

	created, err := svc.Create(context.Background(), CreateCategoryRequest{Name: "  Tech  "})

	assert.NoError(t, err)
	assert.Equal(t, "Tech", created.Name)
	repo.AssertExpectations(t)
}

func TestService_Create_DuplicateName(t *testing.T) {
	repo := new(mockCategoryRepo)
	repo.On("ExistsByName", mock.Anything, "Tech").Return(true, nil)

	svc := NewService(repo)

	_, err := svc.Create(context.Background(), CreateCategoryRequest{Name: "Tech"})

	assert.ErrorIs(t, err, ErrNameTaken)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Update_NameCollision(t *testing.T) {
	repo := new(mockCategoryRepo)
	repo.On("GetByID", mock.Anything, int64(1)).Return(&domain.Category{ID: 1, Name: "Old"}, nil)
	repo.On("ExistsByName", mock.Anything, "New").Return(true, nil)

	svc := NewService(repo)

	newName := "New"
	_, err := svc.Update(context.Background(), 1, UpdateCategoryRequest{Name: &newName})

	assert.ErrorIs(t, err, ErrNameTaken)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestService_Update_SameNameSkipsCollisionCheck(t *testing.T) {
	repo := new(mockCategoryRepo)
	repo.On("GetByID", mock.Anything, int64(1)).Return(&domain.Category{ID: 1, Name: "Tech"}, nil)
	repo.On("Update", mock.Anything, mock.Anything).Return(nil)
	repo.On("PostCount", mock.Anything, int64(1)).Return(int64(3), nil)

	svc := NewService(repo)

	sameName := "Tech"
	desc := "updated"
	updated, err := svc.Update(context.Background(), 1, UpdateCategoryRequest{Name: &sameName, Description: &desc})

	assert.NoError(t, err)
	assert.Equal(t, "updated", updated.Description)
	assert.Equal(t, int64(3), updated.PostCount)
	repo.AssertNotCalled(t, "ExistsByName", mock.Anything, mock.Anything)
}

func TestService_Delete_BlockedWhileInUse(t *testing.T) {
	repo := new(mockCategoryRepo)
	repo.On("GetByID", mock.Anything, int64(2)).Return(&domain.Category{ID: 2, Name: "Busy"}, nil)
	repo.On("PostCount", mock.Anything, int64(2)).Return(int64(4), nil)

	svc := NewService(repo)

	err := svc.Delete(context.Background(), 2)

	assert.ErrorIs(t, err, ErrCategoryInUse)
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestService_Delete_Success(t *testing.T) {
	repo := new(mockCategoryRepo)
	repo.On("GetByID", mock.Anything, int64(3)).Return(&domain.Category{ID: 3, Name: "Empty"}, nil)
	repo.On("PostCount", mock.Anything, int64(3)).Return(int64(0), nil)
	repo.On("Delete", mock.Anything, int64(3)).Return(nil)

	svc := NewService(repo)

	assert.NoError(t, svc.Delete(context.Background(), 3))
	repo.AssertExpectations(t)
}

func TestService_Delete_NotFound(t *testing.T) {
	repo := new(mockCategoryRepo)
	repo.On("GetByID", mock.Anything, int64(9)).Return(nil, gorm.ErrRecordNotFound)

	svc := NewService(repo)

	assert.ErrorIs(t, svc.Delete(context.Background(), 9), ErrCategoryNotFound)
}

func TestService_List_IncludesPostCounts(t *testing.T) {
	repo := new(mockCategoryRepo)
	repo.On("List", mock.Anything).Return([]domain.Category{
		{ID: 1, Name: "A"},
		{ID: 2, Name: "B"},
	}, nil)
	repo.On("PostCounts", mock.Anything).Return(map[int64]int64{1: 5}, nil)

	svc := NewService(repo)

	list, err := svc.List(context.Background())

	assert.NoError(t, err)
	assert.Len(t, list, 2)
	assert.Equal(t, int64(5), list[0].PostCount)
	assert.Equal(t, int64(0), list[1].PostCount)
}
