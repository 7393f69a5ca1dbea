package category

import (
	"context"

	"blogapi/internal/domain"
)

type CategoryRepository interface {
	Create(ctx context.Context, c *domain.Category) error
	GetByID(ctx context.Context, id int64) (*domain.Category, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	Update(ctx context.Context, c *domain.Category) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]domain.Category, error)
	PostCount(ctx context.Context, categoryID int64) (int64, error)
	PostCounts(ctx context.Context) (map[int64]int64, error)
}
