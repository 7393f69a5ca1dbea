package post

import (
	"context"

	"blogapi/internal/domain"
)

type PostRepository interface {
	Create(ctx context.Context, p *domain.Post) error
	GetByID(ctx context.Context, id int64) (*domain.Post, error)
	Update(ctx context.Context, p *domain.Post) error
	ReplaceCategories(ctx context.Context, p *domain.Post, categories []domain.Category) error
	Delete(ctx context.Context, id int64) error
	Search(ctx context.Context, q string, page, limit int) ([]domain.Post, int64, error)
	ListByAuthor(ctx context.Context, authorID int64, page, limit int) ([]domain.Post, int64, error)
	CommentCount(ctx context.Context, postID int64) (int64, error)
}

type CategoryReader interface {
	GetByIDs(ctx context.Context, ids []int64) ([]domain.Category, error)
}
