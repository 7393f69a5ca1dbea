package comment

import (
	"context"

	"blogapi/internal/domain"
)

type CommentRepository interface {
	Create(ctx context.Context, c *domain.Comment) error
	GetByID(ctx context.Context, id int64) (*domain.Comment, error)
	UpdateContent(ctx context.Context, id int64, content string) error
	Delete(ctx context.Context, id int64) error
	ListByPost(ctx context.Context, postID int64, page, limit int) ([]domain.Comment, int64, error)
	ListByAuthor(ctx context.Context, authorID int64, page, limit int) ([]domain.Comment, int64, error)
}

type PostReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Post, error)
}
