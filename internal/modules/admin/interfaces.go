package admin

import (
	"context"

	"blogapi/internal/domain"
)

type UserLister interface {
	List(ctx context.Context) ([]domain.User, error)
	Count(ctx context.Context) (int64, error)
}

type PostCounter interface {
	Count(ctx context.Context) (int64, error)
}

type CommentStore interface {
	GetByID(ctx context.Context, id int64) (*domain.Comment, error)
	UpdateContent(ctx context.Context, id int64, content string) error
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
}
