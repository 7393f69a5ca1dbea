package media

import (
	"context"

	"blogapi/internal/domain"
)

type MediaRepository interface {
	Create(ctx context.Context, m *domain.Media) error
	GetByID(ctx context.Context, id string) (*domain.Media, error)
	Delete(ctx context.Context, id string) error
	ListByUser(ctx context.Context, userID int64) ([]domain.Media, error)
}

// PostReader resolves the post a media item attaches to, so ownership can
// be verified before the file is accepted.
type PostReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Post, error)
}
