package admin

import (
	"context"

	"blogapi/internal/pkg/apperr"
	"blogapi/internal/repository"
)

var errCommentNotFound = apperr.New(apperr.NotFound, "Comment not found")

type Service struct {
	users    UserLister
	posts    PostCounter
	comments CommentStore
}

func NewService(users UserLister, posts PostCounter, comments CommentStore) *Service {
	return &Service{users: users, posts: posts, comments: comments}
}

func (s *Service) ListUsers(ctx context.Context) ([]UserSummary, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]UserSummary, 0, len(users))
	for i := range users {
		out = append(out, summarize(&users[i]))
	}
	return out, nil
}

func (s *Service) Dashboard(ctx context.Context) (*DashboardStats, error) {
	var stats DashboardStats
	var err error

	if stats.TotalUsers, err = s.users.Count(ctx); err != nil {
		return nil, err
	}
	if stats.TotalPosts, err = s.posts.Count(ctx); err != nil {
		return nil, err
	}
	if stats.TotalComments, err = s.comments.Count(ctx); err != nil {
		return nil, err
	}
	return &stats, nil
}

// ModerateComment rewrites any comment regardless of ownership.
func (s *Service) ModerateComment(ctx context.Context, id int64, content string) error {
	if _, err := s.comments.GetByID(ctx, id); err != nil {
		if repository.IsNotFound(err) {
			return errCommentNotFound
		}
		return err
	}
	return s.comments.UpdateContent(ctx, id, content)
}

// RemoveComment deletes any comment regardless of ownership.
func (s *Service) RemoveComment(ctx context.Context, id int64) error {
	if _, err := s.comments.GetByID(ctx, id); err != nil {
		if repository.IsNotFound(err) {
			return errCommentNotFound
		}
		return err
	}
	return s.comments.Delete(ctx, id)
}
