package comment

import (
	"context"

	"blogapi/internal/domain"
	"blogapi/internal/repository"
)

type Service struct {
	comments CommentRepository
	posts    PostReader
}

func NewService(comments CommentRepository, posts PostReader) *Service {
	return &Service{comments: comments, posts: posts}
}

// Create attaches a comment to an existing post.
func (s *Service) Create(ctx context.Context, authorID int64, req CreateCommentRequest) (*CommentResponse, error) {
	if _, err := s.posts.GetByID(ctx, req.PostID); err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}

	c := &domain.Comment{
		Content:  req.Content,
		PostID:   req.PostID,
		AuthorID: authorID,
	}
	if err := s.comments.Create(ctx, c); err != nil {
		return nil, err
	}
	resp := toResponse(c)
	return &resp, nil
}

// Update rewrites the comment body. Only the author may edit; admins go
// through the moderation endpoints instead.
func (s *Service) Update(ctx context.Context, id, userID int64, content string) (*CommentResponse, error) {
	c, err := s.comments.GetByID(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrCommentNotFound
		}
		return nil, err
	}
	if c.AuthorID != userID {
		return nil, ErrNotOwner
	}

	if err := s.comments.UpdateContent(ctx, id, content); err != nil {
		return nil, err
	}
	c.Content = content
	resp := toResponse(c)
	return &resp, nil
}

// Delete removes a comment. The author or an admin may delete.
func (s *Service) Delete(ctx context.Context, id, userID int64, isAdmin bool) error {
	c, err := s.comments.GetByID(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return ErrCommentNotFound
		}
		return err
	}
	if c.AuthorID != userID && !isAdmin {
		return ErrNotOwner
	}
	return s.comments.Delete(ctx, id)
}

// ListByPost returns a page of comments for a post, newest first.
func (s *Service) ListByPost(ctx context.Context, postID int64, page, limit int) (*CommentListResponse, error) {
	page, limit = clampPage(page, limit)

	if _, err := s.posts.GetByID(ctx, postID); err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}

	comments, total, err := s.comments.ListByPost(ctx, postID, page, limit)
	if err != nil {
		return nil, err
	}
	return toList(comments, total, page, limit), nil
}

func (s *Service) ListByAuthor(ctx context.Context, authorID int64, page, limit int) (*CommentListResponse, error) {
	page, limit = clampPage(page, limit)

	comments, total, err := s.comments.ListByAuthor(ctx, authorID, page, limit)
	if err != nil {
		return nil, err
	}
	return toList(comments, total, page, limit), nil
}

func clampPage(page, limit int) (int, int) {
	if page < 1 {
		page = defaultPage
	}
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return page, limit
}
