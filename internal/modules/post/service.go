package post

import (
	"context"

	"blogapi/internal/domain"
	"blogapi/internal/repository"
)

type Service struct {
	posts      PostRepository
	categories CategoryReader
}

func NewService(posts PostRepository, categories CategoryReader) *Service {
	return &Service{posts: posts, categories: categories}
}

func (s *Service) Create(ctx context.Context, authorID int64, req CreatePostRequest) (*PostResponse, error) {
	categories, err := s.resolveCategories(ctx, req.CategoryIDs)
	if err != nil {
		return nil, err
	}

	status := domain.PostStatusPublished
	if req.Status != "" {
		status = domain.PostStatus(req.Status)
	}

	p := &domain.Post{
		Title:      req.Title,
		Content:    req.Content,
		Status:     status,
		AuthorID:   authorID,
		Categories: categories,
	}
	if err := s.posts.Create(ctx, p); err != nil {
		return nil, err
	}

	created, err := s.posts.GetByID(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	resp := toResponse(created, 0)
	return &resp, nil
}

// GetByID returns a single post with its comment count. Drafts are not
// exposed through this lookup.
func (s *Service) GetByID(ctx context.Context, id int64) (*PostResponse, error) {
	p, err := s.posts.GetByID(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	if p.Status != domain.PostStatusPublished {
		return nil, ErrPostNotFound
	}

	count, err := s.posts.CommentCount(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toResponse(p, count)
	return &resp, nil
}

// Update applies partial changes. Only the author may modify a post.
func (s *Service) Update(ctx context.Context, id, userID int64, req UpdatePostRequest) (*PostResponse, error) {
	p, err := s.posts.GetByID(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	if p.AuthorID != userID {
		return nil, ErrNotOwner
	}

	if req.Title != nil {
		p.Title = *req.Title
	}
	if req.Content != nil {
		p.Content = *req.Content
	}
	if req.Status != nil {
		p.Status = domain.PostStatus(*req.Status)
	}
	if err := s.posts.Update(ctx, p); err != nil {
		return nil, err
	}

	if req.CategoryIDs != nil {
		categories, err := s.resolveCategories(ctx, *req.CategoryIDs)
		if err != nil {
			return nil, err
		}
		if err := s.posts.ReplaceCategories(ctx, p, categories); err != nil {
			return nil, err
		}
	}

	updated, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	count, err := s.posts.CommentCount(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toResponse(updated, count)
	return &resp, nil
}

// Delete removes a post. The author or an admin may delete.
func (s *Service) Delete(ctx context.Context, id, userID int64, isAdmin bool) error {
	p, err := s.posts.GetByID(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return ErrPostNotFound
		}
		return err
	}
	if p.AuthorID != userID && !isAdmin {
		return ErrNotOwner
	}
	return s.posts.Delete(ctx, id)
}

// Search lists published posts matching the query, newest first.
func (s *Service) Search(ctx context.Context, q SearchQuery) (*PostListResponse, error) {
	q.normalize()

	posts, total, err := s.posts.Search(ctx, q.Q, q.Page, q.Limit)
	if err != nil {
		return nil, err
	}
	return s.buildList(ctx, posts, total, q.Page, q.Limit)
}

// ListByAuthor returns every post by the user, drafts included.
func (s *Service) ListByAuthor(ctx context.Context, authorID int64, page, limit int) (*PostListResponse, error) {
	q := SearchQuery{Page: page, Limit: limit}
	q.normalize()

	posts, total, err := s.posts.ListByAuthor(ctx, authorID, q.Page, q.Limit)
	if err != nil {
		return nil, err
	}
	return s.buildList(ctx, posts, total, q.Page, q.Limit)
}

func (s *Service) buildList(ctx context.Context, posts []domain.Post, total int64, page, limit int) (*PostListResponse, error) {
	items := make([]PostResponse, 0, len(posts))
	for i := range posts {
		count, err := s.posts.CommentCount(ctx, posts[i].ID)
		if err != nil {
			return nil, err
		}
		items = append(items, toResponse(&posts[i], count))
	}
	return &PostListResponse{Items: items, Meta: newPageMeta(total, page, limit)}, nil
}

func (s *Service) resolveCategories(ctx context.Context, ids []int64) ([]domain.Category, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	categories, err := s.categories.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	if len(categories) != len(uniqueIDs(ids)) {
		return nil, ErrUnknownCategory
	}
	return categories, nil
}

func uniqueIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := ids[:0:0]
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
