package category

import (
	"context"
	"strings"

	"blogapi/internal/domain"
	"blogapi/internal/repository"
)

type Service struct {
	categories CategoryRepository
}

func NewService(categories CategoryRepository) *Service {
	return &Service{categories: categories}
}

// Create adds a category with a unique name. Admin only at the route
// level.
func (s *Service) Create(ctx context.Context, req CreateCategoryRequest) (*CategoryResponse, error) {
	name := strings.TrimSpace(req.Name)

	exists, err := s.categories.ExistsByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrNameTaken
	}

	c := &domain.Category{Name: name, Description: req.Description}
	if err := s.categories.Create(ctx, c); err != nil {
		if repository.IsDuplicate(err) {
			return nil, ErrNameTaken
		}
		return nil, err
	}
	resp := toResponse(c, 0)
	return &resp, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*CategoryResponse, error) {
	c, err := s.categories.GetByID(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	count, err := s.categories.PostCount(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toResponse(c, count)
	return &resp, nil
}

func (s *Service) Update(ctx context.Context, id int64, req UpdateCategoryRequest) (*CategoryResponse, error) {
	c, err := s.categories.GetByID(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name != c.Name {
			exists, err := s.categories.ExistsByName(ctx, name)
			if err != nil {
				return nil, err
			}
			if exists {
				return nil, ErrNameTaken
			}
			c.Name = name
		}
	}
	if req.Description != nil {
		c.Description = *req.Description
	}

	if err := s.categories.Update(ctx, c); err != nil {
		if repository.IsDuplicate(err) {
			return nil, ErrNameTaken
		}
		return nil, err
	}

	count, err := s.categories.PostCount(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toResponse(c, count)
	return &resp, nil
}

// Delete refuses to remove a category that still has posts attached.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.categories.GetByID(ctx, id); err != nil {
		if repository.IsNotFound(err) {
			return ErrCategoryNotFound
		}
		return err
	}

	count, err := s.categories.PostCount(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrCategoryInUse
	}
	return s.categories.Delete(ctx, id)
}

// List returns all categories ordered by name with their post counts.
func (s *Service) List(ctx context.Context) ([]CategoryResponse, error) {
	categories, err := s.categories.List(ctx)
	if err != nil {
		return nil, err
	}
	counts, err := s.categories.PostCounts(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]CategoryResponse, 0, len(categories))
	for i := range categories {
		out = append(out, toResponse(&categories[i], counts[categories[i].ID]))
	}
	return out, nil
}
