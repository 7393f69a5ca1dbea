package repository

import (
	"context"
	"strings"

	"blogapi/internal/domain"

	"gorm.io/gorm"
)

type PostRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) *PostRepository {
	return &PostRepository{db: db}
}

func (r *PostRepository) Create(ctx context.Context, p *domain.Post) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *PostRepository) GetByID(ctx context.Context, id int64) (*domain.Post, error) {
	var p domain.Post
	err := r.db.WithContext(ctx).
		Preload("Author").
		Preload("Categories").
		First(&p, id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PostRepository) Update(ctx context.Context, p *domain.Post) error {
	return r.db.WithContext(ctx).Save(p).Error
}

// ReplaceCategories rewires the many2many association to exactly the given
// set.
func (r *PostRepository) ReplaceCategories(ctx context.Context, p *domain.Post, categories []domain.Category) error {
	return r.db.WithContext(ctx).Model(p).Association("Categories").Replace(categories)
}

func (r *PostRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Select("Categories").Delete(&domain.Post{ID: id}).Error
}

// Search lists published posts matching q over title or content, newest
// first, with author and categories preloaded.
func (r *PostRepository) Search(ctx context.Context, q string, page, limit int) ([]domain.Post, int64, error) {
	query := r.db.WithContext(ctx).Model(&domain.Post{}).
		Where("status = ?", domain.PostStatusPublished)

	if q != "" {
		pattern := "%" + strings.ToLower(q) + "%"
		query = query.Where("LOWER(title) LIKE ? OR LOWER(content) LIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var posts []domain.Post
	err := query.
		Preload("Author").
		Preload("Categories").
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&posts).Error
	return posts, total, err
}

func (r *PostRepository) ListByAuthor(ctx context.Context, authorID int64, page, limit int) ([]domain.Post, int64, error) {
	query := r.db.WithContext(ctx).Model(&domain.Post{}).Where("author_id = ?", authorID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var posts []domain.Post
	err := query.
		Preload("Categories").
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&posts).Error
	return posts, total, err
}

func (r *PostRepository) CommentCount(ctx context.Context, postID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Comment{}).
		Where("post_id = ?", postID).
		Count(&count).Error
	return count, err
}

func (r *PostRepository) CountByAuthor(ctx context.Context, authorID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Post{}).
		Where("author_id = ?", authorID).
		Count(&count).Error
	return count, err
}

func (r *PostRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Post{}).Count(&count).Error
	return count, err
}
