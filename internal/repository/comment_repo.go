package repository

import (
	"context"

	"blogapi/internal/domain"

	"gorm.io/gorm"
)

type CommentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

func (r *CommentRepository) Create(ctx context.Context, c *domain.Comment) error {
	if err := r.db.WithContext(ctx).Create(c).Error; err != nil {
		return err
	}
	return r.db.WithContext(ctx).
		Preload("Author").
		Preload("Post").
		First(c, c.ID).Error
}

func (r *CommentRepository) GetByID(ctx context.Context, id int64) (*domain.Comment, error) {
	var c domain.Comment
	err := r.db.WithContext(ctx).
		Preload("Author").
		Preload("Post").
		First(&c, id).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CommentRepository) UpdateContent(ctx context.Context, id int64, content string) error {
	return r.db.WithContext(ctx).Model(&domain.Comment{}).
		Where("id = ?", id).
		Update("content", content).Error
}

func (r *CommentRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&domain.Comment{}, id).Error
}

func (r *CommentRepository) ListByPost(ctx context.Context, postID int64, page, limit int) ([]domain.Comment, int64, error) {
	return r.list(ctx, "post_id = ?", postID, page, limit)
}

func (r *CommentRepository) ListByAuthor(ctx context.Context, authorID int64, page, limit int) ([]domain.Comment, int64, error) {
	return r.list(ctx, "author_id = ?", authorID, page, limit)
}

func (r *CommentRepository) list(ctx context.Context, cond string, arg int64, page, limit int) ([]domain.Comment, int64, error) {
	query := r.db.WithContext(ctx).Model(&domain.Comment{}).Where(cond, arg)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var comments []domain.Comment
	err := query.
		Preload("Author").
		Preload("Post").
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&comments).Error
	return comments, total, err
}

func (r *CommentRepository) CountByAuthor(ctx context.Context, authorID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Comment{}).
		Where("author_id = ?", authorID).
		Count(&count).Error
	return count, err
}

func (r *CommentRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Comment{}).Count(&count).Error
	return count, err
}
