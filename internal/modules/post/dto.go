package post

import (
	"time"

	"blogapi/internal/domain"
)

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100
)

type CreatePostRequest struct {
	Title       string  `json:"title" binding:"required,max=200"`
	Content     string  `json:"content" binding:"required"`
	Status      string  `json:"status" binding:"omitempty,oneof=draft published"`
	CategoryIDs []int64 `json:"categoryIds"`
}

type UpdatePostRequest struct {
	Title       *string  `json:"title,omitempty" binding:"omitempty,max=200"`
	Content     *string  `json:"content,omitempty"`
	Status      *string  `json:"status,omitempty" binding:"omitempty,oneof=draft published"`
	CategoryIDs *[]int64 `json:"categoryIds,omitempty"`
}

type SearchQuery struct {
	Q     string `form:"q"`
	Page  int    `form:"page"`
	Limit int    `form:"limit"`
}

func (q *SearchQuery) normalize() {
	if q.Page < 1 {
		q.Page = defaultPage
	}
	if q.Limit < 1 {
		q.Limit = defaultLimit
	}
	if q.Limit > maxLimit {
		q.Limit = maxLimit
	}
}

type AuthorSummary struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	AvatarURL string `json:"avatarUrl,omitempty"`
}

type PostResponse struct {
	ID           int64             `json:"id"`
	Title        string            `json:"title"`
	Content      string            `json:"content"`
	Status       string            `json:"status"`
	Author       *AuthorSummary    `json:"author,omitempty"`
	Categories   []domain.Category `json:"categories"`
	CommentCount int64             `json:"commentCount"`
	CreatedAt    time.Time         `json:"createdAt"`
	UpdatedAt    time.Time         `json:"updatedAt"`
}

type PageMeta struct {
	TotalCount  int64 `json:"totalCount"`
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
	PerPage     int   `json:"perPage"`
}

type PostListResponse struct {
	Items []PostResponse `json:"items"`
	Meta  PageMeta       `json:"meta"`
}

func newPageMeta(total int64, page, limit int) PageMeta {
	totalPages := int(total) / limit
	if int(total)%limit != 0 {
		totalPages++
	}
	return PageMeta{
		TotalCount:  total,
		CurrentPage: page,
		TotalPages:  totalPages,
		PerPage:     limit,
	}
}

func toResponse(p *domain.Post, commentCount int64) PostResponse {
	resp := PostResponse{
		ID:           p.ID,
		Title:        p.Title,
		Content:      p.Content,
		Status:       string(p.Status),
		Categories:   p.Categories,
		CommentCount: commentCount,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
	if resp.Categories == nil {
		resp.Categories = []domain.Category{}
	}
	if p.Author.ID != 0 {
		resp.Author = &AuthorSummary{
			ID:        p.Author.ID,
			FirstName: p.Author.FirstName,
			LastName:  p.Author.LastName,
			AvatarURL: p.Author.AvatarURL,
		}
	}
	return resp
}
