package comment

import (
	"time"

	"blogapi/internal/domain"
)

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100
)

type CreateCommentRequest struct {
	PostID  int64  `json:"postId" binding:"required"`
	Content string `json:"content" binding:"required,max=2000"`
}

type UpdateCommentRequest struct {
	Content string `json:"content" binding:"required,max=2000"`
}

type AuthorSummary struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	AvatarURL string `json:"avatarUrl,omitempty"`
}

type CommentResponse struct {
	ID        int64          `json:"id"`
	Content   string         `json:"content"`
	PostID    int64          `json:"postId"`
	PostTitle string         `json:"postTitle,omitempty"`
	Author    *AuthorSummary `json:"author,omitempty"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

type PageMeta struct {
	TotalCount  int64 `json:"totalCount"`
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
	PerPage     int   `json:"perPage"`
}

type CommentListResponse struct {
	Items []CommentResponse `json:"items"`
	Meta  PageMeta          `json:"meta"`
}

func toResponse(c *domain.Comment) CommentResponse {
	resp := CommentResponse{
		ID:        c.ID,
		Content:   c.Content,
		PostID:    c.PostID,
		PostTitle: c.Post.Title,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
	if c.Author.ID != 0 {
		resp.Author = &AuthorSummary{
			ID:        c.Author.ID,
			FirstName: c.Author.FirstName,
			LastName:  c.Author.LastName,
			AvatarURL: c.Author.AvatarURL,
		}
	}
	return resp
}

func toList(comments []domain.Comment, total int64, page, limit int) *CommentListResponse {
	items := make([]CommentResponse, 0, len(comments))
	for i := range comments {
		items = append(items, toResponse(&comments[i]))
	}
	totalPages := int(total) / limit
	if int(total)%limit != 0 {
		totalPages++
	}
	return &CommentListResponse{
		Items: items,
		Meta: PageMeta{
			TotalCount:  total,
			CurrentPage: page,
			TotalPages:  totalPages,
			PerPage:     limit,
		},
	}
}
