package domain

import "time"

type PostStatus string

const (
	PostStatusDraft     PostStatus = "draft"
	PostStatusPublished PostStatus = "published"
)

type Post struct {
	ID      int64      `json:"id" gorm:"primaryKey"`
	Title   string     `json:"title" gorm:"not null"`
	Content string     `json:"content" gorm:"type:text"`
	Status  PostStatus `json:"status" gorm:"index;not null;default:published"`

	AuthorID int64 `json:"author_id" gorm:"index;not null"`
	Author   User  `json:"-" gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`

	Categories []Category `json:"categories,omitempty" gorm:"many2many:post_categories;"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
