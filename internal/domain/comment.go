package domain

import "time"

type Comment struct {
	ID      int64  `json:"id" gorm:"primaryKey"`
	Content string `json:"content" gorm:"type:text;not null"`

	PostID int64 `json:"post_id" gorm:"index;not null"`
	Post   Post  `json:"-" gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`

	AuthorID int64 `json:"author_id" gorm:"index;not null"`
	Author   User  `json:"-" gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
