package domain

import "time"

type MediaType string

const (
	MediaTypeAvatar MediaType = "avatar"
	MediaTypePost   MediaType = "post"
)

// Media represents an uploaded file stored on local disk and served under
// the static route.
type Media struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	URL       string    `json:"url" gorm:"not null"`
	Thumbnail string    `json:"thumbnail,omitempty"`
	Type      MediaType `json:"type" gorm:"index;not null"`

	UploadedBy int64  `json:"uploaded_by" gorm:"index;not null"`
	PostID     *int64 `json:"post_id,omitempty" gorm:"index"`

	Alt           string `json:"alt,omitempty"`
	FilePath      string `json:"-"`
	ThumbnailPath string `json:"-"`
	MimeType      string `json:"mime_type"`
	Size          int64  `json:"size"`

	CreatedAt time.Time `json:"created_at"`
}
