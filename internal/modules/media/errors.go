package media

import "blogapi/internal/pkg/apperr"

var (
	ErrEmptyFile       = apperr.New(apperr.Invalid, "Uploaded file is empty")
	ErrFileTooLarge    = apperr.New(apperr.Invalid, "File exceeds the maximum allowed size")
	ErrInvalidMimeType = apperr.New(apperr.Invalid, "Only image uploads are allowed")
	ErrInvalidType     = apperr.New(apperr.Invalid, "Media type must be avatar or post")
	ErrMediaNotFound   = apperr.New(apperr.NotFound, "Media not found")
	ErrPostNotFound    = apperr.New(apperr.NotFound, "Post not found")
	ErrNotOwner        = apperr.New(apperr.Forbidden, "You do not own this resource")
)
