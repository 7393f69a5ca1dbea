package post

import "blogapi/internal/pkg/apperr"

var (
	ErrPostNotFound    = apperr.New(apperr.NotFound, "Post not found")
	ErrNotOwner        = apperr.New(apperr.Forbidden, "You do not own this post")
	ErrUnknownCategory = apperr.New(apperr.Invalid, "One or more category IDs do not exist")
)
