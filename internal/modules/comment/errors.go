package comment

import "blogapi/internal/pkg/apperr"

var (
	ErrCommentNotFound = apperr.New(apperr.NotFound, "Comment not found")
	ErrPostNotFound    = apperr.New(apperr.NotFound, "Post not found")
	ErrNotOwner        = apperr.New(apperr.Forbidden, "You do not own this comment")
)
