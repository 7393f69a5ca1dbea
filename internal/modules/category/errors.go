package category

import "blogapi/internal/pkg/apperr"

var (
	ErrCategoryNotFound = apperr.New(apperr.NotFound, "Category not found")
	ErrNameTaken        = apperr.New(apperr.Conflict, "A category with this name already exists")
	ErrCategoryInUse    = apperr.New(apperr.Invalid, "Category still has posts attached")
)
