package tag

import "errors"

var (
	ErrTagNotFound  = errors.New("tag not found")
	ErrDuplicateTag = errors.New("tag with this name, color or slug already exists")
)
