package settings

import "errors"

var (
	ErrValidation  = errors.New("validation error")
	ErrNotFound    = errors.New("not found")
	ErrDateVisible = errors.New("date already visible")
)
