package band

import "errors"

var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("band not found")
)
