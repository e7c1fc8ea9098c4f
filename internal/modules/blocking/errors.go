package blocking

import "errors"

var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("blocked time not found")
)
