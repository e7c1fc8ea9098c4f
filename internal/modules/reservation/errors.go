package reservation

import "errors"

var (
	ErrValidation   = errors.New("validation error")
	ErrConflict     = errors.New("slot already reserved")
	ErrBlocked      = errors.New("slot is blocked")
	ErrNotOpen      = errors.New("reservations are not open yet")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("reservation not found")
	ErrBandNotFound = errors.New("band not found")
)
