package booking

import "errors"

var (
	ErrValidation              = errors.New("validation error")
	ErrNotFound                = errors.New("booking not found")
	ErrSubcategoryNotFound     = errors.New("subcategory not found")
	ErrForbidden               = errors.New("forbidden")
	ErrConflict                = errors.New("conflicting booking state")
	ErrInvalidStatusTransition = errors.New("invalid status transition")
)
