package provider

import "errors"

var (
	ErrAlreadyRegistered   = errors.New("service already registered")
	ErrNotRegistered       = errors.New("service not registered")
	ErrSubcategoryNotFound = errors.New("subcategory not found")
)
