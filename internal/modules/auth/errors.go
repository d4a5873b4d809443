package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUsernameTaken      = errors.New("username already registered")
	ErrInvalidUserType    = errors.New("invalid user type")
	ErrInvalidRole        = errors.New("invalid role for user type")
)
