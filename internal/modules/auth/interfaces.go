package auth

import (
	"context"

	"homeservices/internal/domain"
)

// UserRepository is the slice of the user store the auth service uses.
type UserRepository interface {
	Create(ctx context.Context, u *domain.User) error
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ListActive(ctx context.Context) ([]domain.User, error)
}
