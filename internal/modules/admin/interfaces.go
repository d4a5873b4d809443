package admin

import (
	"context"

	"homeservices/internal/domain"
)

type UserCounter interface {
	Count(ctx context.Context) (int64, error)
	CountByUserType(ctx context.Context, t domain.UserType) (int64, error)
	ListActive(ctx context.Context) ([]domain.User, error)
}

type CategoryCounter interface {
	CountCategories(ctx context.Context) (int64, error)
}

type BookingCounter interface {
	Count(ctx context.Context) (int64, error)
}
