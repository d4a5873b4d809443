package provider

import (
	"context"
	"time"

	"homeservices/internal/domain"
	"homeservices/internal/repository"

	"github.com/shopspring/decimal"
)

// ServiceRegistry is the slice of the user store holding a provider's
// registered-service set.
type ServiceRegistry interface {
	AddProviderService(ctx context.Context, userID, subcategoryID int64) error
	RemoveProviderService(ctx context.Context, userID, subcategoryID int64) (bool, error)
	HasProviderService(ctx context.Context, userID, subcategoryID int64) (bool, error)
	ListProviderServiceIDs(ctx context.Context, userID int64) ([]int64, error)
}

type CatalogReader interface {
	GetSubcategoryByID(ctx context.Context, id int64) (*domain.ServiceSubcategory, error)
	ListSubcategoriesByIDs(ctx context.Context, ids []int64) ([]domain.ServiceSubcategory, error)
}

// EarningsReader aggregates a provider's completed-booking revenue.
type EarningsReader interface {
	SumCompletedByProvider(ctx context.Context, provider string, since *time.Time) (decimal.Decimal, error)
	EarningsByService(ctx context.Context, provider string) ([]repository.ServiceEarnings, error)
	CountByProviderStatus(ctx context.Context, provider string) ([]repository.StatusCount, error)
}
