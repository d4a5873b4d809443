package booking

import (
	"context"
	"time"

	"homeservices/internal/domain"
)

// BookingRepository defines the persistence surface of the booking engine.
// The conditional mutations (claim, advance, pay, cancel) re-derive their
// preconditions inside the store and report whether the write happened.
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	ListByCustomer(ctx context.Context, customer string) ([]domain.Booking, error)
	ListOpenRequests(ctx context.Context, provider string, subcategoryIDs []int64) ([]domain.Booking, error)
	ListActiveByProvider(ctx context.Context, provider string) ([]domain.Booking, error)
	ClaimPending(ctx context.Context, bookingID int64, provider string) (bool, error)
	AddDecline(ctx context.Context, bookingID int64, provider string) error
	AdvanceStatus(ctx context.Context, bookingID int64, from, to domain.BookingStatus, payment *domain.PaymentStatus, method *domain.PaymentMethod) (bool, error)
	MarkPaid(ctx context.Context, bookingID int64, customer string) (bool, error)
	CancelByCustomer(ctx context.Context, bookingID int64, customer string) (bool, error)
}

// CatalogReader resolves subcategories for price snapshots and display names.
type CatalogReader interface {
	GetSubcategoryByID(ctx context.Context, id int64) (*domain.ServiceSubcategory, error)
	ListSubcategoriesByIDs(ctx context.Context, ids []int64) ([]domain.ServiceSubcategory, error)
}

// RegisteredServices exposes a provider's registered-service set.
type RegisteredServices interface {
	HasProviderService(ctx context.Context, userID, subcategoryID int64) (bool, error)
	ListProviderServiceIDs(ctx context.Context, userID int64) ([]int64, error)
}

type clock func() time.Time
