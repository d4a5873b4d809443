package provider

import (
	"context"
	"errors"
	"time"

	"homeservices/internal/domain"

	"gorm.io/gorm"
)

// Service covers the provider's self-management surface: the registered
// service set, earnings aggregation, and booking stats. Booking mutations
// themselves go through the booking engine.
type Service struct {
	registry ServiceRegistry
	catalog  CatalogReader
	earnings EarningsReader
	now      func() time.Time
}

func NewService(registry ServiceRegistry, catalog CatalogReader, earnings EarningsReader) *Service {
	return &Service{
		registry: registry,
		catalog:  catalog,
		earnings: earnings,
		now:      time.Now,
	}
}

func (s *Service) ListServices(ctx context.Context, caller domain.Identity) ([]RegisteredService, error) {
	ids, err := s.registry.ListProviderServiceIDs(ctx, caller.UserID)
	if err != nil {
		return nil, err
	}

	subs, err := s.catalog.ListSubcategoriesByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	out := make([]RegisteredService, 0, len(subs))
	for _, sc := range subs {
		out = append(out, RegisteredService{
			ID:          sc.ID,
			Name:        sc.Name,
			Description: sc.Description,
			Price:       sc.Price,
			CategoryID:  sc.CategoryID,
		})
	}
	return out, nil
}

// RegisterService opts the provider in to a subcategory. Registering the
// same subcategory twice is an error.
func (s *Service) RegisterService(ctx context.Context, caller domain.Identity, subcategoryID int64) (*RegisteredService, error) {
	sub, err := s.catalog.GetSubcategoryByID(ctx, subcategoryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSubcategoryNotFound
		}
		return nil, err
	}

	registered, err := s.registry.HasProviderService(ctx, caller.UserID, subcategoryID)
	if err != nil {
		return nil, err
	}
	if registered {
		return nil, ErrAlreadyRegistered
	}

	if err := s.registry.AddProviderService(ctx, caller.UserID, subcategoryID); err != nil {
		return nil, err
	}

	return &RegisteredService{
		ID:          sub.ID,
		Name:        sub.Name,
		Description: sub.Description,
		Price:       sub.Price,
		CategoryID:  sub.CategoryID,
	}, nil
}

// UnregisterService removes a subcategory from the provider's set;
// removing one that was never registered is an error.
func (s *Service) UnregisterService(ctx context.Context, caller domain.Identity, subcategoryID int64) error {
	removed, err := s.registry.RemoveProviderService(ctx, caller.UserID, subcategoryID)
	if err != nil {
		return err
	}
	if !removed {
		return ErrNotRegistered
	}
	return nil
}

// Earnings sums the caller's completed-booking revenue lifetime, for the
// current calendar month, for the trailing 7 days, and per service.
func (s *Service) Earnings(ctx context.Context, caller domain.Identity) (*EarningsResponse, error) {
	total, err := s.earnings.SumCompletedByProvider(ctx, caller.Username, nil)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	weekStart := now.AddDate(0, 0, -7)

	thisMonth, err := s.earnings.SumCompletedByProvider(ctx, caller.Username, &monthStart)
	if err != nil {
		return nil, err
	}
	lastWeek, err := s.earnings.SumCompletedByProvider(ctx, caller.Username, &weekStart)
	if err != nil {
		return nil, err
	}

	rows, err := s.earnings.EarningsByService(ctx, caller.Username)
	if err != nil {
		return nil, err
	}

	byService := make([]ServiceEarningsItem, 0, len(rows))
	for _, r := range rows {
		byService = append(byService, ServiceEarningsItem{
			ServiceName: r.ServiceName,
			Bookings:    r.Bookings,
			Total:       r.Total,
		})
	}

	return &EarningsResponse{
		Total:     total,
		ThisMonth: thisMonth,
		Last7Days: lastWeek,
		ByService: byService,
	}, nil
}

func (s *Service) Stats(ctx context.Context, caller domain.Identity) (*StatsResponse, error) {
	rows, err := s.earnings.CountByProviderStatus(ctx, caller.Username)
	if err != nil {
		return nil, err
	}

	stats := &StatsResponse{}
	for _, r := range rows {
		stats.Total += r.Count
		switch domain.BookingStatus(r.Status) {
		case domain.BookingAccepted:
			stats.Accepted = r.Count
		case domain.BookingConfirmed:
			stats.Confirmed = r.Count
		case domain.BookingCompleted:
			stats.Completed = r.Count
		case domain.BookingCancelled:
			stats.Cancelled = r.Count
		}
	}
	return stats, nil
}
