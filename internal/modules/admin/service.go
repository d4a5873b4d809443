package admin

import (
	"context"

	"homeservices/internal/domain"
)

// Service aggregates platform-wide numbers for the admin dashboard. It
// only reads; booking and user mutations happen in their own modules.
type Service struct {
	users    UserCounter
	catalog  CategoryCounter
	bookings BookingCounter
}

func NewService(users UserCounter, catalog CategoryCounter, bookings BookingCounter) *Service {
	return &Service{
		users:    users,
		catalog:  catalog,
		bookings: bookings,
	}
}

func (s *Service) Analytics(ctx context.Context) (*AnalyticsResponse, error) {
	totalUsers, err := s.users.Count(ctx)
	if err != nil {
		return nil, err
	}

	totalProviders, err := s.users.CountByUserType(ctx, domain.TypeServiceProvider)
	if err != nil {
		return nil, err
	}

	totalServices, err := s.catalog.CountCategories(ctx)
	if err != nil {
		return nil, err
	}

	totalBookings, err := s.bookings.Count(ctx)
	if err != nil {
		return nil, err
	}

	return &AnalyticsResponse{
		TotalUsers:     totalUsers,
		TotalProviders: totalProviders,
		TotalServices:  totalServices,
		TotalBookings:  totalBookings,
	}, nil
}

func (s *Service) ListUsers(ctx context.Context) ([]UserRow, error) {
	users, err := s.users.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]UserRow, 0, len(users))
	for _, u := range users {
		out = append(out, UserRow{
			ID:       u.ID,
			Username: u.Username,
			UserType: string(u.UserType),
			Role:     u.Role,
			IsActive: u.IsActive,
		})
	}
	return out, nil
}
