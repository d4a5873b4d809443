package booking

import (
	"context"
	"errors"
	"time"

	"homeservices/internal/domain"

	"gorm.io/gorm"
)

// Service is the booking engine. Every operation takes the resolved
// caller identity explicitly and validates against stored state, never
// against client-supplied state.
type Service struct {
	bookings BookingRepository
	catalog  CatalogReader
	services RegisteredServices
	now      clock
}

func NewService(bookings BookingRepository, catalog CatalogReader, services RegisteredServices) *Service {
	return &Service{
		bookings: bookings,
		catalog:  catalog,
		services: services,
		now:      time.Now,
	}
}

// Create opens a pending, unclaimed booking with the subcategory price
// snapshotted at creation time.
func (s *Service) Create(ctx context.Context, caller domain.Identity, req CreateBookingRequest) (*domain.Booking, error) {
	if len(req.Notes) > domain.MaxNotesLength {
		return nil, ErrValidation
	}

	now := s.now().UTC()
	if !req.ServiceDate.After(now) {
		return nil, ErrValidation
	}

	sub, err := s.catalog.GetSubcategoryByID(ctx, req.SubcategoryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSubcategoryNotFound
		}
		return nil, err
	}

	b := &domain.Booking{
		Customer:      caller.Username,
		SubcategoryID: sub.ID,
		BookingDate:   now,
		ServiceDate:   req.ServiceDate.UTC(),
		TotalPrice:    sub.Price,
		Status:        domain.BookingPending,
		PaymentStatus: domain.PaymentUnpaid,
		Notes:         req.Notes,
	}

	if err := s.bookings.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *Service) ListForCustomer(ctx context.Context, caller domain.Identity) ([]BookingView, error) {
	rows, err := s.bookings.ListByCustomer(ctx, caller.Username)
	if err != nil {
		return nil, err
	}
	return s.toViews(ctx, rows)
}

// GetForCustomer returns the caller's own booking. Bookings of other
// customers read as not found.
func (s *Service) GetForCustomer(ctx context.Context, caller domain.Identity, bookingID int64) (*BookingView, error) {
	b, err := s.getOwnedByCustomer(ctx, caller, bookingID)
	if err != nil {
		return nil, err
	}
	return s.toView(ctx, b)
}

// CancelByCustomer is the only status update a customer may request.
func (s *Service) CancelByCustomer(ctx context.Context, caller domain.Identity, bookingID int64, newStatus string) (*BookingView, error) {
	if domain.BookingStatus(newStatus) != domain.BookingCancelled {
		return nil, ErrValidation
	}

	ok, err := s.bookings.CancelByCustomer(ctx, bookingID, caller.Username)
	if err != nil {
		return nil, err
	}
	if !ok {
		// distinguish a missing/foreign booking from a terminal one
		b, err := s.getOwnedByCustomer(ctx, caller, bookingID)
		if err != nil {
			return nil, err
		}
		if b.Terminal() {
			return nil, ErrInvalidStatusTransition
		}
		return nil, ErrConflict
	}

	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	return s.toView(ctx, b)
}

// Pay settles a completed booking. Paying twice conflicts.
func (s *Service) Pay(ctx context.Context, caller domain.Identity, bookingID int64) (*BookingView, error) {
	ok, err := s.bookings.MarkPaid(ctx, bookingID, caller.Username)
	if err != nil {
		return nil, err
	}
	if !ok {
		// the booking exists and is the caller's, but is either not
		// completed yet or already paid
		if _, err := s.getOwnedByCustomer(ctx, caller, bookingID); err != nil {
			return nil, err
		}
		return nil, ErrConflict
	}

	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	return s.toView(ctx, b)
}

// OpenRequests is the provider's feed: pending, unclaimed, not declined
// by the caller, and limited to the caller's registered services. A
// provider with no registered services sees an empty feed.
func (s *Service) OpenRequests(ctx context.Context, caller domain.Identity) ([]RequestFeedItem, error) {
	subIDs, err := s.services.ListProviderServiceIDs(ctx, caller.UserID)
	if err != nil {
		return nil, err
	}
	if len(subIDs) == 0 {
		return []RequestFeedItem{}, nil
	}

	rows, err := s.bookings.ListOpenRequests(ctx, caller.Username, subIDs)
	if err != nil {
		return nil, err
	}

	names, err := s.serviceNames(ctx, rows)
	if err != nil {
		return nil, err
	}

	out := make([]RequestFeedItem, 0, len(rows))
	for _, b := range rows {
		out = append(out, RequestFeedItem{
			ID:          b.ID,
			ServiceName: names[b.SubcategoryID],
			Customer:    b.Customer,
			ServiceDate: b.ServiceDate,
			TotalPrice:  b.TotalPrice,
			Status:      string(b.Status),
			CreatedAt:   b.CreatedAt,
		})
	}
	return out, nil
}

// Accept claims a pending, unclaimed booking for the caller. Not-found,
// already-taken, and unregistered-service all collapse into ErrNotFound
// so callers cannot probe booking state.
func (s *Service) Accept(ctx context.Context, caller domain.Identity, bookingID int64) (*BookingView, error) {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	registered, err := s.services.HasProviderService(ctx, caller.UserID, b.SubcategoryID)
	if err != nil {
		return nil, err
	}
	if !registered {
		return nil, ErrNotFound
	}

	claimed, err := s.bookings.ClaimPending(ctx, bookingID, caller.Username)
	if err != nil {
		return nil, err
	}
	if !claimed {
		return nil, ErrNotFound
	}

	b, err = s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	return s.toView(ctx, b)
}

// Decline adds the caller to the booking's decline list. Re-declining is
// a no-op, not an error.
func (s *Service) Decline(ctx context.Context, caller domain.Identity, bookingID int64) (*BookingView, error) {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if b.Status != domain.BookingPending || b.Provider != "" {
		return nil, ErrNotFound
	}

	if err := s.bookings.AddDecline(ctx, bookingID, caller.Username); err != nil {
		return nil, err
	}

	b, err = s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	return s.toView(ctx, b)
}

func (s *Service) ActiveForProvider(ctx context.Context, caller domain.Identity) ([]BookingView, error) {
	rows, err := s.bookings.ListActiveByProvider(ctx, caller.Username)
	if err != nil {
		return nil, err
	}
	return s.toViews(ctx, rows)
}

// AdvanceStatus drives the booking along the fixed transition table on
// behalf of the assigned provider. Completing with cod pays the booking
// in the same write; completing with online leaves payment pending for
// the customer's explicit Pay call.
func (s *Service) AdvanceStatus(ctx context.Context, caller domain.Identity, bookingID int64, req AdvanceStatusRequest) (*BookingView, error) {
	newStatus := domain.BookingStatus(req.Status)
	if !domain.ValidBookingStatus(newStatus) {
		return nil, ErrValidation
	}

	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if b.Provider != caller.Username {
		return nil, ErrForbidden
	}
	if !domain.CanTransition(b.Status, newStatus) {
		return nil, ErrInvalidStatusTransition
	}

	var payment *domain.PaymentStatus
	var method *domain.PaymentMethod
	if newStatus == domain.BookingCompleted {
		m := domain.PaymentMethod(req.PaymentMethod)
		if req.PaymentMethod != "" && !domain.ValidPaymentMethod(m) {
			return nil, ErrValidation
		}

		status := domain.PaymentPending
		if m == domain.PaymentCOD {
			status = domain.PaymentPaid
		}
		payment = &status
		if req.PaymentMethod != "" {
			method = &m
		}
	}

	ok, err := s.bookings.AdvanceStatus(ctx, bookingID, b.Status, newStatus, payment, method)
	if err != nil {
		return nil, err
	}
	if !ok {
		// the stored status moved between read and write
		return nil, ErrInvalidStatusTransition
	}

	b, err = s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	return s.toView(ctx, b)
}

func (s *Service) getOwnedByCustomer(ctx context.Context, caller domain.Identity, bookingID int64) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if b.Customer != caller.Username {
		return nil, ErrNotFound
	}
	return b, nil
}

func (s *Service) serviceNames(ctx context.Context, rows []domain.Booking) (map[int64]string, error) {
	idSet := make(map[int64]struct{}, len(rows))
	ids := make([]int64, 0, len(rows))
	for _, b := range rows {
		if _, seen := idSet[b.SubcategoryID]; !seen {
			idSet[b.SubcategoryID] = struct{}{}
			ids = append(ids, b.SubcategoryID)
		}
	}

	subs, err := s.catalog.ListSubcategoriesByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	names := make(map[int64]string, len(subs))
	for _, sc := range subs {
		names[sc.ID] = sc.Name
	}
	return names, nil
}

func (s *Service) toView(ctx context.Context, b *domain.Booking) (*BookingView, error) {
	views, err := s.toViews(ctx, []domain.Booking{*b})
	if err != nil {
		return nil, err
	}
	return &views[0], nil
}

func (s *Service) toViews(ctx context.Context, rows []domain.Booking) ([]BookingView, error) {
	names, err := s.serviceNames(ctx, rows)
	if err != nil {
		return nil, err
	}

	out := make([]BookingView, 0, len(rows))
	for _, b := range rows {
		out = append(out, BookingView{
			ID:            b.ID,
			ServiceName:   names[b.SubcategoryID],
			Customer:      b.Customer,
			Provider:      b.Provider,
			BookingDate:   b.BookingDate,
			ServiceDate:   b.ServiceDate,
			TotalPrice:    b.TotalPrice,
			Status:        string(b.Status),
			PaymentStatus: string(b.PaymentStatus),
			PaymentMethod: string(b.PaymentMethod),
			Notes:         b.Notes,
			CreatedAt:     b.CreatedAt,
		})
	}
	return out, nil
}
