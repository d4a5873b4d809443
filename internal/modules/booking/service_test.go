package booking

import (
	"context"
	"testing"
	"time"

	"homeservices/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

// Mock repositories
type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	if b != nil {
		b.ID = 999 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockBookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) ListByCustomer(ctx context.Context, customer string) ([]domain.Booking, error) {
	args := m.Called(ctx, customer)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) ListOpenRequests(ctx context.Context, provider string, subcategoryIDs []int64) ([]domain.Booking, error) {
	args := m.Called(ctx, provider, subcategoryIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) ListActiveByProvider(ctx context.Context, provider string) ([]domain.Booking, error) {
	args := m.Called(ctx, provider)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) ClaimPending(ctx context.Context, bookingID int64, provider string) (bool, error) {
	args := m.Called(ctx, bookingID, provider)
	return args.Bool(0), args.Error(1)
}

func (m *MockBookingRepository) AddDecline(ctx context.Context, bookingID int64, provider string) error {
	args := m.Called(ctx, bookingID, provider)
	return args.Error(0)
}

func (m *MockBookingRepository) AdvanceStatus(ctx context.Context, bookingID int64, from, to domain.BookingStatus, payment *domain.PaymentStatus, method *domain.PaymentMethod) (bool, error) {
	args := m.Called(ctx, bookingID, from, to, payment, method)
	return args.Bool(0), args.Error(1)
}

func (m *MockBookingRepository) MarkPaid(ctx context.Context, bookingID int64, customer string) (bool, error) {
	args := m.Called(ctx, bookingID, customer)
	return args.Bool(0), args.Error(1)
}

func (m *MockBookingRepository) CancelByCustomer(ctx context.Context, bookingID int64, customer string) (bool, error) {
	args := m.Called(ctx, bookingID, customer)
	return args.Bool(0), args.Error(1)
}

type MockCatalogReader struct {
	mock.Mock
}

func (m *MockCatalogReader) GetSubcategoryByID(ctx context.Context, id int64) (*domain.ServiceSubcategory, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ServiceSubcategory), args.Error(1)
}

func (m *MockCatalogReader) ListSubcategoriesByIDs(ctx context.Context, ids []int64) ([]domain.ServiceSubcategory, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ServiceSubcategory), args.Error(1)
}

type MockRegisteredServices struct {
	mock.Mock
}

func (m *MockRegisteredServices) HasProviderService(ctx context.Context, userID, subcategoryID int64) (bool, error) {
	args := m.Called(ctx, userID, subcategoryID)
	return args.Bool(0), args.Error(1)
}

func (m *MockRegisteredServices) ListProviderServiceIDs(ctx context.Context, userID int64) ([]int64, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

func newTestService(bookings *MockBookingRepository, catalog *MockCatalogReader, services *MockRegisteredServices, now time.Time) *Service {
	s := NewService(bookings, catalog, services)
	s.now = func() time.Time { return now }
	return s
}

var (
	customer = domain.Identity{UserID: 1, Username: "alice", UserType: domain.TypeEndUser, Role: "Head of House"}
	provider = domain.Identity{UserID: 2, Username: "bob", UserType: domain.TypeServiceProvider, Role: "Employee"}
)

func TestService_Create_Success(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockCatalog := new(MockCatalogReader)
	mockServices := new(MockRegisteredServices)

	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	price := decimal.RequireFromString("3.00")

	mockCatalog.On("GetSubcategoryByID", mock.Anything, int64(7)).Return(&domain.ServiceSubcategory{
		ID:    7,
		Name:  "Tap/Faucet Fix",
		Price: price,
	}, nil)
	mockBookings.On("Create", mock.Anything, mock.Anything).Return(nil)

	service := newTestService(mockBookings, mockCatalog, mockServices, now)

	b, err := service.Create(context.Background(), customer, CreateBookingRequest{
		SubcategoryID: 7,
		ServiceDate:   now.Add(48 * time.Hour),
		Notes:         "leaking kitchen tap",
	})

	assert.NoError(t, err)
	assert.NotNil(t, b)
	assert.Equal(t, "alice", b.Customer)
	assert.Equal(t, "", b.Provider)
	assert.Equal(t, domain.BookingPending, b.Status)
	assert.Equal(t, domain.PaymentUnpaid, b.PaymentStatus)
	assert.True(t, price.Equal(b.TotalPrice))
	mockBookings.AssertExpectations(t)
}

func TestService_Create_ServiceDateInPast(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockCatalog := new(MockCatalogReader)
	mockServices := new(MockRegisteredServices)

	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	service := newTestService(mockBookings, mockCatalog, mockServices, now)

	_, err := service.Create(context.Background(), customer, CreateBookingRequest{
		SubcategoryID: 7,
		ServiceDate:   now.Add(-time.Hour),
	})

	assert.ErrorIs(t, err, ErrValidation)
	mockBookings.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Create_NotesTooLong(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockCatalog := new(MockCatalogReader)
	mockServices := new(MockRegisteredServices)

	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	service := newTestService(mockBookings, mockCatalog, mockServices, now)

	long := make([]byte, domain.MaxNotesLength+1)
	for i := range long {
		long[i] = 'x'
	}

	_, err := service.Create(context.Background(), customer, CreateBookingRequest{
		SubcategoryID: 7,
		ServiceDate:   now.Add(time.Hour),
		Notes:         string(long),
	})

	assert.ErrorIs(t, err, ErrValidation)
}

func TestService_Create_UnknownSubcategory(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockCatalog := new(MockCatalogReader)
	mockServices := new(MockRegisteredServices)

	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	mockCatalog.On("GetSubcategoryByID", mock.Anything, int64(404)).Return(nil, gorm.ErrRecordNotFound)

	service := newTestService(mockBookings, mockCatalog, mockServices, now)

	_, err := service.Create(context.Background(), customer, CreateBookingRequest{
		SubcategoryID: 404,
		ServiceDate:   now.Add(time.Hour),
	})

	assert.ErrorIs(t, err, ErrSubcategoryNotFound)
}

func TestService_Accept_Success(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockCatalog := new(MockCatalogReader)
	mockServices := new(MockRegisteredServices)

	pending := &domain.Booking{ID: 42, Customer: "alice", SubcategoryID: 7, Status: domain.BookingPending}
	accepted := &domain.Booking{ID: 42, Customer: "alice", Provider: "bob", SubcategoryID: 7, Status: domain.BookingAccepted}

	mockBookings.On("GetByID", mock.Anything, int64(42)).Return(pending, nil).Once()
	mockServices.On("HasProviderService", mock.Anything, int64(2), int64(7)).Return(true, nil)
	mockBookings.On("ClaimPending", mock.Anything, int64(42), "bob").Return(true, nil)
	mockBookings.On("GetByID", mock.Anything, int64(42)).Return(accepted, nil).Once()
	mockCatalog.On("ListSubcategoriesByIDs", mock.Anything, []int64{7}).Return([]domain.ServiceSubcategory{
		{ID: 7, Name: "Tap/Faucet Fix"},
	}, nil)

	service := newTestService(mockBookings, mockCatalog, mockServices, time.Now())

	view, err := service.Accept(context.Background(), provider, 42)

	assert.NoError(t, err)
	assert.Equal(t, "bob", view.Provider)
	assert.Equal(t, string(domain.BookingAccepted), view.Status)
	assert.Equal(t, "Tap/Faucet Fix", view.ServiceName)
	mockBookings.AssertExpectations(t)
}

// A second accept of the same booking loses the conditional claim and
// reads as not found, same as a booking that never existed.
func TestService_Accept_AlreadyClaimed(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockCatalog := new(MockCatalogReader)
	mockServices := new(MockRegisteredServices)

	pending := &domain.Booking{ID: 42, Customer: "alice", SubcategoryID: 7, Status: domain.BookingPending}
	mockBookings.On("GetByID", mock.Anything, int64(42)).Return(pending, nil)
	mockServices.On("HasProviderService", mock.Anything, int64(2), int64(7)).Return(true, nil)
	mockBookings.On("ClaimPending", mock.Anything, int64(42), "bob").Return(false, nil)

	service := newTestService(mockBookings, mockCatalog, mockServices, time.Now())

	_, err := service.Accept(context.Background(), provider, 42)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_Accept_UnregisteredService(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockCatalog := new(MockCatalogReader)
	mockServices := new(MockRegisteredServices)

	pending := &domain.Booking{ID: 42, Customer: "alice", SubcategoryID: 7, Status: domain.BookingPending}
	mockBookings.On("GetByID", mock.Anything, int64(42)).Return(pending, nil)
	mockServices.On("HasProviderService", mock.Anything, int64(2), int64(7)).Return(false, nil)

	service := newTestService(mockBookings, mockCatalog, mockServices, time.Now())

	_, err := service.Accept(context.Background(), provider, 42)
	assert.ErrorIs(t, err, ErrNotFound)
	mockBookings.AssertNotCalled(t, "ClaimPending", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_Accept_MissingBooking(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockCatalog := new(MockCatalogReader)
	mockServices := new(MockRegisteredServices)

	mockBookings.On("GetByID", mock.Anything, int64(404)).Return(nil, gorm.ErrRecordNotFound)

	service := newTestService(mockBookings, mockCatalog, mockServices, time.Now())

	_, err := service.Accept(context.Background(), provider, 404)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_Decline_Pending(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockCatalog := new(MockCatalogReader)
	mockServices := new(MockRegisteredServices)

	pending := &domain.Booking{ID: 42, Customer: "alice", SubcategoryID: 7, Status: domain.BookingPending}
	declined := &domain.Booking{ID: 42, Customer: "alice", SubcategoryID: 7, Status: domain.BookingPending, DeclinedBy: []string{"bob"}}

	mockBookings.On("GetByID", mock.Anything, int64(42)).Return(pending, nil).Once()
	mockBookings.On("AddDecline", mock.Anything, int64(42), "bob").Return(nil)
	mockBookings.On("GetByID", mock.Anything, int64(42)).Return(declined, nil).Once()
	mockCatalog.On("ListSubcategoriesByIDs", mock.Anything, []int64{7}).Return([]domain.ServiceSubcategory{
		{ID: 7, Name: "Tap/Faucet Fix"},
	}, nil)

	service := newTestService(mockBookings, mockCatalog, mockServices, time.Now())

	view, err := service.Decline(context.Background(), provider, 42)

	assert.NoError(t, err)
	assert.Equal(t, string(domain.BookingPending), view.Status)
	mockBookings.AssertExpectations(t)
}

func TestService_Decline_ClaimedBooking(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockCatalog := new(MockCatalogReader)
	mockServices := new(MockRegisteredServices)

	claimed := &domain.Booking{ID: 42, Customer: "alice", Provider: "carol", SubcategoryID: 7, Status: domain.BookingAccepted}
	mockBookings.On("GetByID", mock.Anything, int64(42)).Return(claimed, nil)

	service := newTestService(mockBookings, mockCatalog, mockServices, time.Now())

	_, err := service.Decline(context.Background(), provider, 42)
	assert.ErrorIs(t, err, ErrNotFound)
	mockBookings.AssertNotCalled(t, "AddDecline", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_OpenRequests_NoRegisteredServices(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockCatalog := new(MockCatalogReader)
	mockServices := new(MockRegisteredServices)

	mockServices.On("ListProviderServiceIDs", mock.Anything, int64(2)).Return([]int64{}, nil)

	service := newTestService(mockBookings, mockCatalog, mockServices, time.Now())

	feed, err := service.OpenRequests(context.Background(), provider)

	assert.NoError(t, err)
	assert.Empty(t, feed)
	mockBookings.AssertNotCalled(t, "ListOpenRequests", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_OpenRequests_FilteredFeed(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockCatalog := new(MockCatalogReader)
	mockServices := new(MockRegisteredServices)

	mockServices.On("ListProviderServiceIDs", mock.Anything, int64(2)).Return([]int64{7, 9}, nil)
	mockBookings.On("ListOpenRequests", mock.Anything, "bob", []int64{7, 9}).Return([]domain.Booking{
		{ID: 42, Customer: "alice", SubcategoryID: 7, Status: domain.BookingPending},
	}, nil)
	mockCatalog.On("ListSubcategoriesByIDs", mock.Anything, []int64{7}).Return([]domain.ServiceSubcategory{
		{ID: 7, Name: "Tap/Faucet Fix"},
	}, nil)

	service := newTestService(mockBookings, mockCatalog, mockServices, time.Now())

	feed, err := service.OpenRequests(context.Background(), provider)

	assert.NoError(t, err)
	assert.Len(t, feed, 1)
	assert.Equal(t, "Tap/Faucet Fix", feed[0].ServiceName)
	assert.Equal(t, "alice", feed[0].Customer)
}

func TestService_AdvanceStatus_CompleteCOD(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockCatalog := new(MockCatalogReader)
	mockServices := new(MockRegisteredServices)

	confirmed := &domain.Booking{ID: 42, Customer: "alice", Provider: "bob", SubcategoryID: 7, Status: domain.BookingConfirmed}
	completed := &domain.Booking{
		ID: 42, Customer: "alice", Provider: "bob", SubcategoryID: 7,
		Status: domain.BookingCompleted, PaymentStatus: domain.PaymentPaid, PaymentMethod: domain.PaymentCOD,
	}

	mockBookings.On("GetByID", mock.Anything, int64(42)).Return(confirmed, nil).Once()
	paid := domain.PaymentPaid
	cod := domain.PaymentCOD
	mockBookings.On("AdvanceStatus", mock.Anything, int64(42), domain.BookingConfirmed, domain.BookingCompleted, &paid, &cod).Return(true, nil)
	mockBookings.On("GetByID", mock.Anything, int64(42)).Return(completed, nil).Once()
	mockCatalog.On("ListSubcategoriesByIDs", mock.Anything, []int64{7}).Return([]domain.ServiceSubcategory{
		{ID: 7, Name: "Tap/Faucet Fix"},
	}, nil)

	service := newTestService(mockBookings, mockCatalog, mockServices, time.Now())

	view, err := service.AdvanceStatus(context.Background(), provider, 42, AdvanceStatusRequest{
		Status:        string(domain.BookingCompleted),
		PaymentMethod: string(domain.PaymentCOD),
	})

	assert.NoError(t, err)
	assert.Equal(t, string(domain.BookingCompleted), view.Status)
	assert.Equal(t, string(domain.PaymentPaid), view.PaymentStatus)
	mockBookings.AssertExpectations(t)
}

func TestService_AdvanceStatus_CompleteOnlineLeavesPaymentPending(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockCatalog := new(MockCatalogReader)
	mockServices := new(MockRegisteredServices)

	confirmed := &domain.Booking{ID: 42, Customer: "alice", Provider: "bob", SubcategoryID: 7, Status: domain.BookingConfirmed}
	completed := &domain.Booking{
		ID: 42, Customer: "alice", Provider: "bob", SubcategoryID: 7,
		Status: domain.BookingCompleted, PaymentStatus: domain.PaymentPending, PaymentMethod: domain.PaymentOnline,
	}

	mockBookings.On("GetByID", mock.Anything, int64(42)).Return(confirmed, nil).Once()
	pendingPay := domain.PaymentPending
	online := domain.PaymentOnline
	mockBookings.On("AdvanceStatus", mock.Anything, int64(42), domain.BookingConfirmed, domain.BookingCompleted, &pendingPay, &online).Return(true, nil)
	mockBookings.On("GetByID", mock.Anything, int64(42)).Return(completed, nil).Once()
	mockCatalog.On("ListSubcategoriesByIDs", mock.Anything, []int64{7}).Return([]domain.ServiceSubcategory{
		{ID: 7, Name: "Tap/Faucet Fix"},
	}, nil)

	service := newTestService(mockBookings, mockCatalog, mockServices, time.Now())

	view, err := service.AdvanceStatus(context.Background(), provider, 42, AdvanceStatusRequest{
		Status:        string(domain.BookingCompleted),
		PaymentMethod: string(domain.PaymentOnline),
	})

	assert.NoError(t, err)
	assert.Equal(t, string(domain.PaymentPending), view.PaymentStatus)
}

func TestService_AdvanceStatus_Forbidden(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockCatalog := new(MockCatalogReader)
	mockServices := new(MockRegisteredServices)

	someoneElses := &domain.Booking{ID: 42, Customer: "alice", Provider: "carol", SubcategoryID: 7, Status: domain.BookingAccepted}
	mockBookings.On("GetByID", mock.Anything, int64(42)).Return(someoneElses, nil)

	service := newTestService(mockBookings, mockCatalog, mockServices, time.Now())

	_, err := service.AdvanceStatus(context.Background(), provider, 42, AdvanceStatusRequest{
		Status: string(domain.BookingConfirmed),
	})
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestService_AdvanceStatus_InvalidTransition(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockCatalog := new(MockCatalogReader)
	mockServices := new(MockRegisteredServices)

	completed := &domain.Booking{ID: 42, Customer: "alice", Provider: "bob", SubcategoryID: 7, Status: domain.BookingCompleted}
	mockBookings.On("GetByID", mock.Anything, int64(42)).Return(completed, nil)

	service := newTestService(mockBookings, mockCatalog, mockServices, time.Now())

	_, err := service.AdvanceStatus(context.Background(), provider, 42, AdvanceStatusRequest{
		Status: string(domain.BookingConfirmed),
	})
	assert.ErrorIs(t, err, ErrInvalidStatusTransition)
	mockBookings.AssertNotCalled(t, "AdvanceStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// Skipping the pending->confirmed shortcut must fail: accepted is only
// reachable through a claim, confirmed only from accepted.
func TestService_AdvanceStatus_PendingCannotConfirm(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockCatalog := new(MockCatalogReader)
	mockServices := new(MockRegisteredServices)

	pending := &domain.Booking{ID: 42, Customer: "alice", Provider: "bob", SubcategoryID: 7, Status: domain.BookingPending}
	mockBookings.On("GetByID", mock.Anything, int64(42)).Return(pending, nil)

	service := newTestService(mockBookings, mockCatalog, mockServices, time.Now())

	_, err := service.AdvanceStatus(context.Background(), provider, 42, AdvanceStatusRequest{
		Status: string(domain.BookingConfirmed),
	})
	assert.ErrorIs(t, err, ErrInvalidStatusTransition)
}

func TestService_AdvanceStatus_LostRace(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockCatalog := new(MockCatalogReader)
	mockServices := new(MockRegisteredServices)

	accepted := &domain.Booking{ID: 42, Customer: "alice", Provider: "bob", SubcategoryID: 7, Status: domain.BookingAccepted}
	mockBookings.On("GetByID", mock.Anything, int64(42)).Return(accepted, nil)
	mockBookings.On("AdvanceStatus", mock.Anything, int64(42), domain.BookingAccepted, domain.BookingConfirmed, (*domain.PaymentStatus)(nil), (*domain.PaymentMethod)(nil)).Return(false, nil)

	service := newTestService(mockBookings, mockCatalog, mockServices, time.Now())

	_, err := service.AdvanceStatus(context.Background(), provider, 42, AdvanceStatusRequest{
		Status: string(domain.BookingConfirmed),
	})
	assert.ErrorIs(t, err, ErrInvalidStatusTransition)
}

func TestService_Pay_Success(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockCatalog := new(MockCatalogReader)
	mockServices := new(MockRegisteredServices)

	paidBooking := &domain.Booking{
		ID: 42, Customer: "alice", Provider: "bob", SubcategoryID: 7,
		Status: domain.BookingCompleted, PaymentStatus: domain.PaymentPaid, PaymentMethod: domain.PaymentOnline,
	}

	mockBookings.On("MarkPaid", mock.Anything, int64(42), "alice").Return(true, nil)
	mockBookings.On("GetByID", mock.Anything, int64(42)).Return(paidBooking, nil)
	mockCatalog.On("ListSubcategoriesByIDs", mock.Anything, []int64{7}).Return([]domain.ServiceSubcategory{
		{ID: 7, Name: "Tap/Faucet Fix"},
	}, nil)

	service := newTestService(mockBookings, mockCatalog, mockServices, time.Now())

	view, err := service.Pay(context.Background(), customer, 42)

	assert.NoError(t, err)
	assert.Equal(t, string(domain.PaymentPaid), view.PaymentStatus)
}

func TestService_Pay_AlreadyPaid(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockCatalog := new(MockCatalogReader)
	mockServices := new(MockRegisteredServices)

	alreadyPaid := &domain.Booking{
		ID: 42, Customer: "alice", Provider: "bob", SubcategoryID: 7,
		Status: domain.BookingCompleted, PaymentStatus: domain.PaymentPaid,
	}

	mockBookings.On("MarkPaid", mock.Anything, int64(42), "alice").Return(false, nil)
	mockBookings.On("GetByID", mock.Anything, int64(42)).Return(alreadyPaid, nil)

	service := newTestService(mockBookings, mockCatalog, mockServices, time.Now())

	_, err := service.Pay(context.Background(), customer, 42)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestService_Pay_ForeignBooking(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockCatalog := new(MockCatalogReader)
	mockServices := new(MockRegisteredServices)

	foreign := &domain.Booking{ID: 42, Customer: "mallory", SubcategoryID: 7, Status: domain.BookingCompleted}
	mockBookings.On("MarkPaid", mock.Anything, int64(42), "alice").Return(false, nil)
	mockBookings.On("GetByID", mock.Anything, int64(42)).Return(foreign, nil)

	service := newTestService(mockBookings, mockCatalog, mockServices, time.Now())

	_, err := service.Pay(context.Background(), customer, 42)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_CancelByCustomer_OnlyCancelAllowed(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockCatalog := new(MockCatalogReader)
	mockServices := new(MockRegisteredServices)

	service := newTestService(mockBookings, mockCatalog, mockServices, time.Now())

	_, err := service.CancelByCustomer(context.Background(), customer, 42, "completed")
	assert.ErrorIs(t, err, ErrValidation)
	mockBookings.AssertNotCalled(t, "CancelByCustomer", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_CancelByCustomer_TerminalBooking(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockCatalog := new(MockCatalogReader)
	mockServices := new(MockRegisteredServices)

	done := &domain.Booking{ID: 42, Customer: "alice", Provider: "bob", SubcategoryID: 7, Status: domain.BookingCompleted}
	mockBookings.On("CancelByCustomer", mock.Anything, int64(42), "alice").Return(false, nil)
	mockBookings.On("GetByID", mock.Anything, int64(42)).Return(done, nil)

	service := newTestService(mockBookings, mockCatalog, mockServices, time.Now())

	_, err := service.CancelByCustomer(context.Background(), customer, 42, string(domain.BookingCancelled))
	assert.ErrorIs(t, err, ErrInvalidStatusTransition)
}

func TestService_GetForCustomer_ForeignBookingHidden(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockCatalog := new(MockCatalogReader)
	mockServices := new(MockRegisteredServices)

	foreign := &domain.Booking{ID: 42, Customer: "mallory", SubcategoryID: 7, Status: domain.BookingPending}
	mockBookings.On("GetByID", mock.Anything, int64(42)).Return(foreign, nil)

	service := newTestService(mockBookings, mockCatalog, mockServices, time.Now())

	_, err := service.GetForCustomer(context.Background(), customer, 42)
	assert.ErrorIs(t, err, ErrNotFound)
}
