package provider

import (
	"context"
	"testing"
	"time"

	"homeservices/internal/domain"
	"homeservices/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type MockServiceRegistry struct {
	mock.Mock
}

func (m *MockServiceRegistry) AddProviderService(ctx context.Context, userID, subcategoryID int64) error {
	args := m.Called(ctx, userID, subcategoryID)
	return args.Error(0)
}

func (m *MockServiceRegistry) RemoveProviderService(ctx context.Context, userID, subcategoryID int64) (bool, error) {
	args := m.Called(ctx, userID, subcategoryID)
	return args.Bool(0), args.Error(1)
}

func (m *MockServiceRegistry) HasProviderService(ctx context.Context, userID, subcategoryID int64) (bool, error) {
	args := m.Called(ctx, userID, subcategoryID)
	return args.Bool(0), args.Error(1)
}

func (m *MockServiceRegistry) ListProviderServiceIDs(ctx context.Context, userID int64) ([]int64, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
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

type MockEarningsReader struct {
	mock.Mock
}

func (m *MockEarningsReader) SumCompletedByProvider(ctx context.Context, provider string, since *time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, provider, since)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockEarningsReader) EarningsByService(ctx context.Context, provider string) ([]repository.ServiceEarnings, error) {
	args := m.Called(ctx, provider)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.ServiceEarnings), args.Error(1)
}

func (m *MockEarningsReader) CountByProviderStatus(ctx context.Context, provider string) ([]repository.StatusCount, error) {
	args := m.Called(ctx, provider)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.StatusCount), args.Error(1)
}

var testProvider = domain.Identity{UserID: 2, Username: "bob", UserType: domain.TypeServiceProvider, Role: "Employee"}

func TestService_RegisterService_Success(t *testing.T) {
	mockRegistry := new(MockServiceRegistry)
	mockCatalog := new(MockCatalogReader)
	mockEarnings := new(MockEarningsReader)

	price := decimal.RequireFromString("3.00")
	mockCatalog.On("GetSubcategoryByID", mock.Anything, int64(7)).Return(&domain.ServiceSubcategory{
		ID: 7, Name: "Tap/Faucet Fix", Price: price, CategoryID: 4,
	}, nil)
	mockRegistry.On("HasProviderService", mock.Anything, int64(2), int64(7)).Return(false, nil)
	mockRegistry.On("AddProviderService", mock.Anything, int64(2), int64(7)).Return(nil)

	service := NewService(mockRegistry, mockCatalog, mockEarnings)

	registered, err := service.RegisterService(context.Background(), testProvider, 7)

	assert.NoError(t, err)
	assert.Equal(t, "Tap/Faucet Fix", registered.Name)
	assert.True(t, price.Equal(registered.Price))
	mockRegistry.AssertExpectations(t)
}

func TestService_RegisterService_Duplicate(t *testing.T) {
	mockRegistry := new(MockServiceRegistry)
	mockCatalog := new(MockCatalogReader)
	mockEarnings := new(MockEarningsReader)

	mockCatalog.On("GetSubcategoryByID", mock.Anything, int64(7)).Return(&domain.ServiceSubcategory{ID: 7}, nil)
	mockRegistry.On("HasProviderService", mock.Anything, int64(2), int64(7)).Return(true, nil)

	service := NewService(mockRegistry, mockCatalog, mockEarnings)

	_, err := service.RegisterService(context.Background(), testProvider, 7)
	assert.ErrorIs(t, err, ErrAlreadyRegistered)
	mockRegistry.AssertNotCalled(t, "AddProviderService", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_RegisterService_UnknownSubcategory(t *testing.T) {
	mockRegistry := new(MockServiceRegistry)
	mockCatalog := new(MockCatalogReader)
	mockEarnings := new(MockEarningsReader)

	mockCatalog.On("GetSubcategoryByID", mock.Anything, int64(404)).Return(nil, gorm.ErrRecordNotFound)

	service := NewService(mockRegistry, mockCatalog, mockEarnings)

	_, err := service.RegisterService(context.Background(), testProvider, 404)
	assert.ErrorIs(t, err, ErrSubcategoryNotFound)
}

func TestService_UnregisterService_NotRegistered(t *testing.T) {
	mockRegistry := new(MockServiceRegistry)
	mockCatalog := new(MockCatalogReader)
	mockEarnings := new(MockEarningsReader)

	mockRegistry.On("RemoveProviderService", mock.Anything, int64(2), int64(7)).Return(false, nil)

	service := NewService(mockRegistry, mockCatalog, mockEarnings)

	err := service.UnregisterService(context.Background(), testProvider, 7)
	assert.ErrorIs(t, err, ErrNotRegistered)
}

func TestService_Earnings_Buckets(t *testing.T) {
	mockRegistry := new(MockServiceRegistry)
	mockCatalog := new(MockCatalogReader)
	mockEarnings := new(MockEarningsReader)

	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	monthStart := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	weekStart := now.AddDate(0, 0, -7)

	mockEarnings.On("SumCompletedByProvider", mock.Anything, "bob", (*time.Time)(nil)).Return(decimal.RequireFromString("120.50"), nil)
	mockEarnings.On("SumCompletedByProvider", mock.Anything, "bob", &monthStart).Return(decimal.RequireFromString("48.00"), nil)
	mockEarnings.On("SumCompletedByProvider", mock.Anything, "bob", &weekStart).Return(decimal.RequireFromString("17.00"), nil)
	mockEarnings.On("EarningsByService", mock.Anything, "bob").Return([]repository.ServiceEarnings{
		{ServiceName: "Tap/Faucet Fix", Bookings: 3, Total: decimal.RequireFromString("9.00")},
	}, nil)

	service := NewService(mockRegistry, mockCatalog, mockEarnings)
	service.now = func() time.Time { return now }

	resp, err := service.Earnings(context.Background(), testProvider)

	assert.NoError(t, err)
	assert.True(t, decimal.RequireFromString("120.50").Equal(resp.Total))
	assert.True(t, decimal.RequireFromString("48.00").Equal(resp.ThisMonth))
	assert.True(t, decimal.RequireFromString("17.00").Equal(resp.Last7Days))
	assert.Len(t, resp.ByService, 1)
	assert.Equal(t, int64(3), resp.ByService[0].Bookings)
	mockEarnings.AssertExpectations(t)
}

func TestService_Stats_GroupsByStatus(t *testing.T) {
	mockRegistry := new(MockServiceRegistry)
	mockCatalog := new(MockCatalogReader)
	mockEarnings := new(MockEarningsReader)

	mockEarnings.On("CountByProviderStatus", mock.Anything, "bob").Return([]repository.StatusCount{
		{Status: "accepted", Count: 2},
		{Status: "confirmed", Count: 1},
		{Status: "completed", Count: 5},
		{Status: "cancelled", Count: 1},
	}, nil)

	service := NewService(mockRegistry, mockCatalog, mockEarnings)

	stats, err := service.Stats(context.Background(), testProvider)

	assert.NoError(t, err)
	assert.Equal(t, int64(9), stats.Total)
	assert.Equal(t, int64(2), stats.Accepted)
	assert.Equal(t, int64(1), stats.Confirmed)
	assert.Equal(t, int64(5), stats.Completed)
	assert.Equal(t, int64(1), stats.Cancelled)
}
