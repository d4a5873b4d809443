package repository

import (
	"context"
	"time"

	"homeservices/internal/domain"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

type bookingModel struct {
	ID            int64           `gorm:"column:id;primaryKey"`
	Customer      string          `gorm:"column:customer;index"`
	Provider      *string         `gorm:"column:provider;index"`
	SubcategoryID int64           `gorm:"column:subcategory_id"`
	BookingDate   time.Time       `gorm:"column:booking_date"`
	ServiceDate   time.Time       `gorm:"column:service_date"`
	TotalPrice    decimal.Decimal `gorm:"column:total_price;type:decimal(10,2)"`
	Status        string          `gorm:"column:status;index"`
	PaymentStatus string          `gorm:"column:payment_status"`
	PaymentMethod *string         `gorm:"column:payment_method"`
	Notes         *string         `gorm:"column:notes"`
	CreatedAt     time.Time       `gorm:"column:created_at"`
	UpdatedAt     time.Time       `gorm:"column:updated_at"`
}

func (bookingModel) TableName() string { return "bookings" }

type bookingDeclineModel struct {
	ID               int64     `gorm:"column:id;primaryKey"`
	BookingID        int64     `gorm:"column:booking_id;uniqueIndex:idx_booking_decline"`
	ProviderUsername string    `gorm:"column:provider_username;uniqueIndex:idx_booking_decline"`
	CreatedAt        time.Time `gorm:"column:created_at"`
}

func (bookingDeclineModel) TableName() string { return "booking_declines" }

func toDomainBooking(m bookingModel) *domain.Booking {
	var provider, notes string
	var method domain.PaymentMethod
	if m.Provider != nil {
		provider = *m.Provider
	}
	if m.Notes != nil {
		notes = *m.Notes
	}
	if m.PaymentMethod != nil {
		method = domain.PaymentMethod(*m.PaymentMethod)
	}

	return &domain.Booking{
		ID:            m.ID,
		Customer:      m.Customer,
		Provider:      provider,
		SubcategoryID: m.SubcategoryID,
		BookingDate:   m.BookingDate,
		ServiceDate:   m.ServiceDate,
		TotalPrice:    m.TotalPrice,
		Status:        domain.BookingStatus(m.Status),
		PaymentStatus: domain.PaymentStatus(m.PaymentStatus),
		PaymentMethod: method,
		Notes:         notes,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func toBookingModel(b *domain.Booking) bookingModel {
	var provider, notes, method *string
	if b.Provider != "" {
		v := b.Provider
		provider = &v
	}
	if b.Notes != "" {
		v := b.Notes
		notes = &v
	}
	if b.PaymentMethod != "" {
		v := string(b.PaymentMethod)
		method = &v
	}

	return bookingModel{
		ID:            b.ID,
		Customer:      b.Customer,
		Provider:      provider,
		SubcategoryID: b.SubcategoryID,
		BookingDate:   b.BookingDate,
		ServiceDate:   b.ServiceDate,
		TotalPrice:    b.TotalPrice,
		Status:        string(b.Status),
		PaymentStatus: string(b.PaymentStatus),
		PaymentMethod: method,
		Notes:         notes,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	m := toBookingModel(b)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*b = *toDomainBooking(m)
	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var m bookingModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	b := toDomainBooking(m)

	var declined []string
	if err := r.db.WithContext(ctx).
		Model(&bookingDeclineModel{}).
		Where("booking_id = ?", id).
		Order("created_at").
		Pluck("provider_username", &declined).Error; err != nil {
		return nil, err
	}
	b.DeclinedBy = declined
	return b, nil
}

func (r *BookingRepository) ListByCustomer(ctx context.Context, customer string) ([]domain.Booking, error) {
	var models []bookingModel
	tx := r.db.WithContext(ctx).
		Where("customer = ?", customer).
		Order("created_at DESC").
		Find(&models)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainBookings(models), nil
}

// ListOpenRequests returns the provider's open-request feed: pending,
// unclaimed, not declined by this provider, and within the given
// subcategory set. Callers pass the provider's registered services.
func (r *BookingRepository) ListOpenRequests(ctx context.Context, provider string, subcategoryIDs []int64) ([]domain.Booking, error) {
	if len(subcategoryIDs) == 0 {
		return []domain.Booking{}, nil
	}

	var models []bookingModel
	tx := r.db.WithContext(ctx).
		Where("status = ?", string(domain.BookingPending)).
		Where("provider IS NULL").
		Where("subcategory_id IN ?", subcategoryIDs).
		Where("id NOT IN (?)", r.db.
			Model(&bookingDeclineModel{}).
			Select("booking_id").
			Where("provider_username = ?", provider)).
		Order("created_at DESC").
		Find(&models)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainBookings(models), nil
}

func (r *BookingRepository) ListActiveByProvider(ctx context.Context, provider string) ([]domain.Booking, error) {
	var models []bookingModel
	tx := r.db.WithContext(ctx).
		Where("provider = ?", provider).
		Where("status IN ?", []string{string(domain.BookingAccepted), string(domain.BookingConfirmed)}).
		Order("service_date DESC").
		Find(&models)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainBookings(models), nil
}

// ClaimPending assigns the booking to the provider iff it is still
// pending and unclaimed. The WHERE clause makes the check-and-set a
// single conditional update, so concurrent claims serialize in the
// database and at most one caller wins.
func (r *BookingRepository) ClaimPending(ctx context.Context, bookingID int64, provider string) (bool, error) {
	tx := r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Where("id = ? AND status = ? AND provider IS NULL", bookingID, string(domain.BookingPending)).
		Updates(map[string]any{
			"status":     string(domain.BookingAccepted),
			"provider":   provider,
			"updated_at": time.Now().UTC(),
		})
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected == 1, nil
}

// AddDecline records the provider on the booking's decline list.
// Re-declining is a no-op via the unique index.
func (r *BookingRepository) AddDecline(ctx context.Context, bookingID int64, provider string) error {
	m := bookingDeclineModel{
		BookingID:        bookingID,
		ProviderUsername: provider,
		CreatedAt:        time.Now().UTC(),
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&m).Error
}

// AdvanceStatus moves the booking from one status to another, optionally
// recording payment fields in the same write. The guard on the current
// status re-derives the precondition at write time.
func (r *BookingRepository) AdvanceStatus(ctx context.Context, bookingID int64, from, to domain.BookingStatus, payment *domain.PaymentStatus, method *domain.PaymentMethod) (bool, error) {
	updates := map[string]any{
		"status":     string(to),
		"updated_at": time.Now().UTC(),
	}
	if payment != nil {
		updates["payment_status"] = string(*payment)
	}
	if method != nil {
		updates["payment_method"] = string(*method)
	}

	tx := r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Where("id = ? AND status = ?", bookingID, string(from)).
		Updates(updates)
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected == 1, nil
}

// MarkPaid flips the payment status to paid for a completed, not yet
// paid booking.
func (r *BookingRepository) MarkPaid(ctx context.Context, bookingID int64, customer string) (bool, error) {
	tx := r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Where("id = ? AND customer = ? AND status = ? AND payment_status <> ?",
			bookingID, customer, string(domain.BookingCompleted), string(domain.PaymentPaid)).
		Updates(map[string]any{
			"payment_status": string(domain.PaymentPaid),
			"updated_at":     time.Now().UTC(),
		})
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected == 1, nil
}

// CancelByCustomer cancels the customer's own booking while it is not
// terminal yet.
func (r *BookingRepository) CancelByCustomer(ctx context.Context, bookingID int64, customer string) (bool, error) {
	tx := r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Where("id = ? AND customer = ? AND status NOT IN ?",
			bookingID, customer, []string{string(domain.BookingCompleted), string(domain.BookingCancelled)}).
		Updates(map[string]any{
			"status":     string(domain.BookingCancelled),
			"updated_at": time.Now().UTC(),
		})
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected == 1, nil
}

func (r *BookingRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	tx := r.db.WithContext(ctx).Model(&bookingModel{}).Count(&n)
	return n, tx.Error
}

// ServiceEarnings is one grouped earnings row for a provider.
type ServiceEarnings struct {
	ServiceName string          `gorm:"column:service_name"`
	Bookings    int64           `gorm:"column:bookings"`
	Total       decimal.Decimal `gorm:"column:total"`
}

// SumCompletedByProvider totals completed-booking revenue for the
// provider, optionally restricted to bookings updated since a cutoff.
func (r *BookingRepository) SumCompletedByProvider(ctx context.Context, provider string, since *time.Time) (decimal.Decimal, error) {
	q := r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Select("COALESCE(SUM(total_price), 0) AS total").
		Where("provider = ? AND status = ?", provider, string(domain.BookingCompleted))
	if since != nil {
		q = q.Where("updated_at >= ?", *since)
	}

	var row struct {
		Total decimal.Decimal `gorm:"column:total"`
	}
	if err := q.Scan(&row).Error; err != nil {
		return decimal.Zero, err
	}
	return row.Total, nil
}

// EarningsByService groups a provider's completed-booking revenue by
// subcategory name.
func (r *BookingRepository) EarningsByService(ctx context.Context, provider string) ([]ServiceEarnings, error) {
	var rows []ServiceEarnings
	tx := r.db.WithContext(ctx).
		Table("bookings").
		Select("service_subcategories.name AS service_name, COUNT(bookings.id) AS bookings, COALESCE(SUM(bookings.total_price), 0) AS total").
		Joins("JOIN service_subcategories ON service_subcategories.id = bookings.subcategory_id").
		Where("bookings.provider = ? AND bookings.status = ?", provider, string(domain.BookingCompleted)).
		Group("service_subcategories.name").
		Order("total DESC").
		Scan(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return rows, nil
}

// StatusCount is one per-status bucket for provider stats.
type StatusCount struct {
	Status string `gorm:"column:status"`
	Count  int64  `gorm:"column:count"`
}

func (r *BookingRepository) CountByProviderStatus(ctx context.Context, provider string) ([]StatusCount, error) {
	var rows []StatusCount
	tx := r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Select("status, COUNT(id) AS count").
		Where("provider = ?", provider).
		Group("status").
		Scan(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return rows, nil
}

func toDomainBookings(models []bookingModel) []domain.Booking {
	out := make([]domain.Booking, 0, len(models))
	for _, m := range models {
		out = append(out, *toDomainBooking(m))
	}
	return out
}
