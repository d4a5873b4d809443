package booking

import (
	"time"

	"github.com/shopspring/decimal"
)

type CreateBookingRequest struct {
	SubcategoryID int64     `json:"subcategory_id" binding:"required"`
	ServiceDate   time.Time `json:"service_date" binding:"required"`
	Notes         string    `json:"notes"`
}

type UpdateBookingRequest struct {
	Status string `json:"status" binding:"required"`
}

type AdvanceStatusRequest struct {
	Status        string `json:"status" binding:"required"`
	PaymentMethod string `json:"payment_method"`
}

// BookingView is the allow-listed booking shape rendered to the booking's
// own parties (customer and assigned provider).
type BookingView struct {
	ID            int64           `json:"id"`
	ServiceName   string          `json:"service_name"`
	Customer      string          `json:"customer"`
	Provider      string          `json:"provider,omitempty"`
	BookingDate   time.Time       `json:"booking_date"`
	ServiceDate   time.Time       `json:"service_date"`
	TotalPrice    decimal.Decimal `json:"total_price"`
	Status        string          `json:"status"`
	PaymentStatus string          `json:"payment_status"`
	PaymentMethod string          `json:"payment_method,omitempty"`
	Notes         string          `json:"notes,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}

// RequestFeedItem is one row of a provider's open-request feed. It omits
// the decline list and payment fields, which are not the feed's business.
type RequestFeedItem struct {
	ID          int64           `json:"id"`
	ServiceName string          `json:"service_name"`
	Customer    string          `json:"customer_name"`
	ServiceDate time.Time       `json:"service_date"`
	TotalPrice  decimal.Decimal `json:"total_price"`
	Status      string          `json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
}
