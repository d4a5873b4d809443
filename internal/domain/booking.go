package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingAccepted  BookingStatus = "accepted"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCompleted BookingStatus = "completed"
	BookingCancelled BookingStatus = "cancelled"
)

type PaymentStatus string

const (
	PaymentUnpaid  PaymentStatus = "unpaid"
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
)

type PaymentMethod string

const (
	PaymentCOD    PaymentMethod = "cod"
	PaymentOnline PaymentMethod = "online"
)

const MaxNotesLength = 500

type Booking struct {
	ID            int64           `json:"id"`
	Customer      string          `json:"customer"`
	Provider      string          `json:"provider,omitempty"`
	SubcategoryID int64           `json:"subcategory_id"`
	BookingDate   time.Time       `json:"booking_date"`
	ServiceDate   time.Time       `json:"service_date"`
	TotalPrice    decimal.Decimal `json:"total_price"`
	Status        BookingStatus   `json:"status"`
	PaymentStatus PaymentStatus   `json:"payment_status"`
	PaymentMethod PaymentMethod   `json:"payment_method,omitempty"`
	Notes         string          `json:"notes,omitempty"`
	DeclinedBy    []string        `json:"declined_by,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// statusTransitions lists the edges a provider may drive through
// UpdateStatus. pending -> accepted happens only via Accept.
var statusTransitions = map[BookingStatus][]BookingStatus{
	BookingAccepted:  {BookingConfirmed, BookingCancelled},
	BookingConfirmed: {BookingCompleted, BookingCancelled},
}

func CanTransition(from, to BookingStatus) bool {
	for _, next := range statusTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

func ValidBookingStatus(s BookingStatus) bool {
	switch s {
	case BookingPending, BookingAccepted, BookingConfirmed, BookingCompleted, BookingCancelled:
		return true
	}
	return false
}

func ValidPaymentMethod(m PaymentMethod) bool {
	return m == PaymentCOD || m == PaymentOnline
}

func (b *Booking) Terminal() bool {
	return b.Status == BookingCompleted || b.Status == BookingCancelled
}
