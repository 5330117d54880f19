package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CheckoutStep tracks how far a draft has progressed through the wizard.
type CheckoutStep string

const (
	StepQuantities CheckoutStep = "quantities"
	StepSeats      CheckoutStep = "seats"
	StepSnacks     CheckoutStep = "snacks"
	StepReview     CheckoutStep = "review"
)

// SnackSelection is one chosen snack line inside a draft. UnitPrice is the
// catalog price at selection time and becomes the order line's
// price_at_purchase on commit.
type SnackSelection struct {
	SnackID   uuid.UUID       `json:"snack_id"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// CheckoutDraft is the in-progress order accumulated across wizard steps.
// It lives only in the draft store, keyed by the checkout session token,
// and is destroyed on commit or TTL expiry. JSON tags because the store
// serializes it.
type CheckoutDraft struct {
	ShowtimeID    uuid.UUID    `json:"showtime_id"`
	Step          CheckoutStep `json:"step"`
	QtyNormal     int          `json:"qty_normal"`
	QtyDiscounted int          `json:"qty_discounted"`

	// BasePrice is snapshotted from the showtime at the quantities step so
	// the pricing math stays pure between steps.
	BasePrice decimal.Decimal `json:"base_price"`

	Seats  []Seat           `json:"seats,omitempty"`
	Snacks []SnackSelection `json:"snacks,omitempty"`

	TicketSubtotal decimal.Decimal `json:"ticket_subtotal"`
	TotalPrice     decimal.Decimal `json:"total_price"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (d *CheckoutDraft) TotalTickets() int {
	return d.QtyNormal + d.QtyDiscounted
}

// HasSeat reports whether the draft already holds the given seat.
func (d *CheckoutDraft) HasSeat(seat Seat) bool {
	for _, s := range d.Seats {
		if s == seat {
			return true
		}
	}
	return false
}
