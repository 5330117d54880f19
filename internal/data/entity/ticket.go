package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Ticket is one sold seat. The schema enforces
// UNIQUE (showtime_id, seat_row, seat_number); two tickets can never
// hold the same seat for the same showtime.
type Ticket struct {
	BaseSimple
	ShowtimeID   uuid.UUID       `db:"showtime_id"`
	OrderID      uuid.UUID       `db:"order_id"`
	PersonID     *uuid.UUID      `db:"person_id"`
	SeatRow      string          `db:"seat_row"`
	SeatNumber   int             `db:"seat_number"`
	Price        decimal.Decimal `db:"price"`
	PurchaseDate time.Time       `db:"purchase_date"`
}

func (t *Ticket) Seat() Seat {
	return Seat{Row: t.SeatRow, Number: t.SeatNumber}
}
