package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Showtime is a scheduled screening. Read-only input for checkout:
// scheduling itself is owned by the catalog side.
type Showtime struct {
	Base
	MovieID   uuid.UUID       `db:"movie_id"`
	RoomID    uuid.UUID       `db:"room_id"`
	StartTime time.Time       `db:"start_time"`
	EndTime   time.Time       `db:"end_time"`
	BasePrice decimal.Decimal `db:"base_price"`
}
