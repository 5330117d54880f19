package repository

import (
	"fmt"
	"strings"

	"cinema-checkout/internal/data/entity"
)

// SeatConflictError reports seats that are already bound to committed
// tickets for a showtime. It is raised both by the advisory availability
// check during the wizard and by the order writer when the unique
// constraint fires at commit time.
type SeatConflictError struct {
	ShowtimeID string
	Seats      []entity.Seat
}

func (e *SeatConflictError) Error() string {
	return fmt.Sprintf("seat(s) already taken for showtime %s: %s",
		e.ShowtimeID, strings.Join(entity.SeatStrings(e.Seats), ", "))
}
