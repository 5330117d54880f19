package entity

import (
	"fmt"
	"strconv"
	"strings"
)

// Seat is a coordinate inside a room layout, not a persisted row.
// Wire format: "A-5" (row letter, dash, seat number).
type Seat struct {
	Row    string `json:"row"`
	Number int    `json:"number"`
}

func (s Seat) String() string {
	return fmt.Sprintf("%s-%d", s.Row, s.Number)
}

// ParseSeat parses the "A-5" wire format.
func ParseSeat(value string) (Seat, error) {
	parts := strings.SplitN(strings.TrimSpace(value), "-", 2)
	if len(parts) != 2 {
		return Seat{}, fmt.Errorf("invalid seat format %q, expected ROW-NUMBER", value)
	}

	row := strings.ToUpper(strings.TrimSpace(parts[0]))
	if len(row) != 1 || row[0] < 'A' || row[0] > 'Z' {
		return Seat{}, fmt.Errorf("invalid seat row %q", parts[0])
	}

	number, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil || number <= 0 {
		return Seat{}, fmt.Errorf("invalid seat number %q", parts[1])
	}

	return Seat{Row: row, Number: number}, nil
}

// InLayout reports whether the seat exists in a rows x columns room.
// Row A is the first row.
func (s Seat) InLayout(rows, columns int) bool {
	if len(s.Row) != 1 {
		return false
	}
	rowIndex := int(s.Row[0]-'A') + 1
	return rowIndex >= 1 && rowIndex <= rows && s.Number >= 1 && s.Number <= columns
}

// SeatStrings formats a seat list for responses and error messages.
func SeatStrings(seats []Seat) []string {
	out := make([]string, len(seats))
	for i, seat := range seats {
		out[i] = seat.String()
	}
	return out
}
