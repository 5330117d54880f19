package response

import (
	"time"

	"cinema-checkout/internal/data/entity"

	"github.com/shopspring/decimal"
)

type TicketResponse struct {
	ID           string    `json:"id"`
	ShowtimeID   string    `json:"showtime_id"`
	OrderID      string    `json:"order_id"`
	PersonID     *string   `json:"person_id,omitempty"`
	Seat         string    `json:"seat"`
	Price        string    `json:"price"`
	PurchaseDate time.Time `json:"purchase_date"`
}

func TicketToResponse(ticket *entity.Ticket) TicketResponse {
	resp := TicketResponse{
		ID:           ticket.ID.String(),
		ShowtimeID:   ticket.ShowtimeID.String(),
		OrderID:      ticket.OrderID.String(),
		Seat:         ticket.Seat().String(),
		Price:        ticket.Price.StringFixed(2),
		PurchaseDate: ticket.PurchaseDate,
	}

	if ticket.PersonID != nil {
		personID := ticket.PersonID.String()
		resp.PersonID = &personID
	}

	return resp
}

func decimalFromInt(n int) decimal.Decimal {
	return decimal.NewFromInt(int64(n))
}
