package response

import (
	"cinema-checkout/internal/data/entity"
)

type SnackLineResponse struct {
	SnackID   string `json:"snack_id"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unit_price"`
	LineTotal string `json:"line_total"`
}

type DraftResponse struct {
	ShowtimeID     string              `json:"showtime_id"`
	Step           entity.CheckoutStep `json:"step"`
	QtyNormal      int                 `json:"qty_normal"`
	QtyDiscounted  int                 `json:"qty_discounted"`
	TotalTickets   int                 `json:"total_tickets"`
	Seats          []string            `json:"seats,omitempty"`
	Snacks         []SnackLineResponse `json:"snacks,omitempty"`
	TicketSubtotal string              `json:"ticket_subtotal"`
	TotalPrice     string              `json:"total_price"`
}

// ReviewResponse is the read-only recap before confirm.
type ReviewResponse struct {
	DraftResponse
	MovieTitle string `json:"movie_title"`
	RoomNumber int    `json:"room_number"`
	StartTime  string `json:"start_time"`
}

type ConfirmResponse struct {
	OrderID     string `json:"order_id"`
	OrderNumber string `json:"order_number"`
	TotalAmount string `json:"total_amount"`
}

func DraftToResponse(draft *entity.CheckoutDraft) *DraftResponse {
	resp := &DraftResponse{
		ShowtimeID:     draft.ShowtimeID.String(),
		Step:           draft.Step,
		QtyNormal:      draft.QtyNormal,
		QtyDiscounted:  draft.QtyDiscounted,
		TotalTickets:   draft.TotalTickets(),
		Seats:          entity.SeatStrings(draft.Seats),
		TicketSubtotal: draft.TicketSubtotal.StringFixed(2),
		TotalPrice:     draft.TotalPrice.StringFixed(2),
	}

	for _, line := range draft.Snacks {
		resp.Snacks = append(resp.Snacks, SnackLineResponse{
			SnackID:   line.SnackID.String(),
			Name:      line.Name,
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice.StringFixed(2),
			LineTotal: line.UnitPrice.Mul(decimalFromInt(line.Quantity)).StringFixed(2),
		})
	}

	return resp
}
