package response

import (
	"time"

	"cinema-checkout/internal/data/entity"
)

type SnackOrderResponse struct {
	ID              string `json:"id"`
	SnackID         string `json:"snack_id"`
	Name            string `json:"name,omitempty"`
	Quantity        int    `json:"quantity"`
	PriceAtPurchase string `json:"price_at_purchase"`
}

type OrderResponse struct {
	ID          string               `json:"id"`
	OrderNumber string               `json:"order_number"`
	OrderDate   time.Time            `json:"order_date"`
	TotalAmount string               `json:"total_amount"`
	PersonID    *string              `json:"person_id,omitempty"`
	Tickets     []TicketResponse     `json:"tickets"`
	Snacks      []SnackOrderResponse `json:"snacks,omitempty"`
}

func OrderToResponse(order *entity.Order, tickets []*entity.Ticket, snackOrders []*entity.SnackOrder, snackNames map[string]string) *OrderResponse {
	resp := &OrderResponse{
		ID:          order.ID.String(),
		OrderNumber: order.OrderNumber,
		OrderDate:   order.OrderDate,
		TotalAmount: order.TotalAmount.StringFixed(2),
	}

	if order.PersonID != nil {
		personID := order.PersonID.String()
		resp.PersonID = &personID
	}

	for _, ticket := range tickets {
		resp.Tickets = append(resp.Tickets, TicketToResponse(ticket))
	}

	for _, so := range snackOrders {
		resp.Snacks = append(resp.Snacks, SnackOrderResponse{
			ID:              so.ID.String(),
			SnackID:         so.SnackID.String(),
			Name:            snackNames[so.SnackID.String()],
			Quantity:        so.Quantity,
			PriceAtPurchase: so.PriceAtPurchase.StringFixed(2),
		})
	}

	return resp
}
