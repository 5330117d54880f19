package wire

import (
	"cinema-checkout/internal/adaptor"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireTicket(
	r chi.Router,
	ticketHandler *adaptor.TicketHandler,
	log *zap.Logger,
) {
	// POST /api/tickets/buy - Single-step sale, no wizard
	r.Post("/api/tickets/buy", ticketHandler.Buy)

	// GET /api/tickets?person_id=... - Tickets held by a person
	r.Get("/api/tickets", ticketHandler.GetPersonTickets)

	// GET /api/showtimes/{showtimeID}/seats - Occupied seats for a showtime
	r.Get("/api/showtimes/{showtimeID}/seats", ticketHandler.GetOccupiedSeats)

	// ==================== ADMIN ROUTES ====================
	// GET /api/admin/tickets - Paginated sales listing
	r.Get("/api/admin/tickets", ticketHandler.GetAllSales)
}
