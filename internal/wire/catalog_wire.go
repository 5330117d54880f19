package wire

import (
	"cinema-checkout/internal/adaptor"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireCatalog(
	r chi.Router,
	catalogHandler *adaptor.CatalogHandler,
	orderHandler *adaptor.OrderHandler,
	log *zap.Logger,
) {
	// GET /api/showtimes - Upcoming showtimes with movie and room details
	r.Get("/api/showtimes", catalogHandler.ListShowtimes)

	// GET /api/showtimes/{showtimeID} - Single showtime
	r.Get("/api/showtimes/{showtimeID}", catalogHandler.GetShowtime)

	// GET /api/snacks - Snack catalog
	r.Get("/api/snacks", catalogHandler.ListSnacks)

	// GET /api/orders/{orderID} - Committed order with its lines
	r.Get("/api/orders/{orderID}", orderHandler.GetOrder)
}
