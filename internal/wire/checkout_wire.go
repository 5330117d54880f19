package wire

import (
	"cinema-checkout/internal/adaptor"
	"cinema-checkout/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireCheckout(
	r chi.Router,
	checkoutHandler *adaptor.CheckoutHandler,
	log *zap.Logger,
) {
	// Every checkout route runs inside a session so the handler always
	// has a token to key the draft on.
	r.Route("/api/checkout", func(r chi.Router) {
		r.Use(middleware.CheckoutSession(log))

		// POST /api/checkout/start/{showtimeID} - Begin a checkout for a showtime
		r.Post("/start/{showtimeID}", checkoutHandler.Start)

		// GET /api/checkout - Current draft state
		r.Get("/", checkoutHandler.GetDraft)

		// POST /api/checkout/quantities - Set normal/discounted ticket counts
		r.Post("/quantities", checkoutHandler.SetQuantities)

		// POST /api/checkout/seats - Pick seats, one per ticket
		r.Post("/seats", checkoutHandler.SetSeats)

		// POST /api/checkout/snacks - Optional snack lines
		r.Post("/snacks", checkoutHandler.SetSnacks)

		// GET /api/checkout/review - Full priced summary before commit
		r.Get("/review", checkoutHandler.Review)

		// POST /api/checkout/confirm - Commit the order atomically
		r.Post("/confirm", checkoutHandler.Confirm)
	})
}
