package adaptor

import (
	"errors"
	"net/http"

	"cinema-checkout/internal/data/entity"
	"cinema-checkout/internal/data/repository"
	"cinema-checkout/internal/usecase"
	"cinema-checkout/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Checkout *CheckoutHandler
	Ticket   *TicketHandler
	Catalog  *CatalogHandler
	Order    *OrderHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Checkout: NewCheckoutHandler(service.Checkout, log),
		Ticket:   NewTicketHandler(service.Ticket, log),
		Catalog:  NewCatalogHandler(service.Catalog, log),
		Order:    NewOrderHandler(service.Order, log),
	}
}

// handleServiceError maps the domain error taxonomy onto HTTP responses.
// Validation and conflict errors are per-request and recoverable by the
// caller; not-found and no-active-draft send the caller back to start.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	var notFound *usecase.NotFoundError
	var validation *usecase.ValidationError
	var conflict *repository.SeatConflictError

	switch {
	case errors.As(err, &notFound):
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, notFound.Error())

	case errors.As(err, &validation):
		log.Warn(operation+" validation failed", zap.Error(err))
		utils.ResponseBadRequest(w, validation.Message, validation.Fields)

	case errors.As(err, &conflict):
		log.Warn(operation+" failed - seat conflict", zap.Error(err))
		utils.ResponseConflict(w, conflict.Error(), map[string]any{
			"seats": entity.SeatStrings(conflict.Seats),
		})

	case errors.Is(err, usecase.ErrNoActiveDraft):
		log.Warn(operation+" failed - no active draft", zap.Error(err))
		utils.ResponseGone(w, "No active checkout, start a new one")

	default:
		log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
