package adaptor

import (
	"encoding/json"
	"io"
	"net/http"

	"cinema-checkout/internal/dto/request"
	"cinema-checkout/internal/usecase"
	"cinema-checkout/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type CheckoutHandler struct {
	service usecase.CheckoutService
	log     *zap.Logger
}

func NewCheckoutHandler(service usecase.CheckoutService, log *zap.Logger) *CheckoutHandler {
	return &CheckoutHandler{
		service: service,
		log:     log.With(zap.String("handler", "checkout")),
	}
}

// Start handles POST /api/checkout/start/{showtimeID}
func (h *CheckoutHandler) Start(w http.ResponseWriter, r *http.Request) {
	token, ok := utils.GetCheckoutTokenFromContext(r.Context())
	if !ok {
		utils.ResponseInternalError(w, "Missing checkout session")
		return
	}

	showtimeID := chi.URLParam(r, "showtimeID")
	if showtimeID == "" {
		utils.ResponseBadRequest(w, "Showtime ID is required", nil)
		return
	}

	draft, err := h.service.Start(r.Context(), token, showtimeID)
	if err != nil {
		handleServiceError(w, h.log, err, "start checkout")
		return
	}

	utils.ResponseCreated(w, "checkout started", draft)
}

// GetDraft handles GET /api/checkout
func (h *CheckoutHandler) GetDraft(w http.ResponseWriter, r *http.Request) {
	token, ok := utils.GetCheckoutTokenFromContext(r.Context())
	if !ok {
		utils.ResponseInternalError(w, "Missing checkout session")
		return
	}

	draft, err := h.service.GetDraft(r.Context(), token)
	if err != nil {
		handleServiceError(w, h.log, err, "get draft")
		return
	}

	utils.ResponseSuccess(w, "success", draft)
}

// SetQuantities handles POST /api/checkout/quantities
func (h *CheckoutHandler) SetQuantities(w http.ResponseWriter, r *http.Request) {
	token, ok := utils.GetCheckoutTokenFromContext(r.Context())
	if !ok {
		utils.ResponseInternalError(w, "Missing checkout session")
		return
	}

	var req request.QuantitiesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	draft, err := h.service.SetQuantities(r.Context(), token, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "set quantities")
		return
	}

	utils.ResponseSuccess(w, "quantities set", draft)
}

// SetSeats handles POST /api/checkout/seats
func (h *CheckoutHandler) SetSeats(w http.ResponseWriter, r *http.Request) {
	token, ok := utils.GetCheckoutTokenFromContext(r.Context())
	if !ok {
		utils.ResponseInternalError(w, "Missing checkout session")
		return
	}

	var req request.SeatsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	draft, err := h.service.SetSeats(r.Context(), token, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "set seats")
		return
	}

	utils.ResponseSuccess(w, "seats selected", draft)
}

// SetSnacks handles POST /api/checkout/snacks
func (h *CheckoutHandler) SetSnacks(w http.ResponseWriter, r *http.Request) {
	token, ok := utils.GetCheckoutTokenFromContext(r.Context())
	if !ok {
		utils.ResponseInternalError(w, "Missing checkout session")
		return
	}

	var req request.SnacksRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	draft, err := h.service.SetSnacks(r.Context(), token, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "set snacks")
		return
	}

	utils.ResponseSuccess(w, "snacks selected", draft)
}

// Review handles GET /api/checkout/review
func (h *CheckoutHandler) Review(w http.ResponseWriter, r *http.Request) {
	token, ok := utils.GetCheckoutTokenFromContext(r.Context())
	if !ok {
		utils.ResponseInternalError(w, "Missing checkout session")
		return
	}

	review, err := h.service.Review(r.Context(), token)
	if err != nil {
		handleServiceError(w, h.log, err, "review checkout")
		return
	}

	utils.ResponseSuccess(w, "success", review)
}

// Confirm handles POST /api/checkout/confirm
func (h *CheckoutHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	token, ok := utils.GetCheckoutTokenFromContext(r.Context())
	if !ok {
		utils.ResponseInternalError(w, "Missing checkout session")
		return
	}

	// Empty body means an anonymous order
	var req request.ConfirmRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err != io.EOF {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.service.Confirm(r.Context(), token, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "confirm checkout")
		return
	}

	utils.ResponseCreated(w, "order committed", result)
}
