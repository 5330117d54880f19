package adaptor

import (
	"encoding/json"
	"net/http"

	"cinema-checkout/internal/dto/request"
	"cinema-checkout/internal/usecase"
	"cinema-checkout/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type TicketHandler struct {
	service usecase.TicketService
	log     *zap.Logger
}

func NewTicketHandler(service usecase.TicketService, log *zap.Logger) *TicketHandler {
	return &TicketHandler{
		service: service,
		log:     log.With(zap.String("handler", "ticket")),
	}
}

// Buy handles POST /api/tickets/buy
func (h *TicketHandler) Buy(w http.ResponseWriter, r *http.Request) {
	var req request.BuyTicketRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	order, err := h.service.Buy(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "buy ticket")
		return
	}

	utils.ResponseCreated(w, "ticket purchased", order)
}

// GetOccupiedSeats handles GET /api/showtimes/{showtimeID}/seats
func (h *TicketHandler) GetOccupiedSeats(w http.ResponseWriter, r *http.Request) {
	showtimeID := chi.URLParam(r, "showtimeID")
	if showtimeID == "" {
		utils.ResponseBadRequest(w, "Showtime ID is required", nil)
		return
	}

	seats, err := h.service.GetOccupiedSeats(r.Context(), showtimeID)
	if err != nil {
		handleServiceError(w, h.log, err, "get occupied seats")
		return
	}

	utils.ResponseSuccess(w, "success", seats)
}

// GetPersonTickets handles GET /api/tickets?person_id=...
func (h *TicketHandler) GetPersonTickets(w http.ResponseWriter, r *http.Request) {
	personID := r.URL.Query().Get("person_id")
	if personID == "" {
		utils.ResponseBadRequest(w, "person_id query parameter is required", nil)
		return
	}

	tickets, err := h.service.GetPersonTickets(r.Context(), personID)
	if err != nil {
		handleServiceError(w, h.log, err, "get person tickets")
		return
	}

	utils.ResponseSuccess(w, "success", tickets)
}

// GetAllSales handles GET /api/admin/tickets
func (h *TicketHandler) GetAllSales(w http.ResponseWriter, r *http.Request) {
	req := request.PaginatedRequest{
		Page:    utils.ParseInt(r.URL.Query().Get("page"), 1),
		PerPage: utils.ParseInt(r.URL.Query().Get("per_page"), 10),
	}

	tickets, err := h.service.GetAllSales(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "get all sales")
		return
	}

	utils.ResponseSuccess(w, "success", tickets)
}
