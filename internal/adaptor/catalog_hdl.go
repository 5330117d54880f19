package adaptor

import (
	"net/http"

	"cinema-checkout/internal/usecase"
	"cinema-checkout/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type CatalogHandler struct {
	service usecase.CatalogService
	log     *zap.Logger
}

func NewCatalogHandler(service usecase.CatalogService, log *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		service: service,
		log:     log.With(zap.String("handler", "catalog")),
	}
}

// ListShowtimes handles GET /api/showtimes
func (h *CatalogHandler) ListShowtimes(w http.ResponseWriter, r *http.Request) {
	showtimes, err := h.service.ListUpcomingShowtimes(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "list showtimes")
		return
	}

	utils.ResponseSuccess(w, "success", showtimes)
}

// GetShowtime handles GET /api/showtimes/{showtimeID}
func (h *CatalogHandler) GetShowtime(w http.ResponseWriter, r *http.Request) {
	showtimeID := chi.URLParam(r, "showtimeID")
	if showtimeID == "" {
		utils.ResponseBadRequest(w, "Showtime ID is required", nil)
		return
	}

	showtime, err := h.service.GetShowtime(r.Context(), showtimeID)
	if err != nil {
		handleServiceError(w, h.log, err, "get showtime")
		return
	}

	utils.ResponseSuccess(w, "success", showtime)
}

// ListSnacks handles GET /api/snacks
func (h *CatalogHandler) ListSnacks(w http.ResponseWriter, r *http.Request) {
	snacks, err := h.service.ListSnacks(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "list snacks")
		return
	}

	utils.ResponseSuccess(w, "success", snacks)
}
