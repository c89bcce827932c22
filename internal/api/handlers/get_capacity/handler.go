package get_capacity

import (
	"net/http"

	"github.com/m04kA/SMC-DayCareBooking/internal/api/handlers"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/capacity
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	capacity, err := h.service.Capacity(r.Context())
	if err != nil {
		h.logger.Error("GET /capacity - Failed to read ledger: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /capacity - Snapshot retrieved: dates=%d", len(capacity.Days))
	handlers.RespondJSON(w, http.StatusOK, capacity)
}
