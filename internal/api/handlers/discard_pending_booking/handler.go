package discard_pending_booking

import (
	"net/http"

	"github.com/m04kA/SMC-DayCareBooking/internal/api/handlers"
	"github.com/m04kA/SMC-DayCareBooking/internal/api/middleware"
)

const msgNoPendingBooking = "no pending booking to discard"

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

// Handle DELETE /api/v1/bookings/pending
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.GetSession(r.Context())
	if !ok {
		h.logger.Error("DELETE /bookings/pending - Session missing in context")
		handlers.RespondInternalError(w)
		return
	}

	if !h.service.DiscardPending(session) {
		handlers.RespondNotFound(w, msgNoPendingBooking)
		return
	}

	h.logger.Info("DELETE /bookings/pending - Pending booking discarded: session=%s", session.ID)
	w.WriteHeader(http.StatusNoContent)
}
