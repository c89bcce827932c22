package get_pending_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-DayCareBooking/internal/api/handlers"
	"github.com/m04kA/SMC-DayCareBooking/internal/api/middleware"
	"github.com/m04kA/SMC-DayCareBooking/internal/domain"
)

const (
	msgNoPendingBooking = "no pending booking, check availability first"
	formatMarkdown      = "markdown"
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

// Handle GET /api/v1/bookings/pending[?format=markdown]
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.GetSession(r.Context())
	if !ok {
		h.logger.Error("GET /bookings/pending - Session missing in context")
		handlers.RespondInternalError(w)
		return
	}

	if r.URL.Query().Get("format") == formatMarkdown {
		summary, err := h.service.GetPendingSummary(session)
		if err != nil {
			h.respondError(w, session, err)
			return
		}
		handlers.RespondMarkdown(w, http.StatusOK, summary)
		return
	}

	pending, err := h.service.GetPending(session)
	if err != nil {
		h.respondError(w, session, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, pending)
}

func (h *Handler) respondError(w http.ResponseWriter, session *domain.Session, err error) {
	if errors.Is(err, domain.ErrNoPendingBooking) {
		h.logger.Info("GET /bookings/pending - No pending booking: session=%s", session.ID)
		handlers.RespondNotFound(w, msgNoPendingBooking)
		return
	}
	h.logger.Error("GET /bookings/pending - Failed to get pending booking: session=%s, error=%v", session.ID, err)
	handlers.RespondInternalError(w)
}
