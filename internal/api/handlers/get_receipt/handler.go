package get_receipt

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-DayCareBooking/internal/api/handlers"
	"github.com/m04kA/SMC-DayCareBooking/internal/api/middleware"
	"github.com/m04kA/SMC-DayCareBooking/internal/service/bookings"
)

const msgNoReceipt = "no payment receipt to show"

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

// Handle GET /api/v1/bookings/receipt
// Квитанция отдается один раз, повторный запрос вернет 404
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.GetSession(r.Context())
	if !ok {
		h.logger.Error("GET /bookings/receipt - Session missing in context")
		handlers.RespondInternalError(w)
		return
	}

	receipt, err := h.service.TakeReceipt(session)
	if err != nil {
		if errors.Is(err, bookings.ErrNoReceipt) {
			handlers.RespondNotFound(w, msgNoReceipt)
			return
		}
		h.logger.Error("GET /bookings/receipt - Failed to get receipt: session=%s, error=%v", session.ID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /bookings/receipt - Receipt shown: session=%s, receipt_id=%s", session.ID, receipt.ID)
	handlers.RespondJSON(w, http.StatusOK, receipt)
}
