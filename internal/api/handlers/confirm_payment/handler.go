package confirm_payment

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-DayCareBooking/internal/api/handlers"
	"github.com/m04kA/SMC-DayCareBooking/internal/api/middleware"
	"github.com/m04kA/SMC-DayCareBooking/internal/domain"
	"github.com/m04kA/SMC-DayCareBooking/internal/service/bookings/models"
)

const (
	msgNoPendingBooking = "no pending booking, check availability first"
	msgPaymentFailed    = "payment failed, please try again"
	msgCommitConflict   = "capacity changed before the booking was committed, please check availability again"
)

type Handler struct {
	useCase ConfirmPaymentUseCase
	logger  Logger
}

func NewHandler(useCase ConfirmPaymentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/confirm
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.GetSession(r.Context())
	if !ok {
		h.logger.Error("POST /bookings/confirm - Session missing in context")
		handlers.RespondInternalError(w)
		return
	}

	receipt, err := h.useCase.Execute(r.Context(), session)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNoPendingBooking):
			h.logger.Warn("POST /bookings/confirm - No pending booking: session=%s", session.ID)
			handlers.RespondConflict(w, msgNoPendingBooking)

		case errors.Is(err, domain.ErrPaymentFailed):
			h.logger.Warn("POST /bookings/confirm - Payment failed: session=%s, error=%v", session.ID, err)
			handlers.RespondError(w, http.StatusPaymentRequired, msgPaymentFailed)

		case errors.Is(err, domain.ErrCommitConflict):
			h.logger.Warn("POST /bookings/confirm - Commit conflict: session=%s, error=%v", session.ID, err)
			handlers.RespondConflict(w, msgCommitConflict)

		default:
			h.logger.Error("POST /bookings/confirm - Failed to confirm payment: session=%s, error=%v", session.ID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/confirm - Payment confirmed: session=%s, booking_id=%s, transaction_id=%s",
		session.ID, receipt.BookingID, receipt.TransactionID)
	handlers.RespondJSON(w, http.StatusOK, models.FromDomainReceipt(receipt))
}
