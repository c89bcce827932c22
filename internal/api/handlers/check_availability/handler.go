package check_availability

import (
	"errors"
	"net/http"
	"time"

	"cloud.google.com/go/civil"

	"github.com/m04kA/SMC-DayCareBooking/internal/api/handlers"
	"github.com/m04kA/SMC-DayCareBooking/internal/api/middleware"
	"github.com/m04kA/SMC-DayCareBooking/internal/domain"
	"github.com/m04kA/SMC-DayCareBooking/internal/service/bookings/models"
	attemptBooking "github.com/m04kA/SMC-DayCareBooking/internal/usecase/attempt_booking"
)

const msgInvalidRequestBody = "invalid request body"

type Handler struct {
	useCase AttemptBookingUseCase
	now     func() time.Time
	logger  Logger
}

func NewHandler(useCase AttemptBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		now:     time.Now,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/check
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.GetSession(r.Context())
	if !ok {
		h.logger.Error("POST /bookings/check - Session missing in context")
		handlers.RespondInternalError(w)
		return
	}

	// Любая новая попытка, даже с некорректным запросом, сбрасывает прежнее бронирование
	if session.DiscardPending() {
		h.logger.Info("POST /bookings/check - Previous pending booking discarded: session=%s", session.ID)
	}

	var req CheckAvailabilityRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/check - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом дат)
	useCaseReq, err := req.ToUseCaseRequest(civil.DateOf(h.now()))
	if err != nil {
		var problems domain.Problems
		if !errors.As(err, &problems) {
			h.logger.Warn("POST /bookings/check - Failed to parse request: session=%s, error=%v", session.ID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)
			return
		}

		h.logger.Warn("POST /bookings/check - Invalid selections: session=%s, problems=%d", session.ID, len(problems))
		handlers.RespondJSON(w, http.StatusBadRequest, CheckAvailabilityResponse{
			Available: false,
			Errors:    problems.Messages(),
		})
		return
	}

	pending, err := h.useCase.Execute(r.Context(), session, useCaseReq)
	if err != nil {
		var problems domain.Problems
		if errors.As(err, &problems) {
			var passed []domain.ServiceBookingDetail
			var rejection *attemptBooking.RejectionError
			if errors.As(err, &rejection) {
				passed = rejection.Passed
			}

			h.logger.Warn("POST /bookings/check - Booking not available: session=%s, problems=%d", session.ID, len(problems))
			handlers.RespondJSON(w, http.StatusUnprocessableEntity, CheckAvailabilityResponse{
				Available: false,
				Services:  serviceResults(useCaseReq.Selections, passed, problems),
				Errors:    problems.Messages(),
			})
			return
		}

		h.logger.Error("POST /bookings/check - Failed to check availability: session=%s, error=%v", session.ID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /bookings/check - Booking available: session=%s, booking_id=%s, total=%d",
		session.ID, pending.ID, pending.TotalCost)
	handlers.RespondJSON(w, http.StatusOK, CheckAvailabilityResponse{
		Available: true,
		Booking:   models.FromDomainPending(pending),
		Summary:   domain.RenderSummary(pending),
		Services:  serviceResults(useCaseReq.Selections, pending.Details(), nil),
	})
}
