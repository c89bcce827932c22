package get_receipt

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/m04kA/SMC-DayCareBooking/internal/api/middleware"
	"github.com/m04kA/SMC-DayCareBooking/internal/domain"
	"github.com/m04kA/SMC-DayCareBooking/internal/infra/storage/ledger"
	"github.com/m04kA/SMC-DayCareBooking/internal/service/bookings"
	"github.com/m04kA/SMC-DayCareBooking/pkg/logger"
	"github.com/stretchr/testify/assert"
)

func TestHandle_ShownOnce(t *testing.T) {
	h := NewHandler(bookings.NewService(ledger.NewMemory(), logger.NewNop()), logger.NewNop())
	session := domain.NewSession("s-1", time.Now())
	pending := domain.NewPendingBooking([]domain.ServiceBookingDetail{
		domain.NewServiceBookingDetail(domain.ServiceElderCare, []civil.Date{{Year: 2026, Month: 10, Day: 20}}),
	}, time.Now())
	session.StoreReceipt(domain.NewReceipt(pending, "stub_1", time.Now()))

	serve := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings/receipt", nil)
		req = req.WithContext(middleware.WithSession(req.Context(), session))
		rec := httptest.NewRecorder()
		h.Handle(rec, req)
		return rec
	}

	first := serve()
	assert.Equal(t, http.StatusOK, first.Code)
	assert.Contains(t, first.Body.String(), `"transactionId":"stub_1"`)

	second := serve()
	assert.Equal(t, http.StatusNotFound, second.Code)
}
