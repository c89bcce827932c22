package get_services

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/m04kA/SMC-DayCareBooking/internal/infra/storage/ledger"
	"github.com/m04kA/SMC-DayCareBooking/internal/service/bookings"
	"github.com/m04kA/SMC-DayCareBooking/internal/service/bookings/models"
	"github.com/m04kA/SMC-DayCareBooking/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandle(t *testing.T) {
	rec := httptest.NewRecorder()
	NewHandler(bookings.NewService(ledger.NewMemory(), logger.NewNop()), logger.NewNop()).
		Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/services", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp models.ServiceListResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp.Services, 2)
	assert.Equal(t, "Elder Day Care", resp.Services[0].Name)
	assert.Equal(t, 25, resp.Services[1].DailyCapacity)
}
