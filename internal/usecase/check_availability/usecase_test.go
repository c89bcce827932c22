package check_availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/m04kA/SMC-DayCareBooking/internal/domain"
	"github.com/m04kA/SMC-DayCareBooking/internal/infra/storage/ledger"
	"github.com/m04kA/SMC-DayCareBooking/pkg/logger"
	"github.com/m04kA/SMC-DayCareBooking/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(year int, month time.Month, day int) civil.Date {
	return civil.Date{Year: year, Month: month, Day: day}
}

func rangeOf(start, end civil.Date) domain.DateRange {
	return domain.NewDateRange(start, end)
}

func newUseCase(l LedgerReader) *UseCase {
	return NewUseCase(l, metrics.NewWithRegistry(prometheus.NewRegistry(), "test"), logger.NewNop())
}

func fill(t *testing.T, l *ledger.Memory, d civil.Date, service domain.ServiceType, count int) {
	t.Helper()
	for i := 0; i < count; i++ {
		require.NoError(t, l.Increment(context.Background(), d, service))
	}
}

type failingLedger struct{}

func (failingLedger) CountOn(context.Context, civil.Date, domain.ServiceType) (int, error) {
	return 0, errors.New("connection refused")
}

func TestExecute_SingleTuesday(t *testing.T) {
	uc := newUseCase(ledger.NewMemory())

	detail, err := uc.Execute(context.Background(), &Request{
		Service: domain.ServiceElderCare,
		Range:   rangeOf(date(2026, 10, 20), date(2026, 10, 20)),
	})

	require.NoError(t, err)
	assert.Equal(t, []civil.Date{date(2026, 10, 20)}, detail.Dates)
	assert.Equal(t, 1, detail.DayCount)
	assert.Equal(t, 800, detail.Cost)
}

func TestExecute_Rejections(t *testing.T) {
	saturday := date(2026, 10, 17)
	sunday := date(2026, 10, 18)
	monday := date(2026, 10, 19)

	tests := []struct {
		name    string
		req     *Request
		wantErr error
	}{
		{
			name:    "weekend only",
			req:     &Request{Service: domain.ServiceChildCare, Range: rangeOf(saturday, sunday)},
			wantErr: domain.ErrNoWeekdaysInRange,
		},
		{
			name:    "missing end",
			req:     &Request{Service: domain.ServiceChildCare, Range: domain.DateRange{Start: &monday}},
			wantErr: domain.ErrMissingDate,
		},
		{
			name:    "missing start",
			req:     &Request{Service: domain.ServiceElderCare, Range: domain.DateRange{End: &monday}},
			wantErr: domain.ErrMissingDate,
		},
		{
			name:    "inverted",
			req:     &Request{Service: domain.ServiceElderCare, Range: rangeOf(monday, saturday)},
			wantErr: domain.ErrInvertedRange,
		},
		{
			name:    "unknown service",
			req:     &Request{Service: "pet_care", Range: rangeOf(monday, monday)},
			wantErr: domain.ErrUnknownService,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			detail, err := newUseCase(ledger.NewMemory()).Execute(context.Background(), tt.req)

			assert.Nil(t, detail)
			assert.ErrorIs(t, err, tt.wantErr)

			var serviceErr *domain.ServiceError
			require.True(t, errors.As(err, &serviceErr))
			assert.Equal(t, tt.req.Service, serviceErr.Service)
		})
	}
}

func TestExecute_CapacityBoundary(t *testing.T) {
	ctx := context.Background()
	tuesday := date(2026, 10, 20)
	l := ledger.NewMemory()
	uc := newUseCase(l)
	req := &Request{Service: domain.ServiceElderCare, Range: rangeOf(tuesday, tuesday)}

	fill(t, l, tuesday, domain.ServiceElderCare, domain.MaxCapacity-1)

	_, err := uc.Execute(ctx, req)
	require.NoError(t, err)

	fill(t, l, tuesday, domain.ServiceElderCare, 1)

	_, err = uc.Execute(ctx, req)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCapacityExceeded)

	var capErr *domain.CapacityExceededError
	require.True(t, errors.As(err, &capErr))
	assert.Equal(t, []civil.Date{tuesday}, capErr.Dates)
	assert.Equal(t, "Elder Care: Capacity limit (25) reached on: 2026-10-20 (Tue)", err.Error())
}

func TestExecute_ReportsEveryFullDate(t *testing.T) {
	l := ledger.NewMemory()
	fill(t, l, date(2026, 10, 19), domain.ServiceChildCare, domain.MaxCapacity)
	fill(t, l, date(2026, 10, 22), domain.ServiceChildCare, domain.MaxCapacity+2)
	fill(t, l, date(2026, 10, 20), domain.ServiceElderCare, domain.MaxCapacity)

	_, err := newUseCase(l).Execute(context.Background(), &Request{
		Service: domain.ServiceChildCare,
		Range:   rangeOf(date(2026, 10, 19), date(2026, 10, 23)),
	})

	var capErr *domain.CapacityExceededError
	require.True(t, errors.As(err, &capErr))
	assert.Equal(t, []civil.Date{date(2026, 10, 19), date(2026, 10, 22)}, capErr.Dates)
}

func TestExecute_Idempotent(t *testing.T) {
	ctx := context.Background()
	l := ledger.NewMemory()
	fill(t, l, date(2026, 10, 21), domain.ServiceChildCare, 10)
	uc := newUseCase(l)
	req := &Request{Service: domain.ServiceChildCare, Range: rangeOf(date(2026, 10, 17), date(2026, 10, 25))}

	first, err := uc.Execute(ctx, req)
	require.NoError(t, err)
	second, err := uc.Execute(ctx, req)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 5, first.DayCount)
	assert.Equal(t, 3000, first.Cost)

	snapshot, err := l.Snapshot(ctx)
	require.NoError(t, err)
	require.Len(t, snapshot, 1)
	assert.Equal(t, 10, snapshot.CountOn(date(2026, 10, 21), domain.ServiceChildCare))
}

func TestExecute_LedgerFailure(t *testing.T) {
	_, err := newUseCase(failingLedger{}).Execute(context.Background(), &Request{
		Service: domain.ServiceElderCare,
		Range:   rangeOf(date(2026, 10, 20), date(2026, 10, 20)),
	})

	assert.ErrorIs(t, err, ErrInternal)

	var serviceErr *domain.ServiceError
	assert.False(t, errors.As(err, &serviceErr))
}
