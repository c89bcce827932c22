package paymentgateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestClient_Charge(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/charges", r.URL.Path)
		assert.Equal(t, "b-1", r.Header.Get("Idempotency-Key"))

		var req ChargeRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, ChargeRequest{BookingID: "b-1", Amount: 7000, Currency: "INR"}, req)

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(Charge{TransactionID: "txn_42", Status: StatusSucceeded})
	}))
	defer server.Close()

	client := NewClient(server.URL+"/", time.Second, nopLogger{})
	charge, err := client.Charge(context.Background(), ChargeRequest{BookingID: "b-1", Amount: 7000, Currency: "INR"})

	require.NoError(t, err)
	assert.Equal(t, "txn_42", charge.TransactionID)
}

func TestClient_Charge_Errors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{name: "declined", status: http.StatusPaymentRequired, body: `{"code":402,"message":"insufficient funds"}`, wantErr: ErrDeclined},
		{name: "server error", status: http.StatusInternalServerError, body: "oops", wantErr: ErrInvalidResponse},
		{name: "broken json", status: http.StatusOK, body: "{", wantErr: ErrInvalidResponse},
		{name: "empty transaction", status: http.StatusOK, body: `{"status":"succeeded"}`, wantErr: ErrInvalidResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			_, err := NewClient(server.URL, time.Second, nopLogger{}).
				Charge(context.Background(), ChargeRequest{BookingID: "b-1", Amount: 800, Currency: "INR"})

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestClient_Charge_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	_, err := NewClient(url, 100*time.Millisecond, nopLogger{}).
		Charge(context.Background(), ChargeRequest{BookingID: "b-1", Amount: 800, Currency: "INR"})

	assert.ErrorIs(t, err, ErrInternal)
}

func TestStub_Charge(t *testing.T) {
	charge, err := NewStub(nopLogger{}).Charge(context.Background(), ChargeRequest{BookingID: "b-1", Amount: 800, Currency: "INR"})

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(charge.TransactionID, "stub_"))
	assert.Equal(t, StatusSucceeded, charge.Status)
}
