package paymentgateway

// ChargeRequest запрос на списание суммы бронирования
type ChargeRequest struct {
	BookingID string `json:"booking_id"`
	Amount    int    `json:"amount"`
	Currency  string `json:"currency"`
}

// Charge результат списания
type Charge struct {
	TransactionID string `json:"transaction_id"`
	Status        string `json:"status"`
}

// ErrorResponse модель ошибки от платежного шлюза
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

const (
	// StatusSucceeded статус успешного списания
	StatusSucceeded = "succeeded"
)
