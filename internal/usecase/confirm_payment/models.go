package confirm_payment

const (
	resultSuccess       = "success"
	resultNoPending     = "no_pending"
	resultPaymentFailed = "payment_failed"
	resultConflict      = "conflict"
	resultError         = "error"
)
