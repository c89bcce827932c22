package bookings

import "errors"

var (
	// ErrNoReceipt возвращается, когда квитанции нет или она уже была показана
	ErrNoReceipt = errors.New("no payment receipt to show")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
