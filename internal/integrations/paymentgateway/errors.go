package paymentgateway

import "errors"

var (
	// ErrDeclined возвращается, когда шлюз отклонил списание
	ErrDeclined = errors.New("payment gateway: charge declined")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("payment gateway client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от шлюза
	ErrInvalidResponse = errors.New("payment gateway client: invalid response")
)
