package check_availability

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках usecase (недоступен журнал)
	ErrInternal = errors.New("check_availability: internal error")
)
