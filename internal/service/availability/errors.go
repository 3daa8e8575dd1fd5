package availability

import "errors"

var (
	// ErrAccessDenied возвращается, когда шаблон запрашивает не врач
	ErrAccessDenied = errors.New("only doctors can manage availability")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
