package notifications

import "errors"

var (
	// ErrNotificationNotFound возвращается, когда уведомление не найдено у получателя
	ErrNotificationNotFound = errors.New("notification not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
