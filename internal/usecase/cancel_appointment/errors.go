package cancel_appointment

import "errors"

var (
	// ErrInvalidInput возвращается при невалидных входных данных
	ErrInvalidInput = errors.New("cancel_appointment: invalid input")

	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = errors.New("cancel_appointment: appointment not found")

	// ErrForbidden возвращается, когда отменяет не участник записи
	ErrForbidden = errors.New("cancel_appointment: you are not a participant of this appointment")

	// ErrAlreadyCancelled возвращается при повторной отмене
	ErrAlreadyCancelled = errors.New("cancel_appointment: appointment already cancelled")

	// ErrInvalidState возвращается для отклоненных и завершенных записей
	ErrInvalidState = errors.New("cancel_appointment: appointment cannot be cancelled")

	// ErrInternal возвращается при внутренних ошибках
	ErrInternal = errors.New("cancel_appointment: internal error")
)
