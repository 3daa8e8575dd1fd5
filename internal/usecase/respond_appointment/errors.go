package respond_appointment

import "errors"

var (
	// ErrInvalidInput возвращается при невалидных входных данных
	ErrInvalidInput = errors.New("respond_appointment: invalid input")

	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = errors.New("respond_appointment: appointment not found")

	// ErrForbidden возвращается, когда отвечает не врач записи
	ErrForbidden = errors.New("respond_appointment: only the doctor can respond to this appointment")

	// ErrInvalidState возвращается, когда запись уже не в статусе pending
	ErrInvalidState = errors.New("respond_appointment: appointment is not pending")

	// ErrInternal возвращается при внутренних ошибках
	ErrInternal = errors.New("respond_appointment: internal error")
)
