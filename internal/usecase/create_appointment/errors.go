package create_appointment

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrForbidden возвращается, если запись создает не пациент
	ErrForbidden = errors.New("create_appointment: only patients can book appointments")

	// ErrNotConnected возвращается, если у пациента нет принятой связи с врачом
	ErrNotConnected = errors.New("create_appointment: you must be connected to this doctor to book an appointment")

	// ErrSlotNotAvailable возвращается, когда слот уже занят активной записью
	ErrSlotNotAvailable = errors.New("create_appointment: this time slot is no longer available")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_appointment: internal error")
)
