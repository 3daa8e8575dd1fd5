package get_available_slots

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrForbidden возвращается, если слоты запрашивает не пациент
	ErrForbidden = errors.New("get_available_slots: only patients can view doctor availability")

	// ErrNotConnected возвращается, если у пациента нет принятой связи с врачом
	ErrNotConnected = errors.New("get_available_slots: you must be connected to this doctor to view availability")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_slots: internal error")
)
