package domain

// Значения шаблона расписания по умолчанию
const (
	DefaultSlotDurationMinutes = 30
	DefaultBufferTimeMinutes   = 0
	DefaultLocation            = "Medical Office"

	// FallbackInPersonLocation место очного приема, если у врача нет шаблона или location пуст
	FallbackInPersonLocation = "Doctor's Office"
)

// Ограничения бизнес-валидации
const (
	MinSlotDurationMinutes = 5
	MaxSlotDurationMinutes = 480 // 8 часов
	MinBufferTimeMinutes   = 0
	MaxBufferTimeMinutes   = 240
	MaxLocationLength      = 255
	MaxReasonLength        = 1000
	MaxNotesLength         = 2000
	MaxCancelReasonLength  = 500
)

// Форматы даты и времени
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// ActiveStatuses статусы, которые держат слот занятым
var ActiveStatuses = []AppointmentStatus{
	StatusPending,
	StatusConfirmed,
}
