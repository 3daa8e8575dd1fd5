package get_available_slots

import (
	"time"

	"github.com/m04kA/MedConnect-AppointmentService/internal/auth"
	"github.com/m04kA/MedConnect-AppointmentService/internal/domain"
)

// Request модель запроса на получение свободных слотов
type Request struct {
	Caller   auth.Identity
	DoctorID int64
	Date     time.Time // Дата без времени
}

// Response свободные слоты врача на дату
type Response = domain.DayAvailability
