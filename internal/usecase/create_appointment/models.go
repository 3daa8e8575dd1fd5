package create_appointment

import (
	"time"

	"github.com/m04kA/MedConnect-AppointmentService/internal/auth"
	"github.com/m04kA/MedConnect-AppointmentService/internal/domain"
	"github.com/m04kA/MedConnect-AppointmentService/pkg/types"
)

// Request модель запроса на создание записи
type Request struct {
	Caller    auth.Identity
	DoctorID  int64
	Date      time.Time
	StartTime types.TimeOfDay
	EndTime   *types.TimeOfDay // Если не указан, равен StartTime + длительность слота врача
	Type      domain.AppointmentType
	Reason    string
	Notes     string
}

// Response созданная запись
type Response = domain.Appointment
