package cancel_appointment

import (
	"github.com/m04kA/MedConnect-AppointmentService/internal/auth"
	"github.com/m04kA/MedConnect-AppointmentService/internal/domain"
)

// Request модель запроса на отмену записи
type Request struct {
	Caller        auth.Identity
	AppointmentID int64
	Reason        string
}

// Response отмененная запись
type Response = domain.Appointment
