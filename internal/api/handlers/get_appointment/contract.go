package get_appointment

import (
	"context"

	"github.com/m04kA/MedConnect-AppointmentService/internal/auth"
	"github.com/m04kA/MedConnect-AppointmentService/internal/service/appointments/models"
)

type AppointmentService interface {
	GetByID(ctx context.Context, id int64, caller auth.Identity) (*models.AppointmentResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
