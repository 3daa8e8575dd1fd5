package respond_appointment

import (
	"context"

	respondAppointment "github.com/m04kA/MedConnect-AppointmentService/internal/usecase/respond_appointment"
)

type RespondAppointmentUseCase interface {
	Execute(ctx context.Context, req *respondAppointment.Request) (*respondAppointment.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
