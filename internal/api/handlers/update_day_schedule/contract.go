package update_day_schedule

import (
	"context"

	"github.com/m04kA/MedConnect-AppointmentService/internal/service/availability/models"
)

type AvailabilityService interface {
	UpdateDay(ctx context.Context, req *models.UpdateDayRequest) (*models.AvailabilityResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
