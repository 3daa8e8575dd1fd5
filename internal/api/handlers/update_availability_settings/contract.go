package update_availability_settings

import (
	"context"

	"github.com/m04kA/MedConnect-AppointmentService/internal/service/availability/models"
)

type AvailabilityService interface {
	UpdateSettings(ctx context.Context, req *models.UpdateSettingsRequest) (*models.AvailabilityResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
