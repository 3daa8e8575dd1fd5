package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/MedConnect-AppointmentService/internal/domain"
	"github.com/m04kA/MedConnect-AppointmentService/pkg/types"
)

// AppointmentRepository интерфейс репозитория записей (журнал занятых слотов)
type AppointmentRepository interface {
	GetActiveStartTimes(ctx context.Context, doctorID int64, date time.Time) ([]types.TimeOfDay, error)
}

// AvailabilityRepository интерфейс репозитория шаблонов расписания
type AvailabilityRepository interface {
	GetOrCreate(ctx context.Context, defaults *domain.DoctorAvailability) (*domain.DoctorAvailability, error)
}

// ConnectionRepository интерфейс репозитория связей пациент-врач
type ConnectionRepository interface {
	FindAccepted(ctx context.Context, patientID, doctorID int64) (*domain.Connection, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
