package respond_appointment

import (
	"context"

	"github.com/m04kA/MedConnect-AppointmentService/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	Respond(ctx context.Context, id int64, status domain.AppointmentStatus, reason *string) (*domain.Appointment, error)
}

// Notifier уведомление пациента о решении врача
type Notifier interface {
	AppointmentResponded(ctx context.Context, appointment *domain.Appointment) error
}

// Metrics доменные счетчики
type Metrics interface {
	IncTransition(to string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
