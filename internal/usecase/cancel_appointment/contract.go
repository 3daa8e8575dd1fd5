package cancel_appointment

import (
	"context"

	"github.com/m04kA/MedConnect-AppointmentService/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	Cancel(ctx context.Context, id, cancelledBy int64, reason string) (*domain.Appointment, error)
}

// Notifier уведомление второго участника об отмене
type Notifier interface {
	AppointmentCancelled(ctx context.Context, appointment *domain.Appointment, cancelledBy int64) error
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
