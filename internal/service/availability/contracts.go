package availability

import (
	"context"

	"github.com/m04kA/MedConnect-AppointmentService/internal/domain"
)

// AvailabilityRepository интерфейс репозитория шаблонов расписания
type AvailabilityRepository interface {
	GetOrCreate(ctx context.Context, defaults *domain.DoctorAvailability) (*domain.DoctorAvailability, error)
	Update(ctx context.Context, availability *domain.DoctorAvailability) (*domain.DoctorAvailability, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
