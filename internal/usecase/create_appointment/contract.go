package create_appointment

import (
	"context"
	"time"

	"github.com/m04kA/MedConnect-AppointmentService/internal/domain"
	"github.com/m04kA/MedConnect-AppointmentService/internal/infra/lock"
	"github.com/m04kA/MedConnect-AppointmentService/pkg/types"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	ExistsActive(ctx context.Context, doctorID int64, date time.Time, start types.TimeOfDay) (bool, error)
	Create(ctx context.Context, appointment *domain.Appointment) (*domain.Appointment, error)
}

// AvailabilityRepository интерфейс репозитория шаблонов расписания
type AvailabilityRepository interface {
	GetByDoctorID(ctx context.Context, doctorID int64) (*domain.DoctorAvailability, error)
}

// ConnectionRepository интерфейс репозитория связей пациент-врач
type ConnectionRepository interface {
	FindAccepted(ctx context.Context, patientID, doctorID int64) (*domain.Connection, error)
}

// SlotLocker распределенная блокировка слота
type SlotLocker interface {
	WithSlotLock(ctx context.Context, key lock.SlotKey, fn func(ctx context.Context) error) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Notifier отправка уведомления врачу о новой записи
type Notifier interface {
	AppointmentRequested(ctx context.Context, appointment *domain.Appointment) error
}

// Metrics доменные счетчики
type Metrics interface {
	IncAppointmentCreated()
	IncBookingConflict()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
