package create_appointment

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/MedConnect-AppointmentService/internal/domain"
	"github.com/m04kA/MedConnect-AppointmentService/internal/infra/lock"
	appointmentRepo "github.com/m04kA/MedConnect-AppointmentService/internal/infra/storage/appointment"
	availabilityRepo "github.com/m04kA/MedConnect-AppointmentService/internal/infra/storage/availability"
	connectionRepo "github.com/m04kA/MedConnect-AppointmentService/internal/infra/storage/connection"
	"github.com/m04kA/MedConnect-AppointmentService/pkg/pgerr"
	"github.com/m04kA/MedConnect-AppointmentService/pkg/types"
)

// UseCase use case для создания записи на прием
type UseCase struct {
	appointmentRepo  AppointmentRepository
	availabilityRepo AvailabilityRepository
	connectionRepo   ConnectionRepository
	locker           SlotLocker
	txManager        TransactionManager
	notifier         Notifier
	metrics          Metrics
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	availabilityRepo AvailabilityRepository,
	connectionRepo ConnectionRepository,
	locker SlotLocker,
	txManager TransactionManager,
	notifier Notifier,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo:  appointmentRepo,
		availabilityRepo: availabilityRepo,
		connectionRepo:   connectionRepo,
		locker:           locker,
		txManager:        txManager,
		notifier:         notifier,
		metrics:          metrics,
		logger:           logger,
	}
}

// Execute выполняет use case создания записи.
// Порядок: роль -> принятая связь с врачом -> валидация -> проверка слота -> сохранение -> уведомление.
// Проверка и вставка идут в сериализуемой транзакции; окончательную гарантию дает уникальный индекс.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: patient=%d, doctor=%d, date=%s, start=%s, type=%s",
		req.Caller.ID, req.DoctorID, req.Date.Format(domain.DateFormat), req.StartTime, req.Type)

	// 1. Проверка роли
	if !req.Caller.IsPatient() {
		uc.logger.Warn("CreateAppointment: user=%d with role %s is not a patient", req.Caller.ID, req.Caller.UserType)
		return nil, ErrForbidden
	}

	// 2. Связь пациента с врачом должна быть принята
	connection, err := uc.connectionRepo.FindAccepted(ctx, req.Caller.ID, req.DoctorID)
	if err != nil {
		if errors.Is(err, connectionRepo.ErrConnectionNotFound) {
			uc.logger.Warn("CreateAppointment: patient=%d is not connected to doctor=%d", req.Caller.ID, req.DoctorID)
			return nil, ErrNotConnected
		}
		uc.logger.Error("CreateAppointment: failed to check connection: %v", err)
		return nil, fmt.Errorf("%w: failed to check connection: %v", ErrInternal, err)
	}

	// 3. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	slotKey := lock.SlotKey{DoctorID: req.DoctorID, Date: req.Date, Start: req.StartTime}
	var result *domain.Appointment

	// 4. Блокировка слота и сериализуемая транзакция
	err = uc.locker.WithSlotLock(ctx, slotKey, func(lockCtx context.Context) error {
		return uc.txManager.DoSerializable(lockCtx, func(txCtx context.Context) error {
			// 4.1. Слот не должен быть занят активной записью
			taken, err := uc.appointmentRepo.ExistsActive(txCtx, req.DoctorID, req.Date, req.StartTime)
			if err != nil {
				return fmt.Errorf("%w: failed to check slot: %w", ErrInternal, err)
			}
			if taken {
				return ErrSlotNotAvailable
			}

			// 4.2. Место приема и длительность из шаблона врача
			availability, err := uc.availabilityRepo.GetByDoctorID(txCtx, req.DoctorID)
			if err != nil && !errors.Is(err, availabilityRepo.ErrAvailabilityNotFound) {
				return fmt.Errorf("%w: failed to get availability: %w", ErrInternal, err)
			}

			endTime := resolveEndTime(req, availability)
			if err := validateEndTime(endTime); err != nil {
				return err
			}

			appointment := &domain.Appointment{
				PatientID:    req.Caller.ID,
				DoctorID:     req.DoctorID,
				ConnectionID: connection.ID,
				Date:         req.Date,
				StartTime:    req.StartTime,
				EndTime:      endTime,
				Type:         req.Type,
				Reason:       strings.TrimSpace(req.Reason),
				Notes:        req.Notes,
				Status:       domain.StatusPending,
			}
			if req.Type == domain.TypeInPerson {
				appointment.Location = availability.InPersonLocation()
			}

			// 4.3. Сохраняем запись
			created, err := uc.appointmentRepo.Create(txCtx, appointment)
			if err != nil {
				if errors.Is(err, appointmentRepo.ErrSlotTaken) {
					return ErrSlotNotAvailable
				}
				return fmt.Errorf("%w: failed to create appointment: %w", ErrInternal, err)
			}

			result = created
			return nil
		})
	})

	if err != nil {
		if isSlotConflict(err) {
			uc.metrics.IncBookingConflict()
			uc.logger.Warn("CreateAppointment: slot doctor=%d date=%s start=%s is not available: %v",
				req.DoctorID, req.Date.Format(domain.DateFormat), req.StartTime, err)
			return nil, ErrSlotNotAvailable
		}
		if errors.Is(err, ErrInvalidInput) {
			uc.logger.Warn("CreateAppointment: validation failed: %v", err)
			return nil, err
		}
		uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
		if errors.Is(err, ErrInternal) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	uc.metrics.IncAppointmentCreated()
	uc.logger.Info("CreateAppointment: successfully created appointment id=%d", result.ID)

	// 5. Уведомление врачу; ошибка не отменяет созданную запись
	if err := uc.notifier.AppointmentRequested(ctx, result); err != nil {
		uc.logger.Error("CreateAppointment: failed to notify doctor=%d about appointment id=%d: %v",
			result.DoctorID, result.ID, err)
	}

	return result, nil
}

// resolveEndTime конец приема: из запроса или начало + длительность слота врача
func resolveEndTime(req *Request, availability *domain.DoctorAvailability) types.TimeOfDay {
	if req.EndTime != nil {
		return *req.EndTime
	}
	duration := domain.DefaultSlotDurationMinutes
	if availability != nil && availability.SlotDuration > 0 {
		duration = availability.SlotDuration
	}
	return req.StartTime.Add(duration)
}

// isSlotConflict слот занят: проверкой, уникальным индексом, блокировкой или конфликтом сериализации
func isSlotConflict(err error) bool {
	return errors.Is(err, ErrSlotNotAvailable) ||
		errors.Is(err, lock.ErrLockNotAcquired) ||
		pgerr.IsSerializationFailure(err)
}
