package cancel_appointment

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/MedConnect-AppointmentService/internal/domain"
	appointmentRepo "github.com/m04kA/MedConnect-AppointmentService/internal/infra/storage/appointment"
)

// UseCase use case отмены записи участником
type UseCase struct {
	appointmentRepo AppointmentRepository
	notifier        Notifier
	metrics         Metrics
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(appointmentRepo AppointmentRepository, notifier Notifier, metrics Metrics, logger Logger) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		notifier:        notifier,
		metrics:         metrics,
		logger:          logger,
	}
}

// Execute отменяет запись в статусе pending или confirmed
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CancelAppointment: user=%d, appointment=%d", req.Caller.ID, req.AppointmentID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CancelAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Загружаем запись
	appointment, err := uc.appointmentRepo.GetByID(ctx, req.AppointmentID)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			return nil, ErrAppointmentNotFound
		}
		uc.logger.Error("CancelAppointment: failed to get appointment id=%d: %v", req.AppointmentID, err)
		return nil, fmt.Errorf("%w: failed to get appointment: %v", ErrInternal, err)
	}

	// 3. Отменить может пациент или врач записи
	if !appointment.IsParticipant(req.Caller.ID) {
		uc.logger.Warn("CancelAppointment: user=%d is not a participant of appointment id=%d", req.Caller.ID, appointment.ID)
		return nil, ErrForbidden
	}

	// 4. Проверяем текущий статус
	if err := appointment.CanCancel(); err != nil {
		uc.logger.Warn("CancelAppointment: %v", err)
		return nil, transitionFailure(err)
	}

	// 5. Условное обновление
	updated, err := uc.appointmentRepo.Cancel(ctx, appointment.ID, req.Caller.ID, strings.TrimSpace(req.Reason))
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrStatusChanged) {
			return nil, uc.stateAfterRace(ctx, appointment.ID)
		}
		uc.logger.Error("CancelAppointment: failed to cancel appointment id=%d: %v", appointment.ID, err)
		return nil, fmt.Errorf("%w: failed to cancel appointment: %v", ErrInternal, err)
	}

	uc.metrics.IncTransition(string(domain.StatusCancelled))
	uc.logger.Info("CancelAppointment: appointment id=%d cancelled by user=%d", updated.ID, req.Caller.ID)

	// 6. Уведомление второму участнику
	if err := uc.notifier.AppointmentCancelled(ctx, updated, req.Caller.ID); err != nil {
		uc.logger.Error("CancelAppointment: failed to notify user=%d about appointment id=%d: %v",
			updated.CounterpartOf(req.Caller.ID), updated.ID, err)
	}

	return updated, nil
}

// stateAfterRace перечитывает запись после проигранного условного обновления
func (uc *UseCase) stateAfterRace(ctx context.Context, id int64) error {
	current, err := uc.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		uc.logger.Error("CancelAppointment: failed to reload appointment id=%d: %v", id, err)
		return fmt.Errorf("%w: failed to reload appointment: %v", ErrInternal, err)
	}
	if err := current.CanCancel(); err != nil {
		uc.logger.Warn("CancelAppointment: lost race: %v", err)
		return transitionFailure(err)
	}
	return fmt.Errorf("%w: appointment %d changed concurrently", ErrInternal, id)
}

func transitionFailure(err error) error {
	if errors.Is(err, domain.ErrAlreadyCancelled) {
		return fmt.Errorf("%w: %w", ErrAlreadyCancelled, err)
	}
	return fmt.Errorf("%w: %w", ErrInvalidState, err)
}
