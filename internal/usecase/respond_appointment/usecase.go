package respond_appointment

import (
	"context"
	"errors"
	"fmt"
	"strings"

	appointmentRepo "github.com/m04kA/MedConnect-AppointmentService/internal/infra/storage/appointment"
)

// UseCase use case ответа врача на заявку
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

// Execute переводит запись из pending в confirmed или rejected
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("RespondAppointment: doctor=%d, appointment=%d, action=%s",
		req.Caller.ID, req.AppointmentID, req.Action)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("RespondAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Загружаем запись
	appointment, err := uc.appointmentRepo.GetByID(ctx, req.AppointmentID)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			return nil, ErrAppointmentNotFound
		}
		uc.logger.Error("RespondAppointment: failed to get appointment id=%d: %v", req.AppointmentID, err)
		return nil, fmt.Errorf("%w: failed to get appointment: %v", ErrInternal, err)
	}

	// 3. Отвечать может только врач записи
	if appointment.DoctorID != req.Caller.ID {
		uc.logger.Warn("RespondAppointment: user=%d is not the doctor of appointment id=%d", req.Caller.ID, appointment.ID)
		return nil, ErrForbidden
	}

	// 4. Проверяем текущий статус
	if err := appointment.CanRespond(); err != nil {
		uc.logger.Warn("RespondAppointment: %v", err)
		return nil, fmt.Errorf("%w: %w", ErrInvalidState, err)
	}

	// 5. Условное обновление; конкурентный ответ или отмена дают ErrStatusChanged
	target := req.Action.Status()
	updated, err := uc.appointmentRepo.Respond(ctx, appointment.ID, target, rejectionReason(req))
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrStatusChanged) {
			return nil, uc.stateAfterRace(ctx, appointment.ID)
		}
		uc.logger.Error("RespondAppointment: failed to update appointment id=%d: %v", appointment.ID, err)
		return nil, fmt.Errorf("%w: failed to update appointment: %v", ErrInternal, err)
	}

	uc.metrics.IncTransition(string(target))
	uc.logger.Info("RespondAppointment: appointment id=%d is now %s", updated.ID, updated.Status)

	// 6. Уведомление пациенту
	if err := uc.notifier.AppointmentResponded(ctx, updated); err != nil {
		uc.logger.Error("RespondAppointment: failed to notify patient=%d about appointment id=%d: %v",
			updated.PatientID, updated.ID, err)
	}

	return updated, nil
}

// stateAfterRace перечитывает запись и сообщает статус, установленный конкурентным запросом
func (uc *UseCase) stateAfterRace(ctx context.Context, id int64) error {
	current, err := uc.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		uc.logger.Error("RespondAppointment: failed to reload appointment id=%d: %v", id, err)
		return fmt.Errorf("%w: failed to reload appointment: %v", ErrInternal, err)
	}
	if err := current.CanRespond(); err != nil {
		uc.logger.Warn("RespondAppointment: lost race: %v", err)
		return fmt.Errorf("%w: %w", ErrInvalidState, err)
	}
	return fmt.Errorf("%w: appointment %d changed concurrently", ErrInternal, id)
}

// rejectionReason причина сохраняется только при отказе
func rejectionReason(req *Request) *string {
	if req.Action != ActionReject {
		return nil
	}
	reason := strings.TrimSpace(req.RejectionReason)
	if reason == "" {
		return nil
	}
	return &reason
}
