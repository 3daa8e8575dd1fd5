package availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/MedConnect-AppointmentService/internal/auth"
	"github.com/m04kA/MedConnect-AppointmentService/internal/domain"
	"github.com/m04kA/MedConnect-AppointmentService/internal/service/availability/models"
)

// Service сервис управления шаблоном расписания врача
type Service struct {
	availabilityRepo AvailabilityRepository
	txManager        TransactionManager
	logger           Logger
}

// NewService создает новый экземпляр сервиса шаблонов
func NewService(availabilityRepo AvailabilityRepository, txManager TransactionManager, logger Logger) *Service {
	return &Service{
		availabilityRepo: availabilityRepo,
		txManager:        txManager,
		logger:           logger,
	}
}

// Get возвращает шаблон врача, создавая шаблон по умолчанию при первом обращении
func (s *Service) Get(ctx context.Context, caller auth.Identity) (*models.AvailabilityResponse, error) {
	s.logger.Info("Get: fetching availability for doctor=%d", caller.ID)

	if !caller.IsDoctor() {
		s.logger.Warn("Get: user=%d with role %s is not a doctor", caller.ID, caller.UserType)
		return nil, ErrAccessDenied
	}

	availability, err := s.availabilityRepo.GetOrCreate(ctx, domain.DefaultAvailability(caller.ID))
	if err != nil {
		s.logger.Error("Get: repository error for doctor=%d: %v", caller.ID, err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainAvailability(availability), nil
}

// UpdateSettings частично обновляет шаблон: расписание целиком и/или скалярные настройки
func (s *Service) UpdateSettings(ctx context.Context, req *models.UpdateSettingsRequest) (*models.AvailabilityResponse, error) {
	s.logger.Info("UpdateSettings: updating availability for doctor=%d", req.Caller.ID)

	return s.update(ctx, "UpdateSettings", req.Caller, req.ApplyTo)
}

// UpdateDay заменяет интервалы одного дня недели
func (s *Service) UpdateDay(ctx context.Context, req *models.UpdateDayRequest) (*models.AvailabilityResponse, error) {
	s.logger.Info("UpdateDay: updating %s for doctor=%d", req.Day, req.Caller.ID)

	day, err := domain.ParseWeekday(req.Day)
	if err != nil {
		s.logger.Warn("UpdateDay: invalid day %q: %v", req.Day, err)
		return nil, fmt.Errorf("%w: invalid day", ErrInvalidInput)
	}

	return s.update(ctx, "UpdateDay", req.Caller, func(a *domain.DoctorAvailability) {
		if a.Schedule == nil {
			a.Schedule = domain.WeeklySchedule{}
		}
		slots := make([]domain.TimeInterval, len(req.Slots))
		copy(slots, req.Slots)
		a.Schedule[day] = slots
	})
}

// update читает шаблон под блокировкой строки, применяет изменения, валидирует и сохраняет
func (s *Service) update(
	ctx context.Context,
	op string,
	caller auth.Identity,
	apply func(a *domain.DoctorAvailability),
) (*models.AvailabilityResponse, error) {
	if !caller.IsDoctor() {
		s.logger.Warn("%s: user=%d with role %s is not a doctor", op, caller.ID, caller.UserType)
		return nil, ErrAccessDenied
	}

	var updated *domain.DoctorAvailability
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		current, err := s.availabilityRepo.GetOrCreate(txCtx, domain.DefaultAvailability(caller.ID))
		if err != nil {
			return fmt.Errorf("%w: %s - get availability: %v", ErrInternal, op, err)
		}

		apply(current)
		for _, intervals := range current.Schedule {
			domain.SortIntervals(intervals)
		}
		if err := current.Validate(); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidInput, err)
		}

		updated, err = s.availabilityRepo.Update(txCtx, current)
		if err != nil {
			return fmt.Errorf("%w: %s - update availability: %v", ErrInternal, op, err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrInvalidInput) {
			s.logger.Warn("%s: validation failed for doctor=%d: %v", op, caller.ID, err)
			return nil, err
		}
		s.logger.Error("%s: failed for doctor=%d: %v", op, caller.ID, err)
		if errors.Is(err, ErrInternal) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	s.logger.Info("%s: availability id=%d updated for doctor=%d", op, updated.ID, caller.ID)
	return models.FromDomainAvailability(updated), nil
}
