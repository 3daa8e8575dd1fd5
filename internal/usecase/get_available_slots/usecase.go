package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/MedConnect-AppointmentService/internal/domain"
	connectionRepo "github.com/m04kA/MedConnect-AppointmentService/internal/infra/storage/connection"
)

// UseCase use case для получения свободных слотов врача на дату
type UseCase struct {
	appointmentRepo  AppointmentRepository
	availabilityRepo AvailabilityRepository
	connectionRepo   ConnectionRepository
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	availabilityRepo AvailabilityRepository,
	connectionRepo ConnectionRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo:  appointmentRepo,
		availabilityRepo: availabilityRepo,
		connectionRepo:   connectionRepo,
		logger:           logger,
	}
}

// Execute выполняет use case получения свободных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: patient=%d, doctor=%d, date=%s",
		req.Caller.ID, req.DoctorID, req.Date.Format(domain.DateFormat))

	// 1. Проверка роли
	if !req.Caller.IsPatient() {
		uc.logger.Warn("GetAvailableSlots: user=%d with role %s is not a patient", req.Caller.ID, req.Caller.UserType)
		return nil, ErrForbidden
	}

	// 2. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 3. Связь пациента с врачом должна быть принята
	if _, err := uc.connectionRepo.FindAccepted(ctx, req.Caller.ID, req.DoctorID); err != nil {
		if errors.Is(err, connectionRepo.ErrConnectionNotFound) {
			uc.logger.Warn("GetAvailableSlots: patient=%d is not connected to doctor=%d", req.Caller.ID, req.DoctorID)
			return nil, ErrNotConnected
		}
		uc.logger.Error("GetAvailableSlots: failed to check connection: %v", err)
		return nil, fmt.Errorf("%w: failed to check connection: %v", ErrInternal, err)
	}

	// 4. Шаблон расписания (создается по умолчанию при первом обращении)
	availability, err := uc.availabilityRepo.GetOrCreate(ctx, domain.DefaultAvailability(req.DoctorID))
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get availability for doctor=%d: %v", req.DoctorID, err)
		return nil, fmt.Errorf("%w: failed to get availability: %v", ErrInternal, err)
	}

	// 5. Занятые слоты
	reserved, err := uc.appointmentRepo.GetActiveStartTimes(ctx, req.DoctorID, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get booked slots: %v", err)
		return nil, fmt.Errorf("%w: failed to get booked slots: %v", ErrInternal, err)
	}

	// 6. Генерация слотов по дню недели
	day := domain.WeekdayOf(req.Date)
	slots := GenerateSlots(availability.Schedule.Day(day), reserved, availability.SlotDuration, availability.BufferTime)

	uc.logger.Info("GetAvailableSlots: doctor=%d, date=%s, day=%s, %d slots available, %d reserved",
		req.DoctorID, req.Date.Format(domain.DateFormat), day, len(slots), len(reserved))

	return &Response{
		Date:         req.Date.Format(domain.DateFormat),
		DayName:      day,
		Slots:        slots,
		SlotDuration: availability.SlotDuration,
		Location:     availability.Location,
	}, nil
}
