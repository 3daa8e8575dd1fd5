package appointments

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/MedConnect-AppointmentService/internal/auth"
	appointmentRepo "github.com/m04kA/MedConnect-AppointmentService/internal/infra/storage/appointment"
	"github.com/m04kA/MedConnect-AppointmentService/internal/service/appointments/models"
	"github.com/m04kA/MedConnect-AppointmentService/pkg/ptr"
)

// Service сервис чтения записей на прием
type Service struct {
	appointmentRepo AppointmentRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(appointmentRepo AppointmentRepository, logger Logger) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		logger:          logger,
	}
}

// GetByID получает запись по ID.
// Видеть запись могут только ее пациент и врач.
func (s *Service) GetByID(ctx context.Context, id int64, caller auth.Identity) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByID: fetching appointment id=%d for user=%d", id, caller.ID)

	appointment, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("GetByID: appointment id=%d not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByID: repository error for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if !appointment.IsParticipant(caller.ID) {
		s.logger.Warn("GetByID: access denied for user=%d to appointment id=%d", caller.ID, id)
		return nil, ErrAccessDenied
	}

	return models.FromDomainAppointment(appointment), nil
}

// GetPatientAppointments записи вызывающего как пациента, новые сверху
func (s *Service) GetPatientAppointments(ctx context.Context, req *models.GetPatientAppointmentsRequest) (*models.AppointmentListResponse, error) {
	s.logger.Info("GetPatientAppointments: fetching appointments for patient=%d, status=%q", req.Caller.ID, ptr.Deref(req.Status, ""))

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetPatientAppointments: invalid filter for patient=%d: %v", req.Caller.ID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	appointments, err := s.appointmentRepo.ListByPatient(ctx, filter)
	if err != nil {
		s.logger.Error("GetPatientAppointments: repository error for patient=%d: %v", req.Caller.ID, err)
		return nil, fmt.Errorf("%w: GetPatientAppointments - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetPatientAppointments: fetched %d appointments for patient=%d", len(appointments), req.Caller.ID)
	return models.FromDomainAppointmentList(appointments), nil
}

// GetDoctorAppointments записи вызывающего как врача, в хронологическом порядке
func (s *Service) GetDoctorAppointments(ctx context.Context, req *models.GetDoctorAppointmentsRequest) (*models.AppointmentListResponse, error) {
	s.logger.Info("GetDoctorAppointments: fetching appointments for doctor=%d, status=%q, date=%q",
		req.Caller.ID, ptr.Deref(req.Status, ""), ptr.Deref(req.Date, ""))

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetDoctorAppointments: invalid filter for doctor=%d: %v", req.Caller.ID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	appointments, err := s.appointmentRepo.ListByDoctor(ctx, filter)
	if err != nil {
		s.logger.Error("GetDoctorAppointments: repository error for doctor=%d: %v", req.Caller.ID, err)
		return nil, fmt.Errorf("%w: GetDoctorAppointments - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetDoctorAppointments: fetched %d appointments for doctor=%d", len(appointments), req.Caller.ID)
	return models.FromDomainAppointmentList(appointments), nil
}
