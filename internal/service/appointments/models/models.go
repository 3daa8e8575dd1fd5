package models

import (
	"errors"
	"time"

	"github.com/m04kA/MedConnect-AppointmentService/internal/auth"
	"github.com/m04kA/MedConnect-AppointmentService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid appointment status")

	// ErrInvalidDate возвращается при дате не в формате YYYY-MM-DD
	ErrInvalidDate = errors.New("invalid date, expected YYYY-MM-DD")
)

// Request модели

// GetPatientAppointmentsRequest запрос списка записей пациента
type GetPatientAppointmentsRequest struct {
	Caller auth.Identity
	Status *string
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *GetPatientAppointmentsRequest) ToDomainFilter() (domain.PatientAppointmentsFilter, error) {
	filter := domain.PatientAppointmentsFilter{PatientID: r.Caller.ID}

	if r.Status != nil {
		status, err := ToDomainStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// GetDoctorAppointmentsRequest запрос списка записей врача
type GetDoctorAppointmentsRequest struct {
	Caller auth.Identity
	Status *string
	Date   *string // "2024-06-03"
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *GetDoctorAppointmentsRequest) ToDomainFilter() (domain.DoctorAppointmentsFilter, error) {
	filter := domain.DoctorAppointmentsFilter{DoctorID: r.Caller.ID}

	if r.Status != nil {
		status, err := ToDomainStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	if r.Date != nil {
		date, err := time.Parse(domain.DateFormat, *r.Date)
		if err != nil {
			return filter, ErrInvalidDate
		}
		filter.Date = &date
	}

	return filter, nil
}

// Response модели

// AppointmentResponse данные записи на прием
type AppointmentResponse struct {
	ID           int64   `json:"id"`
	PatientID    int64   `json:"patientId"`
	DoctorID     int64   `json:"doctorId"`
	ConnectionID int64   `json:"connectionId"`
	Date         string  `json:"date"`      // "2024-06-03"
	StartTime    string  `json:"startTime"` // "09:00"
	EndTime      string  `json:"endTime"`
	Type         string  `json:"type"`
	Reason       string  `json:"reason"`
	Notes        string  `json:"notes,omitempty"`
	Status       string  `json:"status"`
	Location     string  `json:"location,omitempty"`
	CancelReason *string `json:"cancelReason,omitempty"`
	CancelledBy  *int64  `json:"cancelledBy,omitempty"`
	CancelledAt  *string `json:"cancelledAt,omitempty"` // ISO 8601

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AppointmentListResponse список записей
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
}

// Методы конвертации

// FromDomainAppointment конвертирует domain модель в DTO
func FromDomainAppointment(a *domain.Appointment) *AppointmentResponse {
	if a == nil {
		return nil
	}

	resp := &AppointmentResponse{
		ID:           a.ID,
		PatientID:    a.PatientID,
		DoctorID:     a.DoctorID,
		ConnectionID: a.ConnectionID,
		Date:         a.Date.Format(domain.DateFormat),
		StartTime:    a.StartTime.String(),
		EndTime:      a.EndTime.String(),
		Type:         string(a.Type),
		Reason:       a.Reason,
		Notes:        a.Notes,
		Status:       string(a.Status),
		Location:     a.Location,
		CancelReason: a.CancelReason,
		CancelledBy:  a.CancelledBy,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}

	if a.CancelledAt != nil {
		cancelled := a.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelled
	}

	return resp
}

// FromDomainAppointmentList конвертирует список domain моделей в DTO
func FromDomainAppointmentList(appointments []*domain.Appointment) *AppointmentListResponse {
	resp := &AppointmentListResponse{
		Appointments: make([]AppointmentResponse, 0, len(appointments)),
	}

	for _, appointment := range appointments {
		if dto := FromDomainAppointment(appointment); dto != nil {
			resp.Appointments = append(resp.Appointments, *dto)
		}
	}

	return resp
}

// ToDomainStatus конвертирует строку в domain.AppointmentStatus с валидацией
func ToDomainStatus(status string) (domain.AppointmentStatus, error) {
	s := domain.AppointmentStatus(status)
	if !s.IsValid() {
		return "", ErrInvalidStatus
	}
	return s, nil
}
