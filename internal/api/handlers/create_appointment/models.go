package create_appointment

import (
	"errors"
	"time"

	"github.com/m04kA/MedConnect-AppointmentService/internal/auth"
	"github.com/m04kA/MedConnect-AppointmentService/internal/domain"
	appointmentModels "github.com/m04kA/MedConnect-AppointmentService/internal/service/appointments/models"
	createAppointment "github.com/m04kA/MedConnect-AppointmentService/internal/usecase/create_appointment"
	"github.com/m04kA/MedConnect-AppointmentService/pkg/types"
)

var (
	errInvalidDate = errors.New("invalid date format, expected YYYY-MM-DD")
	errInvalidTime = errors.New("invalid time format, expected HH:MM")
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	DoctorID  int64   `json:"doctorId"`
	Date      string  `json:"date"`      // "2024-06-03"
	StartTime string  `json:"startTime"` // "09:00"
	EndTime   *string `json:"endTime,omitempty"`
	Type      string  `json:"type"` // in-person | video
	Reason    string  `json:"reason"`
	Notes     string  `json:"notes,omitempty"`
}

// AppointmentCreatedResponse HTTP response model
type AppointmentCreatedResponse struct {
	Success     bool                                   `json:"success"`
	Message     string                                 `json:"message"`
	Appointment *appointmentModels.AppointmentResponse `json:"appointment"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case (с парсингом даты и времени)
func (r *CreateAppointmentRequest) ToUseCaseRequest(caller auth.Identity) (*createAppointment.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, errInvalidDate
	}

	startTime, err := types.ParseTimeOfDay(r.StartTime)
	if err != nil {
		return nil, errInvalidTime
	}

	req := &createAppointment.Request{
		Caller:    caller,
		DoctorID:  r.DoctorID,
		Date:      date,
		StartTime: startTime,
		Type:      domain.AppointmentType(r.Type),
		Reason:    r.Reason,
		Notes:     r.Notes,
	}

	if r.EndTime != nil && *r.EndTime != "" {
		endTime, err := types.ParseIntervalEnd(*r.EndTime)
		if err != nil {
			return nil, errInvalidTime
		}
		req.EndTime = &endTime
	}

	return req, nil
}
