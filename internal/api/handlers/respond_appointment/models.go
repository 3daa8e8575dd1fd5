package respond_appointment

import (
	"github.com/m04kA/MedConnect-AppointmentService/internal/auth"
	appointmentModels "github.com/m04kA/MedConnect-AppointmentService/internal/service/appointments/models"
	respondAppointment "github.com/m04kA/MedConnect-AppointmentService/internal/usecase/respond_appointment"
)

// RespondRequest HTTP request model
type RespondRequest struct {
	Action          string `json:"action"` // accept | reject
	RejectionReason string `json:"rejectionReason,omitempty"`
}

// RespondResponse HTTP response model
type RespondResponse struct {
	Success     bool                                   `json:"success"`
	Message     string                                 `json:"message"`
	Appointment *appointmentModels.AppointmentResponse `json:"appointment"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *RespondRequest) ToUseCaseRequest(caller auth.Identity, appointmentID int64) *respondAppointment.Request {
	return &respondAppointment.Request{
		Caller:          caller,
		AppointmentID:   appointmentID,
		Action:          respondAppointment.Action(r.Action),
		RejectionReason: r.RejectionReason,
	}
}
