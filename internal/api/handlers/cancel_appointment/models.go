package cancel_appointment

import (
	appointmentModels "github.com/m04kA/MedConnect-AppointmentService/internal/service/appointments/models"
)

// CancelRequest HTTP request model. Тело запроса опционально.
type CancelRequest struct {
	Reason string `json:"reason,omitempty"`
}

// CancelResponse HTTP response model
type CancelResponse struct {
	Success     bool                                   `json:"success"`
	Message     string                                 `json:"message"`
	Appointment *appointmentModels.AppointmentResponse `json:"appointment"`
}
