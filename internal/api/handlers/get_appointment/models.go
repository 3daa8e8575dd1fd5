package get_appointment

import "github.com/m04kA/MedConnect-AppointmentService/internal/service/appointments/models"

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	Success     bool                        `json:"success"`
	Appointment *models.AppointmentResponse `json:"appointment"`
}
