package get_patient_appointments

import "github.com/m04kA/MedConnect-AppointmentService/internal/service/appointments/models"

// AppointmentsResponse HTTP response model
type AppointmentsResponse struct {
	Success      bool                         `json:"success"`
	Appointments []models.AppointmentResponse `json:"appointments"`
}
