package update_availability_settings

import "github.com/m04kA/MedConnect-AppointmentService/internal/service/availability/models"

// SettingsResponse HTTP response model
type SettingsResponse struct {
	Success      bool                         `json:"success"`
	Message      string                       `json:"message"`
	Availability *models.AvailabilityResponse `json:"availability"`
}
