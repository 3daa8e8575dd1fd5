package update_day_schedule

import "github.com/m04kA/MedConnect-AppointmentService/internal/service/availability/models"

// DayScheduleResponse HTTP response model
type DayScheduleResponse struct {
	Success      bool                         `json:"success"`
	Message      string                       `json:"message"`
	Availability *models.AvailabilityResponse `json:"availability"`
}
