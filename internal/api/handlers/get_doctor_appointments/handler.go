package get_doctor_appointments

import (
	"errors"
	"net/http"

	"github.com/m04kA/MedConnect-AppointmentService/internal/api/handlers"
	"github.com/m04kA/MedConnect-AppointmentService/internal/service/appointments"
	"github.com/m04kA/MedConnect-AppointmentService/internal/service/appointments/models"
)

type Handler struct {
	service AppointmentService
	logger  Logger
}

func NewHandler(service AppointmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/appointments/doctor
// Query params: status (optional), date (optional, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	caller, ok := handlers.Caller(w, r)
	if !ok {
		return
	}

	result, err := h.service.GetDoctorAppointments(r.Context(), &models.GetDoctorAppointmentsRequest{
		Caller: caller,
		Status: handlers.QueryString(r, "status"),
		Date:   handlers.QueryString(r, "date"),
	})
	if err != nil {
		if errors.Is(err, appointments.ErrInvalidInput) {
			handlers.RespondBadRequest(w, handlers.ValidationMessage(err, appointments.ErrInvalidInput))
			return
		}
		h.logger.Error("GET /appointments/doctor - Failed to list appointments: doctor_id=%d, error=%v", caller.ID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, AppointmentsResponse{
		Success:      true,
		Appointments: result.Appointments,
	})
}
