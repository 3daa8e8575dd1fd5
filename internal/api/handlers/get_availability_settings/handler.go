package get_availability_settings

import (
	"errors"
	"net/http"

	"github.com/m04kA/MedConnect-AppointmentService/internal/api/handlers"
	"github.com/m04kA/MedConnect-AppointmentService/internal/service/availability"
)

const msgAccessDenied = "Only doctors can manage availability"

type Handler struct {
	service AvailabilityService
	logger  Logger
}

func NewHandler(service AvailabilityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability/settings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	caller, ok := handlers.Caller(w, r)
	if !ok {
		return
	}

	result, err := h.service.Get(r.Context(), caller)
	if err != nil {
		if errors.Is(err, availability.ErrAccessDenied) {
			handlers.RespondForbidden(w, msgAccessDenied)
			return
		}
		h.logger.Error("GET /availability/settings - Failed to get settings: doctor_id=%d, error=%v", caller.ID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, SettingsResponse{
		Success:      true,
		Availability: result,
	})
}
