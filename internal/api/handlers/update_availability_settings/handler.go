package update_availability_settings

import (
	"errors"
	"net/http"

	"github.com/m04kA/MedConnect-AppointmentService/internal/api/handlers"
	"github.com/m04kA/MedConnect-AppointmentService/internal/service/availability"
	"github.com/m04kA/MedConnect-AppointmentService/internal/service/availability/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgAccessDenied       = "Only doctors can manage availability"
	msgUpdated            = "Availability settings updated successfully"
)

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

// Handle PUT /api/v1/availability/settings
// Все поля тела опциональны; schedule заменяется целиком
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	caller, ok := handlers.Caller(w, r)
	if !ok {
		return
	}

	var req models.UpdateSettingsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /availability/settings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.Caller = caller

	result, err := h.service.UpdateSettings(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrInvalidInput):
			handlers.RespondBadRequest(w, handlers.ValidationMessage(err, availability.ErrInvalidInput))
		case errors.Is(err, availability.ErrAccessDenied):
			handlers.RespondForbidden(w, msgAccessDenied)
		default:
			h.logger.Error("PUT /availability/settings - Failed to update settings: doctor_id=%d, error=%v", caller.ID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /availability/settings - Settings updated: doctor_id=%d", caller.ID)
	handlers.RespondJSON(w, http.StatusOK, SettingsResponse{
		Success:      true,
		Message:      msgUpdated,
		Availability: result,
	})
}
