package update_day_schedule

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/m04kA/MedConnect-AppointmentService/internal/api/handlers"
	"github.com/m04kA/MedConnect-AppointmentService/internal/domain"
	"github.com/m04kA/MedConnect-AppointmentService/internal/service/availability"
	"github.com/m04kA/MedConnect-AppointmentService/internal/service/availability/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDay         = "Invalid day"
	msgAccessDenied       = "Only doctors can manage availability"
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

// Handle PATCH /api/v1/availability/settings/day
// Body: {"day": "monday", "slots": [{"start": "09:00", "end": "12:00"}]}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	caller, ok := handlers.Caller(w, r)
	if !ok {
		return
	}

	var req models.UpdateDayRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /availability/settings/day - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.Caller = caller

	day, err := domain.ParseWeekday(req.Day)
	if err != nil {
		h.logger.Warn("PATCH /availability/settings/day - Invalid day %q", req.Day)
		handlers.RespondBadRequest(w, msgInvalidDay)
		return
	}

	result, err := h.service.UpdateDay(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrInvalidInput):
			handlers.RespondBadRequest(w, handlers.ValidationMessage(err, availability.ErrInvalidInput))
		case errors.Is(err, availability.ErrAccessDenied):
			handlers.RespondForbidden(w, msgAccessDenied)
		default:
			h.logger.Error("PATCH /availability/settings/day - Failed to update %s: doctor_id=%d, error=%v", day, caller.ID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /availability/settings/day - Schedule updated: doctor_id=%d, day=%s", caller.ID, day)
	handlers.RespondJSON(w, http.StatusOK, DayScheduleResponse{
		Success:      true,
		Message:      fmt.Sprintf("%s schedule updated successfully", day.Title()),
		Availability: result,
	})
}
