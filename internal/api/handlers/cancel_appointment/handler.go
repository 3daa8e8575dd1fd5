package cancel_appointment

import (
	"errors"
	"net/http"

	"github.com/m04kA/MedConnect-AppointmentService/internal/api/handlers"
	appointmentModels "github.com/m04kA/MedConnect-AppointmentService/internal/service/appointments/models"
	cancelAppointment "github.com/m04kA/MedConnect-AppointmentService/internal/usecase/cancel_appointment"
)

const (
	msgInvalidAppointmentID = "invalid appointment ID"
	msgInvalidRequestBody   = "invalid request body"
	msgCancelled            = "Appointment cancelled successfully"
	msgNotFound             = "Appointment not found"
	msgForbidden            = "You can only cancel your own appointments"
	msgAlreadyCancelled     = "Appointment already cancelled"
	msgInvalidState         = "Appointment cannot be cancelled"
)

type Handler struct {
	useCase CancelAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CancelAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/appointments/{appointmentId}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	caller, ok := handlers.Caller(w, r)
	if !ok {
		return
	}

	appointmentID, err := handlers.PathInt64(r, "appointmentId")
	if err != nil {
		h.logger.Warn("PATCH /appointments/{id}/cancel - Invalid appointment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	var req CancelRequest
	if err := handlers.DecodeJSON(r, &req); err != nil && !errors.Is(err, handlers.ErrEmptyBody) {
		h.logger.Warn("PATCH /appointments/{id}/cancel - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &cancelAppointment.Request{
		Caller:        caller,
		AppointmentID: appointmentID,
		Reason:        req.Reason,
	})
	if err != nil {
		switch {
		case errors.Is(err, cancelAppointment.ErrInvalidInput):
			handlers.RespondBadRequest(w, handlers.ValidationMessage(err, cancelAppointment.ErrInvalidInput))

		case errors.Is(err, cancelAppointment.ErrAppointmentNotFound):
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, cancelAppointment.ErrForbidden):
			h.logger.Warn("PATCH /appointments/{id}/cancel - Forbidden: appointment_id=%d, user_id=%d", appointmentID, caller.ID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, cancelAppointment.ErrAlreadyCancelled):
			handlers.RespondConflict(w, msgAlreadyCancelled)

		case errors.Is(err, cancelAppointment.ErrInvalidState):
			h.logger.Warn("PATCH /appointments/{id}/cancel - Invalid state: appointment_id=%d, error=%v", appointmentID, err)
			handlers.RespondConflict(w, handlers.TransitionMessage(err, msgInvalidState))

		default:
			h.logger.Error("PATCH /appointments/{id}/cancel - Failed to cancel: appointment_id=%d, error=%v", appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /appointments/{id}/cancel - Appointment cancelled: appointment_id=%d, cancelled_by=%d",
		appointmentID, caller.ID)
	handlers.RespondJSON(w, http.StatusOK, CancelResponse{
		Success:     true,
		Message:     msgCancelled,
		Appointment: appointmentModels.FromDomainAppointment(result),
	})
}
