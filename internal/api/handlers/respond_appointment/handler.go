package respond_appointment

import (
	"errors"
	"net/http"

	"github.com/m04kA/MedConnect-AppointmentService/internal/api/handlers"
	"github.com/m04kA/MedConnect-AppointmentService/internal/domain"
	appointmentModels "github.com/m04kA/MedConnect-AppointmentService/internal/service/appointments/models"
	respondAppointment "github.com/m04kA/MedConnect-AppointmentService/internal/usecase/respond_appointment"
)

const (
	msgInvalidAppointmentID = "invalid appointment ID"
	msgInvalidRequestBody   = "invalid request body"
	msgNotFound             = "Appointment not found"
	msgForbidden            = "Only the doctor can respond to this appointment"
	msgInvalidState         = "Appointment is no longer pending"
	msgAccepted             = "Appointment accepted successfully"
	msgRejected             = "Appointment rejected successfully"
)

type Handler struct {
	useCase RespondAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase RespondAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/appointments/{appointmentId}/respond
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	caller, ok := handlers.Caller(w, r)
	if !ok {
		return
	}

	appointmentID, err := handlers.PathInt64(r, "appointmentId")
	if err != nil {
		h.logger.Warn("PATCH /appointments/{id}/respond - Invalid appointment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	var req RespondRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /appointments/{id}/respond - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(caller, appointmentID))
	if err != nil {
		switch {
		case errors.Is(err, respondAppointment.ErrInvalidInput):
			handlers.RespondBadRequest(w, handlers.ValidationMessage(err, respondAppointment.ErrInvalidInput))

		case errors.Is(err, respondAppointment.ErrAppointmentNotFound):
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, respondAppointment.ErrForbidden):
			h.logger.Warn("PATCH /appointments/{id}/respond - Forbidden: appointment_id=%d, user_id=%d", appointmentID, caller.ID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, respondAppointment.ErrInvalidState):
			h.logger.Warn("PATCH /appointments/{id}/respond - Invalid state: appointment_id=%d, error=%v", appointmentID, err)
			handlers.RespondConflict(w, handlers.TransitionMessage(err, msgInvalidState))

		default:
			h.logger.Error("PATCH /appointments/{id}/respond - Failed to respond: appointment_id=%d, error=%v", appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	message := msgRejected
	if result.Status == domain.StatusConfirmed {
		message = msgAccepted
	}

	h.logger.Info("PATCH /appointments/{id}/respond - Appointment %s: appointment_id=%d, doctor_id=%d",
		result.Status, appointmentID, caller.ID)
	handlers.RespondJSON(w, http.StatusOK, RespondResponse{
		Success:     true,
		Message:     message,
		Appointment: appointmentModels.FromDomainAppointment(result),
	})
}
