package create_appointment

import (
	"errors"
	"net/http"

	"github.com/m04kA/MedConnect-AppointmentService/internal/api/handlers"
	appointmentModels "github.com/m04kA/MedConnect-AppointmentService/internal/service/appointments/models"
	createAppointment "github.com/m04kA/MedConnect-AppointmentService/internal/usecase/create_appointment"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgCreated            = "Appointment request sent successfully"
	msgForbidden          = "Only patients can book appointments"
	msgNotConnected       = "You must be connected to this doctor to book an appointment"
	msgSlotNotAvailable   = "This time slot is no longer available"
)

type Handler struct {
	useCase CreateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	caller, ok := handlers.Caller(w, r)
	if !ok {
		return
	}

	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(caller)
	if err != nil {
		h.logger.Warn("POST /appointments - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createAppointment.ErrInvalidInput):
			handlers.RespondBadRequest(w, handlers.ValidationMessage(err, createAppointment.ErrInvalidInput))

		case errors.Is(err, createAppointment.ErrForbidden):
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, createAppointment.ErrNotConnected):
			h.logger.Warn("POST /appointments - Not connected: patient_id=%d, doctor_id=%d", caller.ID, req.DoctorID)
			handlers.RespondForbidden(w, msgNotConnected)

		case errors.Is(err, createAppointment.ErrSlotNotAvailable):
			h.logger.Warn("POST /appointments - Slot not available: doctor_id=%d, date=%s, start=%s",
				req.DoctorID, req.Date, req.StartTime)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: patient_id=%d, doctor_id=%d, error=%v",
				caller.ID, req.DoctorID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments - Appointment created: appointment_id=%d, patient_id=%d, doctor_id=%d",
		result.ID, caller.ID, req.DoctorID)
	handlers.RespondJSON(w, http.StatusCreated, AppointmentCreatedResponse{
		Success:     true,
		Message:     msgCreated,
		Appointment: appointmentModels.FromDomainAppointment(result),
	})
}
