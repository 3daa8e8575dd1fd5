package get_available_slots

import (
	"errors"
	"net/http"

	"github.com/m04kA/MedConnect-AppointmentService/internal/api/handlers"
	getAvailableSlots "github.com/m04kA/MedConnect-AppointmentService/internal/usecase/get_available_slots"
)

const (
	msgInvalidDoctorID = "invalid doctor ID"
	msgMissingDate     = "date is required"
	msgInvalidDate     = "invalid date format, expected YYYY-MM-DD"
	msgForbidden       = "Only patients can view doctor availability"
	msgNotConnected    = "You must be connected to this doctor to view availability"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/doctors/{doctorId}/availability
// Query params: date (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	caller, ok := handlers.Caller(w, r)
	if !ok {
		return
	}

	doctorID, err := handlers.PathInt64(r, "doctorId")
	if err != nil {
		h.logger.Warn("GET /doctors/{id}/availability - Invalid doctor ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDoctorID)
		return
	}

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /doctors/{id}/availability - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	useCaseReq, err := ToUseCaseRequest(caller, doctorID, dateStr)
	if err != nil {
		h.logger.Warn("GET /doctors/{id}/availability - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /doctors/{id}/availability - Invalid input: %v", err)
			handlers.RespondBadRequest(w, handlers.ValidationMessage(err, getAvailableSlots.ErrInvalidInput))

		case errors.Is(err, getAvailableSlots.ErrForbidden):
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, getAvailableSlots.ErrNotConnected):
			h.logger.Warn("GET /doctors/{id}/availability - Not connected: patient_id=%d, doctor_id=%d", caller.ID, doctorID)
			handlers.RespondForbidden(w, msgNotConnected)

		default:
			h.logger.Error("GET /doctors/{id}/availability - Failed to get slots: doctor_id=%d, error=%v", doctorID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /doctors/{id}/availability - Slots retrieved: doctor_id=%d, date=%s, slots_count=%d",
		doctorID, result.Date, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
