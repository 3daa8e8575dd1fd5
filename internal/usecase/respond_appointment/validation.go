package respond_appointment

import (
	"fmt"

	"github.com/m04kA/MedConnect-AppointmentService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.AppointmentID <= 0 {
		return fmt.Errorf("%w: appointmentId must be positive", ErrInvalidInput)
	}

	if req.Action != ActionAccept && req.Action != ActionReject {
		return fmt.Errorf("%w: action must be %s or %s", ErrInvalidInput, ActionAccept, ActionReject)
	}

	if len(req.RejectionReason) > domain.MaxCancelReasonLength {
		return fmt.Errorf("%w: rejectionReason must not exceed %d characters", ErrInvalidInput, domain.MaxCancelReasonLength)
	}

	return nil
}
