package create_appointment

import (
	"fmt"
	"strings"

	"github.com/m04kA/MedConnect-AppointmentService/internal/domain"
	"github.com/m04kA/MedConnect-AppointmentService/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.DoctorID <= 0 {
		return fmt.Errorf("%w: doctorId must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime < 0 || !req.StartTime.Before(types.EndOfDay) {
		return fmt.Errorf("%w: startTime is out of day range", ErrInvalidInput)
	}

	if req.EndTime != nil {
		if !req.StartTime.Before(*req.EndTime) {
			return fmt.Errorf("%w: endTime must be after startTime", ErrInvalidInput)
		}
		if err := validateEndTime(*req.EndTime); err != nil {
			return err
		}
	}

	if !req.Type.IsValid() {
		return fmt.Errorf("%w: type must be one of %s, %s", ErrInvalidInput, domain.TypeInPerson, domain.TypeVideo)
	}

	reason := strings.TrimSpace(req.Reason)
	if reason == "" {
		return fmt.Errorf("%w: reason is required", ErrInvalidInput)
	}
	if len(reason) > domain.MaxReasonLength {
		return fmt.Errorf("%w: reason must not exceed %d characters", ErrInvalidInput, domain.MaxReasonLength)
	}

	if len(req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must not exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// validateEndTime прием должен закончиться в пределах суток: конец хранится строкой "HH:MM" не позже "24:00"
func validateEndTime(end types.TimeOfDay) error {
	if end.After(types.EndOfDay) {
		return fmt.Errorf("%w: appointment must end by 24:00", ErrInvalidInput)
	}
	return nil
}
