package notifications

import (
	"fmt"

	"github.com/m04kA/MedConnect-AppointmentService/internal/domain"
	"github.com/m04kA/MedConnect-AppointmentService/internal/integrations/userservice"
)

// Подписи отправителя, когда UserService недоступен
const (
	anonymousPatient     = "A patient"
	anonymousDoctor      = "Your doctor"
	anonymousParticipant = "The other participant"
)

func requestedMessage(patient *userservice.User, a *domain.Appointment) string {
	return fmt.Sprintf("%s has requested an appointment on %s at %s",
		displayName(patient, anonymousPatient), a.Date.Format(domain.DateFormat), a.StartTime)
}

func confirmedMessage(doctor *userservice.User, a *domain.Appointment) string {
	return fmt.Sprintf("%s confirmed your appointment on %s at %s",
		doctorName(doctor), a.Date.Format(domain.DateFormat), a.StartTime)
}

func rejectedMessage(doctor *userservice.User, a *domain.Appointment) string {
	return fmt.Sprintf("%s declined your appointment request%s", doctorName(doctor), reasonSuffix(a.CancelReason))
}

func cancelledMessage(canceller *userservice.User, a *domain.Appointment) string {
	return fmt.Sprintf("%s cancelled the appointment scheduled for %s at %s%s",
		displayName(canceller, anonymousParticipant), a.Date.Format(domain.DateFormat), a.StartTime,
		reasonSuffix(a.CancelReason))
}

func doctorName(doctor *userservice.User) string {
	if doctor == nil || doctor.FullName() == "" {
		return anonymousDoctor
	}
	return "Dr. " + doctor.FullName()
}

func displayName(user *userservice.User, fallback string) string {
	if user == nil || user.FullName() == "" {
		return fallback
	}
	return user.FullName()
}

func reasonSuffix(reason *string) string {
	if reason == nil || *reason == "" {
		return ""
	}
	return ": " + *reason
}
