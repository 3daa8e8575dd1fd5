package respond_appointment

import (
	"github.com/m04kA/MedConnect-AppointmentService/internal/auth"
	"github.com/m04kA/MedConnect-AppointmentService/internal/domain"
)

// Action решение врача по заявке
type Action string

const (
	ActionAccept Action = "accept"
	ActionReject Action = "reject"
)

// Status целевой статус записи
func (a Action) Status() domain.AppointmentStatus {
	if a == ActionAccept {
		return domain.StatusConfirmed
	}
	return domain.StatusRejected
}

// Request модель запроса на ответ по заявке
type Request struct {
	Caller          auth.Identity
	AppointmentID   int64
	Action          Action
	RejectionReason string
}

// Response обновленная запись
type Response = domain.Appointment
