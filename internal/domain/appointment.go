package domain

import (
	"time"

	"github.com/m04kA/MedConnect-AppointmentService/pkg/types"
)

// AppointmentStatus статус записи на прием
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusRejected  AppointmentStatus = "rejected"
	StatusCancelled AppointmentStatus = "cancelled"
	StatusCompleted AppointmentStatus = "completed"
)

func (s AppointmentStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusRejected, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

// IsActive статус держит слот занятым
func (s AppointmentStatus) IsActive() bool {
	return s == StatusPending || s == StatusConfirmed
}

// AppointmentType формат приема
type AppointmentType string

const (
	TypeInPerson AppointmentType = "in-person"
	TypeVideo    AppointmentType = "video"
)

func (t AppointmentType) IsValid() bool {
	return t == TypeInPerson || t == TypeVideo
}

// Appointment запись пациента к врачу
type Appointment struct {
	ID           int64
	PatientID    int64
	DoctorID     int64
	ConnectionID int64
	Date         time.Time
	StartTime    types.TimeOfDay
	EndTime      types.TimeOfDay
	Type         AppointmentType
	Reason       string
	Notes        string
	Status       AppointmentStatus
	Location     string

	CancelReason *string
	CancelledBy  *int64
	CancelledAt  *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsParticipant пользователь является пациентом или врачом записи
func (a *Appointment) IsParticipant(userID int64) bool {
	return a.PatientID == userID || a.DoctorID == userID
}

// CounterpartOf второй участник записи
func (a *Appointment) CounterpartOf(userID int64) int64 {
	if a.PatientID == userID {
		return a.DoctorID
	}
	return a.PatientID
}

// CanRespond проверяет переход pending -> confirmed/rejected
func (a *Appointment) CanRespond() error {
	if a.Status != StatusPending {
		return &TransitionError{AppointmentID: a.ID, Current: a.Status, Target: StatusConfirmed}
	}
	return nil
}

// CanCancel проверяет переход {pending, confirmed} -> cancelled
func (a *Appointment) CanCancel() error {
	if !a.Status.IsActive() {
		return &TransitionError{AppointmentID: a.ID, Current: a.Status, Target: StatusCancelled}
	}
	return nil
}

// PatientAppointmentsFilter фильтр списка записей пациента
type PatientAppointmentsFilter struct {
	PatientID int64
	Status    *AppointmentStatus
}

// DoctorAppointmentsFilter фильтр списка записей врача
type DoctorAppointmentsFilter struct {
	DoctorID int64
	Status   *AppointmentStatus
	Date     *time.Time
}
