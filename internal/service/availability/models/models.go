package models

import (
	"time"

	"github.com/m04kA/MedConnect-AppointmentService/internal/auth"
	"github.com/m04kA/MedConnect-AppointmentService/internal/domain"
)

// Request модели

// UpdateSettingsRequest запрос на обновление шаблона.
// Все поля опциональны - обновляются только переданные значения.
type UpdateSettingsRequest struct {
	Caller       auth.Identity          `json:"-"`
	Schedule     *domain.WeeklySchedule `json:"schedule,omitempty"`
	SlotDuration *int                   `json:"slotDuration,omitempty"`
	BufferTime   *int                   `json:"bufferTime,omitempty"`
	Location     *string                `json:"location,omitempty"`
}

// ApplyTo переносит переданные поля в шаблон
func (r *UpdateSettingsRequest) ApplyTo(a *domain.DoctorAvailability) {
	if r.Schedule != nil {
		a.Schedule = *r.Schedule
	}
	if r.SlotDuration != nil {
		a.SlotDuration = *r.SlotDuration
	}
	if r.BufferTime != nil {
		a.BufferTime = *r.BufferTime
	}
	if r.Location != nil {
		a.Location = *r.Location
	}
}

// UpdateDayRequest запрос на замену интервалов одного дня
type UpdateDayRequest struct {
	Caller auth.Identity         `json:"-"`
	Day    string                `json:"day"`
	Slots  []domain.TimeInterval `json:"slots"`
}

// Response модели

// AvailabilityResponse шаблон расписания врача
type AvailabilityResponse struct {
	ID           int64                 `json:"id"`
	DoctorID     int64                 `json:"doctorId"`
	Schedule     domain.WeeklySchedule `json:"schedule"`
	SlotDuration int                   `json:"slotDuration"`
	BufferTime   int                   `json:"bufferTime"`
	Location     string                `json:"location"`
	CreatedAt    time.Time             `json:"createdAt"`
	UpdatedAt    time.Time             `json:"updatedAt"`
}

// FromDomainAvailability конвертирует domain модель в DTO
func FromDomainAvailability(a *domain.DoctorAvailability) *AvailabilityResponse {
	if a == nil {
		return nil
	}

	return &AvailabilityResponse{
		ID:           a.ID,
		DoctorID:     a.DoctorID,
		Schedule:     a.Schedule,
		SlotDuration: a.SlotDuration,
		BufferTime:   a.BufferTime,
		Location:     a.Location,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
}
