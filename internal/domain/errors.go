package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSchedule возвращается при некорректном шаблоне расписания
	ErrInvalidSchedule = errors.New("domain: invalid schedule")

	// ErrInvalidTransition возвращается при недопустимом переходе статуса записи
	ErrInvalidTransition = errors.New("domain: invalid appointment status transition")

	// ErrAlreadyCancelled возвращается при повторной отмене записи
	ErrAlreadyCancelled = errors.New("domain: appointment already cancelled")
)

// TransitionError ошибка перехода статуса с текущим состоянием записи
type TransitionError struct {
	AppointmentID int64
	Current       AppointmentStatus
	Target        AppointmentStatus
}

func (e *TransitionError) Error() string {
	if e.Current == StatusCancelled && e.Target == StatusCancelled {
		return fmt.Sprintf("appointment %d already cancelled", e.AppointmentID)
	}
	return fmt.Sprintf("appointment %d already %s", e.AppointmentID, e.Current)
}

// Unwrap позволяет сравнивать через errors.Is с ErrAlreadyCancelled / ErrInvalidTransition
func (e *TransitionError) Unwrap() error {
	if e.Current == StatusCancelled && e.Target == StatusCancelled {
		return ErrAlreadyCancelled
	}
	return ErrInvalidTransition
}
