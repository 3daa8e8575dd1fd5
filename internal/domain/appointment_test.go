package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppointment_CanRespond(t *testing.T) {
	a := &Appointment{ID: 1, Status: StatusPending}
	require.NoError(t, a.CanRespond())

	for _, status := range []AppointmentStatus{StatusConfirmed, StatusRejected, StatusCancelled, StatusCompleted} {
		a.Status = status
		err := a.CanRespond()

		var transitionErr *TransitionError
		require.True(t, errors.As(err, &transitionErr), status)
		assert.Equal(t, status, transitionErr.Current)
		assert.ErrorIs(t, err, ErrInvalidTransition)
		assert.Contains(t, err.Error(), "already "+string(status))
	}
}

func TestAppointment_CanCancel(t *testing.T) {
	for _, status := range []AppointmentStatus{StatusPending, StatusConfirmed} {
		require.NoError(t, (&Appointment{Status: status}).CanCancel())
	}

	err := (&Appointment{ID: 2, Status: StatusCancelled}).CanCancel()
	require.ErrorIs(t, err, ErrAlreadyCancelled)
	assert.NotErrorIs(t, err, ErrInvalidTransition)

	for _, status := range []AppointmentStatus{StatusRejected, StatusCompleted} {
		err := (&Appointment{Status: status}).CanCancel()
		require.ErrorIs(t, err, ErrInvalidTransition)
	}
}

func TestAppointment_Participants(t *testing.T) {
	a := &Appointment{PatientID: 10, DoctorID: 20}

	assert.True(t, a.IsParticipant(10))
	assert.True(t, a.IsParticipant(20))
	assert.False(t, a.IsParticipant(30))
	assert.Equal(t, int64(20), a.CounterpartOf(10))
	assert.Equal(t, int64(10), a.CounterpartOf(20))
}

func TestStatusHelpers(t *testing.T) {
	assert.True(t, StatusPending.IsActive())
	assert.True(t, StatusConfirmed.IsActive())
	assert.False(t, StatusRejected.IsActive())
	assert.False(t, AppointmentStatus("unknown").IsValid())
	assert.True(t, TypeVideo.IsValid())
	assert.False(t, AppointmentType("phone").IsValid())
}
