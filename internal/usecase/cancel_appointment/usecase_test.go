package cancel_appointment

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/MedConnect-AppointmentService/internal/auth"
	"github.com/m04kA/MedConnect-AppointmentService/internal/domain"
	appointmentRepo "github.com/m04kA/MedConnect-AppointmentService/internal/infra/storage/appointment"
	"github.com/m04kA/MedConnect-AppointmentService/pkg/logger"
)

type appointmentRepoMock struct{ mock.Mock }

func (m *appointmentRepoMock) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	args := m.Called(ctx, id)
	a, _ := args.Get(0).(*domain.Appointment)
	return a, args.Error(1)
}

func (m *appointmentRepoMock) Cancel(ctx context.Context, id, cancelledBy int64, reason string) (*domain.Appointment, error) {
	args := m.Called(ctx, id, cancelledBy, reason)
	a, _ := args.Get(0).(*domain.Appointment)
	return a, args.Error(1)
}

type notifierMock struct{ mock.Mock }

func (m *notifierMock) AppointmentCancelled(ctx context.Context, a *domain.Appointment, cancelledBy int64) error {
	return m.Called(ctx, a, cancelledBy).Error(0)
}

type transitionCounter map[string]int

func (c transitionCounter) IncTransition(to string) { c[to]++ }

var (
	doctor   = auth.Identity{ID: 20, UserType: auth.UserTypeDoctor}
	patient  = auth.Identity{ID: 10, UserType: auth.UserTypePatient}
	outsider = auth.Identity{ID: 30, UserType: auth.UserTypePatient}
)

func appointmentWith(status domain.AppointmentStatus) *domain.Appointment {
	return &domain.Appointment{ID: 7, PatientID: patient.ID, DoctorID: doctor.ID, Status: status}
}

func newUseCase() (*UseCase, *appointmentRepoMock, *notifierMock, transitionCounter) {
	repo := &appointmentRepoMock{}
	notifier := &notifierMock{}
	counter := transitionCounter{}
	return NewUseCase(repo, notifier, counter, logger.Nop()), repo, notifier, counter
}

func TestExecute_ParticipantsCanCancelActive(t *testing.T) {
	tests := []struct {
		name   string
		caller auth.Identity
		status domain.AppointmentStatus
	}{
		{name: "patient cancels pending", caller: patient, status: domain.StatusPending},
		{name: "patient cancels confirmed", caller: patient, status: domain.StatusConfirmed},
		{name: "doctor cancels confirmed", caller: doctor, status: domain.StatusConfirmed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, repo, notifier, counter := newUseCase()
			repo.On("GetByID", mock.Anything, int64(7)).Return(appointmentWith(tt.status), nil)
			cancelled := appointmentWith(domain.StatusCancelled)
			repo.On("Cancel", mock.Anything, int64(7), tt.caller.ID, "Feeling better").Return(cancelled, nil)
			notifier.On("AppointmentCancelled", mock.Anything, cancelled, tt.caller.ID).Return(nil)

			resp, err := uc.Execute(context.Background(), &Request{
				Caller:        tt.caller,
				AppointmentID: 7,
				Reason:        "Feeling better ",
			})

			require.NoError(t, err)
			assert.Equal(t, domain.StatusCancelled, resp.Status)
			assert.Equal(t, 1, counter["cancelled"])
			notifier.AssertNumberOfCalls(t, "AppointmentCancelled", 1)
		})
	}
}

func TestExecute_NotificationFailureKeepsCancellation(t *testing.T) {
	uc, repo, notifier, _ := newUseCase()
	repo.On("GetByID", mock.Anything, int64(7)).Return(appointmentWith(domain.StatusPending), nil)
	repo.On("Cancel", mock.Anything, int64(7), doctor.ID, "").Return(appointmentWith(domain.StatusCancelled), nil)
	notifier.On("AppointmentCancelled", mock.Anything, mock.Anything, doctor.ID).Return(errors.New("insert failed"))

	resp, err := uc.Execute(context.Background(), &Request{Caller: doctor, AppointmentID: 7})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, resp.Status)
}

func TestExecute_CancelGuards(t *testing.T) {
	t.Run("already cancelled is a conflict", func(t *testing.T) {
		uc, repo, notifier, _ := newUseCase()
		repo.On("GetByID", mock.Anything, int64(7)).Return(appointmentWith(domain.StatusCancelled), nil)

		_, err := uc.Execute(context.Background(), &Request{Caller: patient, AppointmentID: 7})
		require.ErrorIs(t, err, ErrAlreadyCancelled)
		assert.Contains(t, err.Error(), "already cancelled")
		repo.AssertNotCalled(t, "Cancel", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		notifier.AssertNotCalled(t, "AppointmentCancelled", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("rejected cannot be cancelled", func(t *testing.T) {
		uc, repo, _, _ := newUseCase()
		repo.On("GetByID", mock.Anything, int64(7)).Return(appointmentWith(domain.StatusRejected), nil)

		_, err := uc.Execute(context.Background(), &Request{Caller: patient, AppointmentID: 7})
		require.ErrorIs(t, err, ErrInvalidState)
		assert.NotErrorIs(t, err, ErrAlreadyCancelled)
	})

	t.Run("completed cannot be cancelled", func(t *testing.T) {
		uc, repo, _, _ := newUseCase()
		repo.On("GetByID", mock.Anything, int64(7)).Return(appointmentWith(domain.StatusCompleted), nil)

		_, err := uc.Execute(context.Background(), &Request{Caller: doctor, AppointmentID: 7})
		require.ErrorIs(t, err, ErrInvalidState)
	})

	t.Run("outsider is forbidden", func(t *testing.T) {
		uc, repo, _, _ := newUseCase()
		repo.On("GetByID", mock.Anything, int64(7)).Return(appointmentWith(domain.StatusCancelled), nil)

		_, err := uc.Execute(context.Background(), &Request{Caller: outsider, AppointmentID: 7})
		require.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("not found", func(t *testing.T) {
		uc, repo, _, _ := newUseCase()
		repo.On("GetByID", mock.Anything, int64(7)).Return(nil, appointmentRepo.ErrAppointmentNotFound)

		_, err := uc.Execute(context.Background(), &Request{Caller: doctor, AppointmentID: 7})
		require.ErrorIs(t, err, ErrAppointmentNotFound)
	})
}

func TestExecute_ConcurrentCancelIsConflict(t *testing.T) {
	uc, repo, _, counter := newUseCase()
	repo.On("GetByID", mock.Anything, int64(7)).Return(appointmentWith(domain.StatusConfirmed), nil).Once()
	repo.On("Cancel", mock.Anything, int64(7), patient.ID, "").Return(nil, appointmentRepo.ErrStatusChanged)
	repo.On("GetByID", mock.Anything, int64(7)).Return(appointmentWith(domain.StatusCancelled), nil).Once()

	_, err := uc.Execute(context.Background(), &Request{Caller: patient, AppointmentID: 7})
	require.ErrorIs(t, err, ErrAlreadyCancelled)
	assert.Empty(t, counter)
}
