package respond_appointment

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

func (m *appointmentRepoMock) Respond(ctx context.Context, id int64, status domain.AppointmentStatus, reason *string) (*domain.Appointment, error) {
	args := m.Called(ctx, id, status, reason)
	a, _ := args.Get(0).(*domain.Appointment)
	return a, args.Error(1)
}

type notifierMock struct{ mock.Mock }

func (m *notifierMock) AppointmentResponded(ctx context.Context, a *domain.Appointment) error {
	return m.Called(ctx, a).Error(0)
}

type transitionCounter map[string]int

func (c transitionCounter) IncTransition(to string) { c[to]++ }

var (
	doctor  = auth.Identity{ID: 20, UserType: auth.UserTypeDoctor}
	patient = auth.Identity{ID: 10, UserType: auth.UserTypePatient}
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

func TestExecute_Accept(t *testing.T) {
	uc, repo, notifier, counter := newUseCase()
	repo.On("GetByID", mock.Anything, int64(7)).Return(appointmentWith(domain.StatusPending), nil)
	repo.On("Respond", mock.Anything, int64(7), domain.StatusConfirmed, (*string)(nil)).
		Return(appointmentWith(domain.StatusConfirmed), nil)
	notifier.On("AppointmentResponded", mock.Anything, mock.Anything).Return(nil)

	resp, err := uc.Execute(context.Background(), &Request{
		Caller:          doctor,
		AppointmentID:   7,
		Action:          ActionAccept,
		RejectionReason: "ignored on accept",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.StatusConfirmed, resp.Status)
	assert.Equal(t, 1, counter["confirmed"])
	notifier.AssertNumberOfCalls(t, "AppointmentResponded", 1)
}

func TestExecute_RejectStoresReason(t *testing.T) {
	uc, repo, notifier, _ := newUseCase()
	repo.On("GetByID", mock.Anything, int64(7)).Return(appointmentWith(domain.StatusPending), nil)
	rejected := appointmentWith(domain.StatusRejected)
	repo.On("Respond", mock.Anything, int64(7), domain.StatusRejected, mock.MatchedBy(func(r *string) bool {
		return r != nil && *r == "On vacation"
	})).Return(rejected, nil)
	notifier.On("AppointmentResponded", mock.Anything, rejected).Return(errors.New("user service down"))

	resp, err := uc.Execute(context.Background(), &Request{
		Caller:          doctor,
		AppointmentID:   7,
		Action:          ActionReject,
		RejectionReason: " On vacation ",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.StatusRejected, resp.Status)
}

func TestExecute_NonPendingReportsCurrentStatus(t *testing.T) {
	uc, repo, notifier, counter := newUseCase()
	repo.On("GetByID", mock.Anything, int64(7)).Return(appointmentWith(domain.StatusConfirmed), nil)

	_, err := uc.Execute(context.Background(), &Request{Caller: doctor, AppointmentID: 7, Action: ActionReject})

	require.ErrorIs(t, err, ErrInvalidState)
	assert.Contains(t, err.Error(), "already confirmed")
	repo.AssertNotCalled(t, "Respond", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	notifier.AssertNotCalled(t, "AppointmentResponded", mock.Anything, mock.Anything)
	assert.Empty(t, counter)
}

func TestExecute_LostRaceReloadsStatus(t *testing.T) {
	uc, repo, notifier, _ := newUseCase()
	repo.On("GetByID", mock.Anything, int64(7)).Return(appointmentWith(domain.StatusPending), nil).Once()
	repo.On("Respond", mock.Anything, int64(7), domain.StatusConfirmed, (*string)(nil)).
		Return(nil, appointmentRepo.ErrStatusChanged)
	repo.On("GetByID", mock.Anything, int64(7)).Return(appointmentWith(domain.StatusCancelled), nil).Once()

	_, err := uc.Execute(context.Background(), &Request{Caller: doctor, AppointmentID: 7, Action: ActionAccept})

	require.ErrorIs(t, err, ErrInvalidState)
	assert.Contains(t, err.Error(), "already cancelled")
	notifier.AssertNotCalled(t, "AppointmentResponded", mock.Anything, mock.Anything)
}

func TestExecute_Guards(t *testing.T) {
	t.Run("patient cannot respond", func(t *testing.T) {
		uc, repo, _, _ := newUseCase()
		repo.On("GetByID", mock.Anything, int64(7)).Return(appointmentWith(domain.StatusPending), nil)

		_, err := uc.Execute(context.Background(), &Request{Caller: patient, AppointmentID: 7, Action: ActionAccept})
		require.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("other doctor cannot respond", func(t *testing.T) {
		uc, repo, _, _ := newUseCase()
		repo.On("GetByID", mock.Anything, int64(7)).Return(appointmentWith(domain.StatusPending), nil)

		other := auth.Identity{ID: 21, UserType: auth.UserTypeDoctor}
		_, err := uc.Execute(context.Background(), &Request{Caller: other, AppointmentID: 7, Action: ActionAccept})
		require.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("forbidden wins over invalid state", func(t *testing.T) {
		uc, repo, _, _ := newUseCase()
		repo.On("GetByID", mock.Anything, int64(7)).Return(appointmentWith(domain.StatusCompleted), nil)

		_, err := uc.Execute(context.Background(), &Request{Caller: patient, AppointmentID: 7, Action: ActionAccept})
		require.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("not found", func(t *testing.T) {
		uc, repo, _, _ := newUseCase()
		repo.On("GetByID", mock.Anything, int64(7)).Return(nil, appointmentRepo.ErrAppointmentNotFound)

		_, err := uc.Execute(context.Background(), &Request{Caller: doctor, AppointmentID: 7, Action: ActionAccept})
		require.ErrorIs(t, err, ErrAppointmentNotFound)
	})

	t.Run("unknown action", func(t *testing.T) {
		uc, repo, _, _ := newUseCase()

		_, err := uc.Execute(context.Background(), &Request{Caller: doctor, AppointmentID: 7, Action: "maybe"})
		require.ErrorIs(t, err, ErrInvalidInput)
		repo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})
}
