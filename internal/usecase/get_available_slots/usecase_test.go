package get_available_slots

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/MedConnect-AppointmentService/internal/auth"
	"github.com/m04kA/MedConnect-AppointmentService/internal/domain"
	connectionRepo "github.com/m04kA/MedConnect-AppointmentService/internal/infra/storage/connection"
	"github.com/m04kA/MedConnect-AppointmentService/pkg/logger"
	"github.com/m04kA/MedConnect-AppointmentService/pkg/types"
)

type appointmentRepoMock struct{ mock.Mock }

func (m *appointmentRepoMock) GetActiveStartTimes(ctx context.Context, doctorID int64, date time.Time) ([]types.TimeOfDay, error) {
	args := m.Called(ctx, doctorID, date)
	starts, _ := args.Get(0).([]types.TimeOfDay)
	return starts, args.Error(1)
}

type availabilityRepoMock struct{ mock.Mock }

func (m *availabilityRepoMock) GetOrCreate(ctx context.Context, defaults *domain.DoctorAvailability) (*domain.DoctorAvailability, error) {
	args := m.Called(ctx, defaults)
	availability, _ := args.Get(0).(*domain.DoctorAvailability)
	return availability, args.Error(1)
}

type connectionRepoMock struct{ mock.Mock }

func (m *connectionRepoMock) FindAccepted(ctx context.Context, patientID, doctorID int64) (*domain.Connection, error) {
	args := m.Called(ctx, patientID, doctorID)
	conn, _ := args.Get(0).(*domain.Connection)
	return conn, args.Error(1)
}

var (
	patient = auth.Identity{ID: 1, UserType: auth.UserTypePatient}
	doctor  = auth.Identity{ID: 2, UserType: auth.UserTypeDoctor}
	// 2024-06-03 понедельник
	monday = time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)
)

type fixture struct {
	appointments *appointmentRepoMock
	availability *availabilityRepoMock
	connections  *connectionRepoMock
	uc           *UseCase
}

func newFixture() *fixture {
	f := &fixture{
		appointments: &appointmentRepoMock{},
		availability: &availabilityRepoMock{},
		connections:  &connectionRepoMock{},
	}
	f.uc = NewUseCase(f.appointments, f.availability, f.connections, logger.Nop())
	return f
}

func TestExecute_DefaultTemplateWithOneBooking(t *testing.T) {
	f := newFixture()
	f.connections.On("FindAccepted", mock.Anything, patient.ID, doctor.ID).
		Return(&domain.Connection{ID: 5, Status: domain.ConnectionAccepted}, nil)
	f.availability.On("GetOrCreate", mock.Anything, mock.MatchedBy(func(d *domain.DoctorAvailability) bool {
		return d.DoctorID == doctor.ID
	})).Return(domain.DefaultAvailability(doctor.ID), nil)
	f.appointments.On("GetActiveStartTimes", mock.Anything, doctor.ID, monday).
		Return([]types.TimeOfDay{tod("10:00")}, nil)

	resp, err := f.uc.Execute(context.Background(), &Request{Caller: patient, DoctorID: doctor.ID, Date: monday})
	require.NoError(t, err)

	assert.Equal(t, "2024-06-03", resp.Date)
	assert.Equal(t, domain.Monday, resp.DayName)
	assert.Equal(t, 30, resp.SlotDuration)
	assert.Equal(t, "Medical Office", resp.Location)
	assert.Len(t, resp.Slots, 15)
	assert.NotContains(t, starts(resp.Slots), "10:00")
}

func TestExecute_WeekendIsEmpty(t *testing.T) {
	f := newFixture()
	sunday := monday.AddDate(0, 0, -1)
	f.connections.On("FindAccepted", mock.Anything, patient.ID, doctor.ID).Return(&domain.Connection{}, nil)
	f.availability.On("GetOrCreate", mock.Anything, mock.Anything).Return(domain.DefaultAvailability(doctor.ID), nil)
	f.appointments.On("GetActiveStartTimes", mock.Anything, doctor.ID, sunday).Return([]types.TimeOfDay{}, nil)

	resp, err := f.uc.Execute(context.Background(), &Request{Caller: patient, DoctorID: doctor.ID, Date: sunday})
	require.NoError(t, err)
	assert.Equal(t, domain.Sunday, resp.DayName)
	assert.NotNil(t, resp.Slots)
	assert.Empty(t, resp.Slots)
}

func TestExecute_Errors(t *testing.T) {
	t.Run("doctor caller is forbidden", func(t *testing.T) {
		f := newFixture()
		_, err := f.uc.Execute(context.Background(), &Request{Caller: doctor, DoctorID: doctor.ID, Date: monday})
		require.ErrorIs(t, err, ErrForbidden)
		f.connections.AssertNotCalled(t, "FindAccepted", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("invalid input", func(t *testing.T) {
		f := newFixture()
		_, err := f.uc.Execute(context.Background(), &Request{Caller: patient, DoctorID: doctor.ID})
		require.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("not connected", func(t *testing.T) {
		f := newFixture()
		f.connections.On("FindAccepted", mock.Anything, patient.ID, doctor.ID).
			Return(nil, connectionRepo.ErrConnectionNotFound)

		_, err := f.uc.Execute(context.Background(), &Request{Caller: patient, DoctorID: doctor.ID, Date: monday})
		require.ErrorIs(t, err, ErrNotConnected)
		f.availability.AssertNotCalled(t, "GetOrCreate", mock.Anything, mock.Anything)
	})

	t.Run("store failure", func(t *testing.T) {
		f := newFixture()
		f.connections.On("FindAccepted", mock.Anything, patient.ID, doctor.ID).Return(&domain.Connection{}, nil)
		f.availability.On("GetOrCreate", mock.Anything, mock.Anything).Return(nil, errors.New("db down"))

		_, err := f.uc.Execute(context.Background(), &Request{Caller: patient, DoctorID: doctor.ID, Date: monday})
		require.ErrorIs(t, err, ErrInternal)
	})
}
