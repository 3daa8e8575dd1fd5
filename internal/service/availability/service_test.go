package availability

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/MedConnect-AppointmentService/internal/auth"
	"github.com/m04kA/MedConnect-AppointmentService/internal/domain"
	"github.com/m04kA/MedConnect-AppointmentService/internal/service/availability/models"
	"github.com/m04kA/MedConnect-AppointmentService/pkg/logger"
	"github.com/m04kA/MedConnect-AppointmentService/pkg/ptr"
	"github.com/m04kA/MedConnect-AppointmentService/pkg/types"
)

type repoMock struct{ mock.Mock }

func (m *repoMock) GetOrCreate(ctx context.Context, defaults *domain.DoctorAvailability) (*domain.DoctorAvailability, error) {
	args := m.Called(ctx, defaults)
	a, _ := args.Get(0).(*domain.DoctorAvailability)
	return a, args.Error(1)
}

func (m *repoMock) Update(ctx context.Context, a *domain.DoctorAvailability) (*domain.DoctorAvailability, error) {
	args := m.Called(ctx, a)
	if err := args.Error(1); err != nil {
		return nil, err
	}
	return a, nil
}

type inlineTx struct{ calls int }

func (m *inlineTx) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	return fn(ctx)
}

var (
	doctor  = auth.Identity{ID: 20, UserType: auth.UserTypeDoctor}
	patient = auth.Identity{ID: 10, UserType: auth.UserTypePatient}
)

func interval(fromH, fromM, toH, toM int) domain.TimeInterval {
	return domain.TimeInterval{Start: types.NewTimeOfDay(fromH, fromM), End: types.NewTimeOfDay(toH, toM)}
}

func newService() (*Service, *repoMock, *inlineTx) {
	repo := &repoMock{}
	tx := &inlineTx{}
	return NewService(repo, tx, logger.Nop()), repo, tx
}

func TestGet_CreatesDefaultForDoctor(t *testing.T) {
	svc, repo, _ := newService()
	repo.On("GetOrCreate", mock.Anything, mock.MatchedBy(func(d *domain.DoctorAvailability) bool {
		return d.DoctorID == doctor.ID && d.SlotDuration == 30 && d.Location == "Medical Office"
	})).Return(domain.DefaultAvailability(doctor.ID), nil)

	resp, err := svc.Get(context.Background(), doctor)
	require.NoError(t, err)
	assert.Equal(t, doctor.ID, resp.DoctorID)
	assert.Len(t, resp.Schedule.Day(domain.Monday), 1)
	assert.Empty(t, resp.Schedule.Day(domain.Sunday))
}

func TestGet_PatientDenied(t *testing.T) {
	svc, repo, _ := newService()

	_, err := svc.Get(context.Background(), patient)
	require.ErrorIs(t, err, ErrAccessDenied)
	repo.AssertNotCalled(t, "GetOrCreate", mock.Anything, mock.Anything)
}

func TestUpdateSettings_PartialUpdate(t *testing.T) {
	svc, repo, tx := newService()
	repo.On("GetOrCreate", mock.Anything, mock.Anything).Return(domain.DefaultAvailability(doctor.ID), nil)
	repo.On("Update", mock.Anything, mock.Anything).Return(nil, nil)

	resp, err := svc.UpdateSettings(context.Background(), &models.UpdateSettingsRequest{
		Caller:     doctor,
		BufferTime: ptr.Ptr(10),
		Location:   ptr.Ptr("Clinic, room 4"),
	})

	require.NoError(t, err)
	assert.Equal(t, 1, tx.calls)
	assert.Equal(t, 10, resp.BufferTime)
	assert.Equal(t, 30, resp.SlotDuration)
	assert.Equal(t, "Clinic, room 4", resp.Location)
	assert.Len(t, resp.Schedule.Day(domain.Friday), 1)
}

func TestUpdateSettings_ReplacesScheduleAndSortsIntervals(t *testing.T) {
	svc, repo, _ := newService()
	repo.On("GetOrCreate", mock.Anything, mock.Anything).Return(domain.DefaultAvailability(doctor.ID), nil)
	repo.On("Update", mock.Anything, mock.Anything).Return(nil, nil)

	schedule := domain.WeeklySchedule{
		domain.Tuesday: {interval(14, 0, 18, 0), interval(8, 0, 12, 0)},
	}
	resp, err := svc.UpdateSettings(context.Background(), &models.UpdateSettingsRequest{
		Caller:   doctor,
		Schedule: &schedule,
	})

	require.NoError(t, err)
	tuesday := resp.Schedule.Day(domain.Tuesday)
	require.Len(t, tuesday, 2)
	assert.Equal(t, "08:00", tuesday[0].Start.String())
	assert.Empty(t, resp.Schedule.Day(domain.Monday))
}

func TestUpdateSettings_RejectsInvalidTemplate(t *testing.T) {
	tests := []struct {
		name string
		req  models.UpdateSettingsRequest
	}{
		{name: "zero slot duration", req: models.UpdateSettingsRequest{SlotDuration: ptr.Ptr(0)}},
		{name: "negative buffer", req: models.UpdateSettingsRequest{BufferTime: ptr.Ptr(-5)}},
		{name: "overlapping intervals", req: models.UpdateSettingsRequest{Schedule: &domain.WeeklySchedule{
			domain.Monday: {interval(9, 0, 12, 0), interval(11, 0, 13, 0)},
		}}},
		{name: "inverted interval", req: models.UpdateSettingsRequest{Schedule: &domain.WeeklySchedule{
			domain.Monday: {interval(12, 0, 9, 0)},
		}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, _ := newService()
			repo.On("GetOrCreate", mock.Anything, mock.Anything).Return(domain.DefaultAvailability(doctor.ID), nil)

			req := tt.req
			req.Caller = doctor
			_, err := svc.UpdateSettings(context.Background(), &req)
			require.ErrorIs(t, err, ErrInvalidInput)
			repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
		})
	}
}

func TestUpdateDay(t *testing.T) {
	svc, repo, _ := newService()
	repo.On("GetOrCreate", mock.Anything, mock.Anything).Return(domain.DefaultAvailability(doctor.ID), nil)
	repo.On("Update", mock.Anything, mock.Anything).Return(nil, nil)

	resp, err := svc.UpdateDay(context.Background(), &models.UpdateDayRequest{
		Caller: doctor,
		Day:    "Saturday",
		Slots:  []domain.TimeInterval{interval(10, 0, 14, 0)},
	})

	require.NoError(t, err)
	assert.Len(t, resp.Schedule.Day(domain.Saturday), 1)
	assert.Len(t, resp.Schedule.Day(domain.Monday), 1)
}

func TestUpdateDay_ClearsDay(t *testing.T) {
	svc, repo, _ := newService()
	repo.On("GetOrCreate", mock.Anything, mock.Anything).Return(domain.DefaultAvailability(doctor.ID), nil)
	repo.On("Update", mock.Anything, mock.Anything).Return(nil, nil)

	resp, err := svc.UpdateDay(context.Background(), &models.UpdateDayRequest{Caller: doctor, Day: "monday"})

	require.NoError(t, err)
	assert.Empty(t, resp.Schedule.Day(domain.Monday))
}

func TestUpdateDay_Errors(t *testing.T) {
	t.Run("unknown day", func(t *testing.T) {
		svc, repo, _ := newService()

		_, err := svc.UpdateDay(context.Background(), &models.UpdateDayRequest{Caller: doctor, Day: "funday"})
		require.ErrorIs(t, err, ErrInvalidInput)
		repo.AssertNotCalled(t, "GetOrCreate", mock.Anything, mock.Anything)
	})

	t.Run("patient denied", func(t *testing.T) {
		svc, _, _ := newService()

		_, err := svc.UpdateDay(context.Background(), &models.UpdateDayRequest{Caller: patient, Day: "monday"})
		require.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("storage failure", func(t *testing.T) {
		svc, repo, _ := newService()
		repo.On("GetOrCreate", mock.Anything, mock.Anything).Return(domain.DefaultAvailability(doctor.ID), nil)
		repo.On("Update", mock.Anything, mock.Anything).Return(nil, errors.New("disk full"))

		_, err := svc.UpdateDay(context.Background(), &models.UpdateDayRequest{Caller: doctor, Day: "monday"})
		require.ErrorIs(t, err, ErrInternal)
	})
}
