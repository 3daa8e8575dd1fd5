package create_appointment

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/MedConnect-AppointmentService/internal/auth"
	"github.com/m04kA/MedConnect-AppointmentService/internal/domain"
	createAppointment "github.com/m04kA/MedConnect-AppointmentService/internal/usecase/create_appointment"
	"github.com/m04kA/MedConnect-AppointmentService/pkg/logger"
	"github.com/m04kA/MedConnect-AppointmentService/pkg/types"
)

type useCaseStub struct {
	got  *createAppointment.Request
	resp *createAppointment.Response
	err  error
}

func (s *useCaseStub) Execute(_ context.Context, req *createAppointment.Request) (*createAppointment.Response, error) {
	s.got = req
	return s.resp, s.err
}

var patient = auth.Identity{ID: 10, UserType: auth.UserTypePatient}

func do(t *testing.T, h *Handler, body string, withIdentity bool) *httptest.ResponseRecorder {
	t.Helper()
	r := httptest.NewRequest(http.MethodPost, "/api/v1/appointments", strings.NewReader(body))
	if withIdentity {
		r = r.WithContext(auth.WithIdentity(r.Context(), patient))
	}
	w := httptest.NewRecorder()
	h.Handle(w, r)
	return w
}

const validBody = `{"doctorId":20,"date":"2024-06-03","startTime":"09:00","type":"in-person","reason":"Checkup"}`

func TestHandle_Created(t *testing.T) {
	stub := &useCaseStub{resp: &domain.Appointment{
		ID:        1,
		PatientID: patient.ID,
		DoctorID:  20,
		Date:      time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC),
		StartTime: types.NewTimeOfDay(9, 0),
		EndTime:   types.NewTimeOfDay(9, 30),
		Type:      domain.TypeInPerson,
		Status:    domain.StatusPending,
		Location:  "Doctor's Office",
	}}
	w := do(t, NewHandler(stub, logger.Nop()), validBody, true)

	require.Equal(t, http.StatusCreated, w.Code)
	var body struct {
		Success     bool `json:"success"`
		Appointment struct {
			Status   string `json:"status"`
			EndTime  string `json:"endTime"`
			Location string `json:"location"`
		} `json:"appointment"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, "pending", body.Appointment.Status)
	assert.Equal(t, "09:30", body.Appointment.EndTime)
	assert.Equal(t, "Doctor's Office", body.Appointment.Location)

	assert.Equal(t, patient, stub.got.Caller)
	assert.Nil(t, stub.got.EndTime)
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "validation", err: fmt.Errorf("%w: reason is required", createAppointment.ErrInvalidInput), want: http.StatusBadRequest},
		{name: "not a patient", err: createAppointment.ErrForbidden, want: http.StatusForbidden},
		{name: "not connected", err: createAppointment.ErrNotConnected, want: http.StatusForbidden},
		{name: "slot taken", err: createAppointment.ErrSlotNotAvailable, want: http.StatusConflict},
		{name: "internal", err: createAppointment.ErrInternal, want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, NewHandler(&useCaseStub{err: tt.err}, logger.Nop()), validBody, true)
			assert.Equal(t, tt.want, w.Code)
			assert.Contains(t, w.Body.String(), `"success":false`)
		})
	}
}

func TestHandle_ValidationMessageIsClean(t *testing.T) {
	stub := &useCaseStub{err: fmt.Errorf("%w: reason is required", createAppointment.ErrInvalidInput)}
	w := do(t, NewHandler(stub, logger.Nop()), validBody, true)

	assert.JSONEq(t, `{"success":false,"message":"reason is required"}`, w.Body.String())
}

func TestHandle_BadRequests(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "not json", body: `{`},
		{name: "bad date", body: `{"doctorId":20,"date":"03/06/2024","startTime":"09:00","type":"video","reason":"x"}`},
		{name: "bad start", body: `{"doctorId":20,"date":"2024-06-03","startTime":"9am","type":"video","reason":"x"}`},
		{name: "bad end", body: `{"doctorId":20,"date":"2024-06-03","startTime":"09:00","endTime":"25:00","type":"video","reason":"x"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := &useCaseStub{}
			w := do(t, NewHandler(stub, logger.Nop()), tt.body, true)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Nil(t, stub.got)
		})
	}
}

func TestHandle_RequiresIdentity(t *testing.T) {
	w := do(t, NewHandler(&useCaseStub{}, logger.Nop()), validBody, false)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
