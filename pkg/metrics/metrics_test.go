package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_IndependentRegistries(t *testing.T) {
	first := New("appointments")
	second := New("appointments")

	first.IncAppointmentCreated()
	first.IncTransition("confirmed")

	assert.Equal(t, float64(1), testutil.ToFloat64(first.AppointmentsCreated))
	assert.Equal(t, float64(0), testutil.ToFloat64(second.AppointmentsCreated))
	assert.Equal(t, float64(1), testutil.ToFloat64(first.AppointmentTransitions.WithLabelValues("confirmed")))
}

func TestNilMetricsAreSafe(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.IncAppointmentCreated()
		m.IncBookingConflict()
		m.IncTransition("cancelled")
		m.IncNotificationFailure()
	})
}

func TestHandler_ExposesMetrics(t *testing.T) {
	m := New("appointments")
	m.IncBookingConflict()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "appointments_booking_conflicts_total 1")
}
