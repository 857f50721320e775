package metrics_test

import (
	"agency/infras/metrics"
	"errors"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Observe(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.NewWithRegisterer("", reg)

	m.ObserveBooking("book", "success")
	m.ObserveBooking("book", "slot_taken")
	m.ObserveProvisioner("create", errors.New("timeout"))
	m.ObserveProvisioner("create", nil)
	m.ObserveNotification("client_booked", nil)
	m.ObserveHTTP("POST", "/v1/consultations", 200, 0.12)

	expected := `
# HELP agency_meeting_provisioner_calls_total Calls to the video meeting provider by outcome
# TYPE agency_meeting_provisioner_calls_total counter
agency_meeting_provisioner_calls_total{operation="create",outcome="failure"} 1
agency_meeting_provisioner_calls_total{operation="create",outcome="success"} 1
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "agency_meeting_provisioner_calls_total"))

	count, err := testutil.GatherAndCount(reg, "agency_consultation_operations_total")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestMetrics_NilSafe(t *testing.T) {
	var m *metrics.Metrics

	assert.NotPanics(t, func() {
		m.ObserveBooking("book", "success")
		m.ObserveProvisioner("create", nil)
		m.ObserveNotification("client_booked", nil)
		m.ObserveHTTP("GET", "/health", 200, 0.01)
	})
}
