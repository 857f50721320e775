package metrics

import (
	"agency/config"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

const defaultNamespace = "agency"

const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

// Metrics holds the service's Prometheus collectors. A nil *Metrics is a valid no-op.
type Metrics struct {
	bookings      *prometheus.CounterVec
	provisioner   *prometheus.CounterVec
	notifications *prometheus.CounterVec
	httpDuration  *prometheus.HistogramVec
}

// New registers on the default registerer.
func New(cfg *config.Config) *Metrics {
	return NewWithRegisterer(cfg.External.Metrics.Namespace, prometheus.DefaultRegisterer)
}

func NewWithRegisterer(namespace string, reg prometheus.Registerer) *Metrics {
	if namespace == "" {
		namespace = defaultNamespace
	}

	m := &Metrics{
		bookings: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "consultation",
			Name:      "operations_total",
			Help:      "Booking workflow operations by outcome",
		}, []string{"operation", "outcome"}),
		provisioner: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "meeting",
			Name:      "provisioner_calls_total",
			Help:      "Calls to the video meeting provider by outcome",
		}, []string{"operation", "outcome"}),
		notifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "notification",
			Name:      "emails_total",
			Help:      "Outbound notification emails by kind and outcome",
		}, []string{"kind", "outcome"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency by route",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
	}

	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	reg.MustRegister(m.bookings, m.provisioner, m.notifications, m.httpDuration)

	return m
}

// ObserveBooking counts a workflow result, e.g. ("book", "slot_taken").
func (m *Metrics) ObserveBooking(operation, outcome string) {
	if m == nil {
		return
	}

	m.bookings.WithLabelValues(operation, outcome).Inc()
}

func (m *Metrics) ObserveProvisioner(operation string, err error) {
	if m == nil {
		return
	}

	m.provisioner.WithLabelValues(operation, outcome(err)).Inc()
}

func (m *Metrics) ObserveNotification(kind string, err error) {
	if m == nil {
		return
	}

	m.notifications.WithLabelValues(kind, outcome(err)).Inc()
}

func (m *Metrics) ObserveHTTP(method, route string, status int, seconds float64) {
	if m == nil {
		return
	}

	m.httpDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(seconds)
}

func outcome(err error) string {
	if err != nil {
		return OutcomeFailure
	}

	return OutcomeSuccess
}
