package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Rejection reasons recorded by PatientCreateRejected.
const (
	ReasonValidation  = "validation"
	ReasonDuplicate   = "duplicate"
	ReasonUnavailable = "unavailable"
)

// Metrics holds all Prometheus metrics for the application.
type Metrics struct {
	PatientsCreated       prometheus.Counter
	PatientCreateRejected *prometheus.CounterVec
	RequestDuration       *prometheus.HistogramVec
}

// New creates the metrics and registers them on reg. A nil reg leaves them
// unregistered, which is what tests want.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		PatientsCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "globalvaccinator_patients_created_total",
			Help: "Total number of patients created",
		}),
		PatientCreateRejected: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "globalvaccinator_patient_create_rejected_total",
			Help: "Patient creations rejected, by reason",
		}, []string{"reason"}),
		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "globalvaccinator_http_request_duration_seconds",
			Help:    "HTTP request latency by method, route and status",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
	}
}

// IncrementPatientsCreated increments the created counter by 1.
func (m *Metrics) IncrementPatientsCreated() {
	m.PatientsCreated.Inc()
}

// IncrementCreateRejected counts one rejected creation.
func (m *Metrics) IncrementCreateRejected(reason string) {
	m.PatientCreateRejected.WithLabelValues(reason).Inc()
}

// ObserveRequest records the latency of one HTTP request.
func (m *Metrics) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	m.RequestDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(elapsed.Seconds())
}
