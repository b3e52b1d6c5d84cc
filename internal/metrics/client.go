package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// ClientMetrics tracks outbound panel API traffic and job polling activity.
// A fresh set is created per client so tests can use isolated registries.
type ClientMetrics struct {
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	PollTicksTotal  *prometheus.CounterVec
	JobsTotal       *prometheus.CounterVec
}

// NewClientMetrics creates the collectors and registers them on reg.
func NewClientMetrics(reg prometheus.Registerer) *ClientMetrics {
	m := &ClientMetrics{
		RequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "panel_client_requests_total",
			Help: "Outbound panel API requests by method and status class",
		}, []string{"method", "status"}),
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "panel_client_request_duration_seconds",
			Help:    "Outbound panel API request latency",
			Buckets: prometheus.DefBuckets,
		}, []string{"method"}),
		PollTicksTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "panel_client_poll_ticks_total",
			Help: "Job status poll ticks by job category",
		}, []string{"category"}),
		JobsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "panel_client_jobs_total",
			Help: "Observed job completions by category and outcome",
		}, []string{"category", "outcome"}),
	}

	reg.MustRegister(m.RequestsTotal, m.RequestDuration, m.PollTicksTotal, m.JobsTotal)
	return m
}

// ObserveRequest records one completed (or transport-failed) request.
// Transport failures are recorded with status "error".
func (m *ClientMetrics) ObserveRequest(method, status string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.RequestsTotal.WithLabelValues(method, status).Inc()
	m.RequestDuration.WithLabelValues(method).Observe(elapsed.Seconds())
}

// ObservePollTick records one poll cycle for a job category.
func (m *ClientMetrics) ObservePollTick(category string) {
	if m == nil {
		return
	}
	m.PollTicksTotal.WithLabelValues(category).Inc()
}

// ObserveJobOutcome records a terminal job observation.
func (m *ClientMetrics) ObserveJobOutcome(category, outcome string) {
	if m == nil {
		return
	}
	m.JobsTotal.WithLabelValues(category, outcome).Inc()
}
