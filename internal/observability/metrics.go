package observability

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics exposes Prometheus counters for the console API.
type Metrics struct {
	requestTotal    *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	errorTotal      *prometheus.CounterVec
	reportsResolved *prometheus.CounterVec
	seatDenials     prometheus.Counter
}

// NewMetrics registers collectors on the default registry.
func NewMetrics() *Metrics {
	return &Metrics{
		requestTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "lodger_admin_http_requests_total",
			Help: "Total HTTP requests by path, method and status",
		}, []string{"path", "method", "status"}),
		requestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "lodger_admin_http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"path", "method"}),
		errorTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "lodger_admin_errors_total",
			Help: "Domain errors surfaced to operators, by code",
		}, []string{"path", "method", "code"}),
		reportsResolved: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "lodger_admin_reports_resolved_total",
			Help: "Reports moved out of pending, by decision",
		}, []string{"decision"}),
		seatDenials: promauto.NewCounter(prometheus.CounterOpts{
			Name: "lodger_admin_seat_denials_total",
			Help: "Login attempts rejected because the admin roster is full",
		}),
	}
}

// RecordRequest increments counters for requests.
func (m *Metrics) RecordRequest(path, method string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.requestTotal.WithLabelValues(path, method, strconv.Itoa(status)).Inc()
	m.requestDuration.WithLabelValues(path, method).Observe(duration.Seconds())
}

// RecordError increments error counters.
func (m *Metrics) RecordError(path, method, code string) {
	if m == nil {
		return
	}
	m.errorTotal.WithLabelValues(path, method, code).Inc()
}

// RecordReportDecision counts a report resolution.
func (m *Metrics) RecordReportDecision(decision string) {
	if m == nil {
		return
	}
	m.reportsResolved.WithLabelValues(decision).Inc()
}

// RecordSeatDenial counts a roster-full rejection.
func (m *Metrics) RecordSeatDenial() {
	if m == nil {
		return
	}
	m.seatDenials.Inc()
}
