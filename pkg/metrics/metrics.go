package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus collectors for the service.
type Metrics struct {
	serviceName string

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	SchedulerTicksTotal       *prometheus.CounterVec
	StatusTransitionsTotal    *prometheus.CounterVec
	GatewayFallbacksTotal     *prometheus.CounterVec
	AvailabilityRequestsTotal prometheus.Counter
}

// New registers and returns the service collectors.
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		serviceName: serviceName,

		HTTPRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),

		HTTPRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),

		SchedulerTicksTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "scheduler_ticks_total",
			Help:        "State scheduler ticks by outcome",
			ConstLabels: constLabels,
		}, []string{"outcome"}),

		StatusTransitionsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "appointment_transitions_total",
			Help:        "Applied appointment status transitions",
			ConstLabels: constLabels,
		}, []string{"from", "to", "trigger"}),

		GatewayFallbacksTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "gateway_fallbacks_total",
			Help:        "Remote fetches degraded to an empty fallback",
			ConstLabels: constLabels,
		}, []string{"source"}),

		AvailabilityRequestsTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "availability_requests_total",
			Help:        "Availability computations served",
			ConstLabels: constLabels,
		}),
	}
}
