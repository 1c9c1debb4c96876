package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "awsjson"

// ClientMetrics records timings and outcomes of service calls.
type ClientMetrics struct {
	duration    *prometheus.HistogramVec
	marshal     *prometheus.HistogramVec
	credentials *prometheus.HistogramVec
	success     *prometheus.CounterVec
	failure     *prometheus.CounterVec
}

// NewClientMetrics registers the client metrics on the provided registerer.
// A nil registerer yields a no-op recorder.
func NewClientMetrics(reg prometheus.Registerer) *ClientMetrics {
	if reg == nil {
		return &ClientMetrics{}
	}
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "request_duration_seconds",
		Help:      "End-to-end duration of service calls in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"service", "operation"})
	marshal := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "marshal_duration_seconds",
		Help:      "Time spent marshalling request payloads in seconds.",
		Buckets:   []float64{.0001, .0005, .001, .005, .01, .05},
	}, []string{"service", "operation"})
	credentials := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "credentials_duration_seconds",
		Help:      "Time spent resolving credentials in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"service", "operation"})
	success := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "request_success_total",
		Help:      "Service calls that returned a result.",
	}, []string{"service", "operation"})
	failure := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "request_failure_total",
		Help:      "Service calls that returned an error, by error code.",
	}, []string{"service", "operation", "code"})
	reg.MustRegister(duration, marshal, credentials, success, failure)
	return &ClientMetrics{
		duration:    duration,
		marshal:     marshal,
		credentials: credentials,
		success:     success,
		failure:     failure,
	}
}

// ObserveDuration records the total duration of a call.
func (c *ClientMetrics) ObserveDuration(service, operation string, duration time.Duration) {
	if c == nil || c.duration == nil {
		return
	}
	c.duration.WithLabelValues(normalizeLabel(service), normalizeLabel(operation)).Observe(duration.Seconds())
}

// ObserveMarshal records the time spent building the request payload.
func (c *ClientMetrics) ObserveMarshal(service, operation string, duration time.Duration) {
	if c == nil || c.marshal == nil {
		return
	}
	c.marshal.WithLabelValues(normalizeLabel(service), normalizeLabel(operation)).Observe(duration.Seconds())
}

// ObserveCredentials records the time spent resolving credentials.
func (c *ClientMetrics) ObserveCredentials(service, operation string, duration time.Duration) {
	if c == nil || c.credentials == nil {
		return
	}
	c.credentials.WithLabelValues(normalizeLabel(service), normalizeLabel(operation)).Observe(duration.Seconds())
}

// IncSuccess increments the success counter.
func (c *ClientMetrics) IncSuccess(service, operation string) {
	if c == nil || c.success == nil {
		return
	}
	c.success.WithLabelValues(normalizeLabel(service), normalizeLabel(operation)).Inc()
}

// IncFailure increments the failure counter for the given error code.
func (c *ClientMetrics) IncFailure(service, operation, code string) {
	if c == nil || c.failure == nil {
		return
	}
	c.failure.WithLabelValues(normalizeLabel(service), normalizeLabel(operation), normalizeLabel(code)).Inc()
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}
