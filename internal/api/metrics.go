package api

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

type metrics struct {
	gatherer prometheus.Gatherer

	requests        *prometheus.CounterVec
	duration        *prometheus.HistogramVec
	dimensionErrors *prometheus.CounterVec
	simulatedSteps  prometheus.Counter
}

func newMetrics(reg *prometheus.Registry) *metrics {
	m := &metrics{
		gatherer: reg,
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "dimensional",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by route, method and status code.",
		}, []string{"route", "method", "code"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "dimensional",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),
		dimensionErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "dimensional",
			Name:      "dimension_errors_total",
			Help:      "Rejected operations by the operation that mixed dimensions.",
		}, []string{"op"}),
		simulatedSteps: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "dimensional",
			Subsystem: "sim",
			Name:      "steps_total",
			Help:      "Integration steps run by /simulate.",
		}),
	}
	reg.MustRegister(
		m.requests,
		m.duration,
		m.dimensionErrors,
		m.simulatedSteps,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

func (m *metrics) observe(route, method string, status int, elapsed time.Duration) {
	m.requests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	m.duration.WithLabelValues(route).Observe(elapsed.Seconds())
}
