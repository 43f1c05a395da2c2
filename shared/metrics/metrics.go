package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	namespace = "hotel"

	ResultSuccess = "success"
	ResultError   = "error"
)

type Metrics interface {
	ObserveStore(driver, operation string, err error)
	ObserveRequest(method, route string, status int, elapsed time.Duration)
	Handler() http.Handler
}

type metricsImpl struct {
	registry        *prometheus.Registry
	storeOperations *prometheus.CounterVec
	requests        *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

// New registers the collectors on a private registry.
func New() Metrics {
	registry := prometheus.NewRegistry()

	m := &metricsImpl{
		registry: registry,
		storeOperations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "store_operations_total",
			Help:      "Persistent store reads and writes by driver, operation and result.",
		}, []string{"driver", "operation", "result"}),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status code.",
		}, []string{"method", "route", "status"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}

	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.storeOperations,
		m.requests,
		m.requestDuration,
	)

	return m
}

func (m *metricsImpl) ObserveStore(driver, operation string, err error) {
	result := ResultSuccess
	if err != nil {
		result = ResultError
	}

	m.storeOperations.WithLabelValues(driver, operation, result).Inc()
}

func (m *metricsImpl) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	m.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.requestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

func (m *metricsImpl) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
