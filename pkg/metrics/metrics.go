package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор Prometheus коллекторов сервиса
type Metrics struct {
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	upstreamCallsTotal  *prometheus.CounterVec
}

// New регистрирует коллекторы в глобальном реестре
func New(serviceName string) *Metrics {
	return NewWith(prometheus.DefaultRegisterer, serviceName)
}

// NewWith регистрирует коллекторы в переданном реестре (для тестов)
func NewWith(reg prometheus.Registerer, serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		httpRequestsTotal: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Name:        "http_requests_total",
				Help:        "Total number of HTTP requests processed.",
				ConstLabels: constLabels,
			},
			[]string{"method", "path", "status"},
		),
		httpRequestDuration: promauto.With(reg).NewHistogramVec(
			prometheus.HistogramOpts{
				Name:        "http_request_duration_seconds",
				Help:        "HTTP request latency in seconds.",
				Buckets:     prometheus.DefBuckets,
				ConstLabels: constLabels,
			},
			[]string{"method", "path"},
		),
		upstreamCallsTotal: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Name:        "upstream_calls_total",
				Help:        "Total number of outbound calls to external providers.",
				ConstLabels: constLabels,
			},
			[]string{"provider", "operation", "status"},
		),
	}
}

// ObserveHTTPRequest фиксирует обработанный HTTP запрос
func (m *Metrics) ObserveHTTPRequest(method, path, status string, seconds float64) {
	m.httpRequestsTotal.WithLabelValues(method, path, status).Inc()
	m.httpRequestDuration.WithLabelValues(method, path).Observe(seconds)
}

// ObserveUpstreamCall фиксирует исходящий вызов к внешнему провайдеру
func (m *Metrics) ObserveUpstreamCall(provider, operation, status string) {
	m.upstreamCallsTotal.WithLabelValues(provider, operation, status).Inc()
}
