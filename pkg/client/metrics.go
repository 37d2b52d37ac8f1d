package client

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsConfig configures the client's Prometheus metrics.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "openmeteo").
	Namespace string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for request duration.
	// Default: prometheus.DefBuckets
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

func withMetricsDefaults(cfg MetricsConfig) MetricsConfig {
	if cfg.Namespace == "" {
		cfg.Namespace = "openmeteo"
	}
	if cfg.Buckets == nil {
		cfg.Buckets = prometheus.DefBuckets
	}
	if cfg.Registry == nil {
		cfg.Registry = prometheus.DefaultRegisterer
	}
	return cfg
}

// metrics holds the Prometheus collectors for one client.
type metrics struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	recordsDecoded  prometheus.Counter
	streamErrors    prometheus.Counter
}

func newMetrics(cfg MetricsConfig) *metrics {
	factory := promauto.With(cfg.Registry)

	return &metrics{
		requestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   cfg.Namespace,
			Name:        "requests_total",
			Help:        "Total number of API requests issued",
			ConstLabels: cfg.ConstLabels,
		}, []string{"method", "code"}),

		requestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   cfg.Namespace,
			Name:        "request_duration_seconds",
			Help:        "API request duration in seconds",
			ConstLabels: cfg.ConstLabels,
			Buckets:     cfg.Buckets,
		}, []string{"method"}),

		recordsDecoded: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   cfg.Namespace,
			Name:        "records_decoded_total",
			Help:        "Total number of records decoded from responses",
			ConstLabels: cfg.ConstLabels,
		}),

		streamErrors: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   cfg.Namespace,
			Name:        "stream_errors_total",
			Help:        "Total number of in-band stream errors reported by the server",
			ConstLabels: cfg.ConstLabels,
		}),
	}
}

func (m *metrics) observeRequest(method string, code int, d time.Duration) {
	if m == nil {
		return
	}
	m.requestsTotal.WithLabelValues(method, strconv.Itoa(code)).Inc()
	m.requestDuration.WithLabelValues(method).Observe(d.Seconds())
}

func (m *metrics) addRecords(n int) {
	if m == nil {
		return
	}
	m.recordsDecoded.Add(float64(n))
}

func (m *metrics) streamError() {
	if m == nil {
		return
	}
	m.streamErrors.Inc()
}
