package client

import (
	"log/slog"
	"net/http"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// DefaultTimeout applies to sessions the client creates itself. An
// injected session keeps whatever timeout its owner configured.
const DefaultTimeout = 30 * time.Second

// Option configures a Client or AsyncClient.
type Option func(*options)

type options struct {
	session   *http.Client
	logger    *slog.Logger
	userAgent string
	metrics   *MetricsConfig
	tracing   bool
	tracer    trace.Tracer
}

// WithSession supplies an externally owned HTTP session. The client reuses
// it across requests but will not close a session it did not create; that
// stays the caller's responsibility.
func WithSession(session *http.Client) Option {
	return func(o *options) {
		o.session = session
	}
}

// WithLogger sets the structured logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithUserAgent sets the User-Agent header on every request.
func WithUserAgent(ua string) Option {
	return func(o *options) {
		o.userAgent = ua
	}
}

// WithMetrics enables Prometheus metrics. A zero MetricsConfig uses the
// defaults (namespace "openmeteo", default registerer and buckets).
func WithMetrics(cfg MetricsConfig) Option {
	return func(o *options) {
		o.metrics = &cfg
	}
}

// WithTracing enables an OpenTelemetry span around each request. A nil
// tracer resolves against the global tracer provider.
func WithTracing(tracer trace.Tracer) Option {
	return func(o *options) {
		o.tracing = true
		o.tracer = tracer
	}
}

// RequestOption adjusts a single FetchAPI call.
type RequestOption func(*requestOptions)

type requestOptions struct {
	method string
}

// WithMethod sets the HTTP method for this call. Only GET and POST are
// supported; GET is the default.
func WithMethod(method string) RequestOption {
	return func(o *requestOptions) {
		o.method = method
	}
}

func newCore(opts []Option) *core {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	owns := false
	if o.session == nil {
		o.session = &http.Client{Timeout: DefaultTimeout}
		owns = true
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}

	var m *metrics
	if o.metrics != nil {
		m = newMetrics(withMetricsDefaults(*o.metrics))
	}

	tracer := o.tracer
	if o.tracing && tracer == nil {
		tracer = otel.Tracer(defaultTracerName)
	}

	return &core{
		session:     o.session,
		ownsSession: owns,
		logger:      o.logger,
		userAgent:   o.userAgent,
		metrics:     m,
		tracer:      tracer,
	}
}

func newRequestOptions(opts []RequestOption) requestOptions {
	o := requestOptions{method: http.MethodGet}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
