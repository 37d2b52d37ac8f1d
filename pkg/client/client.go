package client

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	flatbuffers "github.com/google/flatbuffers/go"
	"go.opentelemetry.io/otel/trace"

	"github.com/open-meteo/go-requests/pkg/protocol"
	"github.com/open-meteo/go-requests/pkg/sdk"
)

// core is the shared state and request pipeline behind Client and
// AsyncClient; the two differ only in scheduling.
type core struct {
	session     *http.Client
	ownsSession bool
	logger      *slog.Logger
	userAgent   string
	metrics     *metrics
	tracer      trace.Tracer

	mu     sync.Mutex
	closed bool
}

// Client is a synchronous Open-Meteo API client. It owns the session it
// created at construction, or borrows one injected via WithSession. A
// Client is safe for sequential reuse; concurrent use of one underlying
// session follows net/http's own guarantees.
type Client struct {
	*core
}

// New creates a synchronous client. Without WithSession, the client
// creates its own session and closes it in Close.
func New(opts ...Option) *Client {
	return &Client{core: newCore(opts)}
}

// FetchAPI requests url with params and decodes the response body into
// records, one per requested location, in the order the server emitted
// them. Callers rely on that order to zip coordinates back to results.
//
// Every failure is returned as a *RequestError carrying the URL; the
// typed cause (APIError, HTTPError, protocol.StreamError,
// protocol.FramingError, ErrClientClosed) stays reachable via errors.As
// and errors.Is. Either all records decode or none are returned.
func (c *Client) FetchAPI(ctx context.Context, url string, params *Params, opts ...RequestOption) ([]*sdk.WeatherApiResponse, error) {
	return c.fetch(ctx, url, params, newRequestOptions(opts))
}

// Close releases the client's own session and marks the client closed.
// Closing twice is a no-op. A session injected by the caller is left
// untouched.
func (c *Client) Close() error {
	c.close()
	return nil
}

func (c *core) fetch(ctx context.Context, rawURL string, params *Params, ro requestOptions) ([]*sdk.WeatherApiResponse, error) {
	if c.isClosed() {
		return nil, &RequestError{URL: rawURL, Err: ErrClientClosed}
	}

	method := strings.ToUpper(ro.method)

	// Inject the output format into a private copy; caller-owned params
	// are never mutated.
	p := params.Clone()
	p.Set(formatKey, formatFlatBuffers)

	ctx, span := startSpan(ctx, c.tracer, method, rawURL)
	start := time.Now()

	body, statusCode, err := dispatch(ctx, c.session, method, rawURL, p, c.userAgent)
	c.metrics.observeRequest(method, statusCode, time.Since(start))
	if err != nil {
		endSpan(span, statusCode, 0, err)
		c.logger.Debug("api request failed", "method", method, "url", rawURL, "status", statusCode, "error", err)
		return nil, &RequestError{URL: rawURL, Err: err}
	}

	ranges, err := protocol.Split(body)
	if err != nil {
		if _, ok := err.(*protocol.StreamError); ok {
			c.metrics.streamError()
		}
		endSpan(span, statusCode, 0, err)
		c.logger.Debug("api response malformed", "method", method, "url", rawURL, "error", err)
		return nil, &RequestError{URL: rawURL, Err: err}
	}

	// The decoded records are views into body; they stay valid because
	// they retain it.
	records := make([]*sdk.WeatherApiResponse, len(ranges))
	for i, r := range ranges {
		records[i] = sdk.GetRootAsWeatherApiResponse(body, flatbuffers.UOffsetT(r.Offset))
	}

	c.metrics.addRecords(len(records))
	endSpan(span, statusCode, len(records), nil)
	c.logger.Debug("api request done",
		"method", method, "url", rawURL, "status", statusCode,
		"records", len(records), "duration", time.Since(start))
	return records, nil
}

func (c *core) isClosed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}

func (c *core) close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	if c.ownsSession {
		c.session.CloseIdleConnections()
	}
}
