package client

import (
	"context"

	"github.com/open-meteo/go-requests/pkg/sdk"
)

// Result carries the outcome of one asynchronous fetch: the full ordered
// record slice, or an error and no records.
type Result struct {
	Responses []*sdk.WeatherApiResponse
	Err       error
}

// AsyncClient issues requests without blocking the caller. Each FetchAPI
// call runs in its own goroutine and delivers exactly one Result; the
// decode work stays synchronous inside that goroutine. Error taxonomy and
// session ownership match Client.
type AsyncClient struct {
	*core
}

// NewAsync creates an asynchronous client. Without WithSession, the
// client creates its own session and closes it in Close.
func NewAsync(opts ...Option) *AsyncClient {
	return &AsyncClient{core: newCore(opts)}
}

// FetchAPI behaves like Client.FetchAPI but returns immediately. The
// channel is buffered, receives exactly one Result, and is then closed,
// so an abandoned receive never leaks the goroutine.
func (c *AsyncClient) FetchAPI(ctx context.Context, url string, params *Params, opts ...RequestOption) <-chan Result {
	ro := newRequestOptions(opts)

	// Snapshot before going asynchronous, in case the caller keeps
	// mutating its own Params.
	params = params.Clone()

	ch := make(chan Result, 1)
	go func() {
		defer close(ch)
		responses, err := c.fetch(ctx, url, params, ro)
		ch <- Result{Responses: responses, Err: err}
	}()
	return ch
}

// Close releases the client's own session and marks the client closed.
// Closing twice is a no-op. In-flight requests are not interrupted; use
// the per-call context for cancellation.
func (c *AsyncClient) Close() error {
	c.close()
	return nil
}
