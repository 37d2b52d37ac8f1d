package client

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Sentinel errors.
var (
	// ErrClientClosed is returned by requests attempted after Close. No
	// network call is made.
	ErrClientClosed = errors.New("client: closed")

	// ErrUnsupportedMethod is returned for any HTTP method other than GET
	// or POST, before any network I/O.
	ErrUnsupportedMethod = errors.New("client: unsupported method")
)

// APIError is a request-level rejection reported by the server itself:
// HTTP 400 (malformed request or parameters) or 429 (rate limited). Both
// are fixable by the caller and are never retried here. Payload is the
// response body, passed through verbatim.
type APIError struct {
	StatusCode int
	Payload    json.RawMessage
}

func (e *APIError) Error() string {
	return fmt.Sprintf("client: api error (status %d): %s", e.StatusCode, e.Payload)
}

// HTTPError is any other non-2xx response.
type HTTPError struct {
	StatusCode int
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("client: unexpected status %d", e.StatusCode)
}

// RequestError wraps every failure of one FetchAPI call together with the
// requested URL, so a caller needs a single check per call. The typed
// cause stays reachable through errors.Is and errors.As.
type RequestError struct {
	URL string
	Err error
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("client: request %q failed: %v", e.URL, e.Err)
}

func (e *RequestError) Unwrap() error {
	return e.Err
}
