package client

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// buildRequest assembles one GET or POST request for the given endpoint.
// GET serializes the parameters into the query string, POST into a form
// body. Any other method fails here, before any network I/O.
func buildRequest(ctx context.Context, method, rawURL string, params *Params, userAgent string) (*http.Request, error) {
	encoded, err := params.Encode()
	if err != nil {
		return nil, err
	}

	var req *http.Request
	switch method {
	case http.MethodGet:
		target := rawURL
		if encoded != "" {
			sep := "?"
			if strings.Contains(rawURL, "?") {
				sep = "&"
			}
			target = rawURL + sep + encoded
		}
		req, err = http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	case http.MethodPost:
		req, err = http.NewRequestWithContext(ctx, http.MethodPost, rawURL, strings.NewReader(encoded))
		if err == nil {
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		}
	default:
		return nil, fmt.Errorf("%w %q", ErrUnsupportedMethod, method)
	}
	if err != nil {
		return nil, err
	}

	if userAgent != "" {
		req.Header.Set("User-Agent", userAgent)
	}
	return req, nil
}

// dispatch issues one request over session and classifies the response.
// On 2xx it returns the raw body for framing. 400 and 429 become an
// APIError carrying the body; any other non-2xx becomes an HTTPError. The
// returned status code is 0 when no response was received.
func dispatch(ctx context.Context, session *http.Client, method, rawURL string, params *Params, userAgent string) ([]byte, int, error) {
	req, err := buildRequest(ctx, method, rawURL, params, userAgent)
	if err != nil {
		return nil, 0, err
	}

	resp, err := session.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, err
	}

	switch {
	case resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusTooManyRequests:
		return nil, resp.StatusCode, &APIError{StatusCode: resp.StatusCode, Payload: body}
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return nil, resp.StatusCode, &HTTPError{StatusCode: resp.StatusCode}
	}
	return body, resp.StatusCode, nil
}
