// Package client fetches weather datasets from the Open-Meteo HTTP API
// and decodes the FlatBuffers response stream into typed records.
//
// # Usage
//
//	om := client.New()
//	defer om.Close()
//
//	params := client.NewParams().
//	    Set("latitude", []float64{52.54, 48.1, 48.4}).
//	    Set("longitude", []float64{13.41, 9.31, 8.5}).
//	    Set("hourly", []string{"temperature_2m", "precipitation"})
//
//	responses, err := om.FetchAPI(ctx, "https://api.open-meteo.com/v1/forecast", params)
//	if err != nil {
//	    // Handle error
//	}
//	for _, r := range responses {
//	    fmt.Println(r.Latitude(), r.Longitude())
//	}
//
// Records come back in request order, one per location, so responses[i]
// belongs to the i-th requested coordinate.
//
// # Errors
//
// Every failure surfaces as a *RequestError carrying the requested URL.
// The typed cause stays reachable:
//
//	var apiErr *client.APIError
//	if errors.As(err, &apiErr) {
//	    // Server rejected the request (HTTP 400) or rate-limited it
//	    // (HTTP 429); apiErr.Payload holds the server's own diagnostic.
//	}
//
// Other causes: *HTTPError (any other non-2xx status),
// *protocol.StreamError (the server aborted mid-stream),
// *protocol.FramingError (malformed response bytes), ErrClientClosed
// (request after Close), and plain transport errors from net/http.
// Nothing is retried internally; retry policy belongs to the caller.
//
// # Sessions
//
// A client created without WithSession owns its *http.Client and releases
// it on Close. An injected session is shared infrastructure: the client
// uses it but never closes it.
//
// # Asynchronous use
//
// AsyncClient has the same contract with channel-based scheduling:
//
//	ac := client.NewAsync()
//	defer ac.Close()
//
//	res := <-ac.FetchAPI(ctx, url, params)
//	if res.Err != nil {
//	    // Handle error
//	}
//
// # Observability
//
// WithMetrics registers Prometheus counters and histograms for requests,
// decoded records, and in-band stream errors. WithTracing wraps each
// request in an OpenTelemetry client span. Both are off by default.
package client
