package client_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/open-meteo/go-requests/pkg/client"
)

func TestAsyncFetchAPI(t *testing.T) {
	ts := newWeatherServer(t)
	om := client.NewAsync()
	defer om.Close()

	res := <-om.FetchAPI(context.Background(), ts.URL+"/v1/forecast", batchParams())
	if res.Err != nil {
		t.Fatalf("FetchAPI() error = %v", res.Err)
	}
	checkBatchResponses(t, res.Responses)
}

func TestAsyncFetchAPIConcurrent(t *testing.T) {
	ts := newWeatherServer(t)
	om := client.NewAsync()
	defer om.Close()

	first := om.FetchAPI(context.Background(), ts.URL+"/v1/forecast", batchParams())
	second := om.FetchAPI(context.Background(), ts.URL+"/v1/forecast", batchParams())

	for i, ch := range []<-chan client.Result{first, second} {
		res := <-ch
		if res.Err != nil {
			t.Fatalf("request %d: FetchAPI() error = %v", i, res.Err)
		}
		checkBatchResponses(t, res.Responses)
	}
}

func TestAsyncFetchAPIError(t *testing.T) {
	om := client.NewAsync()
	defer om.Close()

	res := <-om.FetchAPI(context.Background(), "", batchParams())

	var reqErr *client.RequestError
	if !errors.As(res.Err, &reqErr) {
		t.Fatalf("FetchAPI() error = %v, want *RequestError", res.Err)
	}
	if res.Responses != nil {
		t.Errorf("got %d responses alongside error, want none", len(res.Responses))
	}
}

func TestAsyncFetchAPIAfterClose(t *testing.T) {
	transport := &countingTransport{}
	om := client.NewAsync(client.WithSession(&http.Client{Transport: transport}))

	if err := om.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	res := <-om.FetchAPI(context.Background(), "http://localhost/v1/forecast", batchParams())
	if !errors.Is(res.Err, client.ErrClientClosed) {
		t.Fatalf("FetchAPI() after Close error = %v, want ErrClientClosed", res.Err)
	}
	if n := transport.calls.Load(); n != 0 {
		t.Errorf("transport was hit %d times after Close, want 0", n)
	}
}

func TestAsyncCloseIdempotent(t *testing.T) {
	om := client.NewAsync()
	if err := om.Close(); err != nil {
		t.Fatalf("first Close() error = %v", err)
	}
	if err := om.Close(); err != nil {
		t.Fatalf("second Close() error = %v", err)
	}
}

func TestAsyncResultChannelCloses(t *testing.T) {
	ts := newWeatherServer(t)
	om := client.NewAsync()
	defer om.Close()

	ch := om.FetchAPI(context.Background(), ts.URL+"/v1/forecast", batchParams())

	if _, ok := <-ch; !ok {
		t.Fatal("channel closed before delivering a result")
	}
	if _, ok := <-ch; ok {
		t.Error("channel delivered a second result")
	}
}
