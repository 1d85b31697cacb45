package market

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-playground/assert/v2"
)

func TestAlphaVantageFetch(t *testing.T) {
	payload := map[string]interface{}{
		"Meta Data": map[string]interface{}{"2. Symbol": "IBM"},
		"Time Series (Daily)": map[string]interface{}{
			"2024-01-03": map[string]string{"1. open": "11", "2. high": "12", "3. low": "10", "4. close": "11", "5. volume": "300"},
			"2024-01-01": map[string]string{"1. open": "9", "2. high": "11", "3. low": "9", "4. close": "10", "5. volume": "100"},
			"2024-01-02": map[string]string{"1. open": "10", "2. high": "13", "3. low": "10", "4. close": "12.5", "5. volume": "200"},
		},
	}

	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(payload)
	}))
	defer srv.Close()

	client := &AlphaVantageClient{
		apiKey:     "test-key",
		httpClient: srv.Client(),
	}
	client.httpClient.Transport = &rewriteTransport{base: srv.URL, inner: http.DefaultTransport}

	candles, err := client.Fetch(context.Background(), "IBM", 2)

	assert.Equal(t, nil, err)
	assert.Equal(t, 2, len(candles))
	assert.Equal(t, "function=TIME_SERIES_DAILY&symbol=IBM&outputsize=compact&apikey=test-key", gotQuery)

	c := candles[0]
	assert.Equal(t, time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), c.Date)
	assert.Equal(t, 10.0, c.Open)
	assert.Equal(t, 13.0, c.High)
	assert.Equal(t, 12.5, c.Close)
	assert.Equal(t, 200.0, c.Volume)
	assert.Equal(t, time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC), candles[1].Date)
}

func TestAlphaVantageRateLimitNote(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"Note": "API call frequency exceeded"})
	}))
	defer srv.Close()

	client := &AlphaVantageClient{
		apiKey:     "test-key",
		httpClient: srv.Client(),
	}
	client.httpClient.Transport = &rewriteTransport{base: srv.URL, inner: http.DefaultTransport}

	candles, err := client.Fetch(context.Background(), "IBM", 10)

	assert.NotEqual(t, nil, err)
	assert.Equal(t, 0, len(candles))
}

// rewriteTransport redirects all requests to a fixed base URL (test server).
type rewriteTransport struct {
	base  string
	inner http.RoundTripper
}

func (rt *rewriteTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req2 := req.Clone(req.Context())
	parsed, _ := http.NewRequest("GET", rt.base, nil)
	req2.URL.Host = parsed.URL.Host
	req2.URL.Scheme = parsed.URL.Scheme
	return rt.inner.RoundTrip(req2)
}
