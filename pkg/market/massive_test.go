package market

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-playground/assert/v2"
)

func TestMassiveFetch(t *testing.T) {
	payload := map[string]interface{}{
		"status": "OK",
		"results": []map[string]interface{}{
			{"o": 9.5, "h": 11, "l": 9, "c": 10, "v": 1000, "t": int64(1704153600000)},
			{"o": 10, "h": 13, "l": 10, "c": 12, "v": 2000, "t": int64(1704240000000)},
		},
	}

	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(payload)
	}))
	defer srv.Close()

	client := &MassiveClient{
		apiKey:     "test-key",
		httpClient: srv.Client(),
		now:        func() time.Time { return time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC) },
	}
	client.httpClient.Transport = &rewriteTransport{base: srv.URL, inner: http.DefaultTransport}

	candles, err := client.Fetch(context.Background(), "ACME", 9)

	assert.Equal(t, nil, err)
	assert.Equal(t, "/v2/aggs/ticker/ACME/range/1/day/2024-01-01/2024-01-10", gotPath)
	assert.Equal(t, 2, len(candles))

	c := candles[0]
	assert.Equal(t, time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), c.Date)
	assert.Equal(t, 9.5, c.Open)
	assert.Equal(t, 10.0, c.Close)
	assert.Equal(t, 1000.0, c.Volume)
}

func TestMassiveFetchError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		json.NewEncoder(w).Encode(map[string]string{"status": "ERROR", "error": "Unknown API Key"})
	}))
	defer srv.Close()

	client := &MassiveClient{
		apiKey:     "bad-key",
		httpClient: srv.Client(),
		now:        time.Now,
	}
	client.httpClient.Transport = &rewriteTransport{base: srv.URL, inner: http.DefaultTransport}

	_, err := client.Fetch(context.Background(), "ACME", 30)

	assert.NotEqual(t, nil, err)
	assert.Equal(t, "massive fetch: Unknown API Key", err.Error())
}

func TestWriteCSV(t *testing.T) {
	candles := []Candle{
		{Date: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), Open: 9, High: 11, Low: 9, Close: 10, Volume: 100},
		{Date: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), Open: 10, High: 13.25, Low: 10, Close: 12.5, Volume: 2e6},
	}

	var buf bytes.Buffer
	err := WriteCSV(&buf, candles)

	assert.Equal(t, nil, err)
	assert.Equal(t, "Date,Open,High,Low,Close,Volume\n2024-01-01,9,11,9,10,100\n2024-01-02,10,13.25,10,12.5,2000000\n", buf.String())
}
