package market

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"time"
)

// compact responses hold the latest 100 bars
const avCompactSize = 100

type AlphaVantageClient struct {
	apiKey     string
	httpClient *http.Client
}

func NewAlphaVantageClient(apiKey string) *AlphaVantageClient {
	return &AlphaVantageClient{
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *AlphaVantageClient) Name() string {
	return "AlphaVantage"
}

func (c *AlphaVantageClient) Fetch(ctx context.Context, symbol string, days int) ([]Candle, error) {
	outputSize := "compact"
	if days > avCompactSize {
		outputSize = "full"
	}
	endpoint := fmt.Sprintf(
		"https://www.alphavantage.co/query?function=TIME_SERIES_DAILY&symbol=%s&outputsize=%s&apikey=%s",
		url.QueryEscape(symbol), outputSize, c.apiKey,
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("alphavantage request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("alphavantage fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("alphavantage fetch: unexpected status %d", resp.StatusCode)
	}

	var raw avResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("alphavantage decode: %w", err)
	}

	// rate limits and bad symbols come back as 200 with a message field
	if msg := raw.message(); msg != "" {
		return nil, fmt.Errorf("alphavantage: %s", msg)
	}

	candles := make([]Candle, 0, len(raw.Series))
	for day, bar := range raw.Series {
		date, err := time.Parse("2006-01-02", day)
		if err != nil {
			return nil, fmt.Errorf("alphavantage date %q: %w", day, err)
		}
		candle, err := bar.candle(date)
		if err != nil {
			return nil, err
		}
		candles = append(candles, candle)
	}

	sort.Slice(candles, func(i, j int) bool { return candles[i].Date.Before(candles[j].Date) })
	if days > 0 && len(candles) > days {
		candles = candles[len(candles)-days:]
	}
	return candles, nil
}

type avResponse struct {
	Series       map[string]avBar `json:"Time Series (Daily)"`
	ErrorMessage string           `json:"Error Message"`
	Note         string           `json:"Note"`
	Information  string           `json:"Information"`
}

func (r avResponse) message() string {
	switch {
	case r.ErrorMessage != "":
		return r.ErrorMessage
	case r.Note != "":
		return r.Note
	case r.Information != "" && len(r.Series) == 0:
		return r.Information
	}
	return ""
}

type avBar struct {
	Open   string `json:"1. open"`
	High   string `json:"2. high"`
	Low    string `json:"3. low"`
	Close  string `json:"4. close"`
	Volume string `json:"5. volume"`
}

func (b avBar) candle(date time.Time) (Candle, error) {
	fields := []string{b.Open, b.High, b.Low, b.Close, b.Volume}
	values := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return Candle{}, fmt.Errorf("alphavantage value %q on %s: %w", f, date.Format("2006-01-02"), err)
		}
		values[i] = v
	}
	return Candle{Date: date, Open: values[0], High: values[1], Low: values[2], Close: values[3], Volume: values[4]}, nil
}
