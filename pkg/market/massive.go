package market

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

type MassiveClient struct {
	apiKey     string
	httpClient *http.Client
	now        func() time.Time
}

func NewMassiveClient(apiKey string) *MassiveClient {
	return &MassiveClient{
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		now:        time.Now,
	}
}

func (c *MassiveClient) Name() string {
	return "Massive"
}

func (c *MassiveClient) Fetch(ctx context.Context, symbol string, days int) ([]Candle, error) {
	to := c.now().UTC()
	from := to.AddDate(0, 0, -days)
	endpoint := fmt.Sprintf(
		"https://api.massive.com/v2/aggs/ticker/%s/range/1/day/%s/%s?adjusted=true&sort=asc&limit=50000&apiKey=%s",
		url.PathEscape(symbol), from.Format("2006-01-02"), to.Format("2006-01-02"), c.apiKey,
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("massive request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("massive fetch: %w", err)
	}
	defer resp.Body.Close()

	var raw massiveResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("massive decode: %w", err)
	}

	if resp.StatusCode != http.StatusOK || raw.Status == "ERROR" {
		msg := raw.Error
		if msg == "" {
			msg = fmt.Sprintf("unexpected status %d", resp.StatusCode)
		}
		return nil, fmt.Errorf("massive fetch: %s", msg)
	}

	candles := make([]Candle, 0, len(raw.Results))
	for _, bar := range raw.Results {
		candles = append(candles, Candle{
			Date:   time.UnixMilli(bar.Timestamp).UTC(),
			Open:   bar.Open,
			High:   bar.High,
			Low:    bar.Low,
			Close:  bar.Close,
			Volume: bar.Volume,
		})
	}

	return candles, nil
}

type massiveResponse struct {
	Status  string       `json:"status"`
	Error   string       `json:"error"`
	Results []massiveBar `json:"results"`
}

type massiveBar struct {
	Open      float64 `json:"o"`
	High      float64 `json:"h"`
	Low       float64 `json:"l"`
	Close     float64 `json:"c"`
	Volume    float64 `json:"v"`
	Timestamp int64   `json:"t"`
}
