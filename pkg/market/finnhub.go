package market

import (
	"context"
	"fmt"
	"time"

	finnhub "github.com/Finnhub-Stock-API/finnhub-go/v2"
)

type FinnHubClient struct {
	client *finnhub.DefaultApiService
}

func NewFinnHubClient(apiKey string) *FinnHubClient {
	cfg := finnhub.NewConfiguration()
	cfg.AddDefaultHeader("X-Finnhub-Token", apiKey)
	client := finnhub.NewAPIClient(cfg).DefaultApi
	return &FinnHubClient{client: client}
}

func (c *FinnHubClient) Fetch(ctx context.Context, symbol string, days int) ([]Candle, error) {
	to := time.Now()
	from := to.AddDate(0, 0, -days)

	res, _, err := c.client.StockCandles(ctx).
		Symbol(symbol).
		Resolution("D").
		From(from.Unix()).
		To(to.Unix()).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("finnhub candles: %w", err)
	}

	if res.GetS() != "ok" {
		return nil, fmt.Errorf("finnhub candles: status %q for %s", res.GetS(), symbol)
	}

	ts := res.GetT()
	opens, highs, lows, closes, volumes := res.GetO(), res.GetH(), res.GetL(), res.GetC(), res.GetV()
	n := len(ts)
	if len(opens) != n || len(highs) != n || len(lows) != n || len(closes) != n {
		return nil, fmt.Errorf("finnhub candles: ragged response for %s", symbol)
	}

	candles := make([]Candle, n)
	for i := range ts {
		candles[i] = Candle{
			Date:  time.Unix(ts[i], 0).UTC(),
			Open:  float64(opens[i]),
			High:  float64(highs[i]),
			Low:   float64(lows[i]),
			Close: float64(closes[i]),
		}
		if i < len(volumes) {
			candles[i].Volume = float64(volumes[i])
		}
	}
	return candles, nil
}

func (c *FinnHubClient) Name() string {
	return "FinnHub"
}
