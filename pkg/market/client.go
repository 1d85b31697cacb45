package market

import (
	"context"
	"time"
)

// Candle is one daily OHLCV bar.
type Candle struct {
	Date   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}

type CandleClient interface {
	Fetch(ctx context.Context, symbol string, days int) ([]Candle, error)
	Name() string
}
