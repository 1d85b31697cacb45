package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"

	"stockviz/internal/config"
	"stockviz/pkg/market"
)

const fetchTimeout = 2 * time.Minute

func main() {

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg, err := config.LoadFetcher()
	if err != nil {
		log.Fatalf("error loading config: %v", err)
	}

	var clients []market.CandleClient
	if cfg.FinnHubAPIKey != "" {
		clients = append(clients, market.NewFinnHubClient(cfg.FinnHubAPIKey))
	}
	if cfg.AlphaVantageAPIKey != "" {
		clients = append(clients, market.NewAlphaVantageClient(cfg.AlphaVantageAPIKey))
	}
	if cfg.MassiveAPIKey != "" {
		clients = append(clients, market.NewMassiveClient(cfg.MassiveAPIKey))
	}

	ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
	defer cancel()

	// first source that answers wins
	var candles []market.Candle
	for _, client := range clients {
		source := client.Name()

		fetched, err := client.Fetch(ctx, cfg.Symbol, cfg.Days)
		if err != nil {
			slog.Error("error fetching candles", "source", source, "symbol", cfg.Symbol, "error", err)
			continue
		}
		if len(fetched) == 0 {
			slog.Warn("source returned no candles", "source", source, "symbol", cfg.Symbol)
			continue
		}

		slog.Info("fetched candles", "source", source, "symbol", cfg.Symbol, "count", len(fetched))
		candles = fetched
		break
	}

	if len(candles) == 0 {
		log.Fatalf("no source returned candles for %s", cfg.Symbol)
	}

	if err := writeDataset(cfg.DatasetPath, candles); err != nil {
		log.Fatalf("error writing dataset: %v", err)
	}

	slog.Info("dataset updated", "path", cfg.DatasetPath, "rows", len(candles))
}

// writeDataset replaces the file atomically so the API never reads a
// half-written CSV.
func writeDataset(path string, candles []market.Candle) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".dataset-*.csv")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if err := market.WriteCSV(tmp, candles); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
