package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"

	"github.com/joho/godotenv"

	"stockviz/internal/analysis"
	"stockviz/internal/config"
	"stockviz/internal/repository"
	"stockviz/pkg/llm"
)

func main() {
	rows := flag.Int("nrows", 100, "number of most recent rows to analyze")
	flag.Parse()

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, nil)))

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("error loading config: %v", err)
	}

	analyzer, err := llm.New(cfg.LLMProvider, cfg.LLMAPIKey, cfg.LLMModel)
	if err != nil {
		log.Fatalf("error creating LLM client: %v", err)
	}

	datasetRepo := repository.NewDatasetRepository(cfg.DatasetPath, cfg.TimeColumns...)
	f, err := datasetRepo.LoadDataset()
	if err != nil {
		log.Fatalf("error loading dataset: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	slog.Info("analyzing dataset", "path", datasetRepo.Path(), "rows", f.Len(), "nrows", *rows)

	res, err := analysis.NewSummarizer(analyzer).Summarize(ctx, f, *rows)
	if err != nil {
		log.Fatalf("error generating analysis: %v", err)
	}

	slog.Info("analysis generated", "model", res.ModelUsed)
	fmt.Println(res.Text)
}
