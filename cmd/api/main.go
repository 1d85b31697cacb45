package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"stockviz/internal/analysis"
	"stockviz/internal/config"
	"stockviz/internal/handler"
	"stockviz/internal/middleware"
	"stockviz/internal/repository"
	"stockviz/pkg/llm"
)

func main() {

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("error loading config: %v", err)
	}

	analyzer, err := llm.New(cfg.LLMProvider, cfg.LLMAPIKey, cfg.LLMModel)
	if err != nil {
		log.Fatalf("error creating LLM client: %v", err)
	}

	datasetRepo := repository.NewDatasetRepository(cfg.DatasetPath, cfg.TimeColumns...)
	if err := datasetRepo.Stat(); err != nil {
		slog.Warn("dataset not available yet", "path", datasetRepo.Path(), "error", err)
	}

	stockHandler := handler.NewStockHandler(datasetRepo, cfg.MAWindows)
	analysisHandler := handler.NewAnalysisHandler(datasetRepo, analysis.NewSummarizer(analyzer))
	visualizeHandler := handler.NewVisualizeHandler(cfg.UploadMaxBytes, 0)

	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	r := gin.New()
	r.MaxMultipartMemory = cfg.UploadMaxBytes

	slog.Info("AllowOrigins URL:", "urls", cfg.AllowedOrigins)

	r.Use(gin.Recovery(), middleware.RequestLogger(), middleware.CORS(cfg.AllowedOrigins))

	api := r.Group("/api")
	api.GET("/stock", stockHandler.GetCharts)
	api.GET("/stock/data", stockHandler.GetData)
	api.GET("/analyze", analysisHandler.Analyze)
	api.POST("/visualize", visualizeHandler.Visualize)
	r.GET("/health", stockHandler.GetHealth)

	slog.Info("starting server", "port", cfg.Port, "dataset", cfg.DatasetPath, "llm_provider", cfg.LLMProvider)

	err = r.Run(":" + cfg.Port)
	if err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}
