package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"stockviz/pkg/llm"
)

var defaultOrigins = []string{
	"http://localhost:5173",
	"http://127.0.0.1:5173",
}

// Config holds everything the API process needs. It is built once at
// start-up and passed down; nothing reads the environment after that.
type Config struct {
	Port           string
	DatasetPath    string
	TimeColumns    []string
	AllowedOrigins []string
	MAWindows      []int
	UploadMaxBytes int64
	GinMode        string

	LLMProvider string
	LLMAPIKey   string
	LLMModel    string
}

// Load reads the environment. Call godotenv.Load first to pick up a .env file.
func Load() (*Config, error) {
	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		DatasetPath: getEnv("DATASET_PATH", "dataset.csv"),
		GinMode:     os.Getenv("GIN_MODE"),
		LLMProvider: strings.ToLower(getEnv("LLM_PROVIDER", llm.ProviderOpenAI)),
		LLMModel:    os.Getenv("LLM_MODEL"),
	}

	// empty keeps the loader's default candidates
	cfg.TimeColumns = splitList(os.Getenv("DATASET_TIME_COLUMNS"))

	cfg.AllowedOrigins = defaultOrigins
	if v := os.Getenv("ALLOWED_ORIGINS"); v != "" {
		cfg.AllowedOrigins = splitList(v)
	}
	if frontendURL := os.Getenv("FRONTEND_URL"); frontendURL != "" {
		cfg.AllowedOrigins = append(append([]string{}, cfg.AllowedOrigins...), frontendURL)
	}

	windows, err := parseWindows(getEnv("MA_WINDOWS", "20,50"))
	if err != nil {
		return nil, err
	}
	cfg.MAWindows = windows

	uploadMB, err := strconv.Atoi(getEnv("UPLOAD_MAX_MB", "32"))
	if err != nil || uploadMB <= 0 {
		return nil, fmt.Errorf("UPLOAD_MAX_MB must be a positive integer")
	}
	cfg.UploadMaxBytes = int64(uploadMB) << 20

	switch cfg.LLMProvider {
	case llm.ProviderOpenAI:
		cfg.LLMAPIKey = os.Getenv("OPENAI_API_KEY")
	case llm.ProviderAnthropic:
		cfg.LLMAPIKey = os.Getenv("ANTHROPIC_API_KEY")
	default:
		return nil, fmt.Errorf("LLM_PROVIDER must be %q or %q, got %q", llm.ProviderOpenAI, llm.ProviderAnthropic, cfg.LLMProvider)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.LLMAPIKey == "" {
		return fmt.Errorf("API key for LLM provider %q is not set", c.LLMProvider)
	}
	if c.DatasetPath == "" {
		return fmt.Errorf("DATASET_PATH is empty")
	}
	for _, o := range c.AllowedOrigins {
		if !strings.HasPrefix(o, "http://") && !strings.HasPrefix(o, "https://") {
			return fmt.Errorf("allowed origin %q must start with http:// or https://", o)
		}
	}
	return nil
}

type FetcherConfig struct {
	DatasetPath        string
	Symbol             string
	Days               int
	FinnHubAPIKey      string
	AlphaVantageAPIKey string
	MassiveAPIKey      string
}

func LoadFetcher() (*FetcherConfig, error) {
	cfg := &FetcherConfig{
		DatasetPath:        getEnv("DATASET_PATH", "dataset.csv"),
		Symbol:             getEnv("FETCH_SYMBOL", "AAPL"),
		FinnHubAPIKey:      os.Getenv("FINNHUB_API_KEY"),
		AlphaVantageAPIKey: os.Getenv("ALPHA_VANTAGE_API_KEY"),
		MassiveAPIKey:      os.Getenv("MASSIVE_API_KEY"),
	}

	days, err := strconv.Atoi(getEnv("FETCH_DAYS", "365"))
	if err != nil || days <= 0 {
		return nil, fmt.Errorf("FETCH_DAYS must be a positive integer")
	}
	cfg.Days = days

	if cfg.FinnHubAPIKey == "" && cfg.AlphaVantageAPIKey == "" && cfg.MassiveAPIKey == "" {
		return nil, fmt.Errorf("no market data API keys configured")
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func parseWindows(s string) ([]int, error) {
	var windows []int
	for _, part := range splitList(s) {
		w, err := strconv.Atoi(part)
		if err != nil || w <= 0 {
			return nil, fmt.Errorf("MA_WINDOWS: %q is not a positive integer", part)
		}
		windows = append(windows, w)
	}
	return windows, nil
}
