package llm

import (
	"context"
	"fmt"
	"strings"
)

const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
)

type AnalysisResult struct {
	Text      string
	ModelUsed string
}

// Analyzer sends one prompt to a text-generation service and returns its reply.
type Analyzer interface {
	Analyze(ctx context.Context, prompt string) (*AnalysisResult, error)
}

// New returns the Analyzer for provider. An empty model keeps the client default.
func New(provider, apiKey, model string) (Analyzer, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("missing API key for provider %q", provider)
	}
	switch strings.ToLower(provider) {
	case ProviderOpenAI:
		c := NewOpenAIClient(apiKey)
		if model != "" {
			c = c.WithModel(model)
		}
		return c, nil
	case ProviderAnthropic:
		c := NewAnthropicClient(apiKey)
		if model != "" {
			c = c.WithModel(model)
		}
		return c, nil
	}
	return nil, fmt.Errorf("unknown llm provider %q", provider)
}
