package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

const maxAnalysisTokens = 1024

type OpenAIClient struct {
	client    *openai.Client
	model     openai.ChatModel
	modelName string
}

// NewOpenAIClient never retries: a failed call is reported to the caller as is.
func NewOpenAIClient(apiKey string, opts ...option.RequestOption) *OpenAIClient {
	opts = append([]option.RequestOption{option.WithAPIKey(apiKey), option.WithMaxRetries(0)}, opts...)
	client := openai.NewClient(opts...)
	return &OpenAIClient{
		client:    &client,
		model:     openai.ChatModelGPT4oMini,
		modelName: "gpt-4o-mini",
	}
}

func (c *OpenAIClient) WithModel(model string) *OpenAIClient {
	cp := *c
	cp.model = openai.ChatModel(model)
	cp.modelName = model
	return &cp
}

func (c *OpenAIClient) Analyze(ctx context.Context, prompt string) (*AnalysisResult, error) {
	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
		MaxTokens: openai.Int(maxAnalysisTokens),
	})

	if err != nil {
		return nil, fmt.Errorf("openai API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no response from openai")
	}

	return &AnalysisResult{
		Text:      strings.TrimSpace(resp.Choices[0].Message.Content),
		ModelUsed: c.modelName,
	}, nil
}
