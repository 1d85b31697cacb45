package llm

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	anthropicoption "github.com/anthropics/anthropic-sdk-go/option"
	"github.com/go-playground/assert/v2"
	openaioption "github.com/openai/openai-go/option"
)

func TestBuildAnalysisPrompt(t *testing.T) {
	prompt := BuildAnalysisPrompt("Date Close\n2024-01-01 10\n")

	assert.Equal(t, true, strings.Contains(prompt, "unbiased financial analyst"))
	assert.Equal(t, true, strings.Contains(prompt, "3-point summary"))
	assert.Equal(t, true, strings.Contains(prompt, "Do not give financial advice."))
	assert.Equal(t, true, strings.HasSuffix(prompt, "Data:\nDate Close\n2024-01-01 10\n"))
}

func TestNew(t *testing.T) {
	a, err := New("OpenAI", "key", "")
	assert.Equal(t, nil, err)
	_, ok := a.(*OpenAIClient)
	assert.Equal(t, true, ok)

	a, err = New("anthropic", "key", "claude-sonnet-4-5")
	assert.Equal(t, nil, err)
	assert.Equal(t, "claude-sonnet-4-5", a.(*AnthropicClient).modelName)

	_, err = New("gemini", "key", "")
	assert.NotEqual(t, nil, err)

	_, err = New("openai", "", "")
	assert.NotEqual(t, nil, err)
}

func TestOpenAIAnalyze(t *testing.T) {
	var gotPrompt string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		var req struct {
			Model    string `json:"model"`
			Messages []struct {
				Content string `json:"content"`
			} `json:"messages"`
		}
		json.Unmarshal(body, &req)
		if len(req.Messages) > 0 {
			gotPrompt = req.Messages[0].Content
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"id": "chatcmpl-1",
			"object": "chat.completion",
			"created": 1700000000,
			"model": "gpt-4o-mini",
			"choices": [{
				"index": 0,
				"finish_reason": "stop",
				"message": {"role": "assistant", "content": "  1. Volatility is low.\n"}
			}]
		}`))
	}))
	defer srv.Close()

	client := NewOpenAIClient("test-key", openaioption.WithBaseURL(srv.URL+"/"))
	res, err := client.Analyze(context.Background(), "analyze this")

	assert.Equal(t, nil, err)
	assert.Equal(t, "1. Volatility is low.", res.Text)
	assert.Equal(t, "gpt-4o-mini", res.ModelUsed)
	assert.Equal(t, "analyze this", gotPrompt)
}

func TestOpenAIAnalyzeError(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error": {"message": "quota exceeded", "type": "insufficient_quota"}}`))
	}))
	defer srv.Close()

	client := NewOpenAIClient("test-key", openaioption.WithBaseURL(srv.URL+"/"))
	_, err := client.Analyze(context.Background(), "analyze this")

	assert.NotEqual(t, nil, err)
	assert.Equal(t, 1, calls)
}

func TestAnthropicAnalyze(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"id": "msg_1",
			"type": "message",
			"role": "assistant",
			"model": "claude-haiku-4-5",
			"content": [{"type": "text", "text": "Prices trended up."}],
			"stop_reason": "end_turn",
			"usage": {"input_tokens": 10, "output_tokens": 4}
		}`))
	}))
	defer srv.Close()

	client := NewAnthropicClient("test-key", anthropicoption.WithBaseURL(srv.URL+"/"))
	res, err := client.Analyze(context.Background(), "analyze this")

	assert.Equal(t, nil, err)
	assert.Equal(t, "Prices trended up.", res.Text)
	assert.Equal(t, "claude-4.5-haiku", res.ModelUsed)
}
