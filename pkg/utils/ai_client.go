package utils

import (
	"context"
	"fmt"
	"io"
	"strings"

	"kindred/internal/models/request_models"
)

// CompletionRequest is a provider-neutral chat completion call.
type CompletionRequest struct {
	SystemPrompt string
	History      []request_models.ConversationTurn
	Message      string
	MaxTokens    int
	Temperature  float32
}

type ChatCompletionClient interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}

type SynthesisRequest struct {
	Text  string
	Voice string
	Speed float64
}

type SpeechClient interface {
	Synthesize(ctx context.Context, req SynthesisRequest) (io.ReadCloser, error)
}

// NewChatCompletionClient creates either an OpenAI or a Gemini client based on config.
func NewChatCompletionClient(provider, apiKey, model string) (ChatCompletionClient, error) {
	switch strings.ToLower(provider) {
	case "openai":
		return NewOpenAIChatClient(apiKey, model), nil
	case "gemini":
		return NewGeminiChatClient(apiKey, model)
	default:
		return nil, fmt.Errorf("unsupported AI provider: %s. Use 'openai' or 'gemini'", provider)
	}
}
