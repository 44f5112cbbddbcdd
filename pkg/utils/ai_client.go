package utils

import (
	"context"
	"fmt"
	"strings"
)

// AIClientInterface is the one seam to the external model. Implementations
// send a single text prompt and return the raw text response; callers own
// fence stripping and JSON decoding.
type AIClientInterface interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// NewAIClient Factory function to create either an OpenAI or Gemini client
// based on config. An empty API key yields a client that fails every call
// with ErrMissingAPIKey before any network traffic, so the rest of the app
// keeps running.
func NewAIClient(provider, apiKey, model string) (AIClientInterface, error) {
	if apiKey == "" {
		return &unconfiguredClient{}, nil
	}

	switch strings.ToLower(provider) {
	case "openai":
		return NewOpenAIClient(apiKey, model), nil
	case "gemini":
		return NewGeminiClient(apiKey, model)
	default:
		return nil, fmt.Errorf("unsupported ai provider: %s. Use 'openai' or 'gemini'", provider)
	}
}

type unconfiguredClient struct{}

func (u *unconfiguredClient) GenerateText(ctx context.Context, prompt string) (string, error) {
	return "", ErrMissingAPIKey
}
