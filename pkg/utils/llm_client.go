package utils

import (
	"context"
	"fmt"
	"strings"
)

// CompletionRequest is a single non-streaming chat completion.
type CompletionRequest struct {
	System      string
	User        string
	Temperature float32
	// JSONOnly asks the provider to constrain output to a JSON object.
	JSONOnly bool
}

// CompletionClientInterface is a chat-completion style language model.
type CompletionClientInterface interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
	Provider() string
	Model() string
}

type CompletionConfig struct {
	Provider string
	APIKey   string
	Model    string
	BaseURL  string
}

// NewCompletionClient creates either an OpenAI or a Gemini client based on config.
func NewCompletionClient(cfg CompletionConfig) (CompletionClientInterface, error) {
	switch strings.ToLower(cfg.Provider) {
	case "openai":
		return NewOpenAICompletionClient(cfg.APIKey, cfg.Model, cfg.BaseURL), nil
	case "gemini":
		client, err := NewGeminiCompletionClient(cfg.APIKey, cfg.Model)
		if err != nil {
			return nil, err
		}
		return client, nil
	default:
		return nil, fmt.Errorf("%w: %s. Use 'openai' or 'gemini'", ErrUnsupportedClient, cfg.Provider)
	}
}
