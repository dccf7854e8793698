package utils

import (
	"context"
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestOpenAICompletionSendsSystemAndUserMessages(t *testing.T) {
	var got struct {
		Model       string  `json:"model"`
		Temperature float64 `json:"temperature"`
		Stream      bool    `json:"stream"`
		Messages    []struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"messages"`
		ResponseFormat struct {
			Type string `json:"type"`
		} `json:"response_format"`
	}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/chat/completions" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if auth := r.Header.Get("Authorization"); auth != "Bearer test-key" {
			t.Errorf("unexpected authorization header %q", auth)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode request error = %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"c1","object":"chat.completion","choices":[{"index":0,"message":{"role":"assistant","content":"{\"locations\":[]}"},"finish_reason":"stop"}]}`))
	}))
	defer server.Close()

	client := NewOpenAICompletionClient("test-key", "gpt-test", server.URL+"/v1")
	content, err := client.Complete(context.Background(), CompletionRequest{
		System:      "system prompt",
		User:        "Find 4 fascinating locations for: caves",
		Temperature: 0.7,
		JSONOnly:    true,
	})
	if err != nil {
		t.Fatalf("Complete() error = %v", err)
	}
	if content != `{"locations":[]}` {
		t.Fatalf("unexpected content %q", content)
	}
	if got.Model != "gpt-test" || got.Stream {
		t.Fatalf("unexpected model/stream: %s %v", got.Model, got.Stream)
	}
	if math.Abs(got.Temperature-0.7) > 1e-6 {
		t.Fatalf("expected temperature 0.7, got %v", got.Temperature)
	}
	if len(got.Messages) != 2 || got.Messages[0].Role != "system" || got.Messages[1].Role != "user" {
		t.Fatalf("unexpected messages %+v", got.Messages)
	}
	if !strings.HasSuffix(got.Messages[1].Content, "caves") {
		t.Fatalf("user message must carry the query, got %q", got.Messages[1].Content)
	}
	if got.ResponseFormat.Type != "json_object" {
		t.Fatalf("expected json_object response format, got %q", got.ResponseFormat.Type)
	}
}

func TestOpenAICompletionEmptyChoicesIsError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"c2","object":"chat.completion","choices":[]}`))
	}))
	defer server.Close()

	client := NewOpenAICompletionClient("test-key", "", server.URL)
	if client.Model() != defaultOpenAIModel {
		t.Fatalf("expected default model, got %q", client.Model())
	}
	_, err := client.Complete(context.Background(), CompletionRequest{User: "x"})
	if err == nil || err.Error() != "No response from OpenAI" {
		t.Fatalf("expected no response error, got %v", err)
	}
}

func TestNewCompletionClientRejectsUnknownProvider(t *testing.T) {
	_, err := NewCompletionClient(CompletionConfig{Provider: "llama"})
	if err == nil {
		t.Fatalf("expected error for unknown provider")
	}
}
