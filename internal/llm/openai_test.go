package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	openai "github.com/sashabaranov/go-openai"
)

func openaiAgainst(t *testing.T, handler http.HandlerFunc) *OpenAIProvider {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := openai.DefaultConfig("test-key")
	cfg.BaseURL = server.URL + "/v1"
	return &OpenAIProvider{client: openai.NewClientWithConfig(cfg), model: "gpt-4o-mini"}
}

func openaiCompletion(content, finishReason string) map[string]any {
	return map[string]any{
		"id":      "chatcmpl-test",
		"object":  "chat.completion",
		"created": 1234567890,
		"model":   "gpt-4o-mini",
		"choices": []map[string]any{{
			"index":         0,
			"message":       map[string]any{"role": "assistant", "content": content},
			"finish_reason": finishReason,
		}},
		"usage": map[string]any{
			"prompt_tokens":     200,
			"completion_tokens": 60,
			"total_tokens":      260,
		},
	}
}

func TestOpenAIReturnsHintLists(t *testing.T) {
	payload := `[["Repérez les réactifs de la combustion.","Le méthane brûle en CO2 et H2O."]]`
	handler := func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(openaiCompletion(payload, "stop"))
	}

	p := openaiAgainst(t, handler)
	resp, err := p.Generate(context.Background(), Request{
		System:    "You are an expert tutor.",
		Prompt:    "Q1:\n  Subject: Chimie\n  Question: Équilibrer la combustion du méthane.",
		MaxTokens: 1024,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.Content) != payload {
		t.Fatalf("content = %s", resp.Content)
	}
	if resp.Usage.InputTokens != 200 || resp.Usage.OutputTokens != 60 {
		t.Fatalf("usage = %+v", resp.Usage)
	}
}

func TestOpenAITruncationReported(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(openaiCompletion(`[["Repérez les`, "length"))
	}

	p := openaiAgainst(t, handler)
	_, err := p.Generate(context.Background(), Request{Prompt: "Q1: ...", MaxTokens: 8})

	var pErr *Error
	if !errors.As(err, &pErr) || pErr.Kind != KindTruncated {
		t.Fatalf("err = %v, want truncation", err)
	}
}

func TestOpenAIRateLimitClassified(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{
				"type":    "tokens",
				"message": "rate limit exceeded",
				"code":    "rate_limit_exceeded",
			},
		})
	}

	p := openaiAgainst(t, handler)
	_, err := p.Generate(context.Background(), Request{Prompt: "Q1: ...", MaxTokens: 64})

	var pErr *Error
	if !errors.As(err, &pErr) || pErr.Kind != KindRateLimited {
		t.Fatalf("err = %v, want rate limit", err)
	}
}

func TestOpenAIServerErrorClassified(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{"type": "server_error", "message": "boom"},
		})
	}

	p := openaiAgainst(t, handler)
	_, err := p.Generate(context.Background(), Request{Prompt: "Q1: ...", MaxTokens: 64})

	var pErr *Error
	if !errors.As(err, &pErr) || pErr.Kind != KindUnavailable {
		t.Fatalf("err = %v, want unavailable", err)
	}
}

func TestOpenAICustomBaseURL(t *testing.T) {
	p, err := NewOpenAIProvider(OpenAIConfig{
		APIKey:  "test-key",
		Model:   "gpt-mini",
		BaseURL: "https://example.com/v1",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ModelID() != "gpt-4o-mini" {
		t.Fatalf("model = %q, want the alias resolved", p.ModelID())
	}
}
