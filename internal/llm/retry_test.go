package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"
)

// hintLists is the payload shape the refinement pass receives.
var hintLists = json.RawMessage(`[["Pensez aux formules de dérivation.","La fonction est un quotient."]]`)

func fastRetry() RetryConfig {
	return RetryConfig{
		MaxAttempts: 3,
		InitialWait: time.Millisecond,
		MaxWait:     5 * time.Millisecond,
		Multiplier:  2.0,
	}
}

func TestRetryPassesThroughFirstSuccess(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: hintLists})
	p := WithRetry(mock, fastRetry())

	resp, err := p.Generate(context.Background(), Request{Prompt: "Q1: ..."})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.Content) != string(hintLists) {
		t.Fatalf("content = %s", resp.Content)
	}
	if mock.CallCount() != 1 {
		t.Fatalf("calls = %d, want 1", mock.CallCount())
	}
}

func TestRetryRecoversFromOutage(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &Error{Kind: KindUnavailable, Err: errors.New("503")}},
		MockResponse{Content: hintLists},
	)
	p := WithRetry(mock, fastRetry())

	if _, err := p.Generate(context.Background(), Request{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mock.CallCount() != 2 {
		t.Fatalf("calls = %d, want 2", mock.CallCount())
	}
}

func TestRetryGivesUpAfterMaxAttempts(t *testing.T) {
	down := MockResponse{Err: &Error{Kind: KindUnavailable, Err: errors.New("503")}}
	mock := NewMockProvider(down, down, down, down)
	p := WithRetry(mock, fastRetry())

	if _, err := p.Generate(context.Background(), Request{}); err == nil {
		t.Fatal("expected error")
	}
	if mock.CallCount() != 3 {
		t.Fatalf("calls = %d, want 3", mock.CallCount())
	}
}

func TestRetryTruncationNotRetried(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &Error{Kind: KindTruncated, Raw: json.RawMessage(`[["Pensez`)}},
		MockResponse{Content: hintLists},
	)
	p := WithRetry(mock, fastRetry())

	_, err := p.Generate(context.Background(), Request{MaxTokens: 16})
	var pErr *Error
	if !errors.As(err, &pErr) || pErr.Kind != KindTruncated {
		t.Fatalf("err = %v, want truncation", err)
	}
	if mock.CallCount() != 1 {
		t.Fatalf("calls = %d, want 1", mock.CallCount())
	}
}

func TestRetryBadPayloadGetsOneMoreAttempt(t *testing.T) {
	bad := MockResponse{Err: badPayload(json.RawMessage(`"pas un tableau"`), errors.New("shape"))}
	mock := NewMockProvider(bad, bad, MockResponse{Content: hintLists})
	p := WithRetry(mock, fastRetry())

	if _, err := p.Generate(context.Background(), Request{}); err == nil {
		t.Fatal("expected error after second bad payload")
	}
	if mock.CallCount() != 2 {
		t.Fatalf("calls = %d, want 2", mock.CallCount())
	}
}

func TestRetryBadPayloadThenGoodSucceeds(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: badPayload(json.RawMessage(`{}`), errors.New("shape"))},
		MockResponse{Content: hintLists},
	)
	p := WithRetry(mock, fastRetry())

	resp, err := p.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.Content) != string(hintLists) {
		t.Fatalf("content = %s", resp.Content)
	}
}

func TestRetryStopsOnCancelledContext(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &Error{Kind: KindUnavailable}},
		MockResponse{Content: hintLists},
	)
	p := WithRetry(mock, fastRetry())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := p.Generate(ctx, Request{}); err == nil {
		t.Fatal("expected error")
	}
	if mock.CallCount() != 1 {
		t.Fatalf("calls = %d, want 1", mock.CallCount())
	}
}

func TestRetryUsesServerDelayForRateLimits(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &Error{Kind: KindRateLimited, RetryAfter: time.Millisecond, Err: errors.New("429")}},
		MockResponse{Content: hintLists},
	)
	p := WithRetry(mock, fastRetry())

	start := time.Now()
	if _, err := p.Generate(context.Background(), Request{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if elapsed := time.Since(start); elapsed < time.Millisecond {
		t.Fatalf("resumed after %s, before the server delay", elapsed)
	}
	if mock.CallCount() != 2 {
		t.Fatalf("calls = %d, want 2", mock.CallCount())
	}
}

func TestRetryModelIDDelegates(t *testing.T) {
	p := WithRetry(NewMockProvider(), fastRetry())
	if p.ModelID() != "mock" {
		t.Fatalf("model = %q", p.ModelID())
	}
}
