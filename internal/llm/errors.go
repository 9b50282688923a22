package llm

import (
	"encoding/json"
	"fmt"
	"time"
)

// Kind classifies a provider failure for the retry decision.
type Kind int

const (
	// KindUnavailable covers network failures and 5xx responses.
	KindUnavailable Kind = iota

	// KindRateLimited is a 429; RetryAfter may carry the server's delay.
	KindRateLimited

	// KindBadPayload means the response was not the requested JSON shape.
	KindBadPayload

	// KindTruncated means the completion hit MaxTokens and the payload is
	// unusable. A retry with the same limit would truncate again.
	KindTruncated
)

// Error is a classified provider failure. Raw keeps the offending payload
// for bad-payload and truncation failures so it can be inspected.
type Error struct {
	Kind       Kind
	RetryAfter time.Duration
	Raw        json.RawMessage
	Err        error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindRateLimited:
		if e.RetryAfter > 0 {
			return fmt.Sprintf("rate limited, retry after %s: %v", e.RetryAfter, e.Err)
		}
		return fmt.Sprintf("rate limited: %v", e.Err)
	case KindBadPayload:
		return fmt.Sprintf("response does not match requested shape: %v", e.Err)
	case KindTruncated:
		return "response truncated at the token limit"
	}
	if e.Err == nil {
		return "provider unavailable"
	}
	return fmt.Sprintf("provider unavailable: %v", e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

func badPayload(raw json.RawMessage, err error) *Error {
	return &Error{Kind: KindBadPayload, Raw: raw, Err: err}
}
