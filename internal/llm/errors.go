package llm

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// The pipeline reacts to provider failures by class, not by vendor:
// outages and rate limits are retried and abort the run if they
// persist, a schema-invalid response costs the item one retry before
// it is dropped, and a truncated response fails fast because retrying
// reproduces it. Adapters normalize their SDK errors into these types
// so that policy lives in one place.

// ErrProviderUnavailable reports an outage, a 5xx, or any failure to
// reach the provider at all.
type ErrProviderUnavailable struct {
	Err error
}

func (e *ErrProviderUnavailable) Error() string {
	if e.Err == nil {
		return "LLM provider unavailable"
	}
	return fmt.Sprintf("LLM provider unavailable: %v", e.Err)
}

func (e *ErrProviderUnavailable) Unwrap() error { return e.Err }

// ErrRateLimit reports a 429 from the provider.
type ErrRateLimit struct {
	// RetryAfter is the wait the provider suggested, zero if none.
	RetryAfter time.Duration
	Err        error
}

func (e *ErrRateLimit) Error() string {
	return fmt.Sprintf("rate limited (retry after %s): %v", e.RetryAfter, e.Err)
}

func (e *ErrRateLimit) Unwrap() error { return e.Err }

// ErrInvalidResponse reports model output that is not valid JSON or
// does not match the requested schema. Content carries the offending
// payload for the event log.
type ErrInvalidResponse struct {
	Content json.RawMessage
	Err     error
}

func (e *ErrInvalidResponse) Error() string {
	return fmt.Sprintf("invalid LLM response: %v", e.Err)
}

func (e *ErrInvalidResponse) Unwrap() error { return e.Err }

// ErrMaxTokensExceeded reports a completion cut off by the MaxTokens
// cap. The fix is a bigger cap or a smaller prompt, not a retry.
type ErrMaxTokensExceeded struct {
	Content json.RawMessage
}

func (e *ErrMaxTokensExceeded) Error() string {
	return "LLM response truncated: max tokens exceeded"
}

// classifyStatus maps an HTTP status from a vendor SDK error onto the
// package taxonomy. Every non-429 failure counts as unavailability so
// the retry layer backs off the same way for 500s and for transport
// errors.
func classifyStatus(status int, err error) error {
	if status == http.StatusTooManyRequests {
		return &ErrRateLimit{Err: err}
	}
	return &ErrProviderUnavailable{Err: err}
}
