// Package llm is the model-provider layer of the generation pipeline.
// Stages prompt through the Provider interface and get structured JSON
// back; adapters for Anthropic, OpenAI, Gemini and OpenRouter plug in
// behind it, stacked with timeout, retry, rate limiting and request
// logging by the factory.
package llm

import (
	"context"
	"encoding/json"
)

// Role identifies the author of a prompt turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one turn of the prompt conversation.
type Message struct {
	Role    Role
	Content string
}

// Schema constrains a response to structured output. Definition is a
// plain JSON Schema document; each adapter translates it into the
// vendor's structured-output mechanism, and the response is checked
// against it again client side before being returned.
type Schema struct {
	Name        string
	Description string
	Definition  map[string]any
}

// Request is one completion request.
type Request struct {
	// System is the system prompt, empty for none.
	System string

	// Messages is the conversation so far, oldest first.
	Messages []Message

	// Schema, when set, requires the response to be JSON matching it.
	Schema *Schema

	// MaxTokens caps the completion length.
	MaxTokens int

	// Temperature is the sampling temperature. Zero keeps the
	// provider default.
	Temperature float64
}

// Usage reports token consumption for one request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// Response is a completed generation.
type Response struct {
	// Content is the completion text. When the request carried a
	// Schema this is the validated JSON document.
	Content json.RawMessage

	Usage Usage

	// Model is the concrete model ID the vendor reports, which can be
	// more specific than the one requested.
	Model string

	// StopReason is "end" for a natural stop or "max_tokens" when the
	// completion was cut off.
	StopReason string
}

// Provider is implemented by every model backend. Failures surface
// through the error types in this package so callers can tell a rate
// limit from a malformed response without knowing the vendor.
type Provider interface {
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID reports the configured model, for logging.
	ModelID() string
}

// canonicalModel resolves a config-friendly alias to a vendor model ID.
// Unrecognized names pass through so exact IDs keep working.
func canonicalModel(name string, aliases map[string]string) string {
	if id, ok := aliases[name]; ok {
		return id
	}
	return name
}
