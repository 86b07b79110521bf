package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/arjun/mcqgen/internal/store"
)

// LoggingProvider appends one event per request to the event log,
// success or failure. A logging failure is reported on stderr and
// never fails the request itself.
type LoggingProvider struct {
	inner    Provider
	provider string
	events   store.EventRepo
}

// WithLogging wraps p so every request is recorded under providerName
// alongside the model ID.
func WithLogging(p Provider, providerName string, repo store.EventRepo) Provider {
	return &LoggingProvider{inner: p, provider: providerName, events: repo}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	resp, err := l.inner.Generate(ctx, req)
	l.record(ctx, req, resp, err, time.Since(start))
	return resp, err
}

func (l *LoggingProvider) ModelID() string { return l.inner.ModelID() }

func (l *LoggingProvider) record(ctx context.Context, req Request, resp *Response, genErr error, elapsed time.Duration) {
	data := store.LLMRequestEventData{
		RunID:       RunIDFrom(ctx),
		Provider:    l.provider,
		Model:       l.inner.ModelID(),
		Purpose:     PurposeFrom(ctx),
		LatencyMs:   elapsed.Milliseconds(),
		Success:     genErr == nil,
		RequestBody: transcript(req),
	}

	if resp != nil {
		// Prefer the model the vendor actually served.
		data.Model = resp.Model
		data.InputTokens = resp.Usage.InputTokens
		data.OutputTokens = resp.Usage.OutputTokens
		data.ResponseBody = string(resp.Content)
		if c := LookupCost(resp.Model); c != nil {
			data.CostUSD = c.Cost(resp.Usage.InputTokens, resp.Usage.OutputTokens)
		}
	}
	if genErr != nil {
		data.ErrorMessage = genErr.Error()
	}

	if err := l.events.AppendLLMRequest(ctx, data); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to log LLM request event: %v\n", err)
	}
}

// transcript renders the request in the readable sectioned form stored
// with the event.
func transcript(req Request) string {
	var b strings.Builder

	if req.System != "" {
		fmt.Fprintf(&b, "[system]\n%s\n\n", req.System)
	}
	for _, m := range req.Messages {
		fmt.Fprintf(&b, "[%s]\n%s\n\n", m.Role, m.Content)
	}
	if req.Schema != nil {
		if def, err := json.Marshal(req.Schema.Definition); err == nil {
			fmt.Fprintf(&b, "[schema: %s]\n%s\n", req.Schema.Name, def)
		}
	}

	return b.String()
}
