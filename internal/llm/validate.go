package llm

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// compiledSchemas caches compiled schemas keyed by Schema.Name. The
// pipeline uses a small fixed set of schemas, so the cache never needs
// eviction.
var compiledSchemas sync.Map

// validateResponse checks raw model output against the request schema.
// A nil schema accepts anything. Failures come back as
// *ErrInvalidResponse carrying the offending payload.
func validateResponse(schema *Schema, raw json.RawMessage) error {
	if schema == nil {
		return nil
	}

	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return &ErrInvalidResponse{Content: raw, Err: fmt.Errorf("invalid JSON: %w", err)}
	}

	compiled, err := compiledSchema(schema)
	if err != nil {
		return &ErrInvalidResponse{Content: raw, Err: err}
	}

	if err := compiled.Validate(doc); err != nil {
		return &ErrInvalidResponse{Content: raw, Err: fmt.Errorf("schema validation failed: %w", err)}
	}
	return nil
}

func compiledSchema(schema *Schema) (*jsonschema.Schema, error) {
	if hit, ok := compiledSchemas.Load(schema.Name); ok {
		return hit.(*jsonschema.Schema), nil
	}

	// The compiler wants a decoded JSON document, not a Go map that
	// may hold ints where it expects float64, so Definition is
	// round-tripped through encoding/json first.
	b, err := json.Marshal(schema.Definition)
	if err != nil {
		return nil, fmt.Errorf("compile schema %q: %w", schema.Name, err)
	}
	var doc any
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("compile schema %q: %w", schema.Name, err)
	}

	c := jsonschema.NewCompiler()
	url := fmt.Sprintf("mcqgen://%s.json", schema.Name)
	if err := c.AddResource(url, doc); err != nil {
		return nil, fmt.Errorf("compile schema %q: %w", schema.Name, err)
	}
	compiled, err := c.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("compile schema %q: %w", schema.Name, err)
	}

	compiledSchemas.Store(schema.Name, compiled)
	return compiled, nil
}
