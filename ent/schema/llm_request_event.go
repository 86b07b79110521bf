package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LLMRequestEvent is one model API call, recorded whether it succeeded
// or not. The token and cost columns feed `mcqgen llm stats`; the
// captured bodies make `mcqgen llm view` a usable prompt debugger.
type LLMRequestEvent struct {
	ent.Schema
}

func (LLMRequestEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (LLMRequestEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("run_id").
			Default("").
			Comment("Pipeline run the call belongs to, empty for ad-hoc calls"),
		field.String("provider").
			Comment("Backend name: anthropic, openai, gemini, openrouter"),
		field.String("model").
			Comment("Model ID the vendor reported serving"),
		field.String("purpose").
			Comment("Pipeline stage label: concept-extract, stem-gen, distractor-gen"),
		field.Int("input_tokens").
			Default(0),
		field.Int("output_tokens").
			Default(0),
		field.Float("cost_usd").
			Default(0).
			Comment("Estimated from the pricing table, 0 for unpriced models"),
		field.Int64("latency_ms").
			Default(0),
		field.Bool("success"),
		field.String("error_message").
			Default(""),
		field.Text("request_body").
			Default("").
			Comment("Rendered prompt, sectioned by role"),
		field.Text("response_body").
			Default("").
			Comment("Raw completion content"),
	}
}

func (LLMRequestEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("run_id"),
		index.Fields("provider"),
		index.Fields("purpose"),
		index.Fields("success"),
	}
}
