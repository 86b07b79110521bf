package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ValidationEvent records the outcome of checking one generated stem:
// the symbolic confidence score, whether the answer was corrected, and
// the reason a record was dropped when it failed.
type ValidationEvent struct {
	ent.Schema
}

func (ValidationEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ValidationEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("run_id").
			Comment("UUID of the pipeline run"),
		field.String("item_id").
			Comment("ID of the stem candidate that was checked"),
		field.String("concept_id").
			Comment("Concept the stem was generated for"),
		field.Bool("passed").
			Comment("Whether the stated answer verified as-is; corrected items record false"),
		field.Float("confidence").
			Comment("Symbolic verification confidence, 0 to 1"),
		field.Bool("corrected").
			Default(false).
			Comment("True when the stated answer was replaced by the verified one"),
		field.String("note").
			Default("").
			Comment("Verifier note: mismatch detail or correction record"),
		field.String("original_answer").
			Default("").
			Comment("The answer as generated, kept when a correction replaced it"),
	}
}

func (ValidationEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("run_id"),
		index.Fields("passed"),
	}
}
