package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// RunEvent records the lifecycle of a pipeline run: stage transitions,
// batch progress, dropped records, completion or abort.
type RunEvent struct {
	ent.Schema
}

func (RunEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (RunEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("run_id").
			Comment("UUID of the pipeline run this event belongs to"),
		field.String("stage").
			Comment("Pipeline stage: extract, generate, validate, distract, assemble, done"),
		field.String("kind").
			Comment("What happened: started, batch, record_dropped, completed, aborted"),
		field.String("detail").
			Default("").
			Comment("Human-readable context, e.g. the dropped record id and cause"),
		field.JSON("counts", map[string]int{}).
			Optional().
			Comment("Stage counters at the time of the event"),
	}
}

func (RunEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("run_id"),
		index.Fields("kind"),
	}
}
