package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ItemSnapshot is one assembled multiple-choice question as it left the
// pipeline, stored so a run can be reviewed and exported later without
// regenerating anything.
type ItemSnapshot struct {
	ent.Schema
}

func (ItemSnapshot) Fields() []ent.Field {
	return []ent.Field{
		field.String("run_id").
			Comment("UUID of the pipeline run that produced the item"),
		field.Int("question_number").
			Comment("1-based position of the question within the run"),
		field.Time("timestamp").
			Default(time.Now).
			Comment("When the item was assembled"),
		field.String("concept_id").
			Comment("Concept the question tests"),
		field.String("difficulty").
			Comment("easy, medium or hard"),
		field.Text("stem").
			Comment("Question text with LaTeX math"),
		field.JSON("options", map[string]string{}).
			Comment("Label to option text, labels a through d"),
		field.String("correct_label").
			Comment("Label of the correct option"),
		field.JSON("explanations", map[string]string{}).
			Comment("Label to explanation, plus the 'correct' reasoning entry"),
		field.Float("score").
			Comment("Symbolic verification confidence carried from validation"),
		field.Bool("was_corrected").
			Default(false).
			Comment("Whether the answer was replaced during validation"),
		field.String("integral_type").
			Default("").
			Comment("Integral family tag, e.g. polynomial or trigonometric"),
	}
}

func (ItemSnapshot) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("run_id"),
		index.Fields("run_id", "question_number").Unique(),
	}
}
