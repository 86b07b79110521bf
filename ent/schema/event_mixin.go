package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"entgo.io/ent/schema/mixin"
)

// EventMixin carries the fields every event table shares. The sequence
// comes from the store's shared counter, so ordering by it interleaves
// events of different types in append order; the timestamp is for
// humans reading the log.
type EventMixin struct {
	mixin.Schema
}

func (EventMixin) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("sequence").
			Unique().
			Immutable().
			Comment("Position in the store-wide event order"),
		field.Time("timestamp").
			Default(time.Now).
			Immutable().
			Comment("Wall-clock time the event was recorded"),
	}
}

func (EventMixin) Indexes() []ent.Index {
	// Unique() already indexes sequence.
	return []ent.Index{
		index.Fields("timestamp"),
	}
}
