// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ItemSnapshot is the predicate function for itemsnapshot builders.
type ItemSnapshot func(*sql.Selector)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

// RunEvent is the predicate function for runevent builders.
type RunEvent func(*sql.Selector)

// ValidationEvent is the predicate function for validationevent builders.
type ValidationEvent func(*sql.Selector)
