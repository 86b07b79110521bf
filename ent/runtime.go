// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/arjun/mcqgen/ent/itemsnapshot"
	"github.com/arjun/mcqgen/ent/llmrequestevent"
	"github.com/arjun/mcqgen/ent/runevent"
	"github.com/arjun/mcqgen/ent/schema"
	"github.com/arjun/mcqgen/ent/validationevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	itemsnapshotFields := schema.ItemSnapshot{}.Fields()
	_ = itemsnapshotFields
	// itemsnapshotDescTimestamp is the schema descriptor for timestamp field.
	itemsnapshotDescTimestamp := itemsnapshotFields[2].Descriptor()
	// itemsnapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	itemsnapshot.DefaultTimestamp = itemsnapshotDescTimestamp.Default.(func() time.Time)
	// itemsnapshotDescWasCorrected is the schema descriptor for was_corrected field.
	itemsnapshotDescWasCorrected := itemsnapshotFields[10].Descriptor()
	// itemsnapshot.DefaultWasCorrected holds the default value on creation for the was_corrected field.
	itemsnapshot.DefaultWasCorrected = itemsnapshotDescWasCorrected.Default.(bool)
	// itemsnapshotDescIntegralType is the schema descriptor for integral_type field.
	itemsnapshotDescIntegralType := itemsnapshotFields[11].Descriptor()
	// itemsnapshot.DefaultIntegralType holds the default value on creation for the integral_type field.
	itemsnapshot.DefaultIntegralType = itemsnapshotDescIntegralType.Default.(string)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescRunID is the schema descriptor for run_id field.
	llmrequesteventDescRunID := llmrequesteventFields[0].Descriptor()
	// llmrequestevent.DefaultRunID holds the default value on creation for the run_id field.
	llmrequestevent.DefaultRunID = llmrequesteventDescRunID.Default.(string)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescCostUsd is the schema descriptor for cost_usd field.
	llmrequesteventDescCostUsd := llmrequesteventFields[6].Descriptor()
	// llmrequestevent.DefaultCostUsd holds the default value on creation for the cost_usd field.
	llmrequestevent.DefaultCostUsd = llmrequesteventDescCostUsd.Default.(float64)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[10].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[11].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	runeventMixin := schema.RunEvent{}.Mixin()
	runeventMixinFields0 := runeventMixin[0].Fields()
	_ = runeventMixinFields0
	runeventFields := schema.RunEvent{}.Fields()
	_ = runeventFields
	// runeventDescTimestamp is the schema descriptor for timestamp field.
	runeventDescTimestamp := runeventMixinFields0[1].Descriptor()
	// runevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	runevent.DefaultTimestamp = runeventDescTimestamp.Default.(func() time.Time)
	// runeventDescDetail is the schema descriptor for detail field.
	runeventDescDetail := runeventFields[3].Descriptor()
	// runevent.DefaultDetail holds the default value on creation for the detail field.
	runevent.DefaultDetail = runeventDescDetail.Default.(string)
	validationeventMixin := schema.ValidationEvent{}.Mixin()
	validationeventMixinFields0 := validationeventMixin[0].Fields()
	_ = validationeventMixinFields0
	validationeventFields := schema.ValidationEvent{}.Fields()
	_ = validationeventFields
	// validationeventDescTimestamp is the schema descriptor for timestamp field.
	validationeventDescTimestamp := validationeventMixinFields0[1].Descriptor()
	// validationevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	validationevent.DefaultTimestamp = validationeventDescTimestamp.Default.(func() time.Time)
	// validationeventDescCorrected is the schema descriptor for corrected field.
	validationeventDescCorrected := validationeventFields[5].Descriptor()
	// validationevent.DefaultCorrected holds the default value on creation for the corrected field.
	validationevent.DefaultCorrected = validationeventDescCorrected.Default.(bool)
	// validationeventDescNote is the schema descriptor for note field.
	validationeventDescNote := validationeventFields[6].Descriptor()
	// validationevent.DefaultNote holds the default value on creation for the note field.
	validationevent.DefaultNote = validationeventDescNote.Default.(string)
	// validationeventDescOriginalAnswer is the schema descriptor for original_answer field.
	validationeventDescOriginalAnswer := validationeventFields[7].Descriptor()
	// validationevent.DefaultOriginalAnswer holds the default value on creation for the original_answer field.
	validationevent.DefaultOriginalAnswer = validationeventDescOriginalAnswer.Default.(string)
}
