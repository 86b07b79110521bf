package pipeline

import "fmt"

// RecordError is a per-record failure. The record is dropped and
// counted; the run continues.
type RecordError struct {
	RecordID string
	Stage    Stage
	Err      error
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("%s: record %s dropped: %v", e.Stage, e.RecordID, e.Err)
}

func (e *RecordError) Unwrap() error { return e.Err }

// StageFailure is a terminal failure: the run stops at the named stage
// and nothing later runs.
type StageFailure struct {
	Stage Stage
	Err   error
}

func (e *StageFailure) Error() string {
	return fmt.Sprintf("pipeline stage %s failed: %v", e.Stage, e.Err)
}

func (e *StageFailure) Unwrap() error { return e.Err }
