// Package etlerror defines the typed errors raised by the pipeline stages.
// Only structural/input-level errors propagate to callers; per-record
// failures are contained at the stage boundary.
package etlerror

import "fmt"

// ParseError reports a failure to parse an input value during extraction
// or normalization.
type ParseError struct {
	Stage string
	Field string
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: failed to parse %s='%s': %v", e.Stage, e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ValidationError reports a structural failure of the whole input document.
// It is fatal for the batch.
type ValidationError struct {
	FilePath string
	Reason   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %s: %s", e.FilePath, e.Reason)
}

// ExtractionError reports a per-entry extraction failure. Entries carrying
// it are routed to the dead-letter sink, never up the stack.
type ExtractionError struct {
	Index  int
	Reason string
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("entry %d: %s", e.Index, e.Reason)
}

// StoreError reports a persistence failure for a single transaction.
type StoreError struct {
	TransactionID string
	Op            string
	Err           error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store %s failed for transaction %s: %v", e.Op, e.TransactionID, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}
