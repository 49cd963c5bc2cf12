package transform

import (
	"fmt"
	"strings"
)

// ValidationError reports records that fail input or output validation,
// carrying the offending field paths.
type ValidationError struct {
	Message string
	Fields  []string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Message, strings.Join(e.Fields, ", "))
}

func NewValidationError(message string, fields ...string) *ValidationError {
	return &ValidationError{Message: message, Fields: fields}
}

// NotFoundError reports an unknown platform pair or job type, listing what
// is supported so callers can self-correct.
type NotFoundError struct {
	What      string
	Requested string
	Supported []string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no %s for %q (supported: %s)", e.What, e.Requested, strings.Join(e.Supported, ", "))
}

// TransformationError wraps an unexpected failure inside a transformer with
// the job type it happened under.
type TransformationError struct {
	JobTypeCode string
	Err         error
}

func (e *TransformationError) Error() string {
	return fmt.Sprintf("transformation failed for job type %s: %v", e.JobTypeCode, e.Err)
}

func (e *TransformationError) Unwrap() error {
	return e.Err
}
