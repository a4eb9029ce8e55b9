package extract

import (
	"context"
	"errors"
	"fmt"
)

// FieldExtractor is the generative tier as the orchestrator sees it: text in,
// sanitized record out, with the raw structured payload for diagnostics.
// Implementations signal outcomes through the error taxonomy below; the
// orchestrator maps them onto state-machine transitions.
type FieldExtractor interface {
	// Available reports whether a credential/endpoint is configured. When
	// false the orchestrator skips the tier without consuming any attempt.
	Available() bool
	ExtractFields(ctx context.Context, text string) (JobRecord, []byte, error)
}

// ErrModelUnavailable means no credential is configured. It is an expected,
// configuration-driven state, not a failure: the caller falls back silently.
var ErrModelUnavailable = errors.New("generative model not configured")

// BlockedError is a permanent failure: the model's content-safety filter
// rejected the prompt and returned no usable content. Retrying the same
// document cannot succeed, so the orchestrator falls back immediately.
type BlockedError struct {
	Reason string
}

func (e *BlockedError) Error() string {
	return fmt.Sprintf("model response blocked: %s", e.Reason)
}

// ResponseError is a transient failure: the model replied but the payload
// was not the expected structured form. Eligible for retry.
type ResponseError struct {
	Cause error
}

func (e *ResponseError) Error() string {
	return fmt.Sprintf("invalid model response: %v", e.Cause)
}

func (e *ResponseError) Unwrap() error {
	return e.Cause
}
