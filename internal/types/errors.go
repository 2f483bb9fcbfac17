package types

import "fmt"

// MalformedEventError reports an integrity defect in caller-supplied events.
// Not retryable: the input has to be fixed.
type MalformedEventError struct {
	Reason string
}

func (e *MalformedEventError) Error() string {
	return "malformed event: " + e.Reason
}

// InputTooLongError rejects free-text input above the interpretation bound
// before any outbound call is made.
type InputTooLongError struct {
	Length int
	Max    int
}

func (e *InputTooLongError) Error() string {
	return fmt.Sprintf("input too long: %d characters (max %d)", e.Length, e.Max)
}

// MalformedResponseError means the reasoning capability returned something
// that is not parseable JSON. Often a transient formatting slip, so callers
// may retry.
type MalformedResponseError struct {
	Raw string
	Err error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("malformed response from model: %v", e.Err)
}
func (e *MalformedResponseError) Unwrap() error { return e.Err }

// SchemaViolationError means the response parsed but breaks a structural
// invariant of the target schema.
type SchemaViolationError struct {
	Field  string
	Reason string
}

func (e *SchemaViolationError) Error() string {
	if e.Field == "" {
		return "schema violation: " + e.Reason
	}
	return "schema violation: " + e.Field + ": " + e.Reason
}

// UpstreamUnavailableError wraps network or auth failures reaching the
// reasoning capability. Retryable with backoff.
type UpstreamUnavailableError struct {
	Err error
}

func (e *UpstreamUnavailableError) Error() string {
	return fmt.Sprintf("reasoning capability unavailable: %v", e.Err)
}
func (e *UpstreamUnavailableError) Unwrap() error { return e.Err }
