package llm

import (
	"context"
	"encoding/json"
)

// LLMClient is the reasoning capability boundary: prompt in, raw JSON out.
// The caller never trusts the payload to match any schema.
type LLMClient interface {
	Name() string
	GenerateJSON(ctx context.Context, prompt string, input any) (json.RawMessage, error)
	Close() error
}

// Middleware wraps an LLMClient with additional behavior.
type Middleware func(LLMClient) LLMClient

// PermanentError marks an error that will not resolve with retries.
type PermanentError struct {
	Err error
}

func (e *PermanentError) Error() string { return e.Err.Error() }
func (e *PermanentError) Unwrap() error { return e.Err }

func NewPermanentError(err error) error {
	return &PermanentError{Err: err}
}
