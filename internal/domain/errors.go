package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrSessionNotFound is returned when a session id does not exist.
	ErrSessionNotFound = errors.New("session not found")

	// ErrConstraint wraps persistence-layer integrity violations (foreign
	// key, role check, empty content). Seeing one means the caller produced
	// an invalid row, not that the user sent bad input.
	ErrConstraint = errors.New("constraint violation")
)

// ValidationError reports malformed client input. No side effects have been
// performed when one is returned.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

// GatewayError reports a failure talking to the LLM provider. Status carries
// the upstream HTTP status when one was received, zero otherwise.
type GatewayError struct {
	Status  int
	Message string
	Err     error
}

func (e *GatewayError) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("llm gateway error [%d]: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("llm gateway error: %s", e.Message)
}

func (e *GatewayError) Unwrap() error {
	return e.Err
}
