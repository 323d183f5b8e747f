package analyzer

import (
	"errors"
	"fmt"
)

var ErrMissingAPIKey = errors.New("ANTHROPIC_API_KEY is not set")

// ExternalServiceError wraps a failed or unusable language model call.
type ExternalServiceError struct {
	Op  string
	Err error
}

func (e *ExternalServiceError) Error() string {
	return fmt.Sprintf("summary service %s: %v", e.Op, e.Err)
}

func (e *ExternalServiceError) Unwrap() error {
	return e.Err
}
