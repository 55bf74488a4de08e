package entities

import (
	"errors"
	"strings"
)

// Domain errors
var (
	// Generation errors
	ErrNoContent     = errors.New("no response content from LLM")
	ErrInvalidFormat = errors.New("invalid response format from LLM")

	// Auth errors
	ErrMissingToken   = errors.New("missing bearer token")
	ErrInvalidToken   = errors.New("invalid token")
	ErrUserDisabled   = errors.New("user account is disabled")
	ErrTokenRevoked   = errors.New("token has been revoked")
	ErrNotAllowlisted = errors.New("user not in allowlist")
)

// ValidationError reports a malformed or incomplete generation request
type ValidationError struct {
	Path    []string
	Message string
}

func (e *ValidationError) Error() string {
	if len(e.Path) == 0 {
		return e.Message
	}
	return strings.Join(e.Path, ".") + ": " + e.Message
}

// ValidationErrors groups every problem found in one request
type ValidationErrors []*ValidationError

func (es ValidationErrors) Error() string {
	msgs := make([]string, 0, len(es))
	for _, e := range es {
		msgs = append(msgs, e.Error())
	}
	return strings.Join(msgs, "; ")
}

// GenerationError wraps any failure of the model call or of its reply
type GenerationError struct {
	Err error
}

func (e *GenerationError) Error() string {
	return "failed to generate MOM: " + e.Err.Error()
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}
