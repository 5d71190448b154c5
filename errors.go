package newstr

import (
	"errors"
	"fmt"
)

// ErrInvalid is matched by every error returned when a candidate is rejected.
var ErrInvalid = errors.New("invalid value")

// ParseError reports a rejected candidate.
type ParseError struct {
	// Type is the name of the validated type.
	Type string
	// Input is the rejected candidate.
	Input string
	// Err is the reason given by a parse-mode policy, if any.
	Err error
}

// Error implements error.
func (e *ParseError) Error() string {
	msg := fmt.Sprintf("newstr: invalid value %q for type %s", e.Input, e.Type)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}

	return msg
}

// Unwrap exposes ErrInvalid and the policy's own error.
func (e *ParseError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrInvalid}
	}

	return []error{ErrInvalid, e.Err}
}

// NewParseError builds the error returned for a rejected candidate.
// A cause equal to ErrInvalid carries no extra detail and is dropped.
// Generated code calls this as well.
func NewParseError(typeName, input string, cause error) *ParseError {
	if cause == ErrInvalid {
		cause = nil
	}

	return &ParseError{Type: typeName, Input: input, Err: cause}
}
