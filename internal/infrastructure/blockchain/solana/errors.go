package sdk

import (
	"errors"
	"fmt"
)

// Error kinds. Every failure returned by this package unwraps to exactly one
// of them.
var (
	ErrDecode          = errors.New("decode error")
	ErrRange           = errors.New("range error")
	ErrBuilder         = errors.New("builder error")
	ErrSigningDisabled = errors.New("message signing with caller-supplied secret keys is disabled")
)

// FieldError reports a request field that failed to decode or is out of range.
type FieldError struct {
	Field string
	Kind  error
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("Invalid %s: %v", e.Field, e.Err)
}

func (e *FieldError) Unwrap() []error {
	return []error{e.Kind, e.Err}
}

// BuildError wraps a failure raised while constructing an instruction.
type BuildError struct {
	Instruction string
	Err         error
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("Failed to build %s instruction: %v", e.Instruction, e.Err)
}

func (e *BuildError) Unwrap() []error {
	return []error{ErrBuilder, e.Err}
}

func decodeError(field string, err error) error {
	return &FieldError{Field: field, Kind: ErrDecode, Err: err}
}
