// errors.go - Structured error handling for fatal pipeline failures
package pipeline

import "fmt"

// ErrorKind classifies a fatal pipeline failure.
type ErrorKind string

const (
	// KindArgument covers invalid or missing paths handed to the run.
	KindArgument ErrorKind = "ARGUMENT"
	// KindInput covers unreadable input directories or files.
	KindInput ErrorKind = "INPUT_IO"
	// KindOutput covers uncreatable or unwritable output directories and
	// archives.
	KindOutput ErrorKind = "OUTPUT_IO"
)

// Error is a structured pipeline error carrying its kind, a descriptive
// message and the underlying cause. Any Error aborts the remaining run;
// archives already written stay in place.
//
// Missing field markers are not errors of any kind: they degrade the derived
// keys silently (see parser.ExtractField).
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap exposes the underlying cause to errors.Is/As.
func (e *Error) Unwrap() error {
	return e.Err
}

// NewArgumentError creates an ARGUMENT error.
func NewArgumentError(message string, cause error) *Error {
	return &Error{Kind: KindArgument, Message: message, Err: cause}
}

// NewInputError creates an INPUT_IO error.
func NewInputError(message string, cause error) *Error {
	return &Error{Kind: KindInput, Message: message, Err: cause}
}

// NewOutputError creates an OUTPUT_IO error.
func NewOutputError(message string, cause error) *Error {
	return &Error{Kind: KindOutput, Message: message, Err: cause}
}
