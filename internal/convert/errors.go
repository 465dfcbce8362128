package convert

import "errors"

// Conversion failures are never recovered: each one aborts the whole run
// before any output is written.
var (
	// ErrMissingField reports a node lacking a mandatory field.
	ErrMissingField = errors.New("missing required field")

	// ErrCoercion reports a value that could not be converted to the type
	// the output schema requires.
	ErrCoercion = errors.New("cannot coerce value")

	// ErrLengthMismatch reports parallel arrays of unequal length.
	ErrLengthMismatch = errors.New("parallel array length mismatch")
)
