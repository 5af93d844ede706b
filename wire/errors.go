package wire

import (
	"errors"
	"fmt"
	"strings"
)

// Decoding errors. Every read primitive fails with exactly one of these
// kinds; callers match them with errors.Is.
var (
	// ErrTruncated indicates fewer bytes remain than a primitive requires.
	ErrTruncated = errors.New("truncated input")

	// ErrVarintOverflow indicates a varint ran past 10 continuation groups.
	ErrVarintOverflow = errors.New("varint overflows 64 bits")

	// ErrInvalidWireType indicates a tag whose low 3 bits do not map to a
	// supported wire type.
	ErrInvalidWireType = errors.New("invalid wire type")

	// ErrInvalidFieldNumber indicates a tag with field number 0.
	ErrInvalidFieldNumber = errors.New("invalid field number")

	// ErrInvalidUTF8 indicates a string payload that is not valid UTF-8.
	ErrInvalidUTF8 = errors.New("string payload is not valid UTF-8")

	// ErrOutOfBounds indicates a length prefix exceeding the remaining bytes.
	ErrOutOfBounds = errors.New("length prefix exceeds remaining bytes")

	// ErrUnexpectedEndOfMessage indicates a nested read that did not land
	// exactly on the declared message boundary.
	ErrUnexpectedEndOfMessage = errors.New("unexpected end of message")

	// ErrNestingTooDeep indicates the message nesting depth guard tripped.
	ErrNestingTooDeep = errors.New("message nesting too deep")
)

// FieldError represents a decoding error with the field-number path that
// led to it, outermost field first.
type FieldError struct {
	FieldPath []FieldNumber // e.g. [5, 3, 1] for field 1 inside field 3 inside field 5
	Err       error         // underlying error
}

// Error implements the error interface.
func (e *FieldError) Error() string {
	if len(e.FieldPath) == 0 {
		return e.Err.Error()
	}

	parts := make([]string, len(e.FieldPath))
	for i, num := range e.FieldPath {
		parts[i] = fmt.Sprintf("%d", num)
	}
	return fmt.Sprintf("error at field path %s: %v", strings.Join(parts, "."), e.Err)
}

// Unwrap returns the underlying error.
func (e *FieldError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for compatibility.
func (e *FieldError) Is(target error) bool {
	_, ok := target.(*FieldError)
	return ok
}

// wrapWithFieldNumber prepends a field number to an error's path.
func wrapWithFieldNumber(err error, num FieldNumber) error {
	if err == nil {
		return nil
	}

	var fe *FieldError
	if errors.As(err, &fe) {
		return &FieldError{
			FieldPath: append([]FieldNumber{num}, fe.FieldPath...),
			Err:       fe.Err,
		}
	}

	return &FieldError{
		FieldPath: []FieldNumber{num},
		Err:       err,
	}
}
