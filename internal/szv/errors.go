package szv

import (
	"errors"
	"fmt"
)

var (
	// ErrFileAccess is returned when the credential file cannot be opened
	// or read. Login cannot proceed without it.
	ErrFileAccess = errors.New("credential file not accessible")

	// ErrLineDecode marks a single line that could not be hex decoded or
	// converted to text. Such lines are skipped.
	ErrLineDecode = errors.New("credential line decode failed")

	// ErrNotFound means no credential matches the password.
	ErrNotFound = errors.New("password not found")

	// ErrMalformedRecord means the password matched a credential whose
	// attribute list is too short to carry a prefix.
	ErrMalformedRecord = errors.New("malformed credential record")
)

// LineError describes a line skipped during a load. Line is 1-based.
type LineError struct {
	Line int
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}
