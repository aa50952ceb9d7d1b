package id

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidLength is returned when a text ID is not exactly 26 bytes long.
	ErrInvalidLength = errors.New("invalid ID length: expected 26 characters")

	// ErrInvalidCharacter is returned when a text ID contains a character
	// outside the Crockford alphabet and its aliases.
	ErrInvalidCharacter = errors.New("invalid character in ID string")

	// ErrInvalidBinaryLength is returned when binary ID data is not 16 bytes.
	ErrInvalidBinaryLength = errors.New("invalid ID data: expected 16 bytes")

	// ErrUnsupportedScanType is returned by Scan for source values that are
	// neither text nor binary.
	ErrUnsupportedScanType = errors.New("unsupported scan type for ID")

	// ErrClockBeforeEpoch is returned by CheckClock when the clock reports a
	// time before 1970-01-01T00:00:00Z.
	ErrClockBeforeEpoch = errors.New("system clock reports a time before the Unix epoch")
)

// ParseError describes a text ID that could not be decoded.
// It unwraps to ErrInvalidLength or ErrInvalidCharacter.
type ParseError struct {
	Input string
	// Pos is the byte offset of the offending character, or -1 for
	// length errors.
	Pos int
	Err error
}

func (e *ParseError) Error() string {
	if e.Pos < 0 {
		return fmt.Sprintf("parse ID %q: %v (got %d)", e.Input, e.Err, len(e.Input))
	}
	return fmt.Sprintf("parse ID %q: %v at position %d", e.Input, e.Err, e.Pos)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
