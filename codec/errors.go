package codec

import (
	"errors"
	"fmt"
)

// Sentinel error kinds reported through *Error.
var (
	ErrInvalidGroupLength  = errors.New("invalid group length")
	ErrInvalidDigit        = errors.New("invalid binary digit")
	ErrCodePointOutOfRange = errors.New("code point out of range")
	ErrUnknownMode         = errors.New("unknown mode")
)

// Error describes a failed encode or decode. Kind is one of the sentinel
// errors above and is matched by errors.Is.
type Error struct {
	Op     string // "encode" or "decode"
	Kind   error
	Offset int // byte offset into the (whitespace-stripped) input
	Input  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %v at offset %d", e.Op, e.Kind, e.Offset)
}

func (e *Error) Unwrap() error {
	return e.Kind
}
