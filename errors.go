package jot

import (
	"errors"
	"fmt"

	"jot.mleku.dev/printbuf"
	"jot.mleku.dev/text"
)

// Sentinel errors for the parse failure classes. The string codec and the
// print buffer own the conditions they detect, the rest are raised here.
var (
	// ErrMalformed covers unterminated strings, trailing backslashes,
	// unparseable numbers and structural violations (missing colon, comma
	// or closing bracket).
	ErrMalformed = text.ErrMalformed
	// ErrUnexpectedToken means the input matches none of the six value
	// productions.
	ErrUnexpectedToken = errors.New("unexpected token")
	// ErrInvalidEscape is a bad escape letter or non-hex \u digit.
	ErrInvalidEscape = text.ErrInvalidEscape
	// ErrInvalidSurrogate is a lone or mismatched UTF-16 surrogate half.
	ErrInvalidSurrogate = text.ErrInvalidSurrogate
	// ErrTrailingGarbage is non-whitespace after the top level value in
	// strict mode.
	ErrTrailingGarbage = errors.New("trailing bytes after value")
	// ErrTooLarge is print buffer growth arithmetic overflow.
	ErrTooLarge = printbuf.ErrTooLarge
	// ErrNilNode is a print call on a nil node.
	ErrNilNode = errors.New("nil node")
)

// Error is a parse failure annotated with the byte offset of the first
// input position that could not be interpreted.
type Error struct {
	Offset int
	Err    error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%v at offset %d", e.Err, e.Offset)
}

func (e *Error) Unwrap() error { return e.Err }
