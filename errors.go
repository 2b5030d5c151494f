package bitarr

import (
	"errors"
	"fmt"
)

var (
	// ErrSyntax is returned when a binary string contains a character other
	// than '0' or '1'.
	ErrSyntax = errors.New("invalid binary digit")
)

// ErrLengthMismatch indicates that a binary string does not have exactly the
// width of the target type.
type ErrLengthMismatch struct {
	Want int
	Got  int
}

func (e *ErrLengthMismatch) Error() string {
	return fmt.Sprintf("length mismatch: want %d characters, got %d", e.Want, e.Got)
}
