package stegano

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidGrid reports a grid whose shape or backing slice is
	// inconsistent.
	ErrInvalidGrid = errors.New("invalid grid")
	// ErrEmptyMessage reports an empty or whitespace-only message.
	ErrEmptyMessage = errors.New("message is empty")
	// ErrNulByte reports a message containing NUL bytes.
	ErrNulByte = errors.New("message contains NUL bytes")
	// ErrMessageTooLong reports a message over MaxMessageLen runes.
	ErrMessageTooLong = errors.New("message exceeds maximum length")
	// ErrTooSmall reports a grid without room for the framed message.
	ErrTooSmall = errors.New("grid is too small for the message")
	// ErrNoMessage reports that no end-of-message marker was found.
	ErrNoMessage = errors.New("no hidden message found")
	// ErrCorrupted reports a recognized frame that failed validation.
	ErrCorrupted = errors.New("embedded data is corrupted")
	// ErrUnknownAlgorithm reports a name with no registered algorithm.
	ErrUnknownAlgorithm = errors.New("unknown algorithm")
	// ErrConfig reports an invalid algorithm or engine parameter.
	ErrConfig = errors.New("invalid configuration")
)

// CapacityError reports how far a message overshoots the carrying
// capacity of a grid. It matches ErrTooSmall under errors.Is.
type CapacityError struct {
	Need int // bits required by the framed message
	Have int // bit slots the grid offers
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("%v: need %d bits, have %d", ErrTooSmall, e.Need, e.Have)
}

func (e *CapacityError) Unwrap() error {
	return ErrTooSmall
}
