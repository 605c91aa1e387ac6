package stegano

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// MaxMessageLen caps message length at the engine boundary, in runes.
const MaxMessageLen = 10000

// ValidateMessage rejects messages that cannot travel the embedding
// channel: empty or whitespace-only text, text with NUL bytes, and
// text over MaxMessageLen runes.
func ValidateMessage(message string) error {
	if strings.TrimSpace(message) == "" {
		return ErrEmptyMessage
	}
	if strings.ContainsRune(message, '\x00') {
		return ErrNulByte
	}
	if n := utf8.RuneCountInString(message); n > MaxMessageLen {
		return fmt.Errorf("%w: %d runes, maximum %d", ErrMessageTooLong, n, MaxMessageLen)
	}
	return nil
}
