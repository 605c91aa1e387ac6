package stegano

import (
	"context"
	"fmt"

	"github.com/pixelveil/stegano/internal/frame"
)

// Algorithm is the capability set shared by every embedding scheme.
// Implementations are stateless beyond their construction parameters
// and safe for concurrent use on independent grids.
type Algorithm interface {
	// Encode hides message in a copy of g and returns the copy. The
	// input grid is never mutated, even on failure.
	Encode(ctx context.Context, g *Grid, message string) (*Grid, error)
	// Decode recovers a previously embedded message from g.
	Decode(ctx context.Context, g *Grid) (string, error)
	// CanFit reports whether message fits in g.
	CanFit(g *Grid, message string) bool
	// Capacity returns the maximum embeddable message length in
	// bytes. Multi-byte characters consume multiple bytes.
	Capacity(g *Grid) int
}

// AlgorithmInfo describes a registered algorithm.
type AlgorithmInfo struct {
	Name     string
	Kind     string
	Summary  string
	Capacity string
}

// Describer is implemented by algorithms that describe themselves for
// Engine.Describe. Algorithms without it get a minimal record.
type Describer interface {
	Describe() AlgorithmInfo
}

// Framing selects the wire protocol that marks where an embedded
// message ends. The delimiter protocol is the compatibility default;
// the alternatives trade it for an explicit length header.
type Framing int

const (
	// FramingDelimiter terminates the message with the algorithm's
	// delimiter string and scans for it on extraction.
	FramingDelimiter Framing = iota
	// FramingPrefix leads with a length and checksum header.
	FramingPrefix
	// FramingRobust is FramingPrefix plus Golay error correction
	// with a deterministic bit shuffle.
	FramingRobust
)

func (f Framing) valid() bool {
	switch f {
	case FramingDelimiter, FramingPrefix, FramingRobust:
		return true
	}
	return false
}

// framer binds the framing choice to an algorithm's delimiter.
func (f Framing) framer(delimiter string) frame.Framer {
	switch f {
	case FramingPrefix:
		return frame.Prefix{}
	case FramingRobust:
		return frame.Robust{}
	default:
		return frame.Delimiter{Suffix: []byte(delimiter)}
	}
}

func setLSB(v uint8, bit bool) uint8 {
	if bit {
		return v | 1
	}
	return v &^ 1
}

// finishScan turns scanner state into the decode result: an absent
// frame is ErrNoMessage, a recognized but invalid one ErrCorrupted.
func finishScan(sc frame.Scanner, done bool) (string, error) {
	if !done {
		return "", ErrNoMessage
	}
	msg, err := sc.Message()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrCorrupted, err)
	}
	return string(msg), nil
}
