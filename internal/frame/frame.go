// Package frame converts messages to and from the bit sequences that
// get embedded into carrier samples. Every framer pairs a forward
// transform with an incremental scanner so extraction can stop as soon
// as a complete frame has been recognized.
package frame

import (
	"bytes"
	"errors"

	"github.com/pixelveil/stegano/internal/bits"
)

var (
	ErrNoFrame  = errors.New("no complete frame in bit stream")
	ErrChecksum = errors.New("frame checksum mismatch")
)

// frames larger than this are treated as header garbage
const maxFrameBytes = 1 << 26

type Framer interface {
	// Frame returns the bit sequence to embed for msg, most
	// significant bit first within each byte.
	Frame(msg []byte) []bool
	NewScanner() Scanner
	// BitLen returns the embedded size of an n-byte message.
	BitLen(n int) int
	// MaxLen returns the largest message byte length whose frame
	// fits in the given number of bit slots.
	MaxLen(slots int) int
}

// Scanner consumes recovered bits one at a time. Feed reports true
// once a complete frame has been seen; further bits are ignored.
type Scanner interface {
	Feed(bit bool) bool
	// Message returns the framed payload once Feed reported true.
	Message() ([]byte, error)
	// Partial returns whatever whole bytes accumulated so far, for
	// protocols that tolerate a missing end-of-frame.
	Partial() []byte
}

// Delimiter terminates the message with a fixed byte suffix and
// recognizes it again at any byte boundary of the recovered stream.
type Delimiter struct {
	Suffix []byte
}

func (d Delimiter) Frame(msg []byte) []bool {
	buf := make([]byte, 0, len(msg)+len(d.Suffix))
	buf = append(buf, msg...)
	buf = append(buf, d.Suffix...)
	return bits.FromBytes(buf)
}

func (d Delimiter) NewScanner() Scanner {
	return &delimScan{suffix: d.Suffix}
}

func (d Delimiter) BitLen(n int) int {
	return (n + len(d.Suffix)) * 8
}

func (d Delimiter) MaxLen(slots int) int {
	return max(0, (slots-len(d.Suffix)*8)/8)
}

type delimScan struct {
	suffix []byte
	buf    []byte
	cur    byte
	nbits  int
	done   bool
}

func (s *delimScan) Feed(bit bool) bool {
	if s.done {
		return true
	}
	s.cur <<= 1
	if bit {
		s.cur |= 1
	}
	s.nbits++
	if s.nbits < 8 {
		return false
	}
	s.buf = append(s.buf, s.cur)
	s.cur, s.nbits = 0, 0
	if n := len(s.buf) - len(s.suffix); n >= 0 && bytes.Equal(s.buf[n:], s.suffix) {
		s.done = true
	}
	return s.done
}

func (s *delimScan) Message() ([]byte, error) {
	if !s.done {
		return nil, ErrNoFrame
	}
	return s.buf[:len(s.buf)-len(s.suffix)], nil
}

func (s *delimScan) Partial() []byte {
	return s.buf
}
