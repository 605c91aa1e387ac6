package frame

import (
	"encoding/binary"
	"hash/adler32"

	"github.com/pixelveil/stegano/internal/bits"
)

// Prefix frames the message behind a fixed 8-byte header: big-endian
// uint32 body length followed by the big-endian Adler-32 checksum of
// the body. Extraction knows exactly how many bits to read and can
// verify the body arrived intact.
type Prefix struct{}

func (Prefix) Frame(msg []byte) []bool {
	buf := make([]byte, 8+len(msg))
	binary.BigEndian.PutUint32(buf[0:4], uint32(len(msg)))
	binary.BigEndian.PutUint32(buf[4:8], adler32.Checksum(msg))
	copy(buf[8:], msg)
	return bits.FromBytes(buf)
}

func (Prefix) NewScanner() Scanner {
	return &prefixScan{msgLen: -1}
}

func (Prefix) BitLen(n int) int {
	return (n + 8) * 8
}

func (Prefix) MaxLen(slots int) int {
	return max(0, slots/8-8)
}

type prefixScan struct {
	buf    []byte
	cur    byte
	nbits  int
	msgLen int
	sum    uint32
	done   bool
	dead   bool
}

func (s *prefixScan) Feed(bit bool) bool {
	if s.done || s.dead {
		return s.done
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
	if s.msgLen < 0 {
		if len(s.buf) < 8 {
			return false
		}
		n := binary.BigEndian.Uint32(s.buf[0:4])
		s.sum = binary.BigEndian.Uint32(s.buf[4:8])
		// Frames are never empty, so a zero length is not a frame.
		if n == 0 || n > maxFrameBytes {
			s.dead = true
			return false
		}
		s.msgLen = int(n)
	}
	s.done = len(s.buf) == 8+s.msgLen
	return s.done
}

func (s *prefixScan) Message() ([]byte, error) {
	if !s.done {
		return nil, ErrNoFrame
	}
	body := s.buf[8:]
	if adler32.Checksum(body) != s.sum {
		return nil, ErrChecksum
	}
	return body, nil
}

func (s *prefixScan) Partial() []byte {
	if len(s.buf) <= 8 {
		return nil
	}
	return s.buf[8:]
}
