package frame

import (
	"encoding/binary"
	"hash/adler32"
	"math/rand"

	"github.com/yyyoichi/bitstream-go"
	"github.com/yyyoichi/golay"
)

// DefaultShuffleSeed drives the deterministic bit permutation applied
// to the Golay-coded body so that localized carrier damage spreads
// across many codewords.
const DefaultShuffleSeed int64 = 1234567890

// Robust frames the message behind the same length/checksum header as
// Prefix, then protects both parts with Golay(24,12) forward error
// correction. The header is coded without a shuffle so extraction can
// derive the body length before the permutation is known; the body is
// coded with the seeded shuffle.
type Robust struct {
	Seed int64
}

func (r Robust) seed() int64 {
	if r.Seed == 0 {
		return DefaultShuffleSeed
	}
	return r.Seed
}

func (r Robust) Frame(msg []byte) []bool {
	var hdr [8]byte
	binary.BigEndian.PutUint32(hdr[0:4], uint32(len(msg)))
	binary.BigEndian.PutUint32(hdr[4:8], adler32.Checksum(msg))
	out := golayEncode(hdr[:], 0)
	return append(out, golayEncode(msg, r.seed())...)
}

func (r Robust) NewScanner() Scanner {
	return &robustScan{seed: r.seed(), hdrLen: golay.EncodedBits(64)}
}

func (r Robust) BitLen(n int) int {
	return golay.EncodedBits(64) + golay.EncodedBits(n*8)
}

func (r Robust) MaxLen(slots int) int {
	body := max(0, slots-golay.EncodedBits(64))
	return body / 24 * 12 / 8
}

type robustScan struct {
	seed    int64
	hdrLen  int
	hdr     []bool
	body    []bool
	bodyLen int
	msgLen  int
	sum     uint32
	done    bool
	dead    bool
}

func (s *robustScan) Feed(bit bool) bool {
	if s.done || s.dead {
		return s.done
	}
	if len(s.hdr) < s.hdrLen {
		s.hdr = append(s.hdr, bit)
		if len(s.hdr) == s.hdrLen {
			s.parseHeader()
		}
		return s.done
	}
	s.body = append(s.body, bit)
	s.done = len(s.body) == s.bodyLen
	return s.done
}

func (s *robustScan) parseHeader() {
	hdr := golayDecode(s.hdr, 8, 0)
	n := binary.BigEndian.Uint32(hdr[0:4])
	s.sum = binary.BigEndian.Uint32(hdr[4:8])
	// Frames are never empty, so a zero length is not a frame.
	if n == 0 || n > maxFrameBytes {
		s.dead = true
		return
	}
	s.msgLen = int(n)
	s.bodyLen = golay.EncodedBits(s.msgLen * 8)
}

func (s *robustScan) Message() ([]byte, error) {
	if !s.done {
		return nil, ErrNoFrame
	}
	msg := golayDecode(s.body, s.msgLen, s.seed)
	if adler32.Checksum(msg) != s.sum {
		return nil, ErrChecksum
	}
	return msg, nil
}

func (s *robustScan) Partial() []byte { return nil }

// golayEncode packs data, applies Golay(24,12) coding and, for a
// non-zero seed, permutes the coded bits.
func golayEncode(data []byte, seed int64) []bool {
	w := bitstream.NewBitWriter[uint64](0, 0)
	for _, b := range data {
		w.Write8(0, 8, b)
	}
	var encoded []uint64
	enc := golay.NewEncoder(&encoded)
	_ = enc.Encode(w.Data(), w.Bits())
	n := enc.Bits()

	r := bitstream.NewBitReader(encoded, 0, 0)
	out := make([]bool, n)
	if seed == 0 {
		for i := range out {
			out[i], _ = r.ReadBitAt(i)
		}
		return out
	}
	index := generatePermutation(n, seed)
	for i := range out {
		out[i], _ = r.ReadBitAt(index[i])
	}
	return out
}

// golayDecode reverses golayEncode, correcting up to three bit errors
// per codeword, and returns the first size bytes of the decoded data.
func golayDecode(coded []bool, size int, seed int64) []byte {
	w := bitstream.NewBitWriter[uint64](0, 0)
	if seed == 0 {
		for _, bit := range coded {
			w.WriteBool(bit)
		}
	} else {
		index := generatePermutation(len(coded), seed)
		for i, bit := range coded {
			w.WriteBitAt(index[i], bit)
		}
	}
	var decoded []byte
	_ = golay.DecodeBinay(w.Data(), &decoded)
	if len(decoded) < size {
		return decoded
	}
	return decoded[:size]
}

func generatePermutation(length int, seed int64) []int {
	index := make([]int, length)
	for i := range index {
		index[i] = i
	}
	rd := rand.New(rand.NewSource(seed))
	rd.Shuffle(length, func(i, j int) {
		index[i], index[j] = index[j], index[i]
	})
	return index
}
