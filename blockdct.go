package stegano

import (
	"context"
	"math"

	"github.com/pixelveil/stegano/internal/dct"
)

// dctDelimiter is the end-of-message marker of the frequency codec's
// wire format, 104 bits.
const dctDelimiter = "###DCT_END###"

const (
	blockSize = 8
	// quantizationFactor scales Quality into an embedding strength.
	quantizationFactor = 10.0
)

// DefaultQuality is the embedding strength factor used when
// BlockDCT.Quality is zero.
const DefaultQuality = 0.1

// dctPositions lists the embeddable coefficient positions of an 8x8
// block, row-major: (u, v) with 1 <= u, v <= 5 and u+v < 8. The DC
// term and the high-frequency corner are excluded.
var dctPositions = func() [][2]int {
	var pos [][2]int
	for u := 1; u <= 5; u++ {
		for v := 1; v <= 5; v++ {
			if u+v < 8 {
				pos = append(pos, [2]int{u, v})
			}
		}
	}
	return pos
}()

// transforms caches the block transform across codec instances.
var transforms = dct.NewCache()

// BlockDCT hides the message in the signs of mid-frequency transform
// coefficients of non-overlapping 8x8 blocks, channel by channel. A
// bit forces the coefficient positive (1) or negative (0) with a
// magnitude of at least the embedding strength, so the sign survives
// the round trip through 8-bit samples. Blocks beyond the last
// message bit are left untouched. Partial trailing blocks narrower
// than 8 samples are never used.
type BlockDCT struct {
	// Quality scales the embedding strength and is clamped to
	// [0.01, 1.0]. Larger values distort more and survive more.
	// The zero value selects DefaultQuality.
	Quality float64
	// Framing selects the wire protocol. The zero value is the
	// delimiter protocol.
	Framing Framing
}

// NewBlockDCT returns a frequency-domain codec with the default
// embedding strength and the delimiter protocol.
func NewBlockDCT() *BlockDCT {
	return &BlockDCT{}
}

func (b *BlockDCT) strength() float64 {
	q := b.Quality
	if q == 0 {
		q = DefaultQuality
	}
	return math.Min(1.0, math.Max(0.01, q)) * quantizationFactor
}

// slots is the number of embeddable coefficient positions in g.
func (b *BlockDCT) slots(g *Grid) int {
	return (g.Height / blockSize) * (g.Width / blockSize) * g.Channels * len(dctPositions)
}

func loadBlock(g *Grid, by, bx, ch int, buf []float64) {
	for y := 0; y < blockSize; y++ {
		for x := 0; x < blockSize; x++ {
			buf[y*blockSize+x] = float64(g.Pix[((by+y)*g.Width+bx+x)*g.Channels+ch])
		}
	}
}

func storeBlock(g *Grid, by, bx, ch int, buf []float64) {
	for y := 0; y < blockSize; y++ {
		for x := 0; x < blockSize; x++ {
			v := math.Round(buf[y*blockSize+x])
			if v < 0 {
				v = 0
			} else if v > 255 {
				v = 255
			}
			g.Pix[((by+y)*g.Width+bx+x)*g.Channels+ch] = uint8(v)
		}
	}
}

func (b *BlockDCT) Encode(ctx context.Context, g *Grid, message string) (*Grid, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}
	if err := ValidateMessage(message); err != nil {
		return nil, err
	}
	f := b.Framing.framer(dctDelimiter)
	if len(message) > f.MaxLen(b.slots(g)) {
		return nil, &CapacityError{Need: f.BitLen(len(message)), Have: b.slots(g)}
	}

	bits := f.Frame([]byte(message))
	strength := b.strength()
	t := transforms.Get(blockSize)
	buf := make([]float64, blockSize*blockSize)
	out := g.Clone()
	i := 0
embed:
	for ch := 0; ch < out.Channels; ch++ {
		for by := 0; by+blockSize <= out.Height; by += blockSize {
			for bx := 0; bx+blockSize <= out.Width; bx += blockSize {
				if i >= len(bits) {
					break embed
				}
				loadBlock(out, by, bx, ch, buf)
				coeffs, inverse := t.Exec(buf)
				for _, p := range dctPositions {
					if i >= len(bits) {
						break
					}
					c := &coeffs[p[0]*blockSize+p[1]]
					mag := math.Abs(*c) + strength
					if bits[i] {
						*c = mag
					} else {
						*c = -mag
					}
					i++
				}
				inverse()
				storeBlock(out, by, bx, ch, buf)
			}
		}
	}
	return out, nil
}

// Decode reads coefficient signs until the wire protocol completes.
// Under the delimiter protocol a stream that exhausts every position
// without a match returns the accumulated bytes as-is, since signs
// carry no absence marker.
func (b *BlockDCT) Decode(ctx context.Context, g *Grid) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := g.Validate(); err != nil {
		return "", err
	}
	sc := b.Framing.framer(dctDelimiter).NewScanner()
	t := transforms.Get(blockSize)
	buf := make([]float64, blockSize*blockSize)
	done := false
scan:
	for ch := 0; ch < g.Channels; ch++ {
		for by := 0; by+blockSize <= g.Height; by += blockSize {
			for bx := 0; bx+blockSize <= g.Width; bx += blockSize {
				loadBlock(g, by, bx, ch, buf)
				coeffs, _ := t.Exec(buf)
				for _, p := range dctPositions {
					if sc.Feed(coeffs[p[0]*blockSize+p[1]] > 0) {
						done = true
						break scan
					}
				}
			}
		}
	}
	if !done && b.Framing == FramingDelimiter {
		return string(sc.Partial()), nil
	}
	return finishScan(sc, done)
}

func (b *BlockDCT) CanFit(g *Grid, message string) bool {
	if g.Validate() != nil || ValidateMessage(message) != nil {
		return false
	}
	return len(message) <= b.Capacity(g)
}

func (b *BlockDCT) Capacity(g *Grid) int {
	if g.Validate() != nil {
		return 0
	}
	return b.Framing.framer(dctDelimiter).MaxLen(b.slots(g))
}

func (b *BlockDCT) Describe() AlgorithmInfo {
	return AlgorithmInfo{
		Name:     "block_dct",
		Kind:     "frequency",
		Summary:  "coefficient-sign embedding in mid-frequency positions of 8x8 transform blocks",
		Capacity: "(blocks x 19 - 104) / 8 bytes under the delimiter protocol",
	}
}
