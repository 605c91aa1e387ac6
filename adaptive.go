package stegano

import (
	"context"

	"github.com/pixelveil/stegano/internal/edge"
)

// adaptiveDelimiter is the end-of-message marker of the adaptive
// codec's wire format, 144 bits.
const adaptiveDelimiter = "###ADAPTIVE_END###"

// DefaultEdgeThreshold is the gradient magnitude above which a
// position counts as an edge, on an 8-bit luminance scale.
const DefaultEdgeThreshold = 30.0

// Adaptive hides the message only at samples whose spatial position
// lies on a luminance edge, where single-bit changes are least
// visible. The edge mask is recomputed from sample values on decode,
// so both sides see the same coordinate list as long as embedding
// does not push a gradient across the threshold. Messages sized near
// a threshold crossing can therefore be unrecoverable; callers who
// need a guarantee should measure Capacity on the encoded grid too.
type Adaptive struct {
	// Threshold overrides DefaultEdgeThreshold when positive.
	Threshold float64
	// Framing selects the wire protocol. The zero value is the
	// delimiter protocol.
	Framing Framing
}

// NewAdaptive returns an edge-adaptive codec with the default
// threshold and the delimiter protocol.
func NewAdaptive() *Adaptive {
	return &Adaptive{}
}

func (a *Adaptive) threshold() float64 {
	if a.Threshold > 0 {
		return a.Threshold
	}
	return DefaultEdgeThreshold
}

// positions lists the embeddable sample indices of g, channel-major.
func (a *Adaptive) positions(g *Grid) []int {
	gray := edge.Gray(g.Pix, g.Height, g.Width, g.Channels)
	mask := edge.Mask(gray, g.Height, g.Width, a.threshold())
	return edge.Positions(mask, g.Height, g.Width, g.Channels)
}

func (a *Adaptive) Encode(ctx context.Context, g *Grid, message string) (*Grid, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}
	if err := ValidateMessage(message); err != nil {
		return nil, err
	}
	pos := a.positions(g)
	f := a.Framing.framer(adaptiveDelimiter)
	if len(message) > f.MaxLen(len(pos)) {
		return nil, &CapacityError{Need: f.BitLen(len(message)), Have: len(pos)}
	}

	out := g.Clone()
	for i, bit := range f.Frame([]byte(message)) {
		out.Pix[pos[i]] = setLSB(out.Pix[pos[i]], bit)
	}
	return out, nil
}

func (a *Adaptive) Decode(ctx context.Context, g *Grid) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := g.Validate(); err != nil {
		return "", err
	}
	sc := a.Framing.framer(adaptiveDelimiter).NewScanner()
	done := false
	for _, p := range a.positions(g) {
		if sc.Feed(g.Pix[p]&1 == 1) {
			done = true
			break
		}
	}
	return finishScan(sc, done)
}

func (a *Adaptive) CanFit(g *Grid, message string) bool {
	if g.Validate() != nil || ValidateMessage(message) != nil {
		return false
	}
	return len(message) <= a.Capacity(g)
}

func (a *Adaptive) Capacity(g *Grid) int {
	if g.Validate() != nil {
		return 0
	}
	return a.Framing.framer(adaptiveDelimiter).MaxLen(len(a.positions(g)))
}

func (a *Adaptive) Describe() AlgorithmInfo {
	return AlgorithmInfo{
		Name:     "adaptive_lsb",
		Kind:     "spatial",
		Summary:  "least-significant-bit substitution restricted to high-gradient samples",
		Capacity: "(edge samples - 144) / 8 bytes under the delimiter protocol",
	}
}
