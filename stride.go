package stegano

import (
	"context"
	"fmt"
)

// strideDelimiter is the short end-of-message marker shared by the
// fixed-stride codecs, 72 bits.
const strideDelimiter = "###END###"

// Stride hides the message in the least significant bit of every
// Step-th sample, starting at Offset. Capacity shrinks by the stride
// factor, but so does the fraction of samples touched. The two
// conventional parameterizations are NewStrideDCT and NewStrideDWT.
type Stride struct {
	// Name labels the parameterization in Describe output.
	Name string
	// Step is the distance between touched samples, at least 1.
	Step int
	// Offset is the index of the first touched sample, in [0, Step).
	Offset int
	// Framing selects the wire protocol. The zero value is the
	// delimiter protocol.
	Framing Framing
}

// NewStrideDCT returns the stride codec that touches the blue channel
// of every 4th pixel of a 4-channel grid: offset 2, step 16.
func NewStrideDCT() *Stride {
	return &Stride{Name: "dct", Step: 16, Offset: 2}
}

// NewStrideDWT returns the stride codec that touches the green channel
// of every 8th pixel of a 4-channel grid: offset 1, step 32.
func NewStrideDWT() *Stride {
	return &Stride{Name: "dwt", Step: 32, Offset: 1}
}

func (s *Stride) check() error {
	if s.Step < 1 {
		return fmt.Errorf("%w: stride step %d, want at least 1", ErrConfig, s.Step)
	}
	if s.Offset < 0 || s.Offset >= s.Step {
		return fmt.Errorf("%w: stride offset %d, want in [0, %d)", ErrConfig, s.Offset, s.Step)
	}
	return nil
}

// slots is the conservative touched-sample count floor(total/Step).
// The walk from Offset may reach one more sample, never fewer, so an
// encode sized by slots always fits.
func (s *Stride) slots(g *Grid) int {
	return g.Len() / s.Step
}

func (s *Stride) Encode(ctx context.Context, g *Grid, message string) (*Grid, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := s.check(); err != nil {
		return nil, err
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}
	if err := ValidateMessage(message); err != nil {
		return nil, err
	}
	f := s.Framing.framer(strideDelimiter)
	if len(message) > f.MaxLen(s.slots(g)) {
		return nil, &CapacityError{Need: f.BitLen(len(message)), Have: s.slots(g)}
	}

	out := g.Clone()
	i := s.Offset
	for _, bit := range f.Frame([]byte(message)) {
		out.Pix[i] = setLSB(out.Pix[i], bit)
		i += s.Step
	}
	return out, nil
}

func (s *Stride) Decode(ctx context.Context, g *Grid) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := s.check(); err != nil {
		return "", err
	}
	if err := g.Validate(); err != nil {
		return "", err
	}
	sc := s.Framing.framer(strideDelimiter).NewScanner()
	done := false
	for i := s.Offset; i < g.Len(); i += s.Step {
		if sc.Feed(g.Pix[i]&1 == 1) {
			done = true
			break
		}
	}
	return finishScan(sc, done)
}

func (s *Stride) CanFit(g *Grid, message string) bool {
	if g.Validate() != nil || ValidateMessage(message) != nil {
		return false
	}
	return len(message) <= s.Capacity(g)
}

func (s *Stride) Capacity(g *Grid) int {
	if s.check() != nil || g.Validate() != nil {
		return 0
	}
	return s.Framing.framer(strideDelimiter).MaxLen(s.slots(g))
}

func (s *Stride) Describe() AlgorithmInfo {
	name := s.Name
	if name == "" {
		name = "stride"
	}
	return AlgorithmInfo{
		Name:     name,
		Kind:     "spatial",
		Summary:  fmt.Sprintf("least-significant-bit substitution on every %d-th sample from offset %d", s.Step, s.Offset),
		Capacity: fmt.Sprintf("(samples/%d - 72) / 8 bytes under the delimiter protocol", s.Step),
	}
}
