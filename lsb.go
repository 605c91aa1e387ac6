package stegano

import "context"

// lsbDelimiter is the end-of-message marker of the sequential LSB
// wire format, 160 bits.
const lsbDelimiter = "###END_OF_MESSAGE###"

// LSB hides the message in the least significant bit of every sample,
// walking the grid in flattening order. It offers the highest capacity
// of the built-in algorithms: one bit per sample.
type LSB struct {
	// Framing selects the wire protocol. The zero value is the
	// delimiter protocol.
	Framing Framing
}

// NewLSB returns a sequential LSB codec using the delimiter protocol.
func NewLSB() *LSB {
	return &LSB{}
}

func (l *LSB) Encode(ctx context.Context, g *Grid, message string) (*Grid, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}
	if err := ValidateMessage(message); err != nil {
		return nil, err
	}
	f := l.Framing.framer(lsbDelimiter)
	if len(message) > f.MaxLen(g.Len()) {
		return nil, &CapacityError{Need: f.BitLen(len(message)), Have: g.Len()}
	}

	out := g.Clone()
	for i, bit := range f.Frame([]byte(message)) {
		out.Pix[i] = setLSB(out.Pix[i], bit)
	}
	return out, nil
}

func (l *LSB) Decode(ctx context.Context, g *Grid) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := g.Validate(); err != nil {
		return "", err
	}
	sc := l.Framing.framer(lsbDelimiter).NewScanner()
	done := false
	for _, v := range g.Pix {
		if sc.Feed(v&1 == 1) {
			done = true
			break
		}
	}
	return finishScan(sc, done)
}

func (l *LSB) CanFit(g *Grid, message string) bool {
	if g.Validate() != nil || ValidateMessage(message) != nil {
		return false
	}
	return len(message) <= l.Capacity(g)
}

func (l *LSB) Capacity(g *Grid) int {
	if g.Validate() != nil {
		return 0
	}
	return l.Framing.framer(lsbDelimiter).MaxLen(g.Len())
}

func (l *LSB) Describe() AlgorithmInfo {
	return AlgorithmInfo{
		Name:     "lsb",
		Kind:     "spatial",
		Summary:  "sequential least-significant-bit substitution over every sample",
		Capacity: "(samples - 160) / 8 bytes under the delimiter protocol",
	}
}
