package stegano

import "fmt"

type Option func(*Engine) error

// WithAlgorithm selects the named algorithm at construction instead
// of the default "lsb". NewEngine fails with ErrUnknownAlgorithm if
// the name is not in the standard registry.
func WithAlgorithm(name string) Option {
	return func(e *Engine) error {
		e.selection = name
		return nil
	}
}

// WithFraming applies the given wire protocol to every algorithm in
// the standard registry. Grids encoded under one protocol do not
// decode under another.
func WithFraming(f Framing) Option {
	return func(e *Engine) error {
		if !f.valid() {
			return fmt.Errorf("%w: unknown framing %d", ErrConfig, int(f))
		}
		e.framing = f
		return nil
	}
}

// WithEdgeThreshold sets the gradient magnitude above which the
// adaptive algorithm treats a position as an edge. Lower thresholds
// raise capacity and visibility together.
func WithEdgeThreshold(t float64) Option {
	return func(e *Engine) error {
		if t <= 0 {
			return fmt.Errorf("%w: edge threshold %v, want positive", ErrConfig, t)
		}
		e.threshold = t
		return nil
	}
}

// WithQuality sets the embedding strength factor of the block
// transform algorithm, in (0, 1].
func WithQuality(q float64) Option {
	return func(e *Engine) error {
		if q <= 0 || q > 1 {
			return fmt.Errorf("%w: quality %v, want in (0, 1]", ErrConfig, q)
		}
		e.quality = q
		return nil
	}
}
