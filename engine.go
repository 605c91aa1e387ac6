package stegano

import (
	"context"
	"fmt"
	"strings"
)

// Engine routes encode and decode calls to one algorithm out of a
// named registry. The standard registry is built by NewEngine:
//
//	lsb           sequential LSB over every sample
//	dct           LSB on every 16th sample from offset 2
//	dwt           LSB on every 32nd sample from offset 1
//	adaptive_lsb  LSB restricted to edge samples
//	block_dct     coefficient signs of 8x8 transform blocks
//
// The current selection is plain mutable state. Share an Engine
// across goroutines only with external locking around the
// select-and-use sequence, or give each goroutine its own instance.
// The registered algorithms themselves are safe for concurrent use.
type Engine struct {
	framing   Framing
	threshold float64
	quality   float64
	selection string

	algorithms map[string]Algorithm
	names      []string
	current    string
}

// NewEngine builds an engine with the standard registry and selects
// the configured algorithm, "lsb" unless WithAlgorithm says
// otherwise.
func NewEngine(opts ...Option) (*Engine, error) {
	e := &Engine{
		threshold:  DefaultEdgeThreshold,
		quality:    DefaultQuality,
		selection:  "lsb",
		algorithms: make(map[string]Algorithm),
	}
	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, err
		}
	}

	e.Register("lsb", &LSB{Framing: e.framing})
	dct := NewStrideDCT()
	dct.Framing = e.framing
	e.Register("dct", dct)
	dwt := NewStrideDWT()
	dwt.Framing = e.framing
	e.Register("dwt", dwt)
	e.Register("adaptive_lsb", &Adaptive{Threshold: e.threshold, Framing: e.framing})
	e.Register("block_dct", &BlockDCT{Quality: e.quality, Framing: e.framing})

	if err := e.Select(e.selection); err != nil {
		return nil, err
	}
	return e, nil
}

// Register adds alg under name, replacing any existing entry.
func (e *Engine) Register(name string, alg Algorithm) {
	if _, ok := e.algorithms[name]; !ok {
		e.names = append(e.names, name)
	}
	e.algorithms[name] = alg
}

// Select makes name the target of subsequent dispatch calls.
func (e *Engine) Select(name string) error {
	if _, ok := e.algorithms[name]; !ok {
		return fmt.Errorf("%w: %q, available: %s", ErrUnknownAlgorithm, name, strings.Join(e.Names(), ", "))
	}
	e.current = name
	return nil
}

// Selected returns the name of the current algorithm.
func (e *Engine) Selected() string {
	return e.current
}

// Names lists the registered algorithm names in registration order.
func (e *Engine) Names() []string {
	return append([]string(nil), e.names...)
}

// Describe reports every registered algorithm in registration order.
// The Name field always carries the registry name.
func (e *Engine) Describe() []AlgorithmInfo {
	infos := make([]AlgorithmInfo, 0, len(e.names))
	for _, name := range e.names {
		var info AlgorithmInfo
		if d, ok := e.algorithms[name].(Describer); ok {
			info = d.Describe()
		}
		info.Name = name
		infos = append(infos, info)
	}
	return infos
}

func (e *Engine) algorithm() (Algorithm, error) {
	alg, ok := e.algorithms[e.current]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, e.current)
	}
	return alg, nil
}

// Encode hides message in a copy of g using the current algorithm.
func (e *Engine) Encode(ctx context.Context, g *Grid, message string) (*Grid, error) {
	alg, err := e.algorithm()
	if err != nil {
		return nil, err
	}
	return alg.Encode(ctx, g, message)
}

// Decode recovers a message from g using the current algorithm.
func (e *Engine) Decode(ctx context.Context, g *Grid) (string, error) {
	alg, err := e.algorithm()
	if err != nil {
		return "", err
	}
	return alg.Decode(ctx, g)
}

// CanFit reports whether message fits in g under the current
// algorithm.
func (e *Engine) CanFit(g *Grid, message string) bool {
	alg, err := e.algorithm()
	if err != nil {
		return false
	}
	return alg.CanFit(g, message)
}

// Capacity returns the maximum message length in bytes for g under
// the current algorithm.
func (e *Engine) Capacity(g *Grid) int {
	alg, err := e.algorithm()
	if err != nil {
		return 0
	}
	return alg.Capacity(g)
}
