package stegano

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEngineDefaults(t *testing.T) {
	e, err := NewEngine()
	require.NoError(t, err)

	assert.Equal(t, []string{"lsb", "dct", "dwt", "adaptive_lsb", "block_dct"}, e.Names())
	assert.Equal(t, "lsb", e.Selected())
}

func TestEngineSelect(t *testing.T) {
	e, err := NewEngine()
	require.NoError(t, err)

	require.NoError(t, e.Select("dwt"))
	assert.Equal(t, "dwt", e.Selected())

	// Dispatch follows the selection.
	g := NewGrid(40, 40, 4)
	assert.Equal(t, NewStrideDWT().Capacity(g), e.Capacity(g))

	err = e.Select("nope")
	require.ErrorIs(t, err, ErrUnknownAlgorithm)
	assert.Contains(t, err.Error(), "adaptive_lsb", "error should list the available names")
	assert.Equal(t, "dwt", e.Selected(), "failed select should not change the selection")
}

func TestEngineRegister(t *testing.T) {
	e, err := NewEngine()
	require.NoError(t, err)

	// Overwriting keeps the name in place.
	e.Register("lsb", &LSB{Framing: FramingPrefix})
	assert.Len(t, e.Names(), 5)

	e.Register("thin", &Stride{Name: "thin", Step: 64})
	require.NoError(t, e.Select("thin"))
	assert.Equal(t, []string{"lsb", "dct", "dwt", "adaptive_lsb", "block_dct", "thin"}, e.Names())
}

func TestEngineDispatch(t *testing.T) {
	ctx := context.Background()
	test := []struct {
		name    string
		grid    func() *Grid
		opts    []Option
		message string
	}{
		{"lsb", func() *Grid { return noiseGrid(50, 50, 3, 30, 61) }, nil, "dispatch lsb"},
		{"dct", func() *Grid { return noiseGrid(60, 60, 4, 30, 67) }, nil, "dispatch dct"},
		{"dwt", func() *Grid { return noiseGrid(60, 60, 4, 30, 71) }, nil, "dispatch dwt"},
		{"adaptive_lsb", func() *Grid { return stripeGrid(32, 32, 3, 4) }, nil, "dispatch edges"},
		{"block_dct", func() *Grid { return flatGrid(64, 64, 3, 128) }, []Option{WithQuality(1.0)}, "dispatch blocks"},
	}
	for _, tt := range test {
		t.Run(tt.name, func(t *testing.T) {
			e, err := NewEngine(append(tt.opts, WithAlgorithm(tt.name))...)
			require.NoError(t, err)
			assert.Equal(t, tt.name, e.Selected())

			g := tt.grid()
			require.True(t, e.CanFit(g, tt.message))

			out, err := e.Encode(ctx, g, tt.message)
			require.NoError(t, err)
			got, err := e.Decode(ctx, out)
			require.NoError(t, err)
			assert.Equal(t, tt.message, got)
		})
	}
}

func TestEngineOptions(t *testing.T) {
	t.Run("unknown algorithm", func(t *testing.T) {
		_, err := NewEngine(WithAlgorithm("nope"))
		assert.ErrorIs(t, err, ErrUnknownAlgorithm)
	})

	t.Run("framing applies to the registry", func(t *testing.T) {
		ctx := context.Background()
		e, err := NewEngine(WithFraming(FramingPrefix))
		require.NoError(t, err)

		g := noiseGrid(40, 40, 3, 30, 73)
		out, err := e.Encode(ctx, g, "prefixed")
		require.NoError(t, err)

		// A delimiter-framed engine cannot read it.
		plain, err := NewEngine()
		require.NoError(t, err)
		_, err = plain.Decode(ctx, out)
		assert.ErrorIs(t, err, ErrNoMessage)

		got, err := e.Decode(ctx, out)
		require.NoError(t, err)
		assert.Equal(t, "prefixed", got)
	})

	t.Run("invalid options", func(t *testing.T) {
		test := []struct {
			name string
			opt  Option
		}{
			{"framing", WithFraming(Framing(99))},
			{"edge threshold", WithEdgeThreshold(0)},
			{"quality zero", WithQuality(0)},
			{"quality high", WithQuality(1.5)},
		}
		for _, tt := range test {
			t.Run(tt.name, func(t *testing.T) {
				_, err := NewEngine(tt.opt)
				assert.ErrorIs(t, err, ErrConfig)
			})
		}
	})

	t.Run("edge threshold reaches the adaptive codec", func(t *testing.T) {
		g := stripeGrid(32, 32, 3, 4)

		e, err := NewEngine(WithAlgorithm("adaptive_lsb"), WithEdgeThreshold(2000))
		require.NoError(t, err)
		assert.Equal(t, 0, e.Capacity(g))
	})
}

func TestEngineDescribe(t *testing.T) {
	e, err := NewEngine()
	require.NoError(t, err)

	infos := e.Describe()
	require.Len(t, infos, 5)
	assert.Equal(t, "lsb", infos[0].Name)
	assert.Equal(t, "frequency", infos[4].Kind)

	// Registry names win over self-descriptions, and algorithms
	// without one still show up.
	e.Register("renamed", NewLSB())
	infos = e.Describe()
	assert.Equal(t, "renamed", infos[5].Name)
}

func TestPackageEncodeDecode(t *testing.T) {
	ctx := context.Background()
	g := noiseGrid(50, 50, 3, 30, 79)

	out, err := Encode(ctx, g, "one call")
	require.NoError(t, err)
	got, err := Decode(ctx, out)
	require.NoError(t, err)
	assert.Equal(t, "one call", got)

	_, err = Encode(ctx, g, "x", WithAlgorithm("nope"))
	assert.ErrorIs(t, err, ErrUnknownAlgorithm)
}
