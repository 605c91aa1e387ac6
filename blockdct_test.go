package stegano

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// A uniform grid has zero-valued mid-frequency coefficients, so at
// full quality the written signs sit a magnitude of 10 from zero
// while rounding through 8-bit samples can move a coefficient by at
// most a few units. Round trips on it are exact by construction.
func TestBlockDCTRoundTrip(t *testing.T) {
	ctx := context.Background()
	test := []struct {
		name    string
		message string
	}{
		{"short", "hi"},
		{"ascii", "Hello, World!"},
		{"unicode", "こんにちは"},
		{"long", strings.Repeat("frequency domain ", 12)},
	}
	for _, tt := range test {
		t.Run(tt.name, func(t *testing.T) {
			g := flatGrid(64, 64, 3, 128)
			b := &BlockDCT{Quality: 1.0}
			require.True(t, b.CanFit(g, tt.message))

			out, err := b.Encode(ctx, g, tt.message)
			require.NoError(t, err)
			got, err := b.Decode(ctx, out)
			require.NoError(t, err)
			assert.Equal(t, tt.message, got)
		})
	}
}

func TestBlockDCTCapacity(t *testing.T) {
	// 64x64x3: 8x8 blocks per channel, 192 blocks, 19 coefficients
	// each, 3648 slots, minus 104 delimiter bits, 443 bytes.
	b := NewBlockDCT()
	assert.Equal(t, 443, b.Capacity(NewGrid(64, 64, 3)))

	// Grids below one full block have no slots at all.
	tiny := NewGrid(7, 7, 3)
	assert.Equal(t, 0, b.Capacity(tiny))

	_, err := b.Encode(context.Background(), flatGrid(7, 7, 3, 128), "x")
	require.ErrorIs(t, err, ErrTooSmall)

	var capErr *CapacityError
	require.ErrorAs(t, err, &capErr)
	assert.Equal(t, 0, capErr.Have)
}

func TestBlockDCTLeavesTrailingBlocksUntouched(t *testing.T) {
	ctx := context.Background()
	g := flatGrid(64, 64, 3, 128)
	b := &BlockDCT{Quality: 1.0}

	// "hi" frames to 120 bits and occupies the first 7 blocks of
	// channel 0, the region y < 8, x < 56.
	out, err := b.Encode(ctx, g, "hi")
	require.NoError(t, err)

	changed := 0
	for i := range out.Pix {
		pixel := i / 3
		y, x, ch := pixel/64, pixel%64, i%3
		if ch == 0 && y < 8 && x < 56 {
			if out.Pix[i] != 128 {
				changed++
			}
			continue
		}
		assert.Equal(t, uint8(128), out.Pix[i], "sample %d outside the embedding region", i)
	}
	assert.Positive(t, changed, "embedding should perturb the touched blocks")
}

func TestBlockDCTDecodeCleanGrid(t *testing.T) {
	g := flatGrid(64, 64, 3, 128)

	t.Run("delimiter returns accumulated bytes", func(t *testing.T) {
		// Identical blocks yield the same 19 sign bits over and
		// over, and the delimiter pattern never aligns with a
		// 19-bit cycle, so the scan consumes all 3648 slots.
		got, err := NewBlockDCT().Decode(context.Background(), g)
		require.NoError(t, err)
		assert.Len(t, got, 456)
	})

	t.Run("prefix reports no message", func(t *testing.T) {
		// Sign bits written under the delimiter protocol read back
		// as an absurd length header.
		ctx := context.Background()
		enc, err := (&BlockDCT{Quality: 1.0}).Encode(ctx, g, "\xff\xff\xff\xffdelimited")
		require.NoError(t, err)

		_, err = (&BlockDCT{Framing: FramingPrefix}).Decode(ctx, enc)
		assert.ErrorIs(t, err, ErrNoMessage)
	})
}

func TestBlockDCTQuality(t *testing.T) {
	ctx := context.Background()
	g := flatGrid(64, 64, 3, 128)
	encode := func(q float64) *Grid {
		out, err := (&BlockDCT{Quality: q}).Encode(ctx, g, "clamp")
		require.NoError(t, err)
		return out
	}

	// Out-of-range factors clamp instead of failing, and the zero
	// value selects the default.
	assert.Equal(t, encode(1.0).Pix, encode(5.0).Pix)
	assert.Equal(t, encode(0.01).Pix, encode(-3).Pix)
	assert.Equal(t, encode(DefaultQuality).Pix, encode(0).Pix)
}

func TestBlockDCTFraming(t *testing.T) {
	ctx := context.Background()
	message := "sign carrier"
	for _, f := range []Framing{FramingDelimiter, FramingPrefix, FramingRobust} {
		b := &BlockDCT{Quality: 1.0, Framing: f}
		g := flatGrid(64, 64, 3, 128)

		out, err := b.Encode(ctx, g, message)
		require.NoError(t, err)
		got, err := b.Decode(ctx, out)
		require.NoError(t, err)
		assert.Equal(t, message, got)
	}
}

func TestBlockDCTEncodeDoesNotMutate(t *testing.T) {
	g := flatGrid(64, 64, 3, 128)
	want := g.Clone()

	_, err := (&BlockDCT{Quality: 1.0}).Encode(context.Background(), g, "copy")
	require.NoError(t, err)
	assert.Equal(t, want.Pix, g.Pix)
}
