package bench_test

import (
	"strings"
	"testing"

	"github.com/pixelveil/stegano"
)

type codecCase struct {
	name string
	opts []stegano.Option
	grid *stegano.Grid
}

// codecCases pairs every algorithm with a carrier it can fill: smooth
// gradients for the sequential codecs, hard stripes for the edge
// detector, a flat field for the frequency codec.
func codecCases() []codecCase {
	return []codecCase{
		{name: "lsb", opts: []stegano.Option{
			stegano.WithAlgorithm("lsb"),
		}, grid: gradientGrid(1920, 1080)},
		{name: "dct_stride16", opts: []stegano.Option{
			stegano.WithAlgorithm("dct"),
		}, grid: gradientGrid(1920, 1080)},
		{name: "dwt_stride32", opts: []stegano.Option{
			stegano.WithAlgorithm("dwt"),
		}, grid: gradientGrid(1920, 1080)},
		{name: "adaptive_lsb", opts: []stegano.Option{
			stegano.WithAlgorithm("adaptive_lsb"),
		}, grid: stripedGrid(1920, 1080, 16)},
		{name: "block_dct", opts: []stegano.Option{
			stegano.WithAlgorithm("block_dct"),
			stegano.WithQuality(1.0),
		}, grid: flatGrid(1920, 1080)},
	}
}

// BenchmarkEncode_FHD runs a table-driven set of encode benchmarks on FHD carriers
func BenchmarkEncode_FHD(b *testing.B) {
	message := createTestMessage()
	ctx := b.Context()

	for _, tt := range codecCases() {
		b.Run(tt.name, func(b *testing.B) {
			e, err := stegano.NewEngine(tt.opts...)
			if err != nil {
				b.Fatalf("Failed to create engine (%s): %v", tt.name, err)
			}
			for b.Loop() {
				encoded, err := e.Encode(ctx, tt.grid, message)
				if err != nil {
					b.Fatalf("Failed to encode (%s): %v", tt.name, err)
				}
				_ = encoded
			}
		})
	}
}

// BenchmarkDecode_FHD decodes carriers prepared once per case
func BenchmarkDecode_FHD(b *testing.B) {
	message := createTestMessage()
	ctx := b.Context()

	for _, tt := range codecCases() {
		b.Run(tt.name, func(b *testing.B) {
			e, err := stegano.NewEngine(tt.opts...)
			if err != nil {
				b.Fatalf("Failed to create engine (%s): %v", tt.name, err)
			}
			encoded, err := e.Encode(ctx, tt.grid, message)
			if err != nil {
				b.Fatalf("Failed to encode (%s): %v", tt.name, err)
			}
			for b.Loop() {
				decoded, err := e.Decode(ctx, encoded)
				if err != nil {
					b.Fatalf("Failed to decode (%s): %v", tt.name, err)
				}
				_ = decoded
			}
		})
	}
}

// gradientGrid creates a widthxheight RGB carrier with a gradient pattern
func gradientGrid(width, height int) *stegano.Grid {
	g := stegano.NewGrid(height, width, 3)
	for y := range height {
		for x := range width {
			g.Set(x, y, 0, uint8((x*255)/width))
			g.Set(x, y, 1, uint8((y*255)/height))
			g.Set(x, y, 2, uint8(((x+y)*255)/(width+height)))
		}
	}
	return g
}

// stripedGrid creates a carrier of vertical 0/255 stripes with the given period
func stripedGrid(width, height, period int) *stegano.Grid {
	g := stegano.NewGrid(height, width, 3)
	for y := range height {
		for x := range width {
			if (x/period)%2 == 1 {
				for k := range 3 {
					g.Set(x, y, k, 255)
				}
			}
		}
	}
	return g
}

// flatGrid creates a mid-gray carrier
func flatGrid(width, height int) *stegano.Grid {
	g := stegano.NewGrid(height, width, 3)
	for i := range g.Pix {
		g.Pix[i] = 128
	}
	return g
}

// createTestMessage returns a fixed payload of a few hundred bytes
func createTestMessage() string {
	return strings.Repeat("The quick brown fox jumps over the lazy dog. ", 8)
}
