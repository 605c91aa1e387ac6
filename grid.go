package stegano

import (
	"fmt"
	"image"
	"image/color"
)

// Grid is the byte-level view of an image that all algorithms operate
// on: unsigned 8-bit samples, interleaved by channel, row-major.
type Grid struct {
	// Pix holds the samples. The sample of channel k at pixel (x, y)
	// is Pix[(y*Width+x)*Channels+k].
	Pix      []uint8
	Height   int
	Width    int
	Channels int
}

// NewGrid allocates a zeroed grid. Channels must be 1, 3 or 4.
func NewGrid(height, width, channels int) *Grid {
	return &Grid{
		Pix:      make([]uint8, height*width*channels),
		Height:   height,
		Width:    width,
		Channels: channels,
	}
}

// Len returns the total sample count.
func (g *Grid) Len() int {
	return g.Height * g.Width * g.Channels
}

// Clone returns a deep copy. Encode operations mutate only clones so
// that a failure never leaves the caller's grid half written.
func (g *Grid) Clone() *Grid {
	pix := make([]uint8, len(g.Pix))
	copy(pix, g.Pix)
	return &Grid{Pix: pix, Height: g.Height, Width: g.Width, Channels: g.Channels}
}

// At returns the sample of channel k at pixel (x, y).
func (g *Grid) At(x, y, k int) uint8 {
	return g.Pix[(y*g.Width+x)*g.Channels+k]
}

// Set overwrites the sample of channel k at pixel (x, y).
func (g *Grid) Set(x, y, k int, v uint8) {
	g.Pix[(y*g.Width+x)*g.Channels+k] = v
}

// Validate reports whether the grid invariants hold: positive
// dimensions, a channel count of 1, 3 or 4, and a backing slice of
// exactly Height*Width*Channels samples.
func (g *Grid) Validate() error {
	if g == nil {
		return fmt.Errorf("%w: nil", ErrInvalidGrid)
	}
	if g.Height <= 0 || g.Width <= 0 {
		return fmt.Errorf("%w: dimensions %dx%d", ErrInvalidGrid, g.Width, g.Height)
	}
	if g.Channels != 1 && g.Channels != 3 && g.Channels != 4 {
		return fmt.Errorf("%w: %d channels", ErrInvalidGrid, g.Channels)
	}
	if len(g.Pix) != g.Len() {
		return fmt.Errorf("%w: %d samples for %dx%dx%d", ErrInvalidGrid, len(g.Pix), g.Width, g.Height, g.Channels)
	}
	return nil
}

// FromImage converts an image into a grid. Grayscale images become
// single-channel grids, images with an alpha channel four-channel
// grids, everything else three-channel RGB.
func FromImage(img image.Image) *Grid {
	b := img.Bounds()
	h, w := b.Dy(), b.Dx()
	switch src := img.(type) {
	case *image.Gray:
		g := NewGrid(h, w, 1)
		for y := range h {
			i := src.PixOffset(b.Min.X, b.Min.Y+y)
			copy(g.Pix[y*w:(y+1)*w], src.Pix[i:i+w])
		}
		return g
	case *image.NRGBA:
		g := NewGrid(h, w, 4)
		for y := range h {
			i := src.PixOffset(b.Min.X, b.Min.Y+y)
			copy(g.Pix[y*w*4:(y+1)*w*4], src.Pix[i:i+w*4])
		}
		return g
	case *image.RGBA:
		g := NewGrid(h, w, 4)
		for y := range h {
			for x := range w {
				c := color.NRGBAModel.Convert(src.RGBAAt(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
				i := (y*w + x) * 4
				g.Pix[i+0], g.Pix[i+1], g.Pix[i+2], g.Pix[i+3] = c.R, c.G, c.B, c.A
			}
		}
		return g
	default:
		g := NewGrid(h, w, 3)
		for y := range h {
			for x := range w {
				c := color.NRGBAModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
				i := (y*w + x) * 3
				g.Pix[i+0], g.Pix[i+1], g.Pix[i+2] = c.R, c.G, c.B
			}
		}
		return g
	}
}

// ToImage converts the grid back into an image: Gray for one channel,
// NRGBA otherwise (opaque for three-channel grids). Sample values pass
// through unchanged, so a FromImage/ToImage round trip is bit exact.
func (g *Grid) ToImage() image.Image {
	switch g.Channels {
	case 1:
		img := image.NewGray(image.Rect(0, 0, g.Width, g.Height))
		for y := range g.Height {
			copy(img.Pix[y*img.Stride:], g.Pix[y*g.Width:(y+1)*g.Width])
		}
		return img
	case 4:
		img := image.NewNRGBA(image.Rect(0, 0, g.Width, g.Height))
		for y := range g.Height {
			copy(img.Pix[y*img.Stride:], g.Pix[y*g.Width*4:(y+1)*g.Width*4])
		}
		return img
	default:
		img := image.NewNRGBA(image.Rect(0, 0, g.Width, g.Height))
		for y := range g.Height {
			for x := range g.Width {
				i := (y*g.Width + x) * 3
				o := img.PixOffset(x, y)
				img.Pix[o+0] = g.Pix[i+0]
				img.Pix[o+1] = g.Pix[i+1]
				img.Pix[o+2] = g.Pix[i+2]
				img.Pix[o+3] = 0xFF
			}
		}
		return img
	}
}
