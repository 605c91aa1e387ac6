// Package imageio moves grids in and out of image files. Only
// lossless formats are accepted: an embedded message survives any
// pixel-exact codec and nothing else, so jpeg and gif are rejected
// outright rather than silently corrupting payloads.
package imageio

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/pixelveil/stegano"
)

const (
	// MaxFileSize caps how much Load reads from disk.
	MaxFileSize = 50 << 20
	// MinDimension and MaxDimension bound each side of a decoded
	// image.
	MinDimension = 10
	MaxDimension = 10000
)

var (
	ErrUnsupportedFormat = errors.New("unsupported image format")
	ErrLossyFormat       = errors.New("lossy or palette formats destroy embedded data")
	ErrFileTooLarge      = errors.New("file too large")
	ErrDimensions        = errors.New("image dimensions out of range")
	ErrDecode            = errors.New("cannot decode image")
)

// formatFor maps a path to the encoder name for its extension.
func formatFor(path string) (string, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png":
		return "png", nil
	case ".bmp":
		return "bmp", nil
	case ".tiff", ".tif":
		return "tiff", nil
	case ".jpg", ".jpeg", ".gif":
		return "", fmt.Errorf("%w: %s", ErrLossyFormat, ext)
	default:
		return "", fmt.Errorf("%w: %q, supported: png, bmp, tiff, tif", ErrUnsupportedFormat, ext)
	}
}

// Load reads the image at path into a grid. The extension must name a
// supported lossless format and the file must be under MaxFileSize.
func Load(path string) (*stegano.Grid, error) {
	if _, err := formatFor(path); err != nil {
		return nil, err
	}
	fi, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if fi.Size() > MaxFileSize {
		return nil, fmt.Errorf("%w: %s, maximum %s", ErrFileTooLarge,
			humanize.IBytes(uint64(fi.Size())), humanize.IBytes(MaxFileSize))
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Decode(f)
}

// Decode reads one image from r into a grid. Importing the png, bmp
// and tiff packages registers exactly the supported decoders, so any
// other stream fails as undecodable.
func Decode(r io.Reader) (*stegano.Grid, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	b := img.Bounds()
	if b.Dx() < MinDimension || b.Dy() < MinDimension {
		return nil, fmt.Errorf("%w: %dx%d, minimum %dx%d", ErrDimensions,
			b.Dx(), b.Dy(), MinDimension, MinDimension)
	}
	if b.Dx() > MaxDimension || b.Dy() > MaxDimension {
		return nil, fmt.Errorf("%w: %dx%d, maximum %dx%d", ErrDimensions,
			b.Dx(), b.Dy(), MaxDimension, MaxDimension)
	}
	return stegano.FromImage(img), nil
}

// Save writes g to path in the format named by its extension.
func Save(path string, g *stegano.Grid) error {
	format, err := formatFor(path)
	if err != nil {
		return err
	}
	if err := g.Validate(); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Encode(f, g, format); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Encode writes g to w as the named format: "png", "bmp", "tiff" or
// "tif". TIFF output is Deflate-compressed, keeping every supported
// format lossless.
func Encode(w io.Writer, g *stegano.Grid, format string) error {
	if err := g.Validate(); err != nil {
		return err
	}
	img := g.ToImage()
	switch format {
	case "png":
		return png.Encode(w, img)
	case "bmp":
		return bmp.Encode(w, img)
	case "tiff", "tif":
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	case "jpg", "jpeg", "gif":
		return fmt.Errorf("%w: %s", ErrLossyFormat, format)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}
