package analysis

import (
	"fmt"
	"math"

	"github.com/pixelveil/stegano"
)

// PlaneStats describes the LSB plane of one channel as a 2D binary
// image. Density counts 0-to-1 transitions between horizontal and
// vertical neighbours, normalized by pixel count; a natural image
// sits well above the flagging thresholds, a structured or mostly
// constant plane falls below them.
type PlaneStats struct {
	Channel    string
	Horizontal int
	Vertical   int
	Density    float64
	// Deviation is the standard deviation of the binary plane,
	// 0.5 at a perfect 50/50 split.
	Deviation float64
}

// BitPlaneStats aggregates the per-channel plane metrics.
type BitPlaneStats struct {
	Planes     []PlaneStats
	AvgDensity float64
	Artifacts  []string
}

// AnalyzeBitPlanes extracts the LSB plane of every channel and
// measures its transition density and spread. An invalid grid yields
// the zero value.
func AnalyzeBitPlanes(g *stegano.Grid) BitPlaneStats {
	if g.Validate() != nil {
		return BitPlaneStats{}
	}

	names := channelNames(g.Channels)
	out := BitPlaneStats{Planes: make([]PlaneStats, 0, len(names))}
	for k, name := range names {
		horizontal, vertical, ones := 0, 0, 0
		for y := 0; y < g.Height; y++ {
			for x := 0; x < g.Width; x++ {
				b := g.At(x, y, k) & 1
				ones += int(b)
				if x+1 < g.Width && g.At(x+1, y, k)&1 != b {
					horizontal++
				}
				if y+1 < g.Height && g.At(x, y+1, k)&1 != b {
					vertical++
				}
			}
		}
		size := g.Height * g.Width
		p := float64(ones) / float64(size)
		ps := PlaneStats{
			Channel:    name,
			Horizontal: horizontal,
			Vertical:   vertical,
			Density:    float64(horizontal+vertical) / float64(size),
			Deviation:  math.Sqrt(p * (1 - p)),
		}
		out.Planes = append(out.Planes, ps)
		out.AvgDensity += ps.Density

		if ps.Density < 0.3 {
			out.Artifacts = append(out.Artifacts, fmt.Sprintf("%s LSB plane shows low pattern density", name))
		}
		if ps.Deviation < 0.4 {
			out.Artifacts = append(out.Artifacts, fmt.Sprintf("%s LSB plane lacks randomness", name))
		}
	}
	out.AvgDensity /= float64(len(names))
	return out
}
