package analysis

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/pixelveil/stegano"
)

// ChannelPairs summarizes the even/odd histogram bin pairs of one
// channel. LSB embedding only ever moves counts between the two bins
// of a pair (2k and 2k+1), so heavy embedding equalizes pairs that a
// natural image keeps apart.
type ChannelPairs struct {
	Channel string
	AvgDiff float64
	MaxDiff float64
	// Suspicious counts pairs whose difference exceeds twice the
	// channel average.
	Suspicious int
}

// HistogramStats holds the per-channel pair analysis plus a
// smoothness score, the mean total variation of the channel
// histograms.
type HistogramStats struct {
	Channels   []ChannelPairs
	Smoothness float64
	Anomalies  []string
}

// AnalyzeHistogram computes 256-bin value histograms per channel and
// inspects their even/odd pair structure. An invalid grid yields the
// zero value.
func AnalyzeHistogram(g *stegano.Grid) HistogramStats {
	if g.Validate() != nil {
		return HistogramStats{}
	}

	names := channelNames(g.Channels)
	out := HistogramStats{Channels: make([]ChannelPairs, 0, len(names))}
	for k, name := range names {
		var hist [256]float64
		for i := k; i < len(g.Pix); i += g.Channels {
			hist[g.Pix[i]]++
		}

		diffs := make([]float64, 128)
		for j := 0; j < 256; j += 2 {
			diffs[j/2] = math.Abs(hist[j] - hist[j+1])
		}
		avg := stat.Mean(diffs, nil)
		max := floats.Max(diffs)
		suspicious := 0
		for _, d := range diffs {
			if d > avg*2 {
				suspicious++
			}
		}
		out.Channels = append(out.Channels, ChannelPairs{
			Channel:    name,
			AvgDiff:    avg,
			MaxDiff:    max,
			Suspicious: suspicious,
		})

		for j := 0; j < 255; j++ {
			out.Smoothness += math.Abs(hist[j+1] - hist[j])
		}

		if avg < 10 {
			out.Anomalies = append(out.Anomalies, fmt.Sprintf("%s channel shows suspicious pair similarity", name))
		}
		if max > avg*5 {
			out.Anomalies = append(out.Anomalies, fmt.Sprintf("%s channel has extreme pair differences", name))
		}
	}
	out.Smoothness /= float64(len(names))
	return out
}
