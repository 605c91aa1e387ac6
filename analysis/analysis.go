// Package analysis estimates whether a grid carries an embedded
// message. Three detectors inspect the least-significant-bit stream,
// the value histograms and the bit-plane structure; their signals
// combine into a single suspicion score with a coarse confidence
// label. Scores are heuristics: clean synthetic images score high and
// a careful embedder can score low.
package analysis

import (
	"context"
	"fmt"
	"sync"

	"github.com/pixelveil/stegano"
)

// Confidence labels a suspicion score.
type Confidence string

const (
	ConfidenceLow    Confidence = "LOW"
	ConfidenceMedium Confidence = "MEDIUM"
	ConfidenceHigh   Confidence = "HIGH"
)

func confidenceFor(score float64) Confidence {
	switch {
	case score >= 0.7:
		return ConfidenceHigh
	case score >= 0.4:
		return ConfidenceMedium
	default:
		return ConfidenceLow
	}
}

// Report is the combined result of all detectors. Score averages the
// LSB suspicion with binary anomaly flags from the histogram and
// bit-plane detectors.
type Report struct {
	LSB       LSBStats
	Histogram HistogramStats
	BitPlane  BitPlaneStats

	Score           float64
	Confidence      Confidence
	Summary         []string
	Recommendations []string
}

// Analyze runs every detector over g, concurrently, and combines
// their signals. The grid is never mutated.
func Analyze(ctx context.Context, g *stegano.Grid) (*Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}

	var r Report
	var wg sync.WaitGroup
	wg.Add(3)
	go func() {
		defer wg.Done()
		r.LSB = AnalyzeLSB(g)
	}()
	go func() {
		defer wg.Done()
		r.Histogram = AnalyzeHistogram(g)
	}()
	go func() {
		defer wg.Done()
		r.BitPlane = AnalyzeBitPlanes(g)
	}()
	wg.Wait()

	histScore, patternScore := 0.0, 0.0
	if len(r.Histogram.Anomalies) > 0 {
		histScore = 1
	}
	if len(r.BitPlane.Artifacts) > 0 {
		patternScore = 1
	}
	r.Score = (r.LSB.Suspicion + histScore + patternScore) / 3
	r.Confidence = confidenceFor(r.Score)
	r.Summary = []string{
		fmt.Sprintf("Overall suspicion score: %.2f", r.Score),
		fmt.Sprintf("Confidence level: %s", r.Confidence),
		fmt.Sprintf("LSB entropy: %.3f", r.LSB.Entropy),
		fmt.Sprintf("Chi-square p-value: %.3f", r.LSB.PValue),
	}
	r.Recommendations = recommendations(&r)
	return &r, nil
}

// QuickScan is Analyze reduced to the score, for triaging batches.
func QuickScan(ctx context.Context, g *stegano.Grid) (float64, error) {
	r, err := Analyze(ctx, g)
	if err != nil {
		return 0, err
	}
	return r.Score, nil
}

// recommendations collects detector advice in detector order,
// dropping duplicates.
func recommendations(r *Report) []string {
	var out []string
	seen := make(map[string]bool)
	add := func(s string) {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}

	switch {
	case r.LSB.Suspicion >= 0.7:
		add("HIGH SUSPICION: Strong evidence of LSB steganography")
	case r.LSB.Suspicion >= 0.4:
		add("MEDIUM SUSPICION: Possible steganographic content")
	default:
		add("LOW SUSPICION: No obvious steganographic patterns")
	}
	if r.LSB.Entropy > 0.95 {
		add("LSB entropy very high - likely contains hidden data")
	}
	if r.LSB.PValue < 0.01 {
		add("Chi-square test indicates non-random LSB distribution")
	}

	if len(r.Histogram.Anomalies) > 0 {
		add("Histogram anomalies detected - possible steganography")
	}
	if r.Histogram.Smoothness < 1000 {
		add("Histogram too smooth - may indicate data hiding")
	}

	if len(r.BitPlane.Artifacts) > 0 {
		add("Visual artifacts detected in LSB planes")
	}
	if r.BitPlane.AvgDensity < 0.25 {
		add("LOW pattern density suggests hidden data")
	} else if r.BitPlane.AvgDensity > 0.6 {
		add("HIGH pattern density - likely natural image")
	}
	return out
}

func channelNames(channels int) []string {
	switch channels {
	case 1:
		return []string{"Grayscale"}
	case 4:
		return []string{"Red", "Green", "Blue", "Alpha"}
	default:
		return []string{"Red", "Green", "Blue"}
	}
}
