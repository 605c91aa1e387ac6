package analysis

import (
	"math"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/pixelveil/stegano"
)

// LSBStats describes the distribution of least-significant bits
// across every sample of a grid. An unmodified photograph keeps some
// bias in its LSB stream; sequential embedding pushes the stream
// toward an even coin flip.
type LSBStats struct {
	Zeros     int
	Ones      int
	OnesRatio float64
	// Entropy of the zero/one distribution in bits, 1.0 at a perfect
	// 50/50 split.
	Entropy float64
	// ChiSquare compares the observed counts against the uniform
	// expectation; PValue is its upper tail at one degree of freedom.
	ChiSquare float64
	PValue    float64
	// Suspicion averages the entropy, balance and chi-square signals
	// into [0, 1].
	Suspicion float64
}

// AnalyzeLSB measures the LSB stream of g. An invalid grid yields the
// zero value; callers going through Analyze never see one.
func AnalyzeLSB(g *stegano.Grid) LSBStats {
	if g.Validate() != nil {
		return LSBStats{}
	}

	var st LSBStats
	for _, v := range g.Pix {
		if v&1 == 1 {
			st.Ones++
		} else {
			st.Zeros++
		}
	}
	total := float64(st.Zeros + st.Ones)
	st.OnesRatio = float64(st.Ones) / total

	dist := []float64{float64(st.Zeros) / total, float64(st.Ones) / total}
	st.Entropy = stat.Entropy(dist) / math.Ln2

	obs := []float64{float64(st.Zeros), float64(st.Ones)}
	exp := []float64{total / 2, total / 2}
	st.ChiSquare = stat.ChiSquare(obs, exp)
	st.PValue = distuv.ChiSquared{K: 1}.Survival(st.ChiSquare)

	// Each term measures distance from an ideal random stream.
	entropyScore := math.Abs(st.Entropy - 1)
	balanceScore := math.Abs(st.OnesRatio-0.5) * 2
	chiScore := 0.0
	if st.PValue < 0.05 {
		chiScore = 1 - st.PValue
	}
	st.Suspicion = (entropyScore + balanceScore + chiScore) / 3
	return st
}
