package payload

import (
	"math"
	"strings"
	"unicode"

	"gonum.org/v1/gonum/stat"
)

// Stats summarizes a message before embedding. Entropy is the
// Shannon entropy of the rune distribution in bits per rune.
type Stats struct {
	Runes        int
	Bytes        int
	Lines        int
	Words        int
	Alphanumeric int
	Whitespace   int
	Symbols      int
	Entropy      float64
}

// TextStats computes Stats for s. The zero value is returned for the
// empty string.
func TextStats(s string) Stats {
	st := Stats{Bytes: len(s)}
	if s == "" {
		return st
	}
	st.Lines = strings.Count(s, "\n") + 1
	st.Words = len(strings.Fields(s))

	counts := make(map[rune]int)
	for _, r := range s {
		st.Runes++
		counts[r]++
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			st.Alphanumeric++
		case unicode.IsSpace(r):
			st.Whitespace++
		default:
			st.Symbols++
		}
	}

	dist := make([]float64, 0, len(counts))
	for _, c := range counts {
		dist = append(dist, float64(c)/float64(st.Runes))
	}
	st.Entropy = stat.Entropy(dist) / math.Ln2
	return st
}
