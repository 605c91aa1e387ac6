package payload

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTextStats(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		assert.Equal(t, Stats{}, TextStats(""))
	})

	t.Run("two symbols", func(t *testing.T) {
		st := TextStats("aabb")
		assert.Equal(t, 4, st.Runes)
		assert.Equal(t, 4, st.Bytes)
		assert.Equal(t, 1, st.Lines)
		assert.Equal(t, 1, st.Words)
		assert.Equal(t, 4, st.Alphanumeric)
		assert.InDelta(t, 1.0, st.Entropy, 1e-12)
	})

	t.Run("uniform", func(t *testing.T) {
		assert.InDelta(t, 0.0, TextStats("aaaa").Entropy, 1e-12)
	})

	t.Run("multiline", func(t *testing.T) {
		st := TextStats("Hello world\nsecond line")
		assert.Equal(t, 23, st.Runes)
		assert.Equal(t, 2, st.Lines)
		assert.Equal(t, 4, st.Words)
		assert.Equal(t, 20, st.Alphanumeric)
		assert.Equal(t, 3, st.Whitespace)
		assert.Equal(t, 0, st.Symbols)
	})

	t.Run("multibyte", func(t *testing.T) {
		st := TextStats("こんにちは")
		assert.Equal(t, 5, st.Runes)
		assert.Equal(t, 15, st.Bytes)
		// Five distinct runes: entropy is log2(5).
		assert.InDelta(t, math.Log2(5), st.Entropy, 1e-12)
	})
}
