package thread

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestControversyScoreZeroWithoutOpposition(t *testing.T) {
	assert.Zero(t, ControversyScore(0, 0))
	assert.Zero(t, ControversyScore(42, 0))
	assert.Zero(t, ControversyScore(0, 42))
}

func TestControversyScoreKnownValues(t *testing.T) {
	// Perfect split: total * 1.
	assert.Equal(t, 10.0, ControversyScore(5, 5))
	// Lopsided: 11 * (1/10).
	assert.InDelta(t, 1.1, ControversyScore(10, 1), 1e-9)
	assert.InDelta(t, 1.1, ControversyScore(1, 10), 1e-9)
}

func TestControversyScoreSymmetric(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := rapid.IntRange(0, 100000).Draw(t, "a")
		b := rapid.IntRange(0, 100000).Draw(t, "b")
		if ControversyScore(a, b) != ControversyScore(b, a) {
			t.Fatalf("score not symmetric for %d/%d", a, b)
		}
	})
}

func TestControversyScoreMaxAtEvenSplit(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		half := rapid.IntRange(1, 50000).Draw(t, "half")
		a := rapid.IntRange(1, 2*half-1).Draw(t, "a")
		skewed := ControversyScore(a, 2*half-a)
		even := ControversyScore(half, half)
		if skewed > even {
			t.Fatalf("split %d/%d scored %v, above even split %v", a, 2*half-a, skewed, even)
		}
	})
}
