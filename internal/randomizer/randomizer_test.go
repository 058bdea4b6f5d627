package randomizer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/blockfall/internal/board"
)

func TestNextNeverEmpty(t *testing.T) {
	r := New(1)
	for i := 0; i < 1000; i++ {
		tile := r.Next()
		assert.False(t, tile.IsEmpty())
		assert.True(t, tile.Valid())
	}
}

func TestNextIsRoughlyUniform(t *testing.T) {
	const draws = 70000
	r := New(12345)

	counts := make(map[board.Tile]int)
	for i := 0; i < draws; i++ {
		counts[r.Next()]++
	}

	assert.Len(t, counts, len(board.Kinds), "every kind should appear")

	expected := float64(draws) / float64(len(board.Kinds))
	for _, k := range board.Kinds {
		got := float64(counts[k])
		assert.InDelta(t, expected, got, expected*0.05, "kind %s drawn %d times", k, counts[k])
	}
}

func TestSameSeedSameSequence(t *testing.T) {
	a := New(99)
	b := New(99)
	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Next(), b.Next(), "draw %d", i)
	}
}
