// Package randomizer picks the kind of the next falling piece.
package randomizer

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/blockfall/internal/board"
)

// Randomizer draws piece kinds uniformly and independently. It keeps no
// history: there is no bag and no protection against repeats.
type Randomizer struct {
	rng *rand.Rand
}

// New creates a Randomizer seeded with seed. A zero seed uses the current time.
func New(seed int64) *Randomizer {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Randomizer{
		rng: rand.New(rand.NewSource(seed)),
	}
}

// Next returns one of the seven piece kinds.
func (r *Randomizer) Next() board.Tile {
	return board.Kinds[r.rng.Intn(len(board.Kinds))]
}
