package game

import (
	"fmt"

	"github.com/vovakirdan/blockfall/internal/board"
	"github.com/vovakirdan/blockfall/internal/core"
)

// Phase tags the two states of the drop loop.
type Phase int

const (
	// Placed means there is no active piece; the next tick spawns one.
	Placed Phase = iota
	// Dropping means a single-cell piece is falling; the next tick moves it
	// down or locks it.
	Dropping
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case Placed:
		return "placed"
	case Dropping:
		return "dropping"
	default:
		return "unknown"
	}
}

// State is either Placed (Tile and Pos unused) or Dropping with the falling
// tile and its position.
type State struct {
	Phase Phase
	Tile  board.Tile
	Pos   core.Point
}

// PlacedState returns the state with no active piece.
func PlacedState() State {
	return State{Phase: Placed}
}

// DroppingState returns the state of tile falling at pos.
func DroppingState(tile board.Tile, pos core.Point) State {
	return State{Phase: Dropping, Tile: tile, Pos: pos}
}

// IsDropping reports whether a piece is active.
func (s State) IsDropping() bool {
	return s.Phase == Dropping
}

func (s State) String() string {
	if s.Phase == Dropping {
		return fmt.Sprintf("dropping(%s, (%d, %d))", s.Tile, s.Pos.X, s.Pos.Y)
	}
	return s.Phase.String()
}
