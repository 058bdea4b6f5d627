package game

import "github.com/vovakirdan/blockfall/internal/board"

// Snapshot captures everything a renderer needs to draw one frame, and what
// tests need to compare two games.
type Snapshot struct {
	Board     board.Board
	State     State
	ToppedOut bool
	Stats     Stats
}

// Snapshot returns a copy of the current game state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Board:     g.board,
		State:     g.state,
		ToppedOut: g.toppedOut,
		Stats:     g.stats,
	}
}

// TileAt returns what should be drawn at (x, y): the active piece if it is
// there, otherwise the board cell.
func (s Snapshot) TileAt(x, y int) board.Tile {
	if s.State.IsDropping() && s.State.Pos.X == x && s.State.Pos.Y == y {
		return s.State.Tile
	}
	t, _ := s.Board.Get(x, y)
	return t
}
