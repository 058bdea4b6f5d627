// Package game implements the tick-driven drop loop: the Placed/Dropping state
// machine over a board, paced by an interval and fed by a randomizer.
// It has no rendering or platform dependencies; frontends call Frame once per
// loop iteration and draw the Snapshot.
package game

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/blockfall/internal/board"
	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/interval"
	"github.com/vovakirdan/blockfall/internal/randomizer"
)

// SpawnPoint is where every new piece appears: the center column, top row.
var SpawnPoint = core.Pt(5, 0)

// DefaultTickPeriod is the drop interval used when Options leaves it unset.
const DefaultTickPeriod = time.Second

// ErrMoveBlocked is returned when a horizontal move would leave the playfield
// or run into a locked tile.
var ErrMoveBlocked = errors.New("game: move blocked")

// TileSource supplies the kind of each new piece.
type TileSource interface {
	Next() board.Tile
}

// Options configures a new Game. Zero values select defaults.
type Options struct {
	TickPeriod time.Duration
	Seed       int64
	Source     TileSource     // Overrides the seeded randomizer
	Clock      interval.Clock // Overrides the wall clock
}

// Stats counts what happened during a session.
type Stats struct {
	Ticks        uint64
	PiecesLocked int
	BoardClears  int
}

// FrameResult reports the outcome of one loop iteration.
type FrameResult struct {
	Quit   bool // A quit action was seen; the caller should stop the loop
	Ticked bool // The interval fired and the state machine advanced
}

// Game owns the board, the state machine, the ticker and the randomizer.
type Game struct {
	board     board.Board
	state     State
	ticker    *interval.Interval
	source    TileSource
	toppedOut bool
	stats     Stats
}

// New creates a game in the Placed state with an empty board.
func New(opts Options) *Game {
	period := opts.TickPeriod
	if period <= 0 {
		period = DefaultTickPeriod
	}
	source := opts.Source
	if source == nil {
		source = randomizer.New(opts.Seed)
	}
	return &Game{
		state:  PlacedState(),
		ticker: interval.NewWithClock(period, opts.Clock),
		source: source,
	}
}

// State returns the current state.
func (g *Game) State() State {
	return g.state
}

// Board returns a copy of the playfield.
func (g *Game) Board() board.Board {
	return g.board
}

// ToppedOut reports whether the last spawn failed because the spawn cell was
// occupied. No piece spawns until the board is cleared.
func (g *Game) ToppedOut() bool {
	return g.toppedOut
}

// Stats returns the session counters.
func (g *Game) Stats() Stats {
	return g.stats
}

// TickPeriod returns the drop interval.
func (g *Game) TickPeriod() time.Duration {
	return g.ticker.Period()
}

// Tick advances the state machine by one step.
//
// From Placed a new piece spawns at SpawnPoint. From Dropping the piece moves
// down one row, or locks into the board when the cell below is outside the
// playfield or occupied.
func (g *Game) Tick() error {
	g.stats.Ticks++

	switch g.state.Phase {
	case Placed:
		if g.toppedOut {
			return nil
		}
		if g.board.Blocked(SpawnPoint.X, SpawnPoint.Y) {
			g.toppedOut = true
			return nil
		}
		g.state = DroppingState(g.source.Next(), SpawnPoint)

	case Dropping:
		below := g.state.Pos.Add(0, 1)
		if g.board.Blocked(below.X, below.Y) {
			return g.lock()
		}
		g.state.Pos = below

	default:
		return fmt.Errorf("game: unknown phase %d", g.state.Phase)
	}
	return nil
}

// lock writes the dropping tile into the board and returns to Placed.
func (g *Game) lock() error {
	s := g.state
	if err := g.board.Set(s.Pos.X, s.Pos.Y, s.Tile); err != nil {
		return fmt.Errorf("game: lock %s: %w", s, err)
	}
	g.state = PlacedState()
	g.stats.PiecesLocked++
	return nil
}

// MoveLeft shifts the dropping piece one column left. It is a no-op while
// Placed and returns ErrMoveBlocked when the target cell is off the playfield
// or occupied.
func (g *Game) MoveLeft() error {
	return g.shift(-1)
}

// MoveRight shifts the dropping piece one column right, with the same rules
// as MoveLeft.
func (g *Game) MoveRight() error {
	return g.shift(1)
}

func (g *Game) shift(dx int) error {
	if !g.state.IsDropping() {
		return nil
	}
	target := g.state.Pos.Add(dx, 0)
	if g.board.Blocked(target.X, target.Y) {
		return fmt.Errorf("%w: (%d, %d)", ErrMoveBlocked, target.X, target.Y)
	}
	g.state.Pos = target
	return nil
}

// Clear empties the board and forces the Placed state, wherever the active
// piece was.
func (g *Game) Clear() {
	g.board.Reset()
	g.state = PlacedState()
	g.toppedOut = false
	g.stats.BoardClears++
}

// Frame runs one iteration of the render/input loop, minus drawing.
//
// Actions are applied in arrival order; a quit action stops processing and is
// reported in the result. Rejected moves are not errors of the loop and are
// dropped. Afterwards, if the interval has elapsed, the state machine
// advances once.
func (g *Game) Frame(in core.InputFrame) (FrameResult, error) {
	var res FrameResult

	for _, a := range in.Actions {
		switch a {
		case core.ActionQuit:
			res.Quit = true
			return res, nil
		case core.ActionMoveLeft:
			_ = g.MoveLeft()
		case core.ActionMoveRight:
			_ = g.MoveRight()
		case core.ActionClear:
			g.Clear()
		}
	}

	if g.ticker.TryTick() {
		res.Ticked = true
		if err := g.Tick(); err != nil {
			return res, err
		}
	}
	return res, nil
}
