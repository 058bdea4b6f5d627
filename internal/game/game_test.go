package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/blockfall/internal/board"
	"github.com/vovakirdan/blockfall/internal/core"
)

// fixedSource always returns the same tile.
type fixedSource board.Tile

func (f fixedSource) Next() board.Tile { return board.Tile(f) }

// stepClock is a manual clock for driving Frame.
type stepClock struct{ now time.Time }

func (c *stepClock) Now() time.Time { return c.now }
func (c *stepClock) After(d time.Duration) <-chan time.Time {
	c.now = c.now.Add(d)
	ch := make(chan time.Time, 1)
	ch <- c.now
	return ch
}

func newTestGame(tile board.Tile) *Game {
	return New(Options{Source: fixedSource(tile), Clock: &stepClock{now: time.Unix(0, 0)}})
}

func TestInitialState(t *testing.T) {
	g := New(Options{Seed: 1})

	assert.Equal(t, PlacedState(), g.State())
	b := g.Board()
	assert.Equal(t, 0, b.Filled())
	assert.Equal(t, DefaultTickPeriod, g.TickPeriod())
	assert.False(t, g.ToppedOut())
}

func TestPlacedSpawnsAtCenterTop(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		g := New(Options{Seed: seed})
		require.NoError(t, g.Tick())

		s := g.State()
		require.True(t, s.IsDropping(), "seed %d", seed)
		assert.Equal(t, core.Pt(5, 0), s.Pos)
		assert.False(t, s.Tile.IsEmpty())
		assert.True(t, s.Tile.Valid())
	}
}

func TestDropOnEmptyBoard(t *testing.T) {
	g := newTestGame(board.I)
	g.state = DroppingState(board.I, core.Pt(5, 0))

	require.NoError(t, g.Tick())
	assert.Equal(t, DroppingState(board.I, core.Pt(5, 1)), g.State())
}

func TestBottomEdgeLocks(t *testing.T) {
	for x := 0; x < board.Width; x++ {
		g := newTestGame(board.T)
		g.state = DroppingState(board.T, core.Pt(x, board.Height-1))

		require.NoError(t, g.Tick())
		assert.Equal(t, PlacedState(), g.State(), "x=%d must lock at the bottom", x)

		b := g.Board()
		tile, ok := b.Get(x, board.Height-1)
		require.True(t, ok)
		assert.Equal(t, board.T, tile, "locked tile must be written to the board")
		assert.Equal(t, 1, g.Stats().PiecesLocked)
	}
}

func TestCollisionWithOccupiedCellLocks(t *testing.T) {
	g := newTestGame(board.I)
	require.NoError(t, g.board.Set(5, 19, board.Z))
	g.state = DroppingState(board.I, core.Pt(5, 18))

	require.NoError(t, g.Tick())
	assert.Equal(t, PlacedState(), g.State())

	b := g.Board()
	above, _ := b.Get(5, 18)
	below, _ := b.Get(5, 19)
	assert.Equal(t, board.I, above)
	assert.Equal(t, board.Z, below)
}

func TestFullDropStacksPieces(t *testing.T) {
	g := newTestGame(board.S)

	// Spawn, fall 19 rows, lock: 21 ticks per piece on an empty column.
	for i := 0; i < board.Height+1; i++ {
		require.NoError(t, g.Tick())
	}
	require.Equal(t, PlacedState(), g.State())
	b := g.Board()
	tile, _ := b.Get(5, 19)
	assert.Equal(t, board.S, tile)

	// The second piece lands on top of the first.
	for i := 0; i < board.Height; i++ {
		require.NoError(t, g.Tick())
	}
	require.Equal(t, PlacedState(), g.State())
	b = g.Board()
	tile, _ = b.Get(5, 18)
	assert.Equal(t, board.S, tile)
	assert.Equal(t, 2, g.Stats().PiecesLocked)
}

func TestTopOut(t *testing.T) {
	g := newTestGame(board.O)
	for y := 0; y < board.Height; y++ {
		require.NoError(t, g.board.Set(5, y, board.J))
	}

	require.NoError(t, g.Tick())
	assert.Equal(t, PlacedState(), g.State())
	assert.True(t, g.ToppedOut())

	require.NoError(t, g.Tick())
	assert.Equal(t, PlacedState(), g.State(), "no spawn while topped out")

	g.Clear()
	assert.False(t, g.ToppedOut())
	require.NoError(t, g.Tick())
	assert.True(t, g.State().IsDropping())
}

func TestMoves(t *testing.T) {
	tests := []struct {
		name    string
		start   core.Point
		move    func(*Game) error
		blocked bool
		want    core.Point
	}{
		{"left from center", core.Pt(5, 3), (*Game).MoveLeft, false, core.Pt(4, 3)},
		{"right from center", core.Pt(5, 3), (*Game).MoveRight, false, core.Pt(6, 3)},
		{"left wall", core.Pt(0, 3), (*Game).MoveLeft, true, core.Pt(0, 3)},
		{"right wall", core.Pt(board.Width-1, 3), (*Game).MoveRight, true, core.Pt(board.Width-1, 3)},
		{"into locked tile", core.Pt(3, 19), (*Game).MoveLeft, true, core.Pt(3, 19)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newTestGame(board.L)
			require.NoError(t, g.board.Set(2, 19, board.L))
			g.state = DroppingState(board.L, tc.start)

			err := tc.move(g)
			if tc.blocked {
				assert.ErrorIs(t, err, ErrMoveBlocked)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tc.want, g.State().Pos)
		})
	}
}

func TestMoveWhilePlacedIsNoop(t *testing.T) {
	g := newTestGame(board.I)
	assert.NoError(t, g.MoveLeft())
	assert.NoError(t, g.MoveRight())
	assert.Equal(t, PlacedState(), g.State())
}

func TestClearWhileDropping(t *testing.T) {
	g := newTestGame(board.I)
	require.NoError(t, g.board.Set(0, 19, board.T))
	require.NoError(t, g.board.Set(9, 10, board.Z))
	g.state = DroppingState(board.I, core.Pt(7, 12))

	g.Clear()

	b := g.Board()
	assert.Equal(t, 0, b.Filled())
	assert.Equal(t, PlacedState(), g.State())
	assert.Equal(t, 1, g.Stats().BoardClears)
}

func TestFrame(t *testing.T) {
	clock := &stepClock{now: time.Unix(0, 0)}
	g := New(Options{Source: fixedSource(board.I), Clock: clock, TickPeriod: time.Second})

	// First frame fires immediately and spawns.
	res, err := g.Frame(core.NewInputFrame())
	require.NoError(t, err)
	assert.True(t, res.Ticked)
	assert.Equal(t, DroppingState(board.I, SpawnPoint), g.State())

	// Same instant: no tick, but input is still applied.
	in := core.NewInputFrame()
	in.Push(core.ActionMoveLeft)
	in.Push(core.ActionMoveLeft)
	res, err = g.Frame(in)
	require.NoError(t, err)
	assert.False(t, res.Ticked)
	assert.Equal(t, core.Pt(3, 0), g.State().Pos)

	// One period later the piece drops a row.
	clock.now = clock.now.Add(time.Second)
	res, err = g.Frame(core.NewInputFrame())
	require.NoError(t, err)
	assert.True(t, res.Ticked)
	assert.Equal(t, core.Pt(3, 1), g.State().Pos)
}

func TestFrameQuitStopsProcessing(t *testing.T) {
	g := newTestGame(board.I)
	g.state = DroppingState(board.I, core.Pt(5, 5))

	in := core.NewInputFrame()
	in.Push(core.ActionQuit)
	in.Push(core.ActionClear)

	res, err := g.Frame(in)
	require.NoError(t, err)
	assert.True(t, res.Quit)
	assert.False(t, res.Ticked)
	assert.Equal(t, DroppingState(board.I, core.Pt(5, 5)), g.State(), "actions after quit are ignored")
}

func TestFrameClearThenTick(t *testing.T) {
	g := newTestGame(board.J)
	g.state = DroppingState(board.J, core.Pt(2, 10))

	in := core.NewInputFrame()
	in.Push(core.ActionClear)

	res, err := g.Frame(in)
	require.NoError(t, err)
	require.True(t, res.Ticked, "first frame always ticks")
	assert.Equal(t, DroppingState(board.J, SpawnPoint), g.State())
}

func TestFrameIgnoresBlockedMoves(t *testing.T) {
	g := newTestGame(board.I)
	g.state = DroppingState(board.I, core.Pt(0, 0))

	in := core.NewInputFrame()
	in.Push(core.ActionMoveLeft)

	_, err := g.Frame(in)
	require.NoError(t, err)
	assert.Equal(t, 0, g.State().Pos.X)
}

func TestDeterminism(t *testing.T) {
	a := New(Options{Seed: 4242})
	b := New(Options{Seed: 4242})

	for i := 0; i < 500; i++ {
		if i%7 == 0 {
			_ = a.MoveLeft()
			_ = b.MoveLeft()
		}
		require.NoError(t, a.Tick())
		require.NoError(t, b.Tick())
	}

	assert.Equal(t, a.Snapshot(), b.Snapshot())
}

func TestSnapshotTileAt(t *testing.T) {
	g := newTestGame(board.O)
	require.NoError(t, g.board.Set(0, 19, board.T))
	g.state = DroppingState(board.O, core.Pt(4, 4))

	snap := g.Snapshot()
	assert.Equal(t, board.O, snap.TileAt(4, 4))
	assert.Equal(t, board.T, snap.TileAt(0, 19))
	assert.Equal(t, board.Empty, snap.TileAt(1, 1))
	assert.Equal(t, board.Empty, snap.TileAt(-1, 1))
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "placed", PlacedState().String())
	assert.Equal(t, "dropping(I, (5, 0))", DroppingState(board.I, SpawnPoint).String())
}
