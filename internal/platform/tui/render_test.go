package tui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/blockfall/internal/board"
	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/game"
)

// screenText returns the runes of s without colors, one line per row.
func screenText(s *core.Screen) string {
	var sb strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := range s.Width() {
			sb.WriteRune(s.Get(x, y))
		}
	}
	return sb.String()
}

func TestPlayfieldRect(t *testing.T) {
	r := PlayfieldRect(80, 24)
	assert.Equal(t, core.NewRect(29, 1, 22, 22), r)

	// Small terminals pin the playfield to the top-left corner
	r = PlayfieldRect(10, 10)
	assert.Equal(t, 0, r.X)
	assert.Equal(t, 0, r.Y)
}

func TestTileColor(t *testing.T) {
	seen := map[core.Color]bool{}
	for _, k := range board.Kinds {
		c := TileColor(k)
		assert.NotEqual(t, core.ColorGray, c, "kind %s", k)
		assert.False(t, seen[c], "kind %s shares a color", k)
		seen[c] = true
	}
	assert.Equal(t, core.ColorGray, TileColor(board.Empty))
}

func TestDrawSnapshot(t *testing.T) {
	var b board.Board
	require.NoError(t, b.Set(0, board.Height-1, board.T))

	snap := game.Snapshot{
		Board: b,
		State: game.DroppingState(board.I, core.Pt(5, 0)),
	}

	s := core.NewScreen(80, 24)
	DrawSnapshot(s, snap)

	r := PlayfieldRect(80, 24)
	assert.Equal(t, '┌', s.Get(r.X, r.Y))
	assert.Equal(t, '┘', s.Get(r.Right()-1, r.Bottom()-1))

	// Locked tile in the bottom-left cell
	x, y := r.X+1, r.Y+board.Height
	assert.Equal(t, core.Cell{Rune: '[', Color: core.ColorMagenta}, s.GetCell(x, y))
	assert.Equal(t, core.Cell{Rune: ']', Color: core.ColorMagenta}, s.GetCell(x+1, y))

	// Active piece at the spawn point
	x, y = r.X+1+5*cellWidth, r.Y+1
	assert.Equal(t, core.Cell{Rune: '[', Color: core.ColorCyan}, s.GetCell(x, y))

	// Empty cells are dotted
	assert.Equal(t, '.', s.Get(r.X+2, r.Y+1))

	out := screenText(s)
	assert.Contains(t, out, "BLOCKFALL")
	assert.Contains(t, out, "Falling: I")
	assert.NotContains(t, out, "Next drop")
	assert.NotContains(t, out, "TOPPED OUT")
}

func TestDrawSnapshotToppedOut(t *testing.T) {
	s := core.NewScreen(80, 24)
	DrawSnapshot(s, game.Snapshot{ToppedOut: true})

	out := screenText(s)
	assert.Contains(t, out, "TOPPED OUT")
	assert.Contains(t, out, "del to clear")
	assert.NotContains(t, out, "Falling")

	// The banner is centered over the playfield
	r := PlayfieldRect(80, 24)
	mid := r.Y + r.H/2
	row := []rune(strings.Split(out, "\n")[mid-1])
	start := (80 - len(" TOPPED OUT ")) / 2
	assert.Equal(t, " TOPPED OUT ", string(row[start:start+12]))
	assert.Equal(t, core.ColorBrightRed, s.GetCell(start+1, mid-1).Color)
	assert.Greater(t, start, r.X)
	assert.Less(t, start+12, r.Right())
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawColorText(0, 0, "ab", core.ColorRed)
	s.DrawText(2, 0, "cd")
	s.DrawColorText(0, 1, "xyz", core.ColorGray)

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, out, "ab")
	assert.Contains(t, out, "cd")
	assert.Contains(t, out, "xyz")
}
