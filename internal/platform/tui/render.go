package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/blockfall/internal/board"
	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/game"
)

// cellWidth is how many terminal columns one board cell takes. Two columns
// keep cells roughly square in most fonts.
const cellWidth = 2

// colorStyles caches one lipgloss style per palette color.
var colorStyles = map[core.Color]lipgloss.Style{}

func init() {
	for c := core.ColorDefault; c <= core.ColorBrightWhite; c++ {
		style := lipgloss.NewStyle()
		if code := c.ANSI(); code != "" {
			style = style.Foreground(lipgloss.Color(code))
		}
		colorStyles[c] = style
	}
}

// tileColors is the terminal palette, one color per piece kind.
var tileColors = map[board.Tile]core.Color{
	board.I: core.ColorCyan,
	board.O: core.ColorYellow,
	board.T: core.ColorMagenta,
	board.S: core.ColorGreen,
	board.Z: core.ColorRed,
	board.L: core.ColorOrange,
	board.J: core.ColorBlue,
}

// TileColor returns the palette color for t. Empty and unknown tiles are gray.
func TileColor(t board.Tile) core.Color {
	if c, ok := tileColors[t]; ok {
		return c
	}
	return core.ColorGray
}

// PlayfieldRect returns the outline of the playfield, centered on a screen
// of the given size. The board cells sit one cell inside the outline.
func PlayfieldRect(screenW, screenH int) core.Rect {
	w := board.Width*cellWidth + 2
	h := board.Height + 2
	return core.NewRect(max((screenW-w)/2, 0), max((screenH-h)/2, 0), w, h)
}

// DrawSnapshot draws one frame: the outlined playfield, every cell, the
// active piece and a small status panel to the right. A topped-out board gets
// a banner over the playfield.
func DrawSnapshot(s *core.Screen, snap game.Snapshot) {
	s.Clear()

	r := PlayfieldRect(s.Width(), s.Height())
	s.DrawBox(r, core.ColorGray)

	for y := range board.Height {
		for x := range board.Width {
			drawCell(s, r.X+1+x*cellWidth, r.Y+1+y, snap.TileAt(x, y))
		}
	}

	px := r.Right() + 2
	s.DrawColorText(px, r.Y+1, "BLOCKFALL", core.ColorBrightWhite)
	s.DrawText(px, r.Y+3, fmt.Sprintf("Pieces %d", snap.Stats.PiecesLocked))
	s.DrawText(px, r.Y+4, fmt.Sprintf("Clears %d", snap.Stats.BoardClears))
	if snap.State.IsDropping() {
		s.DrawColorText(px, r.Y+6, "Falling: "+snap.State.Tile.String(), TileColor(snap.State.Tile))
	}
	// Banner across the middle of the playfield
	if snap.ToppedOut {
		mid := r.Y + r.H/2
		s.DrawTextCentered(mid-1, " TOPPED OUT ", core.ColorBrightRed)
		s.DrawTextCentered(mid, " del to clear ", core.ColorBrightWhite)
	}
}

func drawCell(s *core.Screen, x, y int, t board.Tile) {
	if t.IsEmpty() {
		s.SetCell(x, y, ' ', core.ColorDefault)
		s.SetCell(x+1, y, '.', core.ColorGray)
		return
	}
	c := TileColor(t)
	s.SetCell(x, y, '[', c)
	s.SetCell(x+1, y, ']', c)
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
