// Package board implements the fixed 10x20 playfield grid.
package board

import (
	"errors"
	"fmt"
)

const (
	Width  = 10
	Height = 20
	Size   = Width * Height
)

// ErrOutOfBounds is returned when a write targets a cell outside the playfield.
var ErrOutOfBounds = errors.New("board: coordinates out of bounds")

// Board is the playfield: Size tiles addressed by (x, y), stored row-major.
// The zero value is an empty board ready to use. Board is a plain value, so
// assigning it copies every cell.
type Board struct {
	cells [Size]Tile
}

// New returns an empty board.
func New() *Board {
	return &Board{}
}

// InBounds reports whether (x, y) addresses a cell of the playfield.
func InBounds(x, y int) bool {
	return x >= 0 && x < Width && y >= 0 && y < Height
}

// Get returns the tile at (x, y). The second result is false, and the tile
// Empty, when the coordinates are outside the playfield.
func (b *Board) Get(x, y int) (Tile, bool) {
	if !InBounds(x, y) {
		return Empty, false
	}
	return b.cells[y*Width+x], true
}

// Set writes tile at (x, y). Out-of-range coordinates leave the board
// untouched and return an error wrapping ErrOutOfBounds.
func (b *Board) Set(x, y int, tile Tile) error {
	if !InBounds(x, y) {
		return fmt.Errorf("%w: (%d, %d)", ErrOutOfBounds, x, y)
	}
	b.cells[y*Width+x] = tile
	return nil
}

// Blocked reports whether a piece cannot occupy (x, y): the cell is outside
// the playfield or already holds a tile.
func (b *Board) Blocked(x, y int) bool {
	t, ok := b.Get(x, y)
	return !ok || !t.IsEmpty()
}

// Reset empties every cell.
func (b *Board) Reset() {
	b.cells = [Size]Tile{}
}

// Filled returns the number of non-empty cells.
func (b *Board) Filled() int {
	n := 0
	for _, t := range b.cells {
		if !t.IsEmpty() {
			n++
		}
	}
	return n
}

// Each calls fn for every cell, row by row from the top-left corner.
func (b *Board) Each(fn func(x, y int, t Tile)) {
	for i, t := range b.cells {
		fn(i%Width, i/Width, t)
	}
}
