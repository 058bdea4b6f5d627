package board

import (
	"fmt"
	"strings"
)

// Tile is the content of a single playfield cell: one of the seven piece
// colors or Empty. The zero value is Empty.
//
// The numeric value of a Tile carries no meaning outside this package;
// renderers look up sprites and colors through their own tables.
type Tile uint8

const (
	Empty Tile = iota
	I
	O
	T
	S
	Z
	L
	J
)

// Kinds lists the seven piece kinds in canonical order.
var Kinds = [...]Tile{I, O, T, S, Z, L, J}

var tileNames = [...]string{
	Empty: "empty",
	I:     "I",
	O:     "O",
	T:     "T",
	S:     "S",
	Z:     "Z",
	L:     "L",
	J:     "J",
}

// String returns the single-letter name of a piece kind, or "empty".
func (t Tile) String() string {
	if int(t) < len(tileNames) {
		return tileNames[t]
	}
	return fmt.Sprintf("Tile(%d)", uint8(t))
}

// IsEmpty reports whether the tile is the empty cell marker.
func (t Tile) IsEmpty() bool {
	return t == Empty
}

// Valid reports whether t is one of the eight defined variants.
func (t Tile) Valid() bool {
	return int(t) < len(tileNames)
}

// ParseTile converts a tile name back into a Tile. Piece letters are matched
// case-insensitively; "empty" and "none" both name the empty cell.
func ParseTile(name string) (Tile, error) {
	switch n := strings.ToLower(strings.TrimSpace(name)); n {
	case "empty", "none":
		return Empty, nil
	default:
		for _, k := range Kinds {
			if strings.EqualFold(k.String(), n) {
				return k, nil
			}
		}
	}
	return Empty, fmt.Errorf("board: unknown tile %q", name)
}
