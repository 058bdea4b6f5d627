// Package sprites maps tile kinds to spritesheet regions and board cells to
// screen rectangles. It knows nothing about the graphics backend, so the
// lookup and layout math is testable without a window.
package sprites

import (
	"errors"
	"fmt"
	"image"

	"github.com/kamstrup/intmap"

	"github.com/vovakirdan/blockfall/internal/board"
	"github.com/vovakirdan/blockfall/internal/config"
)

var (
	// ErrIncompleteAtlas is returned when a tile variant has no sprite column.
	ErrIncompleteAtlas = errors.New("sprites: atlas is missing a tile")

	// ErrDuplicateTile is returned when two atlas names resolve to the same tile.
	ErrDuplicateTile = errors.New("sprites: atlas maps a tile twice")
)

// allTiles is every variant a renderer may be asked to draw.
var allTiles = append([]board.Tile{board.Empty}, board.Kinds[:]...)

// Atlas is the tile kind -> spritesheet column lookup table. Sprites are
// square, TileSize pixels wide, laid out in a single row.
type Atlas struct {
	columns  *intmap.Map[board.Tile, int]
	tileSize int
}

// NewAtlas builds the lookup table from the configured tile names. Every
// tile variant, Empty included, must be mapped exactly once; names are
// matched case-insensitively.
func NewAtlas(cfg config.SpriteConfig) (*Atlas, error) {
	if cfg.TileSize <= 0 {
		return nil, fmt.Errorf("sprites: tile size must be positive, got %d", cfg.TileSize)
	}

	columns := intmap.New[board.Tile, int](len(allTiles))
	for name, col := range cfg.Atlas {
		tile, err := board.ParseTile(name)
		if err != nil {
			return nil, fmt.Errorf("sprites: atlas: %w", err)
		}
		if col < 0 {
			return nil, fmt.Errorf("sprites: atlas: column for %s must not be negative, got %d", tile, col)
		}
		if _, ok := columns.Get(tile); ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateTile, tile)
		}
		columns.Put(tile, col)
	}

	for _, t := range allTiles {
		if _, ok := columns.Get(t); !ok {
			return nil, fmt.Errorf("%w: %s", ErrIncompleteAtlas, t)
		}
	}

	return &Atlas{columns: columns, tileSize: cfg.TileSize}, nil
}

// TileSize returns the unscaled sprite edge length in pixels.
func (a *Atlas) TileSize() int {
	return a.tileSize
}

// Column returns the spritesheet column of tile.
func (a *Atlas) Column(t board.Tile) (int, bool) {
	return a.columns.Get(t)
}

// Source returns the region of the spritesheet holding tile's sprite.
func (a *Atlas) Source(t board.Tile) (image.Rectangle, bool) {
	col, ok := a.columns.Get(t)
	if !ok {
		return image.Rectangle{}, false
	}
	x := col * a.tileSize
	return image.Rect(x, 0, x+a.tileSize, a.tileSize), true
}

// Check verifies that every sprite lies inside a sheet with the given bounds.
func (a *Atlas) Check(sheet image.Rectangle) error {
	for _, t := range allTiles {
		src, _ := a.Source(t)
		src = src.Add(sheet.Min)
		if !src.In(sheet) {
			return fmt.Errorf("sprites: sprite for %s at %v lies outside sheet %v", t, src, sheet)
		}
	}
	return nil
}
