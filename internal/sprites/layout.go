package sprites

import (
	"image"

	"github.com/vovakirdan/blockfall/internal/config"
)

// Layout places board cells on the scaled window.
type Layout struct {
	TileSize int
	Scale    int
	OffsetX  int // playfield origin on the backdrop, unscaled pixels
	OffsetY  int
}

// NewLayout derives the layout from the configuration.
func NewLayout(cfg config.Config) Layout {
	return Layout{
		TileSize: cfg.Sprites.TileSize,
		Scale:    cfg.Window.Scale,
		OffsetX:  cfg.Sprites.BoardOffsetX,
		OffsetY:  cfg.Sprites.BoardOffsetY,
	}
}

// CellSize returns the edge length of a drawn cell in window pixels.
func (l Layout) CellSize() int {
	return l.TileSize * l.Scale
}

// CellOrigin returns the window position of the top-left corner of cell (x, y).
func (l Layout) CellOrigin(x, y int) image.Point {
	return image.Pt(
		l.OffsetX*l.Scale+x*l.CellSize(),
		l.OffsetY*l.Scale+y*l.CellSize(),
	)
}

// CellRect returns the window rectangle covered by cell (x, y).
func (l Layout) CellRect(x, y int) image.Rectangle {
	o := l.CellOrigin(x, y)
	return image.Rectangle{Min: o, Max: o.Add(image.Pt(l.CellSize(), l.CellSize()))}
}
