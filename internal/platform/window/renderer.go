package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/kamstrup/intmap"

	"github.com/vovakirdan/blockfall/internal/board"
	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/game"
	"github.com/vovakirdan/blockfall/internal/platform/gfx"
	"github.com/vovakirdan/blockfall/internal/sprites"
)

// renderer draws snapshots with the embedded sprites.
type renderer struct {
	backdrop *ebiten.Image
	tiles    *intmap.Map[board.Tile, *ebiten.Image]
	layout   sprites.Layout
}

func newRenderer(cfg config.Config) (*renderer, error) {
	sheets, err := sprites.Decode()
	if err != nil {
		return nil, gfx.Generic("load textures", err)
	}

	atlas, err := sprites.NewAtlas(cfg.Sprites)
	if err != nil {
		return nil, gfx.Generic("build sprite atlas", err)
	}
	if err := atlas.Check(sheets.Tiles.Bounds()); err != nil {
		return nil, gfx.InvalidInteger("sprite atlas", err)
	}

	sheet := ebiten.NewImageFromImage(sheets.Tiles)
	tiles := intmap.New[board.Tile, *ebiten.Image](len(board.Kinds) + 1)
	for _, t := range append([]board.Tile{board.Empty}, board.Kinds[:]...) {
		src, _ := atlas.Source(t)
		tiles.Put(t, sheet.SubImage(src).(*ebiten.Image))
	}

	return &renderer{
		backdrop: ebiten.NewImageFromImage(sheets.Playfield),
		tiles:    tiles,
		layout:   sprites.NewLayout(cfg),
	}, nil
}

// Draw clears the frame, draws the backdrop, every board cell (empty cells
// use the blank sprite), then the active piece.
func (r *renderer) Draw(screen *ebiten.Image, snap game.Snapshot) {
	screen.Clear()

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(r.layout.Scale), float64(r.layout.Scale))
	screen.DrawImage(r.backdrop, op)

	snap.Board.Each(func(x, y int, t board.Tile) {
		r.drawTile(screen, x, y, t)
	})

	if snap.State.IsDropping() {
		r.drawTile(screen, snap.State.Pos.X, snap.State.Pos.Y, snap.State.Tile)
	}

	if snap.ToppedOut {
		o := r.layout.CellOrigin(0, board.Height)
		ebitenutil.DebugPrintAt(screen, "TOPPED OUT - press Delete to clear", o.X, o.Y+4)
	}
}

func (r *renderer) drawTile(screen *ebiten.Image, x, y int, t board.Tile) {
	img, ok := r.tiles.Get(t)
	if !ok {
		return
	}
	o := r.layout.CellOrigin(x, y)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(r.layout.Scale), float64(r.layout.Scale))
	op.GeoM.Translate(float64(o.X), float64(o.Y))
	screen.DrawImage(img, op)
}
