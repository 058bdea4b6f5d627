package sprites

import (
	"bytes"
	_ "embed"
	"fmt"
	"image"
	"image/png"
)

//go:embed assets/tiles.png
var tilesPNG []byte

//go:embed assets/playfield.png
var playfieldPNG []byte

// Sheets holds the decoded embedded images.
type Sheets struct {
	Tiles     image.Image // one row of square tile sprites
	Playfield image.Image // static backdrop, window-sized before scaling
}

// Decode decodes the embedded tile spritesheet and playfield backdrop.
func Decode() (Sheets, error) {
	tiles, err := png.Decode(bytes.NewReader(tilesPNG))
	if err != nil {
		return Sheets{}, fmt.Errorf("sprites: decode tiles: %w", err)
	}
	playfield, err := png.Decode(bytes.NewReader(playfieldPNG))
	if err != nil {
		return Sheets{}, fmt.Errorf("sprites: decode playfield: %w", err)
	}
	return Sheets{Tiles: tiles, Playfield: playfield}, nil
}
