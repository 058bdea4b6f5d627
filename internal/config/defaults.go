package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/blockfall.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration. It matches the embedded
// defaults/blockfall.yaml and is used if that file cannot be parsed.
func DefaultConfig() Config {
	return Config{
		Window: WindowConfig{
			Title:  "Blockfall",
			Width:  256,
			Height: 224,
			Scale:  4,
		},
		Sprites: SpriteConfig{
			TileSize:     8,
			BoardOffsetX: 96,
			BoardOffsetY: 41,
			Atlas: map[string]int{
				"I":     0,
				"O":     1,
				"T":     2,
				"S":     3,
				"Z":     4,
				"L":     5,
				"J":     6,
				"empty": 7,
			},
		},
		Timing: TimingConfig{
			TickPeriod: time.Second,
			FrameRate:  60,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
