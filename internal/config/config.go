// Package config provides YAML-based configuration loading for Blockfall.
// A Config is built once at startup and passed by value to the game and the
// frontends; nothing reads layout or timing from package-level state.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidValue is wrapped by every Validate failure.
var ErrInvalidValue = errors.New("config: invalid value")

// Config is the complete game configuration.
type Config struct {
	Window  WindowConfig `yaml:"window"`
	Sprites SpriteConfig `yaml:"sprites"`
	Timing  TimingConfig `yaml:"timing"`
}

// WindowConfig defines the graphics window. Width and Height are the
// unscaled backdrop size; the window is Width*Scale by Height*Scale pixels.
type WindowConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Scale  int    `yaml:"scale"`
}

// SpriteConfig defines the spritesheet layout and where the playfield sits
// on the backdrop.
type SpriteConfig struct {
	TileSize     int            `yaml:"tile_size"`
	BoardOffsetX int            `yaml:"board_offset_x"`
	BoardOffsetY int            `yaml:"board_offset_y"`
	Atlas        map[string]int `yaml:"atlas"` // tile name -> spritesheet column
}

// TimingConfig defines how fast the game advances and renders.
type TimingConfig struct {
	TickPeriod time.Duration `yaml:"tick_period"`
	FrameRate  int           `yaml:"frame_rate"`
	Speed      SpeedPreset   `yaml:"speed"`
}

// ScaledSize returns the window size in screen pixels.
func (w WindowConfig) ScaledSize() (int, int) {
	return w.Width * w.Scale, w.Height * w.Scale
}

// Period returns the effective drop interval: the speed preset when one is
// set, otherwise TickPeriod.
func (t TimingConfig) Period() time.Duration {
	if p, ok := PeriodForPreset(t.Speed); ok {
		return p
	}
	return t.TickPeriod
}

// FrameInterval returns the time between two rendered frames.
func (t TimingConfig) FrameInterval() time.Duration {
	if t.FrameRate <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(t.FrameRate)
}

// Validate checks every numeric field the graphics layer and the loop depend on.
func (c Config) Validate() error {
	positive := []struct {
		name  string
		value int
	}{
		{"window.width", c.Window.Width},
		{"window.height", c.Window.Height},
		{"window.scale", c.Window.Scale},
		{"sprites.tile_size", c.Sprites.TileSize},
		{"timing.frame_rate", c.Timing.FrameRate},
	}
	for _, f := range positive {
		if f.value <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %d", ErrInvalidValue, f.name, f.value)
		}
	}

	if c.Sprites.BoardOffsetX < 0 || c.Sprites.BoardOffsetY < 0 {
		return fmt.Errorf("%w: sprites board offset must not be negative, got (%d, %d)",
			ErrInvalidValue, c.Sprites.BoardOffsetX, c.Sprites.BoardOffsetY)
	}
	seen := make(map[string]string, len(c.Sprites.Atlas))
	for name, col := range c.Sprites.Atlas {
		if col < 0 {
			return fmt.Errorf("%w: sprites.atlas.%s must not be negative, got %d", ErrInvalidValue, name, col)
		}
		folded := strings.ToLower(name)
		if other, ok := seen[folded]; ok {
			return fmt.Errorf("%w: sprites.atlas maps %s and %s to the same tile", ErrInvalidValue, other, name)
		}
		seen[folded] = name
	}

	if c.Timing.Speed != "" {
		if _, ok := PeriodForPreset(c.Timing.Speed); !ok {
			return fmt.Errorf("%w: unknown timing.speed %q", ErrInvalidValue, c.Timing.Speed)
		}
	}
	if c.Timing.Period() <= 0 {
		return fmt.Errorf("%w: timing.tick_period must be positive, got %s", ErrInvalidValue, c.Timing.TickPeriod)
	}
	return nil
}
