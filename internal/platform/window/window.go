// Package window runs the game in a desktop window using Ebitengine,
// drawing tiles from the embedded spritesheet.
package window

import (
	"context"
	"errors"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/game"
	"github.com/vovakirdan/blockfall/internal/platform/gfx"
	"github.com/vovakirdan/blockfall/internal/registry"
)

func init() {
	registry.Register("window", func() registry.Frontend {
		return &Frontend{}
	})
}

// Frontend is the sprite-rendered window frontend.
type Frontend struct{}

// Name returns the frontend identifier.
func (f *Frontend) Name() string { return "window" }

// Description returns a one-line summary.
func (f *Frontend) Description() string { return "Desktop window with sprite graphics" }

// Run opens the window and blocks until the player quits, ctx ends or the
// loop fails. Setup failures are *gfx.Error values.
func (f *Frontend) Run(ctx context.Context, s registry.Session) error {
	if err := s.Config.Validate(); err != nil {
		if errors.Is(err, config.ErrInvalidValue) {
			return gfx.InvalidInteger("window configuration", err)
		}
		return gfx.Generic("window configuration", err)
	}

	r, err := newRenderer(s.Config)
	if err != nil {
		return err
	}

	w, h := s.Config.Window.ScaledSize()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(s.Config.Window.Title)
	ebiten.SetTPS(s.Config.Timing.FrameRate)
	ebiten.SetWindowClosingHandled(true)

	loop := &loop{
		ctx:      ctx,
		game:     s.Game,
		renderer: r,
		width:    w,
		height:   h,
		input:    core.NewInputFrame(),
	}

	s.Logger.Info("window opened", "width", w, "height", h, "period", s.Game.TickPeriod())

	runErr := ebiten.RunGame(loop)
	switch {
	case loop.err != nil:
		return loop.err
	case runErr != nil:
		return gfx.WindowBuild(runErr)
	}

	s.Logger.Info("window closed", "reason", loop.reason)
	return nil
}

// loop implements ebiten.Game. Ebitengine calls Update at the configured TPS
// and Draw once per displayed frame.
type loop struct {
	ctx      context.Context
	game     *game.Game
	renderer *renderer
	width    int
	height   int
	input    core.InputFrame
	err      error
	reason   string
}

// Update drains input, advances the game when its interval fires and stops
// the run loop on quit.
func (l *loop) Update() error {
	select {
	case <-l.ctx.Done():
		l.reason = "cancelled"
		return ebiten.Termination
	default:
	}

	l.input.Clear()
	pollInput(&l.input)
	if ebiten.IsWindowBeingClosed() {
		l.input.Push(core.ActionQuit)
	}

	res, err := l.game.Frame(l.input)
	if err != nil {
		l.err = err
		return err
	}
	if res.Quit {
		l.reason = "quit"
		return ebiten.Termination
	}
	return nil
}

// Draw renders the current snapshot.
func (l *loop) Draw(screen *ebiten.Image) {
	l.renderer.Draw(screen, l.game.Snapshot())
}

// Layout keeps a fixed logical screen matching the scaled window.
func (l *loop) Layout(_, _ int) (int, int) {
	return l.width, l.height
}
