package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/game"
	"github.com/vovakirdan/blockfall/internal/registry"
)

func init() {
	registry.Register("terminal", func() registry.Frontend {
		return &Frontend{}
	})
}

// Model is the Bubble Tea model for one game. Key presses are queued into an
// input frame and applied, together with any elapsed tick, on the next frame.
type Model struct {
	game     *game.Game
	screen   *core.Screen
	keys     KeyMap
	help     help.Model
	input    core.InputFrame
	frame    time.Duration
	quitting bool
	reason   string
	err      error
}

// NewModel creates a model drawing g on a w x h terminal, advancing once per
// frame interval.
func NewModel(g *game.Game, frame time.Duration, w, h int) Model {
	if frame <= 0 {
		frame = time.Second / 60
	}
	return Model{
		game:   g,
		screen: core.NewScreen(w, max(h-1, 1)),
		keys:   DefaultKeyMap(),
		help:   help.New(),
		input:  core.NewInputFrame(),
		frame:  frame,
	}
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.frame)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// Last line is reserved for the help bar
		m.screen.Resize(msg.Width, max(msg.Height-1, 1))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.step(tickCmd(m.frame))
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)
	if action == core.ActionNone {
		return m, nil
	}
	m.input.Push(action)

	// Quit is applied right away; the pending tick keeps the loop alive
	// for everything else.
	if action == core.ActionQuit {
		return m.step(nil)
	}
	return m, nil
}

// step runs one game frame with the queued input.
func (m Model) step(next tea.Cmd) (tea.Model, tea.Cmd) {
	res, err := m.game.Frame(m.input)
	m.input.Clear()

	switch {
	case err != nil:
		m.err = err
		m.quitting = true
		m.reason = "error"
		return m, tea.Quit
	case res.Quit:
		m.quitting = true
		m.reason = "quit"
		return m, tea.Quit
	}
	return m, next
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	DrawSnapshot(m.screen, m.game.Snapshot())
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Err returns the error that ended the loop, if any.
func (m Model) Err() error { return m.err }

// Reason reports why the loop ended ("quit", "error" or "" while running).
func (m Model) Reason() string { return m.reason }

// Frontend runs the game in the local terminal.
type Frontend struct{}

// Name returns the frontend identifier.
func (f *Frontend) Name() string { return "terminal" }

// Description returns a one-line summary.
func (f *Frontend) Description() string { return "ANSI terminal (Bubble Tea)" }

// Run starts the Bubble Tea program on the alternate screen and blocks until
// the player quits or ctx ends.
func (f *Frontend) Run(ctx context.Context, s registry.Session) error {
	model := NewModel(s.Game, s.Config.Timing.FrameInterval(), s.Runtime.ScreenW, s.Runtime.ScreenH)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	s.Logger.Info("terminal opened", "width", s.Runtime.ScreenW, "height", s.Runtime.ScreenH, "period", s.Game.TickPeriod())

	final, err := p.Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			s.Logger.Info("terminal closed", "reason", "cancelled")
			return nil
		}
		return fmt.Errorf("tui: %w", err)
	}

	if fm, ok := final.(Model); ok {
		if fm.Err() != nil {
			return fm.Err()
		}
		s.Logger.Info("terminal closed", "reason", fm.Reason())
	}
	return nil
}
