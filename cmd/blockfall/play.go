package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/game"
	"github.com/vovakirdan/blockfall/internal/registry"
	"github.com/vovakirdan/blockfall/internal/storage"
)

var (
	flagFrontend string
	flagNoRecord bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game on the selected frontend.

Controls:
  Left/Right  - Move the falling cell
  Delete      - Clear the board
  Escape      - Quit (closing the window also quits)

Speed presets:
  slow    - one drop per second
  normal  - one drop every 700ms
  fast    - one drop every 350ms

Examples:
  blockfall play
  blockfall play --frontend terminal
  blockfall play --speed fast --seed 42
  blockfall play --config ./my-blockfall.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVarP(&flagFrontend, "frontend", "f", "window", "Frontend to play on (see 'blockfall frontends')")
	playCmd.Flags().BoolVar(&flagNoRecord, "no-record", false, "Do not record this session in the history database")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	if !registry.Exists(flagFrontend) {
		return fmt.Errorf("unknown frontend %q, run 'blockfall frontends' to see available frontends", flagFrontend)
	}

	frontend, err := registry.Create(flagFrontend)
	if err != nil {
		return err
	}

	// The terminal frontend owns the screen, so it only logs to a file
	logger, closeLog, err := newLogger(frontend.Name() != "terminal")
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := loadConfig(logger)
	if err != nil {
		return err
	}

	rt := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	}
	rt.Seed = flagSeed
	rt.User = currentUser()

	g := game.New(game.Options{
		TickPeriod: cfg.Timing.Period(),
		Seed:       rt.Seed,
	})

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	start := time.Now()
	runErr := frontend.Run(ctx, registry.Session{
		Game:    g,
		Config:  cfg,
		Runtime: rt,
		Logger:  logger.WithPrefix(frontend.Name()),
	})

	if !flagNoRecord {
		recordSession(logger, frontend.Name(), rt, g, time.Since(start))
	}

	return runErr
}

// recordSession stores the finished session. Failures are logged, never fatal.
func recordSession(logger *log.Logger, frontend string, rt core.RuntimeConfig, g *game.Game, d time.Duration) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open history database", "error", err)
		return
	}
	defer store.Close()

	snap := g.Snapshot()
	id, err := store.SaveSession(storage.SessionRecord{
		Frontend:     frontend,
		User:         rt.User,
		Seed:         rt.Seed,
		Ticks:        int(snap.Stats.Ticks),
		PiecesLocked: snap.Stats.PiecesLocked,
		BoardClears:  snap.Stats.BoardClears,
		ToppedOut:    snap.ToppedOut,
		Duration:     d,
	})
	if err != nil {
		logger.Warn("could not record session", "error", err)
		return
	}
	logger.Info("session recorded", "id", id, "pieces", snap.Stats.PiecesLocked, "duration", d.Round(time.Second))
}
