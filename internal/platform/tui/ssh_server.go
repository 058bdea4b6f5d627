package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"
	"github.com/google/uuid"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/game"
	"github.com/vovakirdan/blockfall/internal/storage"
)

// SSHFrontend is the frontend name stored in session history for SSH players.
const SSHFrontend = "ssh"

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.blockfall/host_key.
	HostKeyPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// Seed fixes the piece sequence of every session. Zero means random.
	Seed int64
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		IdleTimeout: 30 * time.Minute,
	}
}

// SSHServer serves one terminal game per SSH connection.
type SSHServer struct {
	config SSHServerConfig
	game   config.Config
	server *ssh.Server
	store  *storage.Store
	logger *log.Logger

	mu      sync.Mutex
	games   map[ssh.Session]*sessionGame // running games, by connection
	pending sync.WaitGroup               // games not yet recorded
}

// sessionGame is the game of one connection, kept until it is recorded.
type sessionGame struct {
	id    string
	game  *game.Game
	start time.Time
}

// NewSSHServer creates a new SSH server. store may be nil, in which case
// sessions are not recorded.
func NewSSHServer(cfg SSHServerConfig, gameCfg config.Config, store *storage.Store, logger *log.Logger) (*SSHServer, error) {
	if err := gameCfg.Validate(); err != nil {
		return nil, fmt.Errorf("tui: %w", err)
	}

	srv := newSSHServer(cfg, gameCfg, store, logger)

	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("tui: cannot get home directory: %w", err)
		}
		hostKeyPath = filepath.Join(home, ".blockfall", "host_key")
	}

	if err := os.MkdirAll(filepath.Dir(hostKeyPath), 0o700); err != nil {
		return nil, fmt.Errorf("tui: cannot create host key directory: %w", err)
	}

	server, err := wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.recordingMiddleware,
			srv.loggingMiddleware,
		),
	)
	if err != nil {
		return nil, fmt.Errorf("tui: cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

func newSSHServer(cfg SSHServerConfig, gameCfg config.Config, store *storage.Store, logger *log.Logger) *SSHServer {
	return &SSHServer{
		config: cfg,
		game:   gameCfg,
		store:  store,
		logger: logger.WithPrefix("ssh"),
		games:  make(map[ssh.Session]*sessionGame),
	}
}

// teaHandler creates a game and its Bubble Tea model for each SSH session.
func (s *SSHServer) teaHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sess.Pty()
	if !ok {
		wish.Fatalln(sess, "blockfall needs an interactive terminal (ssh -t)")
		return nil, nil
	}

	g := game.New(game.Options{
		TickPeriod: s.game.Timing.Period(),
		Seed:       s.config.Seed,
	})
	model := NewModel(g, s.game.Timing.FrameInterval(), pty.Window.Width, pty.Window.Height)

	sg := &sessionGame{id: uuid.NewString(), game: g, start: time.Now()}
	s.pending.Add(1)
	s.mu.Lock()
	s.games[sess] = sg
	s.mu.Unlock()
	s.logger.Debug("game created", "session", sg.id, "user", sess.User())

	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
	}
}

// recordingMiddleware records the connection's game once the Bubble Tea
// program wrapped by next has exited, so the game is no longer stepped.
func (s *SSHServer) recordingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		next(sess)

		s.mu.Lock()
		sg, ok := s.games[sess]
		delete(s.games, sess)
		s.mu.Unlock()
		if !ok {
			return
		}
		defer s.pending.Done()
		s.record(sg.id, sess.User(), sg.game, time.Since(sg.start))
	}
}

// record stores the statistics of a finished SSH game.
func (s *SSHServer) record(id, user string, g *game.Game, d time.Duration) {
	if s.store == nil {
		return
	}

	snap := g.Snapshot()
	_, err := s.store.SaveSession(storage.SessionRecord{
		ID:           id,
		Frontend:     SSHFrontend,
		User:         user,
		Seed:         s.config.Seed,
		Ticks:        int(snap.Stats.Ticks),
		PiecesLocked: snap.Stats.PiecesLocked,
		BoardClears:  snap.Stats.BoardClears,
		ToppedOut:    snap.ToppedOut,
		Duration:     d,
	})
	if err != nil {
		s.logger.Warn("could not record session", "session", id, "error", err)
		return
	}
	s.logger.Debug("session recorded", "session", id, "ticks", snap.Stats.Ticks)
}

// loggingMiddleware logs SSH session events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		s.logger.Info("session started",
			"user", sess.User(),
			"remote", sess.RemoteAddr().String(),
		)
		next(sess)
		s.logger.Info("session ended",
			"user", sess.User(),
			"remote", sess.RemoteAddr().String(),
		)
	}
}

// ListenAndServe starts the SSH server and blocks until ctx ends, then shuts
// down gracefully.
func (s *SSHServer) ListenAndServe(ctx context.Context) error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	errCh := make(chan error, 1)
	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("tui: SSH server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the server. Connections still open after the
// grace period are closed, then it waits for their games to be recorded so
// the caller can close the store.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err := s.server.Shutdown(ctx)
	if errors.Is(err, context.DeadlineExceeded) {
		s.logger.Warn("closing sessions still open")
		err = s.server.Close()
	}

	if !s.waitRecorded(5 * time.Second) {
		s.logger.Warn("some sessions were not recorded before shutdown")
	}
	return err
}

// waitRecorded blocks until every started game has been recorded or the
// timeout passes. It reports whether all games were recorded.
func (s *SSHServer) waitRecorded(timeout time.Duration) bool {
	done := make(chan struct{})
	go func() {
		s.pending.Wait()
		close(done)
	}()

	select {
	case <-done:
		return true
	case <-time.After(timeout):
		return false
	}
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}
