package tui

import (
	"io"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/storage"
)

// fakeSession is an interactive SSH session with only the methods the game
// handlers call.
type fakeSession struct {
	ssh.Session
	user string
}

func (f *fakeSession) User() string { return f.user }

func (f *fakeSession) Pty() (ssh.Pty, <-chan ssh.Window, bool) {
	return ssh.Pty{Term: "xterm", Window: ssh.Window{Width: 80, Height: 24}}, nil, true
}

func newTestSSHServer(t *testing.T, seed int64) (*SSHServer, *storage.Store) {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	srv := newSSHServer(SSHServerConfig{Seed: seed}, config.DefaultConfig(), store, log.New(io.Discard))
	return srv, store
}

func TestSSHSessionRecordedAfterProgramExits(t *testing.T) {
	srv, store := newTestSSHServer(t, 7)
	sess := &fakeSession{user: "carol"}

	var final Model
	handle := srv.recordingMiddleware(func(s ssh.Session) {
		model, opts := srv.teaHandler(s)
		require.NotNil(t, model)
		assert.NotEmpty(t, opts)

		m, ok := model.(Model)
		require.True(t, ok)
		for range 3 {
			next, _ := m.Update(TickMsg(time.Now()))
			m = next.(Model)
		}

		// Nothing is written while the game is still running
		recs, err := store.RecentSessions("", 10)
		require.NoError(t, err)
		assert.Empty(t, recs)

		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
		final = next.(Model)
	})
	handle(sess)

	recs, err := store.RecentSessions(SSHFrontend, 10)
	require.NoError(t, err)
	require.Len(t, recs, 1)

	snap := final.game.Snapshot()
	assert.Equal(t, int(snap.Stats.Ticks), recs[0].Ticks)
	assert.Equal(t, snap.Stats.PiecesLocked, recs[0].PiecesLocked)
	assert.Equal(t, "carol", recs[0].User)
	assert.Equal(t, int64(7), recs[0].Seed)

	assert.Empty(t, srv.games)
	assert.True(t, srv.waitRecorded(time.Second))
}

func TestSSHSessionWithoutGameIsNotRecorded(t *testing.T) {
	srv, store := newTestSSHServer(t, 0)

	srv.recordingMiddleware(func(ssh.Session) {})(&fakeSession{user: "dave"})

	recs, err := store.RecentSessions("", 10)
	require.NoError(t, err)
	assert.Empty(t, recs)
	assert.True(t, srv.waitRecorded(time.Second))
}

func TestSSHSessionsRecordedSeparately(t *testing.T) {
	srv, store := newTestSSHServer(t, 0)

	a, b := &fakeSession{user: "a"}, &fakeSession{user: "b"}
	_, _ = srv.teaHandler(a)
	_, _ = srv.teaHandler(b)
	assert.Len(t, srv.games, 2)
	assert.False(t, srv.waitRecorded(10*time.Millisecond), "games still running")

	srv.recordingMiddleware(func(ssh.Session) {})(a)
	srv.recordingMiddleware(func(ssh.Session) {})(b)

	recs, err := store.RecentSessions(SSHFrontend, 10)
	require.NoError(t, err)
	assert.Len(t, recs, 2)
	assert.True(t, srv.waitRecorded(time.Second))
}
