package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/brick-game/internal/config"
	"github.com/vovakirdan/brick-game/internal/core"
	"github.com/vovakirdan/brick-game/internal/games/tetris"
	"github.com/vovakirdan/brick-game/internal/storage"
)

const shutdownTimeout = 10 * time.Second

// SSHServerConfig configures `brickgame serve`.
type SSHServerConfig struct {
	Address     string        // host:port
	HostKeyPath string        // empty means ~/.brickgame/host_key
	IdleTimeout time.Duration // disconnect after this long without input
	Game        config.TetrisConfig
}

// DefaultSSHServerConfig listens on :23234 with a 30 minute idle timeout.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		IdleTimeout: 30 * time.Minute,
		Game:        config.DefaultTetrisConfig(),
	}
}

// SSHServer hands every SSH connection its own game. Sessions share the
// persistence backend and nothing else.
type SSHServer struct {
	cfg    SSHServerConfig
	srv    *ssh.Server
	store  *storage.Store
	keeper storage.HighScoreStore
	logger *log.Logger
	active atomic.Int64
}

// NewSSHServer prepares the server. A storage backend that cannot be opened
// is logged and the server runs without persistence.
func NewSSHServer(cfg SSHServerConfig, logger *log.Logger) (*SSHServer, error) {
	keyPath, err := hostKeyPath(cfg.HostKeyPath)
	if err != nil {
		return nil, err
	}

	s := &SSHServer{cfg: cfg, logger: logger}
	s.store, s.keeper, err = storage.OpenBackend(cfg.Game.Storage, tetris.GameID)
	if err != nil {
		logger.Warn("score storage unavailable", "backend", cfg.Game.Storage.Backend, "err", err)
	}

	s.srv, err = wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(keyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(s.newSession),
			activeterm.Middleware(),
			s.trackSessions,
		),
	)
	if err != nil {
		s.closeStore()
		return nil, fmt.Errorf("tui: cannot create SSH server: %w", err)
	}
	return s, nil
}

// hostKeyPath resolves the key location and makes sure its directory exists.
func hostKeyPath(path string) (string, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("tui: cannot locate home directory: %w", err)
		}
		path = filepath.Join(home, ".brickgame", "host_key")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return "", fmt.Errorf("tui: cannot create host key directory: %w", err)
	}
	return path, nil
}

// newSession builds the model for one connection.
func (s *SSHServer) newSession(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, _ := sess.Pty()

	rt := core.RuntimeConfig{
		ScreenW:  pty.Window.Width,
		ScreenH:  pty.Window.Height,
		TickRate: s.cfg.Game.TickRate,
		Seed:     time.Now().UnixNano(),
	}

	rec := NewRecorder(tetris.GameID, s.keeper, s.store, s.logger.With("user", sess.User()))
	game := NewTetris(rec, rt.Seed)
	hold := core.NewHoldTracker(s.cfg.Game.Hold.Threshold, s.cfg.Game.Hold.Gap())

	return NewModel(game, rec, rt, hold), []tea.ProgramOption{tea.WithAltScreen()}
}

// trackSessions logs connects and disconnects with the live session count.
func (s *SSHServer) trackSessions(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		start := time.Now()
		n := s.active.Add(1)
		s.logger.Info("connect", "user", sess.User(), "remote", sess.RemoteAddr().String(), "sessions", n)

		next(sess)

		n = s.active.Add(-1)
		s.logger.Info("disconnect", "user", sess.User(), "played", time.Since(start).Round(time.Second), "sessions", n)
	}
}

// Serve accepts connections until ctx is done, then shuts down gracefully.
func (s *SSHServer) Serve(ctx context.Context) error {
	s.logger.Info("listening", "address", s.cfg.Address)

	errc := make(chan error, 1)
	go func() {
		errc <- s.srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		s.closeStore()
		if errors.Is(err, ssh.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		s.logger.Info("shutting down", "sessions", s.active.Load())
		return s.Shutdown()
	}
}

// Shutdown stops accepting connections, waits for running sessions up to a
// timeout and closes the store.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	err := s.srv.Shutdown(ctx)
	s.closeStore()
	return err
}

func (s *SSHServer) closeStore() {
	if s.store != nil {
		s.store.Close()
		s.store = nil
	}
}

// Addr returns the configured listen address.
func (s *SSHServer) Addr() string {
	return s.cfg.Address
}
