package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/playcell/internal/metrics"
	"github.com/vovakirdan/playcell/internal/registry"
	"github.com/vovakirdan/playcell/internal/render"
	"github.com/vovakirdan/playcell/internal/runner"
	"github.com/vovakirdan/playcell/internal/storage"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.playcell/host_key.
	HostKeyPath string

	// DBPath is the path to the state database.
	DBPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// Settings is the caller layer applied to every session's runner.
	Settings runner.Settings
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		DBPath:      "~/.playcell/state.db",
		IdleTimeout: 30 * time.Minute,
	}
}

// SSHServer wraps a Wish SSH server running programs for remote sessions.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	store  *storage.Store
	logger *log.Logger
}

// NewSSHServer creates a new SSH server with the given configuration.
func NewSSHServer(cfg SSHServerConfig) (*SSHServer, error) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "playcell-ssh",
	})

	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		logger.Warn("could not open state database", "error", err)
		// Continue without persistence
	}

	srv := &SSHServer{
		config: cfg,
		store:  store,
		logger: logger,
	}

	// Resolve host key path
	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return nil, fmt.Errorf("cannot get home directory: %w", homeErr)
		}
		hostKeyPath = filepath.Join(home, ".playcell", "host_key")
	}

	hostKeyDir := filepath.Dir(hostKeyPath)
	if mkdirErr := os.MkdirAll(hostKeyDir, 0o700); mkdirErr != nil {
		return nil, fmt.Errorf("cannot create host key directory: %w", mkdirErr)
	}

	opts := []ssh.Option{
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
		),
	}

	server, err := wish.NewServer(opts...)
	if err != nil {
		if store != nil {
			store.Close()
		}
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// teaHandler creates a Bubble Tea program for each SSH session. The session
// command may name a program to run directly; otherwise the picker is shown.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sshSession.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sshSession.User())
		return nil, nil
	}

	programID := ""
	if cmd := sshSession.Command(); len(cmd) > 0 {
		programID = cmd[0]
	}

	model := NewSessionModel(SessionConfig{
		Store:     s.store,
		Settings:  s.config.Settings,
		ProgramID: programID,
		Cols:      pty.Window.Width,
		Rows:      pty.Window.Height,
		Logger:    s.logger,
	})

	return model, []tea.ProgramOption{tea.WithAltScreen()}
}

// loggingMiddleware logs SSH session events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		s.logger.Info("session started",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
		next(sshSession)
		s.logger.Info("session ended",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
	}
}

// ListenAndServe starts the SSH server and blocks until shutdown.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			s.logger.Error("server error", "error", err)
		}
	}()

	<-done
	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if s.store != nil {
		s.store.Close()
	}

	return s.server.Shutdown(ctx)
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}

// SessionConfig configures one remote session.
type SessionConfig struct {
	Store     *storage.Store
	Settings  runner.Settings
	ProgramID string // run directly when non-empty, otherwise show the picker
	Cols      int
	Rows      int
	Logger    *log.Logger
}

// SessionModel manages the remote session flow: picker -> program -> picker.
type SessionModel struct {
	cfg       SessionConfig
	menu      MenuModel
	run       *runner.Runner
	inProgram bool
	quitting  bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(cfg SessionConfig) SessionModel {
	m := SessionModel{
		cfg:  cfg,
		menu: NewMenuModel(registry.List()),
	}
	if cfg.ProgramID != "" && registry.Exists(cfg.ProgramID) {
		m.startProgram(cfg.ProgramID)
	}
	return m
}

// startProgram boots a runner for the given program id.
func (m *SessionModel) startProgram(id string) {
	prog, err := registry.Create(id)
	if err != nil {
		return
	}

	run, err := runner.New(prog, m.cfg.Settings, runner.Options{
		Metrics:     metrics.Default(),
		SurfaceCols: m.cfg.Cols,
		SurfaceRows: m.cfg.Rows,
		Renderer:    render.New(render.ParseKind(m.cfg.Settings.Renderer)),
		Store:       m.cfg.Store,
		StateKey:    id,
		Logger:      m.cfg.Logger,
	})
	if err != nil {
		if m.cfg.Logger != nil {
			m.cfg.Logger.Error("cannot start program", "program", id, "error", err)
		}
		return
	}

	m.run = run
	m.inProgram = true
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	if m.inProgram {
		return signalCmd(m.run.Interval())
	}
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.cfg.Cols = wsm.Width
		m.cfg.Rows = wsm.Height
	}

	if m.inProgram {
		return m.updateProgram(msg)
	}
	return m.updateMenu(msg)
}

// updateMenu handles updates while the picker is showing.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.quitting {
		m.quitting = true
		return m, tea.Quit
	}

	if id := m.menu.Choice(); id != "" {
		m.startProgram(id)
		if m.inProgram {
			// Drop the menu's pending quit; the session continues.
			return m, signalCmd(m.run.Interval())
		}
		m.menu = NewMenuModel(registry.List())
		return m, nil
	}

	return m, cmd
}

// updateProgram handles updates while a program is running.
func (m SessionModel) updateProgram(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			m.quitting = true
			return m, tea.Quit
		case "esc":
			// Back to the picker.
			m.inProgram = false
			m.run = nil
			m.menu = NewMenuModel(registry.List())
			return m, m.menu.Init()
		}
		return m, nil

	case tea.MouseMsg:
		forwardMouse(m.run, msg)
		return m, nil

	case tea.WindowSizeMsg:
		m.run.SetSurfaceSize(msg.Width, msg.Height)
		return m, nil

	case SignalMsg:
		m.run.Frame(time.Time(msg))
		if m.run.Done() {
			m.inProgram = false
			m.run = nil
			m.menu = NewMenuModel(registry.List())
			return m, m.menu.Init()
		}
		return m, signalCmd(m.run.Interval())
	}

	return m, nil
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}
	if m.inProgram {
		return m.run.Output()
	}
	return m.menu.View()
}
