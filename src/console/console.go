// Package console runs a shell behind the console panel.
package console

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"sync"

	"github.com/javanhut/RavenEditor/src/config"
)

// ErrNotRunning is returned when input is sent without a live shell.
var ErrNotRunning = errors.New("console: shell not running")

// Console owns the shell session feeding the console panel. It is started
// lazily the first time the panel is drawn.
type Console struct {
	cfg    config.ConsoleConfig
	buf    *Buffer
	logger *slog.Logger

	mu      sync.Mutex
	session *Session
	started bool
	cols    uint16
	rows    uint16
}

// New returns a console that is not running yet.
func New(cfg config.ConsoleConfig, logger *slog.Logger) *Console {
	if logger == nil {
		logger = slog.Default()
	}
	return &Console{
		cfg:    cfg,
		buf:    NewBuffer(cfg.Scrollback),
		logger: logger,
		cols:   80,
		rows:   24,
	}
}

// Buffer returns the scrollback shared with the reader goroutine.
func (c *Console) Buffer() *Buffer {
	return c.buf
}

// Running reports whether a shell is attached and alive.
func (c *Console) Running() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session != nil && !c.session.HasExited()
}

// Started reports whether a shell was ever spawned, alive or not.
func (c *Console) Started() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.started
}

// Exited reports whether the last spawned shell is gone.
func (c *Console) Exited() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.started && (c.session == nil || c.session.HasExited())
}

// Start spawns the shell if none is running. The pty of an exited shell is
// closed before the new one replaces it.
func (c *Console) Start() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.session != nil {
		if !c.session.HasExited() {
			return nil
		}
		if err := c.session.Close(); err != nil && !errors.Is(err, os.ErrClosed) {
			c.logger.Warn("console close", "err", err)
		}
		c.session = nil
	}
	dir, _ := os.Getwd()
	s, err := StartSession(c.cfg, c.cols, c.rows, dir)
	if err != nil {
		return err
	}
	c.session, c.started = s, true
	c.logger.Info("console started", "cols", c.cols, "rows", c.rows)
	go c.pump(s)
	return nil
}

// pump copies shell output into the buffer until the pty closes.
func (c *Console) pump(s *Session) {
	_, err := io.Copy(c.buf, s)
	if err != nil && !errors.Is(err, os.ErrClosed) {
		// Linux reports EIO on the master once the shell exits.
		c.logger.Debug("console reader stopped", "err", err)
	}
	c.buf.Write([]byte("\n[shell exited]\n"))
}

// Send writes raw input to the shell.
func (c *Console) Send(p []byte) error {
	c.mu.Lock()
	s := c.session
	c.mu.Unlock()
	if s == nil || s.HasExited() {
		return ErrNotRunning
	}
	_, err := s.Write(p)
	return err
}

// Resize updates the pty size when the panel changes size.
func (c *Console) Resize(cols, rows uint16) {
	if cols == 0 || rows == 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if cols == c.cols && rows == c.rows {
		return
	}
	c.cols, c.rows = cols, rows
	if c.session != nil && !c.session.HasExited() {
		if err := c.session.Resize(cols, rows); err != nil {
			c.logger.Warn("console resize", "err", err)
		}
	}
}

// Close kills the shell.
func (c *Console) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.session == nil {
		return nil
	}
	err := c.session.Close()
	c.session = nil
	return err
}
