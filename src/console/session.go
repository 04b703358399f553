package console

import (
	"io"
	"os"
	"os/exec"
	"os/user"
	"strconv"
	"strings"
	"sync"
	"syscall"

	"github.com/creack/pty"
	"github.com/javanhut/RavenEditor/src/config"
)

// Session manages a pseudo-terminal connection to a shell
type Session struct {
	cmd      *exec.Cmd
	pty      *os.File
	mu       sync.Mutex
	exited   bool
	exitedMu sync.Mutex
}

// StartSession starts an interactive shell on a new pty
func StartSession(cfg config.ConsoleConfig, cols, rows uint16, dir string) (*Session, error) {
	shell := findShell(cfg)
	cmd := exec.Command(shell, "-i")

	// Create new session
	cmd.SysProcAttr = &syscall.SysProcAttr{
		Setsid: true,
	}

	// Build environment (inherit then override). The console panel has no
	// terminal emulator, so programs are asked not to draw.
	env := os.Environ()
	env = replaceEnv(env, "TERM", "dumb")
	env = replaceEnv(env, "NO_COLOR", "1")
	env = replaceEnv(env, "PAGER", "cat")
	env = replaceEnv(env, "RAVEN_EDITOR", "1")
	env = replaceEnv(env, "SHELL", shell)
	env = replaceEnv(env, "COLUMNS", strconv.Itoa(int(cols)))
	env = replaceEnv(env, "LINES", strconv.Itoa(int(rows)))
	for k, v := range cfg.Env {
		env = replaceEnv(env, k, v)
	}
	cmd.Env = env

	if info, err := os.Stat(dir); dir != "" && err == nil && info.IsDir() {
		cmd.Dir = dir
	} else if home, err := os.UserHomeDir(); err == nil {
		cmd.Dir = home
	}

	ptmx, err := pty.StartWithSize(cmd, &pty.Winsize{
		Cols: cols,
		Rows: rows,
	})
	if err != nil {
		return nil, err
	}

	session := &Session{
		cmd: cmd,
		pty: ptmx,
	}

	// Monitor for process exit
	go func() {
		cmd.Wait()
		session.exitedMu.Lock()
		session.exited = true
		session.exitedMu.Unlock()
	}()

	return session, nil
}

func replaceEnv(env []string, key, value string) []string {
	prefix := key + "="
	for i := len(env) - 1; i >= 0; i-- {
		if strings.HasPrefix(env[i], prefix) {
			env = append(env[:i], env[i+1:]...)
		}
	}
	return append(env, prefix+value)
}

// findShell picks the configured shell, then $SHELL, then the user's login
// shell, then the first common shell found
func findShell(cfg config.ConsoleConfig) string {
	candidates := []string{cfg.Shell, os.Getenv("SHELL")}
	if u, err := user.Current(); err == nil {
		candidates = append(candidates, getUserShell(u.Username))
	}
	candidates = append(candidates, "/bin/bash", "/usr/bin/bash", "/bin/zsh", "/usr/bin/zsh")
	for _, shell := range candidates {
		if shell == "" {
			continue
		}
		if _, err := os.Stat(shell); err == nil {
			return shell
		}
	}
	return "/bin/sh"
}

// getUserShell reads the user's shell from /etc/passwd
func getUserShell(username string) string {
	data, err := os.ReadFile("/etc/passwd")
	if err != nil {
		return ""
	}
	for _, line := range strings.Split(string(data), "\n") {
		fields := strings.Split(line, ":")
		if len(fields) >= 7 && fields[0] == username {
			return fields[6]
		}
	}
	return ""
}

// Read reads from the PTY
func (s *Session) Read(buf []byte) (int, error) {
	return s.pty.Read(buf)
}

// Write writes to the PTY
func (s *Session) Write(data []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pty.Write(data)
}

// Resize resizes the PTY
func (s *Session) Resize(cols, rows uint16) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return pty.Setsize(s.pty, &pty.Winsize{
		Cols: cols,
		Rows: rows,
	})
}

// HasExited returns true if the shell process has exited
func (s *Session) HasExited() bool {
	s.exitedMu.Lock()
	defer s.exitedMu.Unlock()
	return s.exited
}

// Close kills the shell and closes the PTY
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cmd.Process != nil {
		s.cmd.Process.Kill()
	}
	return s.pty.Close()
}

var _ io.ReadWriter = (*Session)(nil)
