package console

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/javanhut/RavenEditor/src/config"
)

// shortLivedShell configures a shell that exits right after it starts.
func shortLivedShell(t *testing.T) config.ConsoleConfig {
	t.Helper()
	if _, err := os.Stat("/bin/true"); err != nil {
		t.Skip("/bin/true not available")
	}
	cfg := config.DefaultConfig().Console
	cfg.Shell = "/bin/true"
	return cfg
}

func TestStartClosesExitedSession(t *testing.T) {
	c := New(shortLivedShell(t), nil)
	t.Cleanup(func() { c.Close() })
	assert.False(t, c.Started())
	assert.False(t, c.Exited())

	require.NoError(t, c.Start())
	assert.True(t, c.Started())
	require.Eventually(t, c.Exited, 5*time.Second, 10*time.Millisecond)
	assert.ErrorIs(t, c.Send([]byte("ls\r")), ErrNotRunning)

	c.mu.Lock()
	old := c.session
	c.mu.Unlock()

	require.NoError(t, c.Start())
	_, err := old.pty.Write([]byte("x"))
	assert.ErrorIs(t, err, os.ErrClosed)

	c.mu.Lock()
	assert.NotSame(t, old, c.session)
	c.mu.Unlock()
}

func TestStartKeepsLiveSession(t *testing.T) {
	cfg := config.DefaultConfig().Console
	if _, err := os.Stat("/bin/sh"); err != nil {
		t.Skip("/bin/sh not available")
	}
	cfg.Shell = "/bin/sh"
	c := New(cfg, nil)
	t.Cleanup(func() { c.Close() })

	require.NoError(t, c.Start())
	c.mu.Lock()
	first := c.session
	c.mu.Unlock()
	require.True(t, c.Running())

	require.NoError(t, c.Start())
	c.mu.Lock()
	assert.Same(t, first, c.session)
	c.mu.Unlock()

	require.NoError(t, c.Close())
	assert.True(t, c.Exited())
}
