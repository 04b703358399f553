package console

import (
	"bytes"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/charmbracelet/x/ansi"
)

// Buffer is the scrollback of the console panel. Shell output is written to
// it from the pty reader goroutine; escape sequences are dropped since the
// panel draws plain monospace text.
type Buffer struct {
	mu      sync.Mutex
	lines   []string
	pending []byte
	max     int
	version uint64
}

// NewBuffer returns a buffer keeping at most maxLines complete lines.
func NewBuffer(maxLines int) *Buffer {
	return &Buffer{max: max(maxLines, 1)}
}

// Write appends shell output. Only complete lines are committed; the trailing
// partial line stays pending so an escape sequence split across reads is
// stripped as a whole.
func (b *Buffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.pending = append(b.pending, p...)
	for {
		i := bytes.IndexByte(b.pending, '\n')
		if i < 0 {
			break
		}
		b.commit(cleanLine(b.pending[:i]))
		b.pending = b.pending[i+1:]
	}
	if len(b.pending) == 0 {
		b.pending = nil
	}
	b.version++
	return len(p), nil
}

func (b *Buffer) commit(line string) {
	b.lines = append(b.lines, line)
	if over := len(b.lines) - b.max; over > 0 {
		b.lines = append(b.lines[:0:0], b.lines[over:]...)
	}
}

// Lines returns the last n lines including the pending one, oldest first.
// n <= 0 returns everything.
func (b *Buffer) Lines(n int) []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	all := b.lines
	if len(b.pending) > 0 {
		all = append(all[:len(all):len(all)], cleanLine(b.pending))
	}
	if n > 0 && len(all) > n {
		all = all[len(all)-n:]
	}
	return append([]string(nil), all...)
}

// Version changes on every write.
func (b *Buffer) Version() uint64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.version
}

// Clear drops the scrollback.
func (b *Buffer) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.lines = nil
	b.pending = nil
	b.version++
}

// cleanLine strips escape sequences and applies carriage returns,
// backspaces and tabs the way a dumb terminal would. None of those bytes
// appear inside an escape sequence, so they are handled before stripping.
func cleanLine(raw []byte) string {
	s := strings.TrimRight(string(raw), "\r")
	if i := strings.LastIndexByte(s, '\r'); i >= 0 {
		s = s[i+1:]
	}
	s = strings.ReplaceAll(s, "\t", "    ")

	var out []rune
	for i, part := range strings.Split(s, "\b") {
		if i > 0 && len(out) > 0 {
			out = out[:len(out)-1]
		}
		for _, r := range ansi.Strip(part) {
			if r == utf8.RuneError || r < ' ' || r == 0x7f {
				continue
			}
			out = append(out, r)
		}
	}
	return string(out)
}
