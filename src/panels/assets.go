package panels

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"slices"
	"strings"
	"sync"

	"github.com/c2h5oh/datasize"
	"github.com/fsnotify/fsnotify"

	"github.com/javanhut/RavenEditor/src/dock"
)

// Asset is one entry of the asset root.
type Asset struct {
	Name string
	Dir  bool
	Size int64
}

// Assets lists the top level of the asset directory. The listing is read
// lazily and again after the directory changes on disk.
type Assets struct {
	root   string
	logger *slog.Logger

	mu      sync.Mutex
	entries []Asset
	err     error
	dirty   bool
}

// NewAssets returns a browser for root. A nil logger uses slog.Default.
func NewAssets(root string, logger *slog.Logger) *Assets {
	if logger == nil {
		logger = slog.Default()
	}
	return &Assets{root: root, logger: logger, dirty: true}
}

// Refresh reads the directory now.
func (a *Assets) Refresh() error {
	entries, err := readAssets(a.root)
	a.mu.Lock()
	defer a.mu.Unlock()
	a.entries, a.err, a.dirty = entries, err, false
	return err
}

// Entries returns the last listing, refreshing it first if stale.
func (a *Assets) Entries() ([]Asset, error) {
	a.mu.Lock()
	dirty := a.dirty
	a.mu.Unlock()
	if dirty {
		a.Refresh()
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	return slices.Clone(a.entries), a.err
}

// Watch marks the listing stale whenever the directory changes, until ctx
// is done.
func (a *Assets) Watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := watcher.Add(a.root); err != nil {
		watcher.Close()
		return fmt.Errorf("watch %s: %w", a.root, err)
	}
	go func() {
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case _, ok := <-watcher.Events:
				if !ok {
					return
				}
				a.mu.Lock()
				a.dirty = true
				a.mu.Unlock()
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				a.logger.Warn("asset watcher", "root", a.root, "err", err)
			}
		}
	}()
	return nil
}

func readAssets(root string) ([]Asset, error) {
	des, err := os.ReadDir(root)
	if err != nil {
		return nil, err
	}
	out := make([]Asset, 0, len(des))
	for _, de := range des {
		if strings.HasPrefix(de.Name(), ".") {
			continue
		}
		a := Asset{Name: de.Name(), Dir: de.IsDir()}
		if info, err := de.Info(); err == nil && !a.Dir {
			a.Size = info.Size()
		}
		out = append(out, a)
	}
	// Directories first, then by name.
	slices.SortFunc(out, func(x, y Asset) int {
		if x.Dir != y.Dir {
			if x.Dir {
				return -1
			}
			return 1
		}
		return strings.Compare(x.Name, y.Name)
	})
	return out, nil
}

func (a *Assets) Draw(s Surface, tab dock.Tab) {
	pal := s.Palette()
	s.Fill(s.Bounds(), pal.Panel)
	l := newLines(s, 0)
	l.add(0, a.root, pal.Accent)

	entries, err := a.Entries()
	if err != nil {
		l.add(0, err.Error(), pal.Error)
		return
	}
	if len(entries) == 0 {
		l.add(0, "empty", pal.Muted)
		return
	}
	for _, e := range entries {
		text, c := e.Name+"/", pal.Foreground
		if !e.Dir {
			text, c = fmt.Sprintf("%s  %s", e.Name, datasize.ByteSize(e.Size).HumanReadable()), pal.Muted
		}
		if !l.add(1, text, c) {
			return
		}
	}
}
