package config

import (
	"context"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch reloads configPath whenever it is written or replaced and delivers
// each successfully parsed config on the returned channel. The directory is
// watched instead of the file so editors that save by rename are seen too.
// A file that fails to parse is logged and skipped. The channel is closed
// once ctx is done.
func Watch(ctx context.Context, configPath string, logger *slog.Logger) (<-chan *Config, error) {
	if logger == nil {
		logger = slog.Default()
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := watcher.Add(filepath.Dir(configPath)); err != nil {
		watcher.Close()
		return nil, err
	}

	out := make(chan *Config, 1)
	go func() {
		defer close(out)
		defer watcher.Close()
		want := filepath.Clean(configPath)
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != want || !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
					continue
				}
				cfg, err := LoadFrom(configPath)
				if err != nil {
					logger.Warn("config reload failed", "path", configPath, "err", err)
					continue
				}
				logger.Info("config reloaded", "path", configPath)
				// Only the newest config matters to the frame loop.
				select {
				case <-out:
				default:
				}
				select {
				case out <- cfg:
				case <-ctx.Done():
					return
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Warn("config watcher", "err", err)
			}
		}
	}()
	return out, nil
}
