// Package editorlog sets up the editor's structured logger: records go to
// stderr as text and into a ring buffer shown by the log panel.
package editorlog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// New returns a logger writing text records to w and keeping the newest
// capacity records in the returned ring. level is shared so a config reload
// can change it on the fly.
func New(w io.Writer, level *slog.LevelVar, capacity int) (*slog.Logger, *Ring) {
	ring := NewRing(capacity)
	text := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	h := &teeHandler{handlers: []slog.Handler{text, NewHandler(ring, level)}}
	return slog.New(h), ring
}

// Handler is a slog.Handler appending to a Ring.
type Handler struct {
	ring   *Ring
	level  slog.Leveler
	prefix string
	attrs  []string
}

// NewHandler returns a handler keeping records at or above level in ring.
func NewHandler(ring *Ring, level slog.Leveler) *Handler {
	if level == nil {
		level = slog.LevelInfo
	}
	return &Handler{ring: ring, level: level}
}

func (h *Handler) Enabled(_ context.Context, l slog.Level) bool {
	return l >= h.level.Level()
}

func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	parts := append([]string(nil), h.attrs...)
	r.Attrs(func(a slog.Attr) bool {
		parts = appendAttr(parts, h.prefix, a)
		return true
	})
	h.ring.Add(Record{
		Time:    r.Time,
		Level:   r.Level,
		Message: r.Message,
		Attrs:   strings.Join(parts, " "),
	})
	return nil
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	c := *h
	c.attrs = append([]string(nil), h.attrs...)
	for _, a := range attrs {
		c.attrs = appendAttr(c.attrs, h.prefix, a)
	}
	return &c
}

func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	c := *h
	c.prefix = h.prefix + name + "."
	return &c
}

func appendAttr(parts []string, prefix string, a slog.Attr) []string {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return parts
	}
	if a.Value.Kind() == slog.KindGroup {
		p := prefix
		if a.Key != "" {
			p += a.Key + "."
		}
		for _, g := range a.Value.Group() {
			parts = appendAttr(parts, p, g)
		}
		return parts
	}
	return append(parts, fmt.Sprintf("%s%s=%v", prefix, a.Key, a.Value.Any()))
}

// teeHandler fans a record out to several handlers.
type teeHandler struct {
	handlers []slog.Handler
}

func (t *teeHandler) Enabled(ctx context.Context, l slog.Level) bool {
	for _, h := range t.handlers {
		if h.Enabled(ctx, l) {
			return true
		}
	}
	return false
}

func (t *teeHandler) Handle(ctx context.Context, r slog.Record) error {
	var errs []error
	for _, h := range t.handlers {
		if h.Enabled(ctx, r.Level) {
			errs = append(errs, h.Handle(ctx, r.Clone()))
		}
	}
	return errors.Join(errs...)
}

func (t *teeHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	hs := make([]slog.Handler, len(t.handlers))
	for i, h := range t.handlers {
		hs[i] = h.WithAttrs(attrs)
	}
	return &teeHandler{handlers: hs}
}

func (t *teeHandler) WithGroup(name string) slog.Handler {
	hs := make([]slog.Handler, len(t.handlers))
	for i, h := range t.handlers {
		hs[i] = h.WithGroup(name)
	}
	return &teeHandler{handlers: hs}
}
