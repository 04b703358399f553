package panels

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/javanhut/RavenEditor/src/dock"
	"github.com/javanhut/RavenEditor/src/editorlog"
)

// Viewport is a placeholder for the engine's render target: a ground grid
// and the scene name. The renderer of the engine draws over it.
type Viewport struct {
	Scene SceneSource
	// Spacing of the grid lines in pixels.
	Spacing float32
}

func (v *Viewport) Draw(s Surface, tab dock.Tab) {
	pal := s.Palette()
	b := s.Bounds()
	s.Fill(b, pal.Background)

	spacing := v.Spacing
	if spacing <= 0 {
		spacing = 32
	}
	grid := pal.Muted
	grid[3] *= 0.25
	c := b.Center()
	for x := c.X - float32(int((c.X-b.Min.X)/spacing))*spacing; x < b.Max.X; x += spacing {
		s.Fill(dock.Rect{Min: dock.Vec2{X: x, Y: b.Min.Y}, Max: dock.Vec2{X: x + 1, Y: b.Max.Y}}, grid)
	}
	for y := c.Y - float32(int((c.Y-b.Min.Y)/spacing))*spacing; y < b.Max.Y; y += spacing {
		s.Fill(dock.Rect{Min: dock.Vec2{X: b.Min.X, Y: y}, Max: dock.Vec2{X: b.Max.X, Y: y + 1}}, grid)
	}
	// axes
	s.Fill(dock.Rect{Min: dock.Vec2{X: c.X - 1, Y: b.Min.Y}, Max: dock.Vec2{X: c.X + 1, Y: b.Max.Y}}, pal.Accent)
	s.Fill(dock.Rect{Min: dock.Vec2{X: b.Min.X, Y: c.Y - 1}, Max: dock.Vec2{X: b.Max.X, Y: c.Y + 1}}, pal.Warning)

	name := "no scene"
	if v.Scene != nil {
		name = v.Scene.SceneName()
	}
	l := newLines(s, 0)
	l.add(0, fmt.Sprintf("%s  %s", tab.Title, name), pal.Foreground)
	l.add(0, fmt.Sprintf("%.0fx%.0f", b.Width(), b.Height()), pal.Muted)
}

// Log shows the newest records of the editor log.
type Log struct {
	Ring *editorlog.Ring
}

func (p *Log) Draw(s Surface, tab dock.Tab) {
	pal := s.Palette()
	s.Fill(s.Bounds(), pal.Panel)
	if p.Ring == nil {
		return
	}
	l := newLines(s, 0)
	recs := p.Ring.Records()
	if n := l.rows(); len(recs) > n {
		recs = recs[len(recs)-n:]
	}
	for _, rec := range recs {
		c := pal.Foreground
		switch {
		case rec.Level >= slog.LevelError:
			c = pal.Error
		case rec.Level >= slog.LevelWarn:
			c = pal.Warning
		case rec.Level < slog.LevelInfo:
			c = pal.Muted
		}
		if !l.add(0, formatRecord(rec), c) {
			break
		}
	}
}

func formatRecord(rec editorlog.Record) string {
	var b strings.Builder
	if !rec.Time.IsZero() {
		b.WriteString(rec.Time.Format("15:04:05 "))
	}
	fmt.Fprintf(&b, "%-5s %s", rec.Level, rec.Message)
	if rec.Attrs != "" {
		b.WriteString("  ")
		b.WriteString(rec.Attrs)
	}
	return b.String()
}

// Hierarchy lists the scene entities as an indented tree.
type Hierarchy struct {
	Scene SceneSource
}

func (p *Hierarchy) Draw(s Surface, tab dock.Tab) {
	pal := s.Palette()
	s.Fill(s.Bounds(), pal.Panel)
	if p.Scene == nil {
		return
	}
	l := newLines(s, 0)
	l.add(0, p.Scene.SceneName(), pal.Accent)
	sel, hasSel := p.Scene.Selected()
	for _, e := range p.Scene.Entities() {
		c := pal.Foreground
		if hasSel && e.ID == sel.ID {
			l.highlight(pal.Selection)
			c = pal.Accent
		}
		if !l.add(e.Depth+1, e.Name, c) {
			break
		}
	}
}

// Inspector shows the components of the selected entity.
type Inspector struct {
	Scene SceneSource
}

func (p *Inspector) Draw(s Surface, tab dock.Tab) {
	pal := s.Palette()
	s.Fill(s.Bounds(), pal.Panel)
	l := newLines(s, 0)
	if p.Scene == nil {
		return
	}
	e, ok := p.Scene.Selected()
	if !ok {
		l.add(0, "nothing selected", pal.Muted)
		return
	}
	l.add(0, e.Name, pal.Accent)
	for _, comp := range e.Components {
		if !l.add(0, comp.Name, pal.Foreground) {
			return
		}
		for _, f := range comp.Fields {
			if !l.add(2, fmt.Sprintf("%s: %s", f.Name, f.Value), pal.Muted) {
				return
			}
		}
	}
}
