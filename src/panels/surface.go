package panels

import (
	"github.com/charmbracelet/x/ansi"
	"github.com/javanhut/RavenEditor/src/dock"
)

// Color is an RGBA color with components in [0, 1].
type Color = [4]float32

// Palette is the set of colors panels draw with.
type Palette struct {
	Background Color
	Panel      Color
	Foreground Color
	Muted      Color
	Accent     Color
	Selection  Color
	Warning    Color
	Error      Color
}

// Surface is a drawing target clipped to one panel's content rect. Text is
// monospace; y is the bottom of the text row.
type Surface interface {
	Bounds() dock.Rect
	Fill(r dock.Rect, c Color)
	Text(x, y float32, s string, c Color)
	CellSize() (w, h float32)
	Palette() Palette
}

// lines is a helper laying out one text row per call inside a surface.
type lines struct {
	s      Surface
	x, y   float32
	cw, ch float32
	cols   int
	bottom float32
}

func newLines(s Surface, indent float32) *lines {
	b := s.Bounds()
	cw, ch := s.CellSize()
	pad := cw / 2
	l := &lines{
		s:      s,
		x:      b.Min.X + pad + indent,
		y:      b.Min.Y + pad,
		cw:     cw,
		ch:     ch,
		bottom: b.Max.Y,
	}
	if cw > 0 {
		l.cols = int((b.Width() - 2*pad - indent) / cw)
	}
	return l
}

// rows returns how many more rows fit.
func (l *lines) rows() int {
	if l.ch <= 0 {
		return 0
	}
	return max(0, int((l.bottom-l.y)/l.ch))
}

// add draws text indented by depth cells and advances one row. It reports
// false once the surface is full.
func (l *lines) add(depth int, text string, c Color) bool {
	if l.rows() == 0 {
		return false
	}
	l.y += l.ch
	cols := l.cols - depth
	if cols <= 0 {
		return true
	}
	l.s.Text(l.x+float32(depth)*l.cw, l.y, clip(text, cols), c)
	return true
}

// highlight fills the row that the next add will draw into.
func (l *lines) highlight(c Color) {
	b := l.s.Bounds()
	l.s.Fill(dock.Rect{Min: dock.Vec2{X: b.Min.X, Y: l.y + l.ch*0.2}, Max: dock.Vec2{X: b.Max.X, Y: l.y + l.ch*1.2}}, c)
}

// clip shortens s to at most cols cells, ending in an ellipsis when cut.
func clip(s string, cols int) string {
	if cols <= 0 {
		return ""
	}
	if ansi.StringWidth(s) <= cols {
		return s
	}
	if cols == 1 {
		return ansi.Truncate(s, 1, "")
	}
	return ansi.Truncate(s, cols, "…")
}
