package render

import (
	"github.com/javanhut/RavenEditor/src/dock"
	"github.com/javanhut/RavenEditor/src/panels"
)

// Surface is the panels.Surface of one content rect. Drawing outside the
// bounds is cut by the GL scissor set up in WithSurface.
type Surface struct {
	r      *Renderer
	bounds dock.Rect
}

func (s *Surface) Bounds() dock.Rect { return s.bounds }

func (s *Surface) Fill(b dock.Rect, c panels.Color) { s.r.fill(b, c) }

func (s *Surface) Text(x, y float32, text string, c panels.Color) { s.r.text(x, y, text, c) }

func (s *Surface) CellSize() (float32, float32) { return s.r.CellSize() }

func (s *Surface) Palette() panels.Palette { return s.r.theme.Palette() }
