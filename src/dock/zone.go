package dock

import "fmt"

// Zone is where a dragged tab lands relative to the hovered container.
type Zone uint8

const (
	ZoneNone Zone = iota
	ZoneTabStrip
	ZoneCenter
	ZoneLeft
	ZoneRight
	ZoneTop
	ZoneBottom
)

func (z Zone) String() string {
	switch z {
	case ZoneNone:
		return "none"
	case ZoneTabStrip:
		return "tab-strip"
	case ZoneCenter:
		return "center"
	case ZoneLeft:
		return "left"
	case ZoneRight:
		return "right"
	case ZoneTop:
		return "top"
	case ZoneBottom:
		return "bottom"
	}
	return fmt.Sprintf("Zone(%d)", uint8(z))
}

// Merges reports whether dropping on z appends to the hovered container
// instead of splitting it.
func (z Zone) Merges() bool {
	return z == ZoneTabStrip || z == ZoneCenter
}

// ResolveZone picks the anchor of r nearest to p. Anchors are checked center,
// left, right, top, bottom and a later one only wins when strictly nearer.
func ResolveZone(r Rect, p Vec2) Zone {
	anchors := [...]struct {
		zone Zone
		at   Vec2
	}{
		{ZoneCenter, r.Center()},
		{ZoneLeft, r.LeftMid()},
		{ZoneRight, r.RightMid()},
		{ZoneTop, r.TopMid()},
		{ZoneBottom, r.BottomMid()},
	}
	best := anchors[0]
	bestDist := p.Dist(best.at)
	for _, a := range anchors[1:] {
		if d := p.Dist(a.at); d < bestDist {
			best, bestDist = a, d
		}
	}
	return best.zone
}

// HoverState is what the pointer is over while a tab is dragged.
type HoverState struct {
	Container int
	Rect      Rect
	Strip     Rect
	// InStrip is set when the pointer is inside the tab strip of the
	// container rather than its content.
	InStrip bool
	Pointer Vec2
}

// Zone classifies the hover into a drop zone.
func (h HoverState) Zone() Zone {
	if h.InStrip {
		return ZoneTabStrip
	}
	return ResolveZone(h.Rect, h.Pointer)
}

// PreviewRect is the area highlighted while hovering zone z of r: the half
// that the dropped tab would take for an edge, the whole rect for a merge.
func PreviewRect(r Rect, z Zone) Rect {
	switch z {
	case ZoneLeft:
		a, _ := r.SplitX(0.5, 0)
		return a
	case ZoneRight:
		_, b := r.SplitX(0.5, 0)
		return b
	case ZoneTop:
		a, _ := r.SplitY(0.5, 0)
		return a
	case ZoneBottom:
		_, b := r.SplitY(0.5, 0)
		return b
	case ZoneNone:
		return Rect{}
	}
	return r
}

// hoverAt finds the container under p.
func hoverAt(t *Tree, rects []Rect, style Style, p Vec2) (HoverState, bool) {
	for i, n := range t.nodes {
		if n.Kind != KindContainer || i >= len(rects) || !rects[i].Contains(p) {
			continue
		}
		strip := style.TabStripRect(rects[i])
		return HoverState{
			Container: i,
			Rect:      rects[i],
			Strip:     strip,
			InStrip:   strip.Contains(p),
			Pointer:   p,
		}, true
	}
	return HoverState{}, false
}
