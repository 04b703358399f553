package dock

import "github.com/chewxy/math32"

// Input is the pointer state of one frame. Pressed and Released are edges,
// Down is the level and is also true on the frame of the press.
type Input struct {
	Pointer  Vec2
	Pressed  bool
	Released bool
	Down     bool
	// Cancel aborts an in-progress tab drag.
	Cancel bool
}

// WidgetKey identifies a tab header by its position in the tree.
type WidgetKey struct {
	Container int
	Tab       int
}

// Intent is a mutation requested by one frame of interaction.
type Intent interface {
	intent()
}

// ResizeIntent moves the separator of a split.
type ResizeIntent struct {
	Split    int
	Fraction Fraction
}

// ActivateIntent selects the visible tab of a container.
type ActivateIntent struct {
	Container int
	Tab       int
}

// DragStartIntent turns a pressed header into a tab drag.
type DragStartIntent struct {
	Source DragState
}

// DropIntent moves the dragged tab next to or into the hovered container.
type DropIntent struct {
	Source DragState
	Hover  HoverState
	Zone   Zone
}

// CancelIntent ends a drag without touching the tree.
type CancelIntent struct {
	Source DragState
}

func (ResizeIntent) intent()    {}
func (ActivateIntent) intent()  {}
func (DragStartIntent) intent() {}
func (DropIntent) intent()      {}
func (CancelIntent) intent()    {}

type headerPress struct {
	key    WidgetKey
	origin Vec2
}

type separatorDrag struct {
	split int
	last  Vec2
}

// Interaction tracks presses across frames: a header held down until it
// either turns into a click or crosses the drag threshold, and a separator
// being dragged.
type Interaction struct {
	press  *headerPress
	resize *separatorDrag
}

// Tracking reports whether the header at key is held down and waiting for
// the drag threshold.
func (ia *Interaction) Tracking(key WidgetKey) bool {
	return ia.press != nil && ia.press.key == key
}

// Resizing returns the split whose separator is being dragged.
func (ia *Interaction) Resizing() (int, bool) {
	if ia.resize == nil {
		return 0, false
	}
	return ia.resize.split, true
}

// Reset forgets any press in flight.
func (ia *Interaction) Reset() {
	ia.press = nil
	ia.resize = nil
}

// Collect turns one frame of input into intents. It never mutates the tree.
// While a tab drag is active headers and separators are not hit-tested.
func (ia *Interaction) Collect(t *Tree, rects []Rect, style Style, in Input, dragging bool) []Intent {
	var out []Intent

	if in.Pressed && !dragging {
		ia.press, ia.resize = nil, nil
		if split, ok := hitSeparator(t, rects, style, in.Pointer); ok {
			ia.resize = &separatorDrag{split: split, last: in.Pointer}
		} else if key, ok := hitHeader(t, rects, style, in.Pointer); ok {
			ia.press = &headerPress{key: key, origin: in.Pointer}
		}
	}

	if in.Down {
		if rs := ia.resize; rs != nil && rs.split < len(t.nodes) && t.nodes[rs.split].IsSplit() {
			delta := in.Pointer.Sub(rs.last)
			if delta != (Vec2{}) {
				n := t.nodes[rs.split]
				f := resizedFraction(n, rects[rs.split], delta, style.MinPanelSize)
				if f != n.Fraction {
					out = append(out, ResizeIntent{Split: rs.split, Fraction: f})
				}
				rs.last = in.Pointer
			}
		}
		if p := ia.press; p != nil {
			d := in.Pointer.Sub(p.origin)
			if math32.Abs(d.X) > style.DragThresholdX || math32.Abs(d.Y) > style.DragThresholdY {
				out = append(out, DragStartIntent{Source: DragState(p.key)})
				ia.press = nil
			}
		}
	}

	if in.Released {
		if p := ia.press; p != nil {
			out = append(out, ActivateIntent{Container: p.key.Container, Tab: p.key.Tab})
		}
		ia.press, ia.resize = nil, nil
	}
	return out
}

// hitSeparator finds the deepest split whose handle contains p.
func hitSeparator(t *Tree, rects []Rect, style Style, p Vec2) (int, bool) {
	for i := len(t.nodes) - 1; i >= 0; i-- {
		r, ok := SeparatorRect(t, rects, i, style.HandleThickness)
		if ok && r.Contains(p) {
			return i, true
		}
	}
	return 0, false
}

// hitHeader finds the tab header under p.
func hitHeader(t *Tree, rects []Rect, style Style, p Vec2) (WidgetKey, bool) {
	for i, n := range t.nodes {
		if n.Kind != KindContainer || i >= len(rects) || !style.TabStripRect(rects[i]).Contains(p) {
			continue
		}
		for j, h := range style.TabHeaders(rects[i], n.Tabs) {
			if h.Contains(p) {
				return WidgetKey{Container: i, Tab: j}, true
			}
		}
	}
	return WidgetKey{}, false
}
