package dock

// DragState is the tab being dragged, addressed by its source position.
type DragState WidgetKey

// Docking is the Idle/Dragging state machine of a tab drag gesture. The zero
// value is Idle.
type Docking struct {
	drag  *DragState
	hover *HoverState
}

// Begin enters Dragging with src as the dragged tab.
func (d *Docking) Begin(src DragState) {
	d.drag = &src
	d.hover = nil
}

// End returns to Idle, forgetting the drag and the last hover.
func (d *Docking) End() {
	d.drag = nil
	d.hover = nil
}

// Dragging returns the active drag, if any.
func (d *Docking) Dragging() (DragState, bool) {
	if d.drag == nil {
		return DragState{}, false
	}
	return *d.drag, true
}

// Hover returns the hover computed by the last Update.
func (d *Docking) Hover() (HoverState, bool) {
	if d.hover == nil {
		return HoverState{}, false
	}
	return *d.hover, true
}

// Update recomputes the hover while Dragging and, on release or cancel,
// emits the intent that ends the gesture. The tree is not touched; a drop
// without a hover target becomes a CancelIntent.
func (d *Docking) Update(t *Tree, rects []Rect, style Style, in Input) []Intent {
	if d.drag == nil {
		return nil
	}
	src := *d.drag

	d.hover = nil
	if h, ok := hoverAt(t, rects, style, in.Pointer); ok {
		d.hover = &h
	}

	switch {
	case in.Cancel:
		return []Intent{CancelIntent{Source: src}}
	case in.Released:
		if d.hover == nil {
			return []Intent{CancelIntent{Source: src}}
		}
		h := *d.hover
		return []Intent{DropIntent{Source: src, Hover: h, Zone: h.Zone()}}
	}
	return nil
}
