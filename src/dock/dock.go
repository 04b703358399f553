package dock

import "log/slog"

// RenderFunc draws the content of the active tab of one container into the
// content rect below its tab strip.
type RenderFunc func(container int, content Rect, tab Tab)

// DragOverlay is the floating header following the pointer during a drag.
type DragOverlay struct {
	Tab     Tab
	Source  DragState
	Pointer Vec2
}

// FrameState is what the renderer needs to draw the dock chrome of a frame.
type FrameState struct {
	Rects []Rect
	// Resizing is the split whose separator is held, -1 if none.
	Resizing int
	Drag     *DragOverlay
	Hover    *HoverState
	Zone     Zone
	Preview  Rect
	// Changed is set when the tree structure changed this frame.
	Changed bool
}

// Dock drives the docking tree frame by frame.
type Dock struct {
	tree        *Tree
	style       Style
	interaction Interaction
	docking     Docking
	logger      *slog.Logger
}

// New returns a dock holding an empty tree. A nil logger uses slog.Default.
func New(style Style, logger *slog.Logger) *Dock {
	if logger == nil {
		logger = slog.Default()
	}
	return &Dock{tree: NewTree(), style: style, logger: logger}
}

// Tree returns the tree, for startup building and read access between frames.
func (d *Dock) Tree() *Tree {
	return d.tree
}

// Style returns the current geometry.
func (d *Dock) Style() Style {
	return d.style
}

// SetStyle replaces the geometry, e.g. after a config reload.
func (d *Dock) SetStyle(s Style) {
	d.style = s
}

// Reset replaces the tree with an empty one and drops any gesture in flight.
func (d *Dock) Reset() {
	d.tree = NewTree()
	d.interaction.Reset()
	d.docking.End()
}

// Tracking reports whether the tab header at key is pressed and being
// watched for the drag threshold.
func (d *Dock) Tracking(key WidgetKey) bool {
	return d.interaction.Tracking(key)
}

// Dragging returns the active tab drag, if any.
func (d *Dock) Dragging() (DragState, bool) {
	return d.docking.Dragging()
}

// CancelDrag abandons the active drag without touching the tree.
func (d *Dock) CancelDrag() {
	if _, ok := d.docking.Dragging(); ok {
		d.logger.Debug("dock drag cancelled")
	}
	d.docking.End()
}

// Frame runs one frame: layout, intent collection, mutation, then content
// rendering. render is called exactly once for each container with tabs.
func (d *Dock) Frame(in Input, root Rect, render RenderFunc) FrameState {
	rects := ResolveLayout(d.tree, root, d.style.Gutter)
	d.tree.ApplyLayout(rects)

	_, dragging := d.docking.Dragging()
	intents := d.interaction.Collect(d.tree, rects, d.style, in, dragging)
	intents = append(intents, d.docking.Update(d.tree, rects, d.style, in)...)

	fs := FrameState{Resizing: -1}
	fs.Changed = d.apply(intents)
	if len(intents) > 0 {
		rects = ResolveLayout(d.tree, root, d.style.Gutter)
		d.tree.ApplyLayout(rects)
	}
	fs.Rects = rects

	if render != nil {
		for i, n := range d.tree.nodes {
			tab, ok := n.ActiveTab()
			if !ok {
				continue
			}
			render(i, d.style.ContentRect(rects[i]), tab)
		}
	}

	if split, ok := d.interaction.Resizing(); ok {
		fs.Resizing = split
	}
	if src, ok := d.docking.Dragging(); ok {
		if tab, ok := d.sourceTab(src); ok {
			fs.Drag = &DragOverlay{Tab: tab, Source: src, Pointer: in.Pointer}
		}
		if h, ok := d.docking.Hover(); ok {
			fs.Hover = &h
			fs.Zone = h.Zone()
			fs.Preview = PreviewRect(h.Rect, fs.Zone)
		}
	}
	return fs
}

func (d *Dock) sourceTab(src DragState) (Tab, bool) {
	if src.Container < 0 || src.Container >= d.tree.Len() {
		return Tab{}, false
	}
	n := d.tree.nodes[src.Container]
	if n.Kind != KindContainer || src.Tab < 0 || src.Tab >= len(n.Tabs) {
		return Tab{}, false
	}
	return n.Tabs[src.Tab], true
}

// apply executes intents in order and reports whether the tree structure
// changed. Fraction updates are not structural.
func (d *Dock) apply(intents []Intent) bool {
	changed := false
	for _, it := range intents {
		switch it := it.(type) {
		case ResizeIntent:
			if err := d.tree.SetFraction(it.Split, it.Fraction); err != nil {
				d.logger.Warn("dock resize", "split", it.Split, "err", err)
			}
		case ActivateIntent:
			d.tree.SetActive(it.Container, it.Tab)
		case DragStartIntent:
			if _, ok := d.sourceTab(it.Source); !ok {
				continue
			}
			d.docking.Begin(it.Source)
			d.logger.Debug("dock drag start", "container", it.Source.Container, "tab", it.Source.Tab)
		case CancelIntent:
			d.docking.End()
			d.logger.Debug("dock drag abandoned", "container", it.Source.Container, "tab", it.Source.Tab)
		case DropIntent:
			d.docking.End()
			d.interaction.Reset()
			at, err := Drop(d.tree, it.Source, it.Hover.Container, it.Zone)
			if err != nil {
				d.logger.Warn("dock drop", "target", it.Hover.Container, "zone", it.Zone, "err", err)
				continue
			}
			changed = true
			d.logger.Debug("dock drop", "target", it.Hover.Container, "zone", it.Zone, "landed", at, "slots", d.tree.Len())
		}
	}
	return changed
}
