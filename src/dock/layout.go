package dock

// ResolveLayout computes the rect of every slot from the root rect.
//
// Slots are visited in ascending index order rather than depth first: a
// parent index is always lower than its children's, so each split already
// has its rect when it is reached. Empty slots and slots below a container
// get the zero rect.
func ResolveLayout(t *Tree, root Rect, gutter float32) []Rect {
	rects := make([]Rect, len(t.nodes))
	if len(rects) == 0 {
		return rects
	}
	rects[0] = root
	for i, n := range t.nodes {
		var a, b Rect
		switch n.Kind {
		case KindHSplit:
			a, b = rects[i].SplitX(n.Fraction.First(), gutter)
		case KindVSplit:
			a, b = rects[i].SplitY(n.Fraction.First(), gutter)
		default:
			continue
		}
		if l := LeftChild(i); l < len(rects) {
			rects[l] = a
		}
		if r := RightChild(i); r < len(rects) {
			rects[r] = b
		}
	}
	return rects
}

// ApplyLayout stores rects computed by ResolveLayout on the nodes.
func (t *Tree) ApplyLayout(rects []Rect) {
	for i, n := 0, min(len(rects), len(t.nodes)); i < n; i++ {
		t.UpdateRect(i, rects[i])
	}
}

// SeparatorRect returns the draggable handle between the two children of
// the split at i. The handle is at least thickness pixels across so a zero
// gutter can still be grabbed.
func SeparatorRect(t *Tree, rects []Rect, i int, thickness float32) (Rect, bool) {
	if i < 0 || i >= len(t.nodes) || !t.nodes[i].IsSplit() {
		return Rect{}, false
	}
	l, r := LeftChild(i), RightChild(i)
	if r >= len(rects) {
		return Rect{}, false
	}
	a, b := rects[l], rects[r]
	whole := rects[i]
	if t.nodes[i].Kind == KindHSplit {
		x0, x1 := a.Max.X, b.Min.X
		if x1-x0 < thickness {
			c := (x0 + x1) / 2
			x0, x1 = c-thickness/2, c+thickness/2
		}
		return Rect{Min: Vec2{x0, whole.Min.Y}, Max: Vec2{x1, whole.Max.Y}}, true
	}
	y0, y1 := a.Max.Y, b.Min.Y
	if y1-y0 < thickness {
		c := (y0 + y1) / 2
		y0, y1 = c-thickness/2, c+thickness/2
	}
	return Rect{Min: Vec2{whole.Min.X, y0}, Max: Vec2{whole.Max.X, y1}}, true
}

// splitExtent is the length of the split axis of the split at i.
func splitExtent(n Node, r Rect) float32 {
	if n.Kind == KindHSplit {
		return r.Width()
	}
	return r.Height()
}

// resizedFraction applies a pointer delta to the split n spanning r. The
// result keeps both children at least minPanel pixels when the extent
// allows it.
func resizedFraction(n Node, r Rect, delta Vec2, minPanel float32) Fraction {
	extent := splitExtent(n, r)
	if extent <= 0 {
		return n.Fraction
	}
	d := delta.Y
	if n.Kind == KindHSplit {
		d = delta.X
	}
	lo, hi := ResizeBounds(minPanel, extent)
	first := clamp(n.Fraction.First()+d/extent, lo, hi)
	first = clamp(first, MinFraction, MaxFraction)
	if first != first { // NaN
		return n.Fraction
	}
	return n.Fraction.WithFirst(first)
}
