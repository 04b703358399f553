package dock

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

var (
	// ErrNotContainer is returned when a tab operation targets a split.
	ErrNotContainer = errors.New("dock: target is not a container")
	// ErrNotSplit is returned when a fraction update targets a non split.
	ErrNotSplit = errors.New("dock: target is not a split")
	// ErrAnchorMismatch is returned when a fraction anchor does not belong
	// to the split axis, e.g. Top(0.5) for an HSplit.
	ErrAnchorMismatch = errors.New("dock: fraction anchor does not match split axis")
	// ErrSideMismatch is returned when a split side does not belong to the
	// split axis.
	ErrSideMismatch = errors.New("dock: side does not match split axis")
)

// Side picks the child slot that receives the existing subtree on a split.
type Side uint8

const (
	SideLeft Side = iota
	SideRight
	SideTop
	SideBottom
)

// Tree is the docking tree, a complete binary tree flattened into a slice.
// It has a single owner; nothing here is safe for concurrent use.
type Tree struct {
	nodes []Node
}

// NewTree returns a tree holding a single Empty root.
func NewTree() *Tree {
	return &Tree{nodes: []Node{{}}}
}

// Len returns the number of addressable slots.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// Node returns a copy of the node at i. Out of range indices panic.
func (t *Tree) Node(i int) Node {
	t.check(i)
	return t.nodes[i].clone()
}

func (t *Tree) check(i int) {
	if i < 0 || i >= len(t.nodes) {
		panic(fmt.Sprintf("dock: node index %d out of range [0,%d)", i, len(t.nodes)))
	}
}

// occupied reports whether i is addressable and not Empty.
func (t *Tree) occupied(i int) bool {
	return i >= 0 && i < len(t.nodes) && t.nodes[i].Kind != KindEmpty
}

// Rightmost returns the highest occupied index, 0 for an empty tree.
func (t *Tree) Rightmost() int {
	for i := len(t.nodes) - 1; i > 0; i-- {
		if t.nodes[i].Kind != KindEmpty {
			return i
		}
	}
	return 0
}

// Containers returns the indices of every container in ascending order.
func (t *Tree) Containers() []int {
	var out []int
	for i, n := range t.nodes {
		if n.Kind == KindContainer {
			out = append(out, i)
		}
	}
	return out
}

// FindTab locates a tab by instance ID.
func (t *Tree) FindTab(id uuid.UUID) (container, index int, ok bool) {
	for i, n := range t.nodes {
		if n.Kind != KindContainer {
			continue
		}
		for j, tab := range n.Tabs {
			if tab.ID == id {
				return i, j, true
			}
		}
	}
	return -1, -1, false
}

// HorizontalSplit turns target into an HSplit. The whole subtree currently
// at target moves to the left child for SideLeft or the right child for
// SideRight; the other child is left Empty.
func (t *Tree) HorizontalSplit(target int, side Side, f Fraction) (left, right int, err error) {
	if side != SideLeft && side != SideRight {
		return 0, 0, fmt.Errorf("horizontal split of %d: %w", target, ErrSideMismatch)
	}
	if !f.Anchor.Horizontal() {
		return 0, 0, fmt.Errorf("horizontal split of %d with %s: %w", target, f, ErrAnchorMismatch)
	}
	left, right = t.split(target, KindHSplit, side == SideLeft, f)
	return left, right, nil
}

// VerticalSplit is HorizontalSplit along the height, with SideTop and
// SideBottom and a Top or Bottom anchored fraction.
func (t *Tree) VerticalSplit(target int, side Side, f Fraction) (top, bottom int, err error) {
	if side != SideTop && side != SideBottom {
		return 0, 0, fmt.Errorf("vertical split of %d: %w", target, ErrSideMismatch)
	}
	if f.Anchor.Horizontal() {
		return 0, 0, fmt.Errorf("vertical split of %d with %s: %w", target, f, ErrAnchorMismatch)
	}
	top, bottom = t.split(target, KindVSplit, side == SideTop, f)
	return top, bottom, nil
}

func (t *Tree) split(target int, kind Kind, first bool, f Fraction) (int, int) {
	t.check(target)
	left, right := LeftChild(target), RightChild(target)
	dst := right
	if first {
		dst = left
	}

	need := right
	if deepest := t.deepest(target); deepest >= 0 {
		need = max(need, relocated(deepest, target, dst))
	}
	t.grow(need)

	rect := t.nodes[target].Rect
	t.relocate(target, dst)
	t.nodes[target] = Node{Kind: kind, Rect: rect, Fraction: f.Clamped()}
	return left, right
}

// grow makes index need addressable. The slice grows to a full level below
// the deepest of the rightmost node and need, padding with Empty.
func (t *Tree) grow(need int) {
	if need < len(t.nodes) {
		return
	}
	level := max(Level(t.Rightmost())+1, Level(need))
	size := levelSize(level)
	for size <= need {
		level++
		size = levelSize(level)
	}
	nodes := make([]Node, size)
	copy(nodes, t.nodes)
	t.nodes = nodes
}

// deepest returns the highest occupied index of the subtree at root, or -1.
func (t *Tree) deepest(root int) int {
	if !t.occupied(root) {
		return -1
	}
	out := root
	if t.nodes[root].IsSplit() {
		out = max(out, t.deepest(LeftChild(root)), t.deepest(RightChild(root)))
	}
	return out
}

// relocate moves the subtree at from so that it is rooted at to. Every slot
// the subtree used is cleared before the new slots are written, so from and
// to may be ancestor and descendant of one another.
func (t *Tree) relocate(from, to int) {
	type moved struct {
		at   int
		node Node
	}
	var items []moved
	var walk func(src, dst int)
	walk = func(src, dst int) {
		if !t.occupied(src) {
			return
		}
		n := t.nodes[src]
		t.nodes[src] = Node{}
		items = append(items, moved{dst, n})
		if n.IsSplit() {
			walk(LeftChild(src), LeftChild(dst))
			walk(RightChild(src), RightChild(dst))
		}
	}
	walk(from, to)
	for _, it := range items {
		t.check(it.at)
		t.nodes[it.at] = it.node
	}
}

// InsertTab adds a new tab to target. An Empty slot becomes a container
// holding the tab, a container gets the tab appended, and a split is
// rejected with ErrNotContainer.
func (t *Tree) InsertTab(target int, title, route string) error {
	return t.Insert(target, NewTab(title, route))
}

// Insert is InsertTab for an existing tab value, keeping its instance ID.
func (t *Tree) Insert(target int, tab Tab) error {
	t.check(target)
	n := &t.nodes[target]
	switch n.Kind {
	case KindEmpty:
		*n = Node{Kind: KindContainer, Rect: n.Rect, Tabs: []Tab{tab}}
		return nil
	case KindContainer:
		n.Tabs = append(n.Tabs, tab)
		return nil
	}
	return fmt.Errorf("insert %q into %d (%s): %w", tab.Title, target, n.Kind, ErrNotContainer)
}

// ExtractTab removes and returns the tab at index from the container at
// target. It reports false when target is not a container or index is out
// of bounds.
func (t *Tree) ExtractTab(target, index int) (Tab, bool) {
	t.check(target)
	n := &t.nodes[target]
	if n.Kind != KindContainer || index < 0 || index >= len(n.Tabs) {
		return Tab{}, false
	}
	tab := n.Tabs[index]
	n.Tabs = append(n.Tabs[:index:index], n.Tabs[index+1:]...)
	switch {
	case len(n.Tabs) == 0:
		n.Active = 0
	case n.Active > index:
		n.Active--
	case n.Active >= len(n.Tabs):
		n.Active = len(n.Tabs) - 1
	}
	return tab, true
}

// AppendTab appends tab to the container at target and reports whether it
// did. Anything but a container is left untouched.
func (t *Tree) AppendTab(target int, tab Tab) bool {
	t.check(target)
	n := &t.nodes[target]
	if n.Kind != KindContainer {
		return false
	}
	n.Tabs = append(n.Tabs, tab)
	return true
}

// SetActive selects the visible tab of a container.
func (t *Tree) SetActive(target, index int) bool {
	t.check(target)
	n := &t.nodes[target]
	if n.Kind != KindContainer || index < 0 || index >= len(n.Tabs) {
		return false
	}
	n.Active = index
	return true
}

// SetFraction replaces the fraction of a split. The anchor must match the
// split axis and the value is clamped.
func (t *Tree) SetFraction(target int, f Fraction) error {
	t.check(target)
	n := &t.nodes[target]
	switch {
	case !n.IsSplit():
		return fmt.Errorf("set fraction of %d (%s): %w", target, n.Kind, ErrNotSplit)
	case (n.Kind == KindHSplit) != f.Anchor.Horizontal():
		return fmt.Errorf("set fraction of %d to %s: %w", target, f, ErrAnchorMismatch)
	}
	n.Fraction = f.Clamped()
	return nil
}

// UpdateRect stores the layout rect of target. Empty slots keep none.
func (t *Tree) UpdateRect(target int, r Rect) {
	t.check(target)
	if t.nodes[target].Kind == KindEmpty {
		return
	}
	t.nodes[target].Rect = r
}

// Cleanup collapses containers left without tabs, then replaces every split
// that has a single occupied child with that child's subtree, and finally
// drops trailing Empty slots. It reports whether anything changed.
func (t *Tree) Cleanup() bool {
	changed := false
	for i := range t.nodes {
		if t.nodes[i].Kind == KindContainer && len(t.nodes[i].Tabs) == 0 {
			t.nodes[i] = Node{}
			changed = true
		}
	}

	for again := true; again; {
		again = false
		for i := len(t.nodes) - 1; i >= 0; i-- {
			if !t.nodes[i].IsSplit() {
				continue
			}
			l, r := t.occupied(LeftChild(i)), t.occupied(RightChild(i))
			switch {
			case !l && !r:
				t.nodes[i] = Node{}
			case !r:
				t.promote(LeftChild(i), i)
			case !l:
				t.promote(RightChild(i), i)
			default:
				continue
			}
			again, changed = true, true
		}
	}

	n := len(t.nodes)
	for n > 1 && t.nodes[n-1].Kind == KindEmpty {
		n--
	}
	if n != len(t.nodes) {
		t.nodes = t.nodes[:n:n]
		changed = true
	}
	return changed
}

// promote moves the subtree at child up into its parent's slot. The parent
// keeps its rect so the frame stays stable until the next layout pass.
func (t *Tree) promote(child, parent int) {
	rect := t.nodes[parent].Rect
	t.nodes[parent] = Node{}
	t.relocate(child, parent)
	if t.nodes[parent].Kind != KindEmpty {
		t.nodes[parent].Rect = rect
	}
}

// Clone returns a deep copy of the tree.
func (t *Tree) Clone() *Tree {
	nodes := make([]Node, len(t.nodes))
	for i, n := range t.nodes {
		nodes[i] = n.clone()
	}
	return &Tree{nodes: nodes}
}

// Equal reports whether t and o have the same length and the same node
// values, ignoring layout rects.
func (t *Tree) Equal(o *Tree) bool {
	if len(t.nodes) != len(o.nodes) {
		return false
	}
	for i := range t.nodes {
		if !t.nodes[i].sameShape(o.nodes[i]) {
			return false
		}
	}
	return true
}

// String dumps the occupied slots, indented by level.
func (t *Tree) String() string {
	var b strings.Builder
	for i, n := range t.nodes {
		if n.Kind == KindEmpty && i != 0 {
			continue
		}
		b.WriteString(strings.Repeat("  ", Level(i)))
		fmt.Fprintf(&b, "%d %s", i, n.Kind)
		switch {
		case n.IsSplit():
			fmt.Fprintf(&b, " %s", n.Fraction)
		case n.Kind == KindContainer:
			titles := make([]string, len(n.Tabs))
			for j, tab := range n.Tabs {
				titles[j] = tab.Title
				if j == n.Active {
					titles[j] += "*"
				}
			}
			fmt.Fprintf(&b, " [%s]", strings.Join(titles, ", "))
		}
		b.WriteByte('\n')
	}
	return b.String()
}
