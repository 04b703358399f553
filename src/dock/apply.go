package dock

import (
	"errors"
	"fmt"
)

var (
	// ErrNoSourceTab is returned when the dragged tab no longer exists.
	ErrNoSourceTab = errors.New("dock: drag source tab not found")
	// ErrNoDropZone is returned for a drop on ZoneNone.
	ErrNoDropZone = errors.New("dock: no drop zone")
)

// Drop moves the tab at src into the container at target. Merge zones append
// it to target's tab list, edge zones split target so the tab gets the half
// on that edge. The tree is cleaned up afterwards and the index of the
// container now holding the tab is returned.
//
// Nothing is changed when an error is returned.
func Drop(t *Tree, src DragState, target int, zone Zone) (int, error) {
	if zone == ZoneNone {
		return -1, ErrNoDropZone
	}
	if !t.occupied(target) || t.nodes[target].Kind != KindContainer {
		return -1, fmt.Errorf("drop on %d: %w", target, ErrNotContainer)
	}
	if src.Container < 0 || src.Container >= len(t.nodes) {
		return -1, fmt.Errorf("drop from %d: %w", src.Container, ErrNoSourceTab)
	}

	// The source is extracted before any split so that a drop on the source
	// container itself moves the already shortened tab list.
	tab, ok := t.ExtractTab(src.Container, src.Tab)
	if !ok {
		return -1, fmt.Errorf("drop from %d/%d: %w", src.Container, src.Tab, ErrNoSourceTab)
	}

	if zone.Merges() {
		t.AppendTab(target, tab)
	} else {
		dst := splitForZone(t, target, zone)
		if err := t.Insert(dst, tab); err != nil {
			return -1, fmt.Errorf("drop into %d: %w", dst, err)
		}
	}

	t.Cleanup()
	c, _, _ := t.FindTab(tab.ID)
	return c, nil
}

// splitForZone splits target keeping its content on the side opposite to
// zone, and returns the new empty branch.
func splitForZone(t *Tree, target int, zone Zone) int {
	switch zone {
	case ZoneLeft:
		l, _, _ := t.HorizontalSplit(target, SideRight, Right(0.5))
		return l
	case ZoneRight:
		_, r, _ := t.HorizontalSplit(target, SideLeft, Left(0.5))
		return r
	case ZoneTop:
		top, _, _ := t.VerticalSplit(target, SideBottom, Bottom(0.5))
		return top
	default:
		_, bottom, _ := t.VerticalSplit(target, SideTop, Top(0.5))
		return bottom
	}
}
