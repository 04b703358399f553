package dock

import (
	"fmt"

	"github.com/google/uuid"
)

// Kind tags the variant held by a Node.
type Kind uint8

const (
	KindEmpty Kind = iota
	KindContainer
	KindHSplit
	KindVSplit
)

func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "Empty"
	case KindContainer:
		return "Container"
	case KindHSplit:
		return "HSplit"
	case KindVSplit:
		return "VSplit"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Tab is one dockable panel. Route is the stable key used to pick the content
// renderer; ID tells apart two tabs sharing a route.
type Tab struct {
	Title string
	Route string
	ID    uuid.UUID
}

// NewTab returns a tab with a fresh instance ID.
func NewTab(title, route string) Tab {
	return Tab{Title: title, Route: route, ID: uuid.New()}
}

// Node is a slot of the docking tree.
//
// Tabs and Active are only meaningful for containers, Fraction only for
// splits. Rect is written by the layout pass every frame.
type Node struct {
	Kind     Kind
	Rect     Rect
	Tabs     []Tab
	Active   int
	Fraction Fraction
}

func (n Node) IsEmpty() bool     { return n.Kind == KindEmpty }
func (n Node) IsContainer() bool { return n.Kind == KindContainer }
func (n Node) IsSplit() bool     { return n.Kind == KindHSplit || n.Kind == KindVSplit }

// ActiveTab returns the tab whose content is visible.
func (n Node) ActiveTab() (Tab, bool) {
	if n.Kind != KindContainer || len(n.Tabs) == 0 {
		return Tab{}, false
	}
	return n.Tabs[n.Active], true
}

func (n Node) clone() Node {
	if n.Tabs != nil {
		tabs := make([]Tab, len(n.Tabs))
		copy(tabs, n.Tabs)
		n.Tabs = tabs
	}
	return n
}

// sameShape compares everything except the layout rect.
func (n Node) sameShape(o Node) bool {
	if n.Kind != o.Kind || n.Active != o.Active || n.Fraction != o.Fraction {
		return false
	}
	if len(n.Tabs) != len(o.Tabs) {
		return false
	}
	for i := range n.Tabs {
		if n.Tabs[i] != o.Tabs[i] {
			return false
		}
	}
	return true
}
