package editor

import (
	"fmt"

	"github.com/javanhut/RavenEditor/src/dock"
	"github.com/javanhut/RavenEditor/src/panels"
)

// DefaultLayout builds the startup layout into t, which must be fresh: the
// scene viewport over the log and console, the hierarchy on the left and
// the inspector and assets on the right.
//
//	+-----------+----------------------+-----------+
//	| Hierarchy | Scene                | Inspector |
//	|           |                      | Assets    |
//	|           +----------------------+           |
//	|           | Log | Console        |           |
//	+-----------+----------------------+-----------+
func DefaultLayout(t *dock.Tree) error {
	left, rest, err := t.HorizontalSplit(0, dock.SideRight, dock.Left(0.15))
	if err != nil {
		return fmt.Errorf("default layout: %w", err)
	}
	center, right, err := t.HorizontalSplit(rest, dock.SideLeft, dock.Right(0.2))
	if err != nil {
		return fmt.Errorf("default layout: %w", err)
	}
	viewport, bottom, err := t.VerticalSplit(center, dock.SideTop, dock.Bottom(0.2))
	if err != nil {
		return fmt.Errorf("default layout: %w", err)
	}

	inserts := []struct {
		target int
		title  string
		route  panels.Route
	}{
		{left, "Hierarchy", panels.RouteHierarchy},
		{viewport, "Scene", panels.RouteViewport},
		{bottom, "Log", panels.RouteLog},
		{bottom, "Console", panels.RouteConsole},
		{right, "Inspector", panels.RouteInspector},
		{right, "Assets", panels.RouteAssets},
	}
	for _, in := range inserts {
		if err := t.InsertTab(in.target, in.title, string(in.route)); err != nil {
			return fmt.Errorf("default layout: %w", err)
		}
	}
	return nil
}
