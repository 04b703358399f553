// Package panels holds the content drawn inside dock containers. Each tab
// carries a route naming the panel that draws its content.
package panels

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/javanhut/RavenEditor/src/dock"
)

// Route is the stable key of a panel.
type Route string

const (
	RouteViewport  Route = "viewport"
	RouteLog       Route = "log"
	RouteHierarchy Route = "hierarchy"
	RouteInspector Route = "inspector"
	RouteAssets    Route = "assets"
	RouteConsole   Route = "console"
)

var (
	ErrEmptyRoute     = errors.New("panels: empty route")
	ErrDuplicateRoute = errors.New("panels: route already registered")
	ErrUnknownRoute   = errors.New("panels: unknown route")
)

// Panel draws the content of a tab.
type Panel interface {
	Draw(s Surface, tab dock.Tab)
}

// PanelFunc adapts a function to Panel.
type PanelFunc func(s Surface, tab dock.Tab)

func (f PanelFunc) Draw(s Surface, tab dock.Tab) { f(s, tab) }

// Registry maps routes to panels. Lookups happen every frame from the UI
// thread; registration is expected at startup.
type Registry struct {
	mu     sync.RWMutex
	panels map[Route]Panel
	warned map[Route]bool
	logger *slog.Logger
}

// NewRegistry returns an empty registry. A nil logger uses slog.Default.
func NewRegistry(logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.Default()
	}
	return &Registry{
		panels: make(map[Route]Panel),
		warned: make(map[Route]bool),
		logger: logger,
	}
}

// Register binds route to p.
func (r *Registry) Register(route Route, p Panel) error {
	if route == "" {
		return ErrEmptyRoute
	}
	if p == nil {
		return fmt.Errorf("register %q: nil panel", route)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.panels[route]; ok {
		return fmt.Errorf("register %q: %w", route, ErrDuplicateRoute)
	}
	r.panels[route] = p
	return nil
}

// Lookup returns the panel bound to route.
func (r *Registry) Lookup(route string) (Panel, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.panels[Route(route)]
	return p, ok
}

// Routes lists the registered routes in sorted order.
func (r *Registry) Routes() []Route {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Route, 0, len(r.panels))
	for route := range r.panels {
		out = append(out, route)
	}
	slices.Sort(out)
	return out
}

// Validate reports every tab of t whose route has no panel.
func (r *Registry) Validate(t *dock.Tree) error {
	var errs []error
	for _, i := range t.Containers() {
		for _, tab := range t.Node(i).Tabs {
			if _, ok := r.Lookup(tab.Route); !ok {
				errs = append(errs, fmt.Errorf("tab %q in container %d routes to %q: %w", tab.Title, i, tab.Route, ErrUnknownRoute))
			}
		}
	}
	return errors.Join(errs...)
}

// Render draws tab with its panel. A tab with an unknown route gets a
// placeholder and one error log per route.
func (r *Registry) Render(s Surface, tab dock.Tab) {
	if p, ok := r.Lookup(tab.Route); ok {
		p.Draw(s, tab)
		return
	}

	r.mu.Lock()
	if !r.warned[Route(tab.Route)] {
		r.warned[Route(tab.Route)] = true
		r.logger.Error("no panel for route", "route", tab.Route, "tab", tab.Title)
	}
	r.mu.Unlock()

	pal := s.Palette()
	b := s.Bounds()
	s.Fill(b, pal.Background)
	_, ch := s.CellSize()
	s.Text(b.Min.X+ch/2, b.Min.Y+ch*1.5, fmt.Sprintf("unknown panel %q", tab.Route), pal.Error)
}
