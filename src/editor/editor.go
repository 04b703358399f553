// Package editor ties the dock, the panels and the editor services into the
// frame loop driven by main.
package editor

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/chewxy/math32"
	"github.com/google/uuid"

	"github.com/javanhut/RavenEditor/src/config"
	"github.com/javanhut/RavenEditor/src/console"
	"github.com/javanhut/RavenEditor/src/dock"
	"github.com/javanhut/RavenEditor/src/editorlog"
	"github.com/javanhut/RavenEditor/src/panels"
)

const toastDuration = 2500 * time.Millisecond

// shortcutHint is shown on the right of the toolbar.
const shortcutHint = "Esc cancel drag  Ctrl+Shift+R reset layout  Ctrl+Shift+T theme  F11 fullscreen  Ctrl+Q quit"

// Renderer is the drawing the editor needs from the GL renderer.
type Renderer interface {
	CellSize() (float32, float32)
	BeginFrame(width, height int)
	WithSurface(b dock.Rect, fn func(s panels.Surface))
	DrawChrome(d *dock.Dock, fs dock.FrameState)
	DrawToolbar(bar dock.Rect, left, right string)
	DrawToast(message string)
}

// Options configures New. Ring and Scene may be nil.
type Options struct {
	Config *config.Config
	Logger *slog.Logger
	Ring   *editorlog.Ring
	Scene  *panels.StaticScene
}

// Editor is the editor shell: one dock, the panel registry and the
// services the panels show.
type Editor struct {
	cfg      *config.Config
	logger   *slog.Logger
	dock     *dock.Dock
	registry *panels.Registry
	console  *console.Console
	scene    *panels.StaticScene
	assets   *panels.Assets

	// focus is the active tab of the container whose content was clicked
	// last. It follows the tab when drops relocate its container.
	focus uuid.UUID

	toast      string
	toastUntil time.Time
	now        func() time.Time
}

// New builds the editor with the default layout.
func New(opts Options) (*Editor, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	ring := opts.Ring
	if ring == nil {
		ring = editorlog.NewRing(max(1, cfg.Log.Capacity))
	}
	scene := opts.Scene
	if scene == nil {
		scene = DemoScene()
	}

	e := &Editor{
		cfg:      cfg,
		logger:   logger,
		dock:     dock.New(cfg.Style(0), logger.With("component", "dock")),
		registry: panels.NewRegistry(logger),
		console:  console.New(cfg.Console, logger.With("component", "console")),
		scene:    scene,
		assets:   panels.NewAssets(cfg.AssetRoot, logger),
		now:      time.Now,
	}

	err := errors.Join(
		e.registry.Register(panels.RouteViewport, &panels.Viewport{Scene: scene}),
		e.registry.Register(panels.RouteLog, &panels.Log{Ring: ring}),
		e.registry.Register(panels.RouteHierarchy, &panels.Hierarchy{Scene: scene}),
		e.registry.Register(panels.RouteInspector, &panels.Inspector{Scene: scene}),
		e.registry.Register(panels.RouteAssets, e.assets),
		e.registry.Register(panels.RouteConsole, &panels.Console{Console: e.console, Logger: logger}),
	)
	if err != nil {
		return nil, err
	}
	if err := e.buildLayout(); err != nil {
		return nil, err
	}
	return e, nil
}

func (e *Editor) buildLayout() error {
	if err := DefaultLayout(e.dock.Tree()); err != nil {
		return err
	}
	return e.registry.Validate(e.dock.Tree())
}

// Dock returns the dock driving the layout.
func (e *Editor) Dock() *dock.Dock {
	return e.dock
}

// Config returns the configuration in effect.
func (e *Editor) Config() *config.Config {
	return e.cfg
}

// Scene returns the scene shown by the hierarchy and inspector.
func (e *Editor) Scene() *panels.StaticScene {
	return e.scene
}

// Watch keeps the asset listing current until ctx is done.
func (e *Editor) Watch(ctx context.Context) {
	if err := e.assets.Watch(ctx); err != nil {
		e.logger.Warn("asset watch disabled", "err", err)
	}
}

// ToolbarHeight is the height of the bar above the dock for a line height.
func ToolbarHeight(lineHeight float32) float32 {
	return math32.Ceil(lineHeight * 1.6)
}

// Frame draws one frame of a width x height framebuffer.
func (e *Editor) Frame(r Renderer, in dock.Input, width, height int) dock.FrameState {
	cw, ch := r.CellSize()
	e.dock.SetStyle(e.cfg.Style(cw))

	w, h := float32(width), float32(height)
	barH := math32.Min(ToolbarHeight(ch), h)
	bar := dock.RectXYWH(0, 0, w, barH)
	root := dock.Rect{Min: dock.Vec2{X: 0, Y: barH}, Max: dock.Vec2{X: w, Y: h}}

	r.BeginFrame(width, height)
	fs := e.dock.Frame(in, root, func(_ int, content dock.Rect, tab dock.Tab) {
		r.WithSurface(content, func(s panels.Surface) {
			e.registry.Render(s, tab)
		})
	})
	if in.Pressed {
		e.focusAt(fs.Rects, in.Pointer)
	}
	if fs.Changed {
		e.logger.Info("layout changed", "slots", e.dock.Tree().Len())
	}

	r.DrawChrome(e.dock, fs)
	r.DrawToolbar(bar, e.toolbarText(), shortcutHint)
	if msg := e.activeToast(); msg != "" {
		r.DrawToast(msg)
	}
	return fs
}

func (e *Editor) toolbarText() string {
	return fmt.Sprintf("Raven Editor  %s  %s", e.scene.SceneName(), config.ThemeLabel(e.cfg.Theme))
}

func (e *Editor) focusAt(rects []dock.Rect, p dock.Vec2) {
	t, style := e.dock.Tree(), e.dock.Style()
	for _, i := range t.Containers() {
		if i >= len(rects) || !style.ContentRect(rects[i]).Contains(p) {
			continue
		}
		if tab, ok := t.Node(i).ActiveTab(); ok {
			e.focus = tab.ID
		}
		return
	}
}

// FocusedRoute returns the route of the active tab of the container holding
// the focused tab.
func (e *Editor) FocusedRoute() (panels.Route, bool) {
	if e.focus == uuid.Nil {
		return "", false
	}
	t := e.dock.Tree()
	c, _, ok := t.FindTab(e.focus)
	if !ok {
		return "", false
	}
	tab, ok := t.Node(c).ActiveTab()
	if !ok {
		return "", false
	}
	return panels.Route(tab.Route), true
}

// SendInput forwards typed bytes to the console when it has focus. It
// reports whether the bytes were consumed. Enter restarts a shell that has
// exited.
func (e *Editor) SendInput(data []byte) bool {
	if route, ok := e.FocusedRoute(); !ok || route != panels.RouteConsole {
		return false
	}
	if e.console.Exited() {
		if !bytes.ContainsRune(data, '\r') {
			return false
		}
		if err := e.console.Start(); err != nil {
			e.logger.Warn("console restart", "err", err)
			return false
		}
		e.logger.Info("console restarted")
		return true
	}
	if err := e.console.Send(data); err != nil {
		e.logger.Debug("console input dropped", "err", err)
		return false
	}
	return true
}

// ResetLayout throws the current layout away and rebuilds the default one.
func (e *Editor) ResetLayout() {
	e.dock.Reset()
	e.focus = uuid.Nil
	if err := e.buildLayout(); err != nil {
		e.logger.Error("reset layout", "err", err)
		return
	}
	e.logger.Info("layout reset")
	e.Toast("Layout reset")
}

// NextTheme switches to the next theme and returns its name.
func (e *Editor) NextTheme() string {
	e.cfg.Theme = config.NextTheme(e.cfg.Theme)
	e.Toast("Theme: " + config.ThemeLabel(e.cfg.Theme))
	return e.cfg.Theme
}

// SelectNext moves the scene selection by delta entities.
func (e *Editor) SelectNext(delta int) {
	e.scene.SelectNext(delta)
}

// ApplyConfig switches to a reloaded configuration. An invalid one is
// rejected and the current one kept.
func (e *Editor) ApplyConfig(cfg *config.Config) error {
	if err := cfg.Validate(); err != nil {
		e.logger.Warn("config reload rejected", "err", err)
		e.Toast("Config rejected: " + err.Error())
		return err
	}
	e.cfg = cfg
	e.logger.Info("config reloaded", "theme", cfg.Theme)
	e.Toast("Config reloaded")
	return nil
}

// Toast shows a transient message for a few seconds.
func (e *Editor) Toast(msg string) {
	e.toast = msg
	e.toastUntil = e.now().Add(toastDuration)
}

func (e *Editor) activeToast() string {
	if e.toast == "" || e.now().After(e.toastUntil) {
		e.toast = ""
		return ""
	}
	return e.toast
}

// Close stops the console shell.
func (e *Editor) Close() error {
	return e.console.Close()
}
