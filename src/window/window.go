// Package window owns the GLFW window and its GL 4.1 core context.
package window

import (
	"fmt"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/javanhut/RavenEditor/src/assets"
)

func init() {
	runtime.LockOSThread()
}

// Config holds window configuration
type Config struct {
	Width  int
	Height int
	Title  string
	// WMClass is the X11 class and instance name.
	WMClass string
}

// DefaultConfig returns the editor window configuration
func DefaultConfig() Config {
	return Config{
		Width:   1280,
		Height:  800,
		Title:   "Raven Editor",
		WMClass: "raven-editor",
	}
}

// Window is the editor window. Fullscreen toggling restores the windowed
// placement it left.
type Window struct {
	glfw     *glfw.Window
	windowed struct{ x, y, w, h int }
	full     bool
}

// NewWindow opens the window, makes its context current and loads GL.
func NewWindow(cfg Config) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize GLFW: %w", err)
	}

	for hint, v := range map[glfw.Hint]int{
		glfw.ContextVersionMajor:     4,
		glfw.ContextVersionMinor:     1,
		glfw.OpenGLProfile:           glfw.OpenGLCoreProfile,
		glfw.OpenGLForwardCompatible: glfw.True,
		glfw.Resizable:               glfw.True,
		glfw.DoubleBuffer:            glfw.True,
	} {
		glfw.WindowHint(hint, v)
	}
	if cfg.WMClass != "" {
		glfw.WindowHintString(glfw.X11ClassName, cfg.WMClass)
		glfw.WindowHintString(glfw.X11InstanceName, cfg.WMClass)
	}

	gw, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to create window: %w", err)
	}
	gw.MakeContextCurrent()
	if err := gl.Init(); err != nil {
		gw.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}
	glfw.SwapInterval(1)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	if icons, err := assets.Icons(); err == nil && len(icons) > 0 {
		gw.SetIcon(icons)
	}
	return &Window{glfw: gw}, nil
}

// GLFW returns the underlying window for input callbacks.
func (w *Window) GLFW() *glfw.Window {
	return w.glfw
}

// FramebufferSize returns the drawable size in pixels.
func (w *Window) FramebufferSize() (int, int) {
	return w.glfw.GetFramebufferSize()
}

// PixelScale returns framebuffer pixels per screen coordinate on each axis.
// Cursor positions are in screen coordinates, drawing is in pixels.
func (w *Window) PixelScale() (float32, float32) {
	ww, wh := w.glfw.GetSize()
	fw, fh := w.glfw.GetFramebufferSize()
	if ww == 0 || wh == 0 {
		return 1, 1
	}
	return float32(fw) / float32(ww), float32(fh) / float32(wh)
}

func (w *Window) ShouldClose() bool         { return w.glfw.ShouldClose() }
func (w *Window) SetShouldClose(close bool) { w.glfw.SetShouldClose(close) }
func (w *Window) SwapBuffers()              { w.glfw.SwapBuffers() }

// ToggleFullscreen switches between the primary monitor and the last
// windowed placement.
func (w *Window) ToggleFullscreen() {
	if w.full {
		p := w.windowed
		w.glfw.SetMonitor(nil, p.x, p.y, p.w, p.h, 0)
		w.full = false
		return
	}
	w.windowed.x, w.windowed.y = w.glfw.GetPos()
	w.windowed.w, w.windowed.h = w.glfw.GetSize()
	monitor := glfw.GetPrimaryMonitor()
	mode := monitor.GetVideoMode()
	w.glfw.SetMonitor(monitor, 0, 0, mode.Width, mode.Height, mode.RefreshRate)
	w.full = true
}

// Destroy closes the window and terminates GLFW.
func (w *Window) Destroy() {
	w.glfw.Destroy()
	glfw.Terminate()
}

// PollEvents dispatches pending window events to the callbacks.
func PollEvents() {
	glfw.PollEvents()
}
