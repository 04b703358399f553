// Package input turns GLFW window events into the per-frame pointer state
// of the dock and into editor key actions.
package input

import (
	"sync"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/javanhut/RavenEditor/src/dock"
)

// Poller latches pointer events between frames. Callbacks record edges
// as they arrive so a click shorter than a frame is not lost; Frame hands
// them out once.
type Poller struct {
	mu       sync.Mutex
	pointer  dock.Vec2
	down     bool
	pressed  bool
	released bool
	cancel   bool
}

// Move records the pointer position in framebuffer pixels.
func (p *Poller) Move(x, y float32) {
	p.mu.Lock()
	p.pointer = dock.Vec2{X: x, Y: y}
	p.mu.Unlock()
}

// Button records a press or release of the primary button.
func (p *Poller) Button(press bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if press == p.down {
		return
	}
	p.down = press
	if press {
		p.pressed = true
	} else {
		p.released = true
	}
}

// Cancel asks the next frame to abort a tab drag.
func (p *Poller) Cancel() {
	p.mu.Lock()
	p.cancel = true
	p.mu.Unlock()
}

// Frame returns the input of the frame about to run and clears the edges.
// Down is the button level, so a press and release within one frame
// arrive as both edges with Down false.
func (p *Poller) Frame() dock.Input {
	p.mu.Lock()
	defer p.mu.Unlock()
	in := dock.Input{
		Pointer:  p.pointer,
		Pressed:  p.pressed,
		Released: p.released,
		Down:     p.down,
		Cancel:   p.cancel,
	}
	if in.Pressed && !in.Released {
		in.Down = true
	}
	p.pressed, p.released, p.cancel = false, false, false
	return in
}

// Attach installs cursor and mouse button callbacks on w. scale converts
// screen coordinates to framebuffer pixels.
func (p *Poller) Attach(w *glfw.Window, scale func() (float32, float32)) {
	w.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		sx, sy := scale()
		p.Move(float32(x)*sx, float32(y)*sy)
	})
	w.SetMouseButtonCallback(func(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		if button != glfw.MouseButtonLeft {
			return
		}
		switch action {
		case glfw.Press:
			p.Button(true)
		case glfw.Release:
			p.Button(false)
		}
	})
}
