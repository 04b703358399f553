package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/javanhut/RavenEditor/src/config"
	"github.com/javanhut/RavenEditor/src/editor"
	"github.com/javanhut/RavenEditor/src/editorlog"
	"github.com/javanhut/RavenEditor/src/input"
	"github.com/javanhut/RavenEditor/src/render"
	"github.com/javanhut/RavenEditor/src/window"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Printf("Failed to load config, using defaults: %v", err)
		cfg = config.DefaultConfig()
	}

	level := new(slog.LevelVar)
	level.Set(cfg.LogLevel())
	logger, ring := editorlog.New(os.Stderr, level, cfg.Log.Capacity)
	slog.SetDefault(logger)

	// Create window
	win, err := window.NewWindow(window.DefaultConfig())
	if err != nil {
		log.Fatalf("Failed to create window: %v", err)
	}
	defer win.Destroy()

	// Create renderer
	renderer, err := render.NewRenderer(cfg.Font, cfg.FontSize, cfg.Theme)
	if err != nil {
		log.Fatalf("Failed to create renderer: %v", err)
	}
	defer renderer.Destroy()

	ed, err := editor.New(editor.Options{Config: cfg, Logger: logger, Ring: ring})
	if err != nil {
		log.Fatalf("Failed to create editor: %v", err)
	}
	defer ed.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ed.Watch(ctx)
	reloads, err := config.Watch(ctx, config.GetConfigPath(), logger)
	if err != nil {
		logger.Warn("config hot reload disabled", "err", err)
	}

	applyConfig := func(c *config.Config) {
		if ed.ApplyConfig(c) != nil {
			return
		}
		level.Set(c.LogLevel())
		renderer.SetThemeByName(c.Theme)
		if err := renderer.ChangeFont(c.Font); err != nil {
			logger.Warn("font change", "font", c.Font, "err", err)
		}
		if err := renderer.SetDefaultFontSize(c.FontSize); err != nil {
			logger.Warn("font size change", "size", c.FontSize, "err", err)
		}
	}
	zoom := func(fn func() error) {
		if err := fn(); err != nil {
			logger.Warn("zoom", "err", err)
			return
		}
		ed.Toast("Font size " + formatSize(renderer.FontSize()))
	}

	// Set up input callbacks
	var poller input.Poller
	poller.Attach(win.GLFW(), win.PixelScale)

	var currentMods glfw.ModifierKey
	win.GLFW().SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		currentMods = mods
		if action != glfw.Press && action != glfw.Repeat {
			return
		}
		res := input.TranslateKey(key, mods)
		switch res.Action {
		case input.ActionQuit:
			win.SetShouldClose(true)
		case input.ActionCancel:
			if _, dragging := ed.Dock().Dragging(); dragging {
				poller.Cancel()
			} else {
				ed.SendInput([]byte{0x1b})
			}
		case input.ActionResetLayout:
			ed.ResetLayout()
		case input.ActionToggleFullscreen:
			win.ToggleFullscreen()
		case input.ActionNextTheme:
			renderer.SetThemeByName(ed.NextTheme())
		case input.ActionZoomIn:
			zoom(renderer.ZoomIn)
		case input.ActionZoomOut:
			zoom(renderer.ZoomOut)
		case input.ActionZoomReset:
			zoom(renderer.ZoomReset)
		case input.ActionSelectNext:
			ed.SelectNext(1)
		case input.ActionSelectPrev:
			ed.SelectNext(-1)
		case input.ActionInput:
			ed.SendInput(res.Data)
		}
	})
	win.GLFW().SetCharCallback(func(w *glfw.Window, char rune) {
		ed.SendInput(input.TranslateChar(char, currentMods))
	})

	logger.Info("editor started", "config", config.GetConfigPath(), "theme", cfg.Theme)

	// Main loop
	for !win.ShouldClose() {
	drain:
		for {
			select {
			case c, ok := <-reloads:
				if !ok {
					reloads = nil
					break drain
				}
				applyConfig(c)
			default:
				break drain
			}
		}

		width, height := win.FramebufferSize()
		ed.Frame(renderer, poller.Frame(), width, height)

		// Swap buffers and poll events
		win.SwapBuffers()
		window.PollEvents()

		// Small sleep to prevent 100% CPU usage
		time.Sleep(time.Millisecond * 16) // ~60 FPS
	}
}

func formatSize(size float32) string {
	return strconv.FormatFloat(float64(size), 'f', -1, 32)
}
