package render

import (
	"strings"

	"github.com/javanhut/RavenEditor/src/panels"
)

// Theme colors
type Theme struct {
	Background [4]float32
	Foreground [4]float32
	Accent     [4]float32
	TabBar     [4]float32
	TabActive  [4]float32
	Selection  [4]float32
	Panel      [4]float32
	Muted      [4]float32
	Warning    [4]float32
	Error      [4]float32
}

// DefaultTheme returns the default color theme
func DefaultTheme() Theme {
	return ThemeByName("raven-blue")
}

// ThemeByName returns a theme for a known theme name.
func ThemeByName(name string) Theme {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "crow-black":
		return Theme{
			Background: [4]float32{0.020, 0.020, 0.020, 1.0}, // #050505
			Foreground: [4]float32{0.902, 0.902, 0.902, 1.0}, // #e6e6e6
			Accent:     [4]float32{0.965, 0.965, 0.965, 1.0}, // #f6f6f6
			TabBar:     [4]float32{0.000, 0.000, 0.000, 1.0}, // #000000
			TabActive:  [4]float32{0.702, 0.702, 0.702, 1.0}, // #b3b3b3
			Selection:  [4]float32{0.702, 0.702, 0.702, 0.35},
			Panel:      [4]float32{0.059, 0.059, 0.059, 1.0}, // #0f0f0f
			Muted:      [4]float32{0.502, 0.502, 0.502, 1.0},
			Warning:    [4]float32{0.878, 0.757, 0.380, 1.0},
			Error:      [4]float32{0.890, 0.380, 0.380, 1.0},
		}
	case "magpie-black-white-grey", "magpie-black-and-white-grey":
		return Theme{
			Background: [4]float32{0.067, 0.067, 0.067, 1.0}, // #111111
			Foreground: [4]float32{0.961, 0.961, 0.961, 1.0}, // #f5f5f5
			Accent:     [4]float32{1.000, 1.000, 1.000, 1.0}, // #ffffff
			TabBar:     [4]float32{0.039, 0.039, 0.039, 1.0}, // #0a0a0a
			TabActive:  [4]float32{0.816, 0.816, 0.816, 1.0}, // #d0d0d0
			Selection:  [4]float32{0.816, 0.816, 0.816, 0.35},
			Panel:      [4]float32{0.110, 0.110, 0.110, 1.0}, // #1c1c1c
			Muted:      [4]float32{0.600, 0.600, 0.600, 1.0},
			Warning:    [4]float32{0.850, 0.850, 0.850, 1.0},
			Error:      [4]float32{1.000, 0.450, 0.450, 1.0},
		}
	case "catppuccin-mocha", "catppuccin", "catpuccin":
		return Theme{
			Background: [4]float32{0.118, 0.118, 0.180, 1.0}, // #1e1e2e
			Foreground: [4]float32{0.804, 0.839, 0.957, 1.0}, // #cdd6f4
			Accent:     [4]float32{0.961, 0.761, 0.906, 1.0}, // #f5c2e7
			TabBar:     [4]float32{0.094, 0.094, 0.145, 1.0}, // #181825
			TabActive:  [4]float32{0.537, 0.706, 0.980, 1.0}, // #89b4fa
			Selection:  [4]float32{0.537, 0.706, 0.980, 0.35},
			Panel:      [4]float32{0.192, 0.196, 0.267, 1.0}, // #313244
			Muted:      [4]float32{0.576, 0.600, 0.698, 1.0}, // #9399b2
			Warning:    [4]float32{0.976, 0.886, 0.686, 1.0}, // #f9e2af
			Error:      [4]float32{0.953, 0.545, 0.659, 1.0}, // #f38ba8
		}
	case "raven-blue":
		fallthrough
	default:
		return Theme{
			Background: [4]float32{0.051, 0.063, 0.102, 1.0}, // #0d101a
			Foreground: [4]float32{0.910, 0.929, 0.969, 1.0}, // #e8edf7
			Accent:     [4]float32{0.635, 0.878, 0.780, 1.0}, // #a2e0c7
			TabBar:     [4]float32{0.039, 0.047, 0.078, 1.0}, // #0a0c14
			TabActive:  [4]float32{0.455, 0.714, 1.0, 1.0},   // #74b6ff
			Selection:  [4]float32{0.455, 0.714, 1.0, 0.35},
			Panel:      [4]float32{0.078, 0.094, 0.149, 1.0}, // #141826
			Muted:      [4]float32{0.494, 0.545, 0.647, 1.0}, // #7e8ba5
			Warning:    [4]float32{0.961, 0.776, 0.416, 1.0}, // #f5c66a
			Error:      [4]float32{0.937, 0.424, 0.467, 1.0}, // #ef6c77
		}
	}
}

// Palette is the subset of the theme handed to panels.
func (t Theme) Palette() panels.Palette {
	return panels.Palette{
		Background: t.Background,
		Panel:      t.Panel,
		Foreground: t.Foreground,
		Muted:      t.Muted,
		Accent:     t.TabActive,
		Selection:  t.Selection,
		Warning:    t.Warning,
		Error:      t.Error,
	}
}

func withAlpha(c [4]float32, a float32) [4]float32 {
	c[3] = a
	return c
}
