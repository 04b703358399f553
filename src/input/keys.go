package input

import (
	"unicode/utf8"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// KeyAction represents the action to take for a key press
type KeyAction int

const (
	ActionNone KeyAction = iota
	ActionQuit
	// ActionInput carries bytes for the console shell.
	ActionInput
	ActionCancel
	ActionResetLayout
	ActionToggleFullscreen
	ActionNextTheme
	ActionZoomIn
	ActionZoomOut
	ActionZoomReset
	ActionSelectNext
	ActionSelectPrev
)

func (a KeyAction) String() string {
	switch a {
	case ActionNone:
		return "none"
	case ActionQuit:
		return "quit"
	case ActionInput:
		return "input"
	case ActionCancel:
		return "cancel"
	case ActionResetLayout:
		return "reset-layout"
	case ActionToggleFullscreen:
		return "toggle-fullscreen"
	case ActionNextTheme:
		return "next-theme"
	case ActionZoomIn:
		return "zoom-in"
	case ActionZoomOut:
		return "zoom-out"
	case ActionZoomReset:
		return "zoom-reset"
	case ActionSelectNext:
		return "select-next"
	case ActionSelectPrev:
		return "select-prev"
	}
	return "unknown"
}

// KeyResult contains the result of processing a key
type KeyResult struct {
	Action KeyAction
	Data   []byte
}

// TranslateKey maps a key press to an editor action or console input.
func TranslateKey(key glfw.Key, mods glfw.ModifierKey) KeyResult {
	ctrl := mods&glfw.ModControl != 0
	shift := mods&glfw.ModShift != 0
	alt := mods&glfw.ModAlt != 0

	// Editor shortcuts
	switch {
	case ctrl && key == glfw.KeyQ:
		return KeyResult{Action: ActionQuit}
	case key == glfw.KeyEscape:
		return KeyResult{Action: ActionCancel}
	case ctrl && shift && key == glfw.KeyR:
		return KeyResult{Action: ActionResetLayout}
	case ctrl && shift && key == glfw.KeyT:
		return KeyResult{Action: ActionNextTheme}
	case key == glfw.KeyF11, shift && (key == glfw.KeyEnter || key == glfw.KeyKPEnter):
		return KeyResult{Action: ActionToggleFullscreen}
	case ctrl && (key == glfw.KeyEqual || key == glfw.KeyKPAdd):
		return KeyResult{Action: ActionZoomIn}
	case ctrl && (key == glfw.KeyMinus || key == glfw.KeyKPSubtract):
		return KeyResult{Action: ActionZoomOut}
	case ctrl && (key == glfw.Key0 || key == glfw.KeyKP0):
		return KeyResult{Action: ActionZoomReset}
	case ctrl && key == glfw.KeyDown:
		return KeyResult{Action: ActionSelectNext}
	case ctrl && key == glfw.KeyUp:
		return KeyResult{Action: ActionSelectPrev}
	}

	// Console input. The shell runs with TERM=dumb, so only the common
	// cursor and editing keys are translated.
	if seq, ok := keySeqs[key]; ok {
		return KeyResult{Action: ActionInput, Data: seq}
	}
	if key == glfw.KeyTab {
		if shift {
			return KeyResult{Action: ActionInput, Data: []byte("\x1b[Z")}
		}
		return KeyResult{Action: ActionInput, Data: []byte{'\t'}}
	}

	// Control + letter combinations
	if ctrl && key >= glfw.KeyA && key <= glfw.KeyZ {
		// Ctrl+A = 1, Ctrl+B = 2, etc.
		return KeyResult{Action: ActionInput, Data: []byte{byte(key - glfw.KeyA + 1)}}
	}

	// Alt + key sends ESC prefix
	if alt && key >= glfw.KeyA && key <= glfw.KeyZ {
		c := byte(key - glfw.KeyA + 'a')
		if shift {
			c = byte(key - glfw.KeyA + 'A')
		}
		return KeyResult{Action: ActionInput, Data: []byte{0x1b, c}}
	}

	// Plain characters arrive through the char callback.
	return KeyResult{Action: ActionNone}
}

var keySeqs = map[glfw.Key][]byte{
	glfw.KeyUp:        []byte("\x1b[A"),
	glfw.KeyDown:      []byte("\x1b[B"),
	glfw.KeyRight:     []byte("\x1b[C"),
	glfw.KeyLeft:      []byte("\x1b[D"),
	glfw.KeyHome:      []byte("\x1b[H"),
	glfw.KeyEnd:       []byte("\x1b[F"),
	glfw.KeyDelete:    []byte("\x1b[3~"),
	glfw.KeyBackspace: {0x7f},
	glfw.KeyEnter:     {'\r'},
	glfw.KeyKPEnter:   {'\r'},
}

// TranslateChar translates a character input to console bytes
func TranslateChar(char rune, mods glfw.ModifierKey) []byte {
	if mods&glfw.ModAlt != 0 && char < utf8.RuneSelf {
		return []byte{0x1b, byte(char)}
	}
	return utf8.AppendRune(nil, char)
}
