package x11

import (
	"strconv"
	"time"
	"unicode/utf8"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/keybind"

	"glshell/internal/platform"
	"glshell/internal/ui"
)

var timeNow = time.Now

// Lock and NumLock do not change what a key means to a collaborator, so
// they are masked off before the modifier policy is applied.
const ignorableMods = xproto.ModMaskLock | xproto.ModMask2

// decodeKey turns a raw keycode into a normalized keyboard event. ok is
// false for keys outside the contract (arrows, bare modifiers) and for
// chords held with modifiers other than Shift and Control.
func decodeKey(xu *xgbutil.XUtil, detail xproto.Keycode, state uint16, typ platform.KeyboardEventType) (platform.KeyboardEvent, bool) {
	mods := state &^ ignorableMods
	if mods&^(xproto.ModMaskShift|xproto.ModMaskControl) != 0 {
		return platform.KeyboardEvent{}, false
	}
	ev := platform.KeyboardEvent{
		Type:        typ,
		ShiftDown:   mods&xproto.ModMaskShift != 0,
		ControlDown: mods&xproto.ModMaskControl != 0,
	}

	name := keybind.LookupString(xu, state, detail)
	switch name {
	case "":
		return platform.KeyboardEvent{}, false
	case "Tab", "ISO_Left_Tab":
		ev.Chr = platform.CharTab
	case "Escape":
		ev.Chr = platform.CharEscape
	case "Delete":
		ev.Chr = platform.CharDelete
	case "Return", "KP_Enter":
		ev.Chr = '\n'
	case "BackSpace":
		ev.Chr = '\b'
	case "space":
		ev.Chr = ' '
	default:
		if n, ok := functionKeyNum(name); ok {
			ev.Key = platform.KeyFunction
			ev.Num = n
			return ev, true
		}
		r, size := utf8.DecodeRuneInString(name)
		if size != len(name) || r == utf8.RuneError {
			return platform.KeyboardEvent{}, false
		}
		ev.Chr = r
	}
	return platform.NormalizeCharKey(ev), true
}

func functionKeyNum(name string) (int, bool) {
	if len(name) < 2 || name[0] != 'F' {
		return 0, false
	}
	n, err := strconv.Atoi(name[1:])
	if err != nil || n < 1 || n > 12 {
		return 0, false
	}
	return n, true
}

// decodeEditorKey maps the same keycode for the editor overlay, which needs
// caret movement keys and case-preserving input the normalized contract
// does not carry.
func decodeEditorKey(xu *xgbutil.XUtil, detail xproto.Keycode, state uint16) (ui.EditorKey, bool) {
	k := ui.EditorKey{
		Shift:   state&xproto.ModMaskShift != 0,
		Control: state&xproto.ModMaskControl != 0,
	}
	name := keybind.LookupString(xu, state, detail)
	switch name {
	case "Left":
		k.Name = ui.EditKeyLeft
	case "Right":
		k.Name = ui.EditKeyRight
	case "Home", "KP_Home":
		k.Name = ui.EditKeyHome
	case "End", "KP_End":
		k.Name = ui.EditKeyEnd
	case "BackSpace":
		k.Name = ui.EditKeyBackspace
	case "Delete":
		k.Name = ui.EditKeyDelete
	case "Escape":
		k.Name = ui.EditKeyEscape
	case "Return", "KP_Enter":
		k.Name = ui.EditKeyReturn
	case "space":
		k.Name = ui.EditKeyRune
		k.Rune = ' '
	default:
		r, size := utf8.DecodeRuneInString(name)
		if size == 0 || size != len(name) || r == utf8.RuneError {
			return ui.EditorKey{}, false
		}
		k.Name = ui.EditKeyRune
		k.Rune = r
	}
	return k, true
}

func decodeButtonMods(state uint16) (shift, control bool) {
	return state&xproto.ModMaskShift != 0, state&xproto.ModMaskControl != 0
}

func maskButton(state uint16) platform.MouseButton {
	return platform.ButtonFromMask(
		state&xproto.ButtonMask1 != 0,
		state&xproto.ButtonMask2 != 0,
		state&xproto.ButtonMask3 != 0,
	)
}

// clickTracker synthesizes double presses; core X only reports single
// clicks.
type clickTracker struct {
	button platform.MouseButton
	at     time.Time
	x, y   int
}

func (c *clickTracker) isDouble(button platform.MouseButton, x, y int) bool {
	now := time.Now()
	double := button == c.button &&
		now.Sub(c.at) < platform.DoubleClickTime &&
		abs(x-c.x) <= int(platform.DoubleClickDist) &&
		abs(y-c.y) <= int(platform.DoubleClickDist)
	if double {
		// A triple click starts a fresh cycle.
		*c = clickTracker{}
		return true
	}
	c.button, c.at, c.x, c.y = button, now, x, y
	return false
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
