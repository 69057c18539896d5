package ebit

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"glshell/internal/platform"
	"glshell/internal/ui"
)

// keyChars maps ebiten key constants to the base character the key types
// with no modifiers, mirroring a layout-independent virtual-key lookup.
var keyChars = map[ebiten.Key]rune{
	ebiten.KeyA: 'a', ebiten.KeyB: 'b', ebiten.KeyC: 'c', ebiten.KeyD: 'd',
	ebiten.KeyE: 'e', ebiten.KeyF: 'f', ebiten.KeyG: 'g', ebiten.KeyH: 'h',
	ebiten.KeyI: 'i', ebiten.KeyJ: 'j', ebiten.KeyK: 'k', ebiten.KeyL: 'l',
	ebiten.KeyM: 'm', ebiten.KeyN: 'n', ebiten.KeyO: 'o', ebiten.KeyP: 'p',
	ebiten.KeyQ: 'q', ebiten.KeyR: 'r', ebiten.KeyS: 's', ebiten.KeyT: 't',
	ebiten.KeyU: 'u', ebiten.KeyV: 'v', ebiten.KeyW: 'w', ebiten.KeyX: 'x',
	ebiten.KeyY: 'y', ebiten.KeyZ: 'z',
	ebiten.KeyDigit0: '0', ebiten.KeyDigit1: '1', ebiten.KeyDigit2: '2',
	ebiten.KeyDigit3: '3', ebiten.KeyDigit4: '4', ebiten.KeyDigit5: '5',
	ebiten.KeyDigit6: '6', ebiten.KeyDigit7: '7', ebiten.KeyDigit8: '8',
	ebiten.KeyDigit9: '9',
	ebiten.KeyMinus:  '-', ebiten.KeyEqual: '=', ebiten.KeyComma: ',',
	ebiten.KeyPeriod: '.', ebiten.KeySlash: '/', ebiten.KeySemicolon: ';',
	ebiten.KeyQuote: '\'', ebiten.KeyBracketLeft: '[', ebiten.KeyBracketRight: ']',
	ebiten.KeyBackslash: '\\', ebiten.KeyBackquote: '`',
	ebiten.KeySpace: ' ',
	ebiten.KeyTab:   platform.CharTab, ebiten.KeyEscape: platform.CharEscape,
	ebiten.KeyDelete: platform.CharDelete,
	ebiten.KeyEnter:  '\n', ebiten.KeyNumpadEnter: '\n',
	ebiten.KeyBackspace: '\b',
}

var keyFuncs = map[ebiten.Key]int{
	ebiten.KeyF1: 1, ebiten.KeyF2: 2, ebiten.KeyF3: 3, ebiten.KeyF4: 4,
	ebiten.KeyF5: 5, ebiten.KeyF6: 6, ebiten.KeyF7: 7, ebiten.KeyF8: 8,
	ebiten.KeyF9: 9, ebiten.KeyF10: 10, ebiten.KeyF11: 11, ebiten.KeyF12: 12,
}

var editorKeys = map[ebiten.Key]ui.EditorKeyName{
	ebiten.KeyArrowLeft:   ui.EditKeyLeft,
	ebiten.KeyArrowRight:  ui.EditKeyRight,
	ebiten.KeyHome:        ui.EditKeyHome,
	ebiten.KeyEnd:         ui.EditKeyEnd,
	ebiten.KeyBackspace:   ui.EditKeyBackspace,
	ebiten.KeyDelete:      ui.EditKeyDelete,
	ebiten.KeyEscape:      ui.EditKeyEscape,
	ebiten.KeyEnter:       ui.EditKeyReturn,
	ebiten.KeyNumpadEnter: ui.EditKeyReturn,
}

// inputFrame is one Update's worth of input, captured on the game goroutine
// and handed to the dispatch loop.
type inputFrame struct {
	pressed  []ebiten.Key
	released []ebiten.Key
	chars    []rune

	shift, control, other bool

	cursorX, cursorY int
	wheelY           float64

	leftPress, leftRelease          bool
	middlePress, middleRelease      bool
	rightPress, rightRelease        bool
	leftDown, middleDown, rightDown bool

	closing    bool
	fullScreen bool
	w, h       int
}

func captureInput(w, h int) inputFrame {
	f := inputFrame{w: w, h: h}
	f.pressed = inpututil.AppendJustPressedKeys(nil)
	f.released = inpututil.AppendJustReleasedKeys(nil)
	f.chars = ebiten.AppendInputChars(nil)

	f.shift = ebiten.IsKeyPressed(ebiten.KeyShift)
	f.control = ebiten.IsKeyPressed(ebiten.KeyControl)
	f.other = ebiten.IsKeyPressed(ebiten.KeyAlt) || ebiten.IsKeyPressed(ebiten.KeyMeta)

	f.cursorX, f.cursorY = ebiten.CursorPosition()
	_, f.wheelY = ebiten.Wheel()

	f.leftPress = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	f.leftRelease = inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)
	f.middlePress = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonMiddle)
	f.middleRelease = inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonMiddle)
	f.rightPress = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight)
	f.rightRelease = inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonRight)
	f.leftDown = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	f.middleDown = ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle)
	f.rightDown = ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)

	f.closing = ebiten.IsWindowBeingClosed()
	f.fullScreen = ebiten.IsFullscreen()
	return f
}

// decodeKey builds the normalized event for one key transition. ok is false
// for keys outside the contract or chords with Alt or Meta held.
func decodeKey(key ebiten.Key, f inputFrame, typ platform.KeyboardEventType) (platform.KeyboardEvent, bool) {
	if f.other {
		return platform.KeyboardEvent{}, false
	}
	ev := platform.KeyboardEvent{
		Type:        typ,
		ShiftDown:   f.shift,
		ControlDown: f.control,
	}
	if n, ok := keyFuncs[key]; ok {
		ev.Key = platform.KeyFunction
		ev.Num = n
		return ev, true
	}
	chr, ok := keyChars[key]
	if !ok {
		return platform.KeyboardEvent{}, false
	}
	ev.Chr = chr
	return platform.NormalizeCharKey(ev), true
}

func (f inputFrame) mouseButton() platform.MouseButton {
	return platform.ButtonFromMask(f.leftDown, f.middleDown, f.rightDown)
}
