package platform

import "unicode"

// Control characters carried inside KeyboardEvent.Chr regardless of how the
// host encodes the corresponding key.
const (
	CharTab    rune = '\t'
	CharEscape rune = '\x1b'
	CharDelete rune = '\x7f'
)

type KeyboardEventType int

const (
	KeyPress KeyboardEventType = iota
	KeyRelease
)

type KeyVariant int

const (
	KeyCharacter KeyVariant = iota
	KeyFunction
)

// KeyboardEvent is a normalized keyboard input event. Chr is meaningful only
// when Key is KeyCharacter, Num only when Key is KeyFunction. Case is conveyed
// solely through ShiftDown; Chr is always lower-cased at the decode boundary.
type KeyboardEvent struct {
	Type        KeyboardEventType
	Key         KeyVariant
	Chr         rune
	Num         int
	ShiftDown   bool
	ControlDown bool
}

func (e KeyboardEvent) Equals(other KeyboardEvent) bool {
	if e.Type != other.Type || e.Key != other.Key ||
		e.ShiftDown != other.ShiftDown || e.ControlDown != other.ControlDown {
		return false
	}
	switch e.Key {
	case KeyFunction:
		return e.Num == other.Num
	default:
		return e.Chr == other.Chr
	}
}

// NormalizeCharKey applies the layout quirks shared by every backend: the
// codepoint is lower-cased, and Shift+'.' is rewritten to '>' with the shift
// flag cleared so upstream code never sees the raw combination.
func NormalizeCharKey(ev KeyboardEvent) KeyboardEvent {
	if ev.Key != KeyCharacter {
		return ev
	}
	ev.Chr = unicode.ToLower(ev.Chr)
	if ev.Chr == '.' && ev.ShiftDown {
		ev.Chr = '>'
		ev.ShiftDown = false
	}
	return ev
}

type MouseEventType int

const (
	MouseMotion MouseEventType = iota
	MousePress
	MouseDblPress
	MouseRelease
	MouseScrollVert
	MouseLeave
)

type MouseButton int

const (
	ButtonNone MouseButton = iota
	ButtonLeft
	ButtonMiddle
	ButtonRight
)

// MouseEvent is a normalized pointer input event in window-content
// coordinates (origin top-left, unscaled logical pixels). ScrollDelta is ±1
// and populated only for MouseScrollVert.
type MouseEvent struct {
	Type        MouseEventType
	X           float64
	Y           float64
	Button      MouseButton
	ShiftDown   bool
	ControlDown bool
	ScrollDelta int
}

// ButtonFromMask resolves the current button from a held-button mask, used
// for motion events where the host reports no explicit button index.
// Priority when several bits are set: left, then middle, then right.
func ButtonFromMask(left, middle, right bool) MouseButton {
	switch {
	case left:
		return ButtonLeft
	case middle:
		return ButtonMiddle
	case right:
		return ButtonRight
	}
	return ButtonNone
}

// WheelDelta normalizes vertical wheel motion to +1 (toward content top) or
// -1. A zero delta produces no event and reports ok=false.
func WheelDelta(dy float64) (delta int, ok bool) {
	if dy > 0 {
		return 1, true
	}
	if dy < 0 {
		return -1, true
	}
	return 0, false
}
