package platform

import (
	"fmt"
	"strings"
	"unicode"
)

// AcceleratorDescription renders a keyboard event as the textual shortcut
// shown next to a menu item, e.g. "Ctrl+Shift+Z" or "F5". An event carrying
// no key yields "".
func AcceleratorDescription(accel KeyboardEvent) string {
	var sb strings.Builder
	if accel.ControlDown {
		sb.WriteString("Ctrl+")
	}
	if accel.ShiftDown {
		sb.WriteString("Shift+")
	}
	switch accel.Key {
	case KeyCharacter:
		switch accel.Chr {
		case 0:
			return ""
		case CharTab:
			sb.WriteString("Tab")
		case CharEscape:
			sb.WriteString("Esc")
		case CharDelete:
			sb.WriteString("Del")
		default:
			sb.WriteRune(unicode.ToUpper(accel.Chr))
		}
	case KeyFunction:
		fmt.Fprintf(&sb, "F%d", accel.Num)
	}
	return sb.String()
}

// AcceleratorLabel combines a menu item label with the description of its
// accelerator, separated by a tab. Any suffix after the first tab in label is
// replaced, so the function is idempotent across SetAccelerator calls.
func AcceleratorLabel(label string, accel KeyboardEvent) string {
	if i := strings.IndexByte(label, '\t'); i >= 0 {
		label = label[:i]
	}
	desc := AcceleratorDescription(accel)
	if desc == "" {
		return label
	}
	return label + "\t" + desc
}

// StripMnemonics removes '&' markers from a menu label. Underlining of
// mnemonic characters is not rendered, but labels authored with markers must
// still display cleanly. "&&" escapes a literal ampersand.
func StripMnemonics(label string) string {
	var sb strings.Builder
	for i := 0; i < len(label); i++ {
		if label[i] == '&' && i+1 < len(label) {
			i++
			sb.WriteByte(label[i])
			continue
		}
		if label[i] != '&' {
			sb.WriteByte(label[i])
		}
	}
	return sb.String()
}
