package platform

import "testing"

func TestAcceleratorDescription(t *testing.T) {
	cases := []struct {
		name string
		ev   KeyboardEvent
		want string
	}{
		{"plain char", KeyboardEvent{Key: KeyCharacter, Chr: 's'}, "S"},
		{"ctrl char", KeyboardEvent{Key: KeyCharacter, Chr: 's', ControlDown: true}, "Ctrl+S"},
		{"ctrl shift", KeyboardEvent{Key: KeyCharacter, Chr: 'z', ControlDown: true, ShiftDown: true}, "Ctrl+Shift+Z"},
		{"function", KeyboardEvent{Key: KeyFunction, Num: 5}, "F5"},
		{"shift function", KeyboardEvent{Key: KeyFunction, Num: 12, ShiftDown: true}, "Shift+F12"},
		{"tab", KeyboardEvent{Key: KeyCharacter, Chr: CharTab}, "Tab"},
		{"escape", KeyboardEvent{Key: KeyCharacter, Chr: CharEscape}, "Esc"},
		{"delete", KeyboardEvent{Key: KeyCharacter, Chr: CharDelete}, "Del"},
		{"empty", KeyboardEvent{Key: KeyCharacter}, ""},
	}
	for _, tc := range cases {
		if got := AcceleratorDescription(tc.ev); got != tc.want {
			t.Errorf("%s: got %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestAcceleratorLabel(t *testing.T) {
	ctrlS := KeyboardEvent{Key: KeyCharacter, Chr: 's', ControlDown: true}
	got := AcceleratorLabel("Save", ctrlS)
	if got != "Save\tCtrl+S" {
		t.Fatalf("got %q", got)
	}

	// Re-labeling replaces the old suffix rather than stacking.
	f2 := KeyboardEvent{Key: KeyFunction, Num: 2}
	got = AcceleratorLabel(got, f2)
	if got != "Save\tF2" {
		t.Fatalf("got %q", got)
	}
}

func TestStripMnemonics(t *testing.T) {
	if got := StripMnemonics("&File"); got != "File" {
		t.Fatalf("got %q", got)
	}
	if got := StripMnemonics("Save && Close"); got != "Save & Close" {
		t.Fatalf("got %q", got)
	}
	if got := StripMnemonics("plain"); got != "plain" {
		t.Fatalf("got %q", got)
	}
}
