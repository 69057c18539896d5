package platform

import "testing"

func TestNormalizeCharKeyLowercases(t *testing.T) {
	ev := NormalizeCharKey(KeyboardEvent{Key: KeyCharacter, Chr: 'A', ShiftDown: true})
	if ev.Chr != 'a' {
		t.Fatalf("chr = %q, want %q", ev.Chr, 'a')
	}
	if !ev.ShiftDown {
		t.Fatalf("shift should survive lowercasing")
	}
}

func TestNormalizeCharKeyShiftedPeriod(t *testing.T) {
	ev := NormalizeCharKey(KeyboardEvent{Key: KeyCharacter, Chr: '.', ShiftDown: true})
	if ev.Chr != '>' {
		t.Fatalf("chr = %q, want %q", ev.Chr, '>')
	}
	if ev.ShiftDown {
		t.Fatalf("shift must be cleared for the '>' rewrite")
	}
}

func TestNormalizeCharKeyPlainPeriod(t *testing.T) {
	ev := NormalizeCharKey(KeyboardEvent{Key: KeyCharacter, Chr: '.'})
	if ev.Chr != '.' || ev.ShiftDown {
		t.Fatalf("plain period must pass through, got %+v", ev)
	}
}

func TestKeyboardEventEquals(t *testing.T) {
	base := KeyboardEvent{Type: KeyPress, Key: KeyCharacter, Chr: 's', ControlDown: true}
	cases := []struct {
		name  string
		other KeyboardEvent
		want  bool
	}{
		{"identical", base, true},
		{"different chr", KeyboardEvent{Type: KeyPress, Key: KeyCharacter, Chr: 'z', ControlDown: true}, false},
		{"different type", KeyboardEvent{Type: KeyRelease, Key: KeyCharacter, Chr: 's', ControlDown: true}, false},
		{"different mods", KeyboardEvent{Type: KeyPress, Key: KeyCharacter, Chr: 's'}, false},
		{
			// Num is irrelevant for character keys.
			"stale num ignored",
			KeyboardEvent{Type: KeyPress, Key: KeyCharacter, Chr: 's', Num: 7, ControlDown: true},
			true,
		},
	}
	for _, tc := range cases {
		if got := base.Equals(tc.other); got != tc.want {
			t.Errorf("%s: Equals = %v, want %v", tc.name, got, tc.want)
		}
	}

	f5 := KeyboardEvent{Type: KeyPress, Key: KeyFunction, Num: 5}
	same := KeyboardEvent{Type: KeyPress, Key: KeyFunction, Num: 5, Chr: 'x'}
	if !f5.Equals(same) {
		t.Fatalf("stale chr must be ignored for function keys")
	}
}

func TestButtonFromMaskPriority(t *testing.T) {
	if got := ButtonFromMask(true, true, true); got != ButtonLeft {
		t.Fatalf("left must win, got %v", got)
	}
	if got := ButtonFromMask(false, true, true); got != ButtonMiddle {
		t.Fatalf("middle beats right, got %v", got)
	}
	if got := ButtonFromMask(false, false, true); got != ButtonRight {
		t.Fatalf("got %v, want right", got)
	}
	if got := ButtonFromMask(false, false, false); got != ButtonNone {
		t.Fatalf("got %v, want none", got)
	}
}

func TestWheelDelta(t *testing.T) {
	if d, ok := WheelDelta(2.5); !ok || d != 1 {
		t.Fatalf("positive wheel: got %d, %v", d, ok)
	}
	if d, ok := WheelDelta(-0.1); !ok || d != -1 {
		t.Fatalf("negative wheel: got %d, %v", d, ok)
	}
	if _, ok := WheelDelta(0); ok {
		t.Fatalf("zero wheel must produce no event")
	}
}
