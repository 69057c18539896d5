package editor

import "testing"

func TestNewStateSelectsAll(t *testing.T) {
	s := NewState("hello")
	if !s.HasSelection() {
		t.Fatalf("seed text must start selected")
	}
	if got := s.SelectedText(); got != "hello" {
		t.Fatalf("selected = %q", got)
	}
	// Typing replaces the whole seed.
	s.InsertRune('x')
	if got := s.Text(); got != "x" {
		t.Fatalf("text = %q", got)
	}
}

func TestInsertAndBackspaceUTF8(t *testing.T) {
	s := NewState("")
	s.InsertString("héllo")
	if got := s.Text(); got != "héllo" {
		t.Fatalf("text = %q", got)
	}
	s.Backspace()
	s.Backspace()
	s.Backspace()
	s.Backspace()
	if got := s.Text(); got != "h" {
		t.Fatalf("text = %q, multi-byte rune not removed whole", got)
	}
}

func TestDeleteForward(t *testing.T) {
	s := NewState("")
	s.InsertString("abc")
	s.MoveHome(false)
	s.Delete()
	if got := s.Text(); got != "bc" {
		t.Fatalf("text = %q", got)
	}
	if s.CaretByte() != 0 {
		t.Fatalf("caret = %d", s.CaretByte())
	}
}

func TestSelectionMovement(t *testing.T) {
	s := NewState("")
	s.InsertString("abcd")
	s.MoveHome(false)
	s.MoveRight(true)
	s.MoveRight(true)
	if got := s.SelectedText(); got != "ab" {
		t.Fatalf("selected = %q", got)
	}
	a, b := s.SelectionRange()
	if a != 0 || b != 2 {
		t.Fatalf("range = %d..%d", a, b)
	}

	// A plain move collapses to the selection edge.
	s.MoveLeft(false)
	if s.HasSelection() {
		t.Fatalf("selection should collapse")
	}
	if s.CaretByte() != 0 {
		t.Fatalf("caret = %d, want left edge", s.CaretByte())
	}
}

func TestSelectionReplacedByTyping(t *testing.T) {
	s := NewState("")
	s.InsertString("hello world")
	s.MoveHome(false)
	for i := 0; i < 5; i++ {
		s.MoveRight(true)
	}
	s.InsertString("goodbye")
	if got := s.Text(); got != "goodbye world" {
		t.Fatalf("text = %q", got)
	}
}

func TestControlCharactersDropped(t *testing.T) {
	s := NewState("one\ntwo\tthree")
	if got := s.Text(); got != "onetwothree" {
		t.Fatalf("text = %q, control characters must not survive", got)
	}
}

func TestMoveEndAndHomeExtend(t *testing.T) {
	s := NewState("")
	s.InsertString("abc")
	s.MoveHome(true)
	if got := s.SelectedText(); got != "abc" {
		t.Fatalf("selected = %q", got)
	}
	s.MoveEnd(false)
	if s.HasSelection() {
		t.Fatalf("selection should collapse on plain End")
	}
	if s.CaretByte() != 3 {
		t.Fatalf("caret = %d", s.CaretByte())
	}
}
