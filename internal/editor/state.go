// Package editor holds the text-editing state behind the in-window editor
// overlay: a single line of UTF-8 text, a caret, and a selection anchor.
// Presentation and key decoding stay in the backends.
package editor

import (
	"strings"
	"unicode/utf8"

	"github.com/atotto/clipboard"
)

type State struct {
	text      string
	caretByte int

	selectionAnchor   int
	selectionAnchored bool
}

// NewState seeds the editor with text and selects all of it, so typing
// replaces the seed the way a freshly focused entry does.
func NewState(text string) *State {
	s := &State{}
	s.SetText(text)
	return s
}

func (s *State) Text() string { return s.text }

func (s *State) CaretByte() int { return s.caretByte }

// SetText replaces the content and selects all of it.
func (s *State) SetText(text string) {
	s.text = strings.Map(dropControl, text)
	s.selectionAnchor = 0
	s.selectionAnchored = true
	s.caretByte = len(s.text)
}

func dropControl(r rune) rune {
	if r == '\n' || r == '\r' || r == '\t' {
		return -1
	}
	return r
}

func (s *State) HasSelection() bool {
	return s.selectionAnchored && s.selectionAnchor != s.caretByte
}

func (s *State) selectionRange() (int, int) {
	a, b := s.selectionAnchor, s.caretByte
	if a > b {
		a, b = b, a
	}
	return a, b
}

// SelectionRange returns the selection as byte offsets, low before high.
// With no selection both bounds equal the caret.
func (s *State) SelectionRange() (int, int) {
	if !s.HasSelection() {
		return s.caretByte, s.caretByte
	}
	return s.selectionRange()
}

func (s *State) SelectedText() string {
	if !s.HasSelection() {
		return ""
	}
	a, b := s.selectionRange()
	return s.text[a:b]
}

func (s *State) SelectAll() {
	s.selectionAnchor = 0
	s.selectionAnchored = true
	s.caretByte = len(s.text)
}

func (s *State) deleteSelection() bool {
	if !s.HasSelection() {
		s.selectionAnchored = false
		return false
	}
	a, b := s.selectionRange()
	s.text = s.text[:a] + s.text[b:]
	s.caretByte = a
	s.selectionAnchored = false
	return true
}

func (s *State) InsertRune(r rune) {
	s.InsertString(string(r))
}

func (s *State) InsertString(str string) {
	str = strings.Map(dropControl, str)
	if str == "" {
		return
	}
	s.deleteSelection()
	s.text = s.text[:s.caretByte] + str + s.text[s.caretByte:]
	s.caretByte += len(str)
}

// Backspace removes the selection, or the rune before the caret.
func (s *State) Backspace() {
	if s.deleteSelection() {
		return
	}
	if s.caretByte == 0 {
		return
	}
	_, n := utf8.DecodeLastRuneInString(s.text[:s.caretByte])
	s.text = s.text[:s.caretByte-n] + s.text[s.caretByte:]
	s.caretByte -= n
}

// Delete removes the selection, or the rune after the caret.
func (s *State) Delete() {
	if s.deleteSelection() {
		return
	}
	if s.caretByte >= len(s.text) {
		return
	}
	_, n := utf8.DecodeRuneInString(s.text[s.caretByte:])
	s.text = s.text[:s.caretByte] + s.text[s.caretByte+n:]
}

func (s *State) MoveLeft(extend bool) {
	if s.collapse(extend, true) {
		return
	}
	if s.caretByte > 0 {
		_, n := utf8.DecodeLastRuneInString(s.text[:s.caretByte])
		s.caretByte -= n
	}
}

func (s *State) MoveRight(extend bool) {
	if s.collapse(extend, false) {
		return
	}
	if s.caretByte < len(s.text) {
		_, n := utf8.DecodeRuneInString(s.text[s.caretByte:])
		s.caretByte += n
	}
}

func (s *State) MoveHome(extend bool) {
	s.collapse(extend, true)
	s.caretByte = 0
}

func (s *State) MoveEnd(extend bool) {
	s.collapse(extend, false)
	s.caretByte = len(s.text)
}

// collapse prepares the selection for a caret move. With extend it pins an
// anchor and reports false so the move proceeds; without it an existing
// selection collapses to its left or right edge and the move is consumed.
func (s *State) collapse(extend, toLeft bool) bool {
	if extend {
		if !s.selectionAnchored {
			s.selectionAnchor = s.caretByte
			s.selectionAnchored = true
		}
		return false
	}
	if s.HasSelection() {
		a, b := s.selectionRange()
		if toLeft {
			s.caretByte = a
		} else {
			s.caretByte = b
		}
		s.selectionAnchored = false
		return true
	}
	s.selectionAnchored = false
	return false
}

func (s *State) CopyToClipboard() {
	if !s.HasSelection() {
		return
	}
	_ = clipboard.WriteAll(s.SelectedText())
}

func (s *State) CutToClipboard() {
	if !s.HasSelection() {
		return
	}
	_ = clipboard.WriteAll(s.SelectedText())
	s.deleteSelection()
}

func (s *State) PasteFromClipboard() {
	str, err := clipboard.ReadAll()
	if err != nil || str == "" {
		return
	}
	s.InsertString(str)
}
