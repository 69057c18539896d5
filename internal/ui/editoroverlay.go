package ui

import (
	"glshell/internal/editor"
	"glshell/internal/platform"
	"glshell/internal/render"
)

// EditorKey is a backend-decoded key destined for the editor overlay. Name
// is EditKeyRune for printable input, with Rune carrying the character as
// typed (case intact, unlike the normalized event path).
type EditorKey struct {
	Name    EditorKeyName
	Rune    rune
	Shift   bool
	Control bool
}

type EditorKeyName int

const (
	EditKeyRune EditorKeyName = iota
	EditKeyLeft
	EditKeyRight
	EditKeyHome
	EditKeyEnd
	EditKeyBackspace
	EditKeyDelete
	EditKeyEscape
	EditKeyReturn
)

type EditorAction int

const (
	EditorKept EditorAction = iota
	EditorHidden
	EditorCommitted
)

// EditorOverlay is the in-window text entry the drawn backends present over
// the rendering surface. While visible it owns the keyboard; the pointer
// passes through to the content underneath.
type EditorOverlay struct {
	Visible bool
	Opts    platform.EditorOptions
	State   *editor.State
	Rect    platform.Rect
}

// Show opens the overlay; while already visible it is a no-op.
func (o *EditorOverlay) Show(opts platform.EditorOptions) {
	if o.Visible {
		return
	}
	o.Opts = opts
	if o.State == nil {
		o.State = editor.NewState(opts.Text)
	} else {
		o.State.SetText(opts.Text)
	}
	o.Visible = true
	o.reflow()
}

func (o *EditorOverlay) Hide() {
	o.Visible = false
}

func (o *EditorOverlay) Text() string {
	if o.State == nil {
		return ""
	}
	return o.State.Text()
}

// HandleKey applies one key to the overlay. Escape hides without a commit;
// Return reports a commit and leaves the overlay visible, since the
// collaborator decides when editing truly ends.
func (o *EditorOverlay) HandleKey(k EditorKey) EditorAction {
	if !o.Visible {
		return EditorKept
	}
	switch k.Name {
	case EditKeyEscape:
		o.Hide()
		return EditorHidden
	case EditKeyReturn:
		return EditorCommitted
	case EditKeyLeft:
		o.State.MoveLeft(k.Shift)
	case EditKeyRight:
		o.State.MoveRight(k.Shift)
	case EditKeyHome:
		o.State.MoveHome(k.Shift)
	case EditKeyEnd:
		o.State.MoveEnd(k.Shift)
	case EditKeyBackspace:
		o.State.Backspace()
	case EditKeyDelete:
		o.State.Delete()
	case EditKeyRune:
		if k.Control {
			switch k.Rune {
			case 'a', 'A':
				o.State.SelectAll()
			case 'c', 'C':
				o.State.CopyToClipboard()
			case 'x', 'X':
				o.State.CutToClipboard()
			case 'v', 'V':
				o.State.PasteFromClipboard()
			}
			break
		}
		if k.Rune >= ' ' {
			o.State.InsertRune(k.Rune)
		}
	}
	o.reflow()
	return EditorKept
}

func (o *EditorOverlay) reflow() {
	if o.State != nil {
		o.Rect = platform.PlaceEditor(o.Opts, o.State.Text())
	}
}

// Draw paints the overlay into the window surface. originY is the top of
// the content area; the overlay's coordinates are content-relative.
func (o *EditorOverlay) Draw(fb *render.FrameBuffer, originY int, theme Theme) {
	if !o.Visible {
		return
	}
	face := platform.FontFace(o.Opts.FontHeight, o.Opts.Monospace)
	r := o.Rect
	r.Y += originY
	DrawEditor(fb, r, o.State, face, theme)
}
