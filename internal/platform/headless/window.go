package headless

import (
	"time"
	"unicode"

	"glshell/internal/editor"
	"glshell/internal/platform"
	"glshell/internal/render"
)

var timeNow = time.Now

type window struct {
	backend *Backend
	kind    platform.WindowKind
	events  platform.WindowEvents

	rect       platform.Rect
	minW, minH int
	visible    bool
	fullScreen bool
	maximized  bool
	title      string
	tooltip    string
	cursor     platform.Cursor
	menuBar    *platform.MenuBar

	scroll platform.Scrollbar

	edit     *editor.State
	editOpts platform.EditorOptions
	editRect platform.Rect

	surface *render.FrameBuffer
}

func newWindow(b *Backend, kind platform.WindowKind) *window {
	w := &window{
		backend: b,
		kind:    kind,
		rect:    platform.Rect{X: 100, Y: 100, W: 800, H: 600},
	}
	w.surface = render.NewFrameBuffer(w.rect.W, w.rect.H)
	return w
}

func (w *window) Events() *platform.WindowEvents { return &w.events }

func (w *window) Kind() platform.WindowKind { return w.kind }

func (w *window) IntegralScaleFactor() int       { return 1 }
func (w *window) FractionalScaleFactor() float64 { return 1.0 }
func (w *window) PixelDensity() float64          { return 96.0 }

func (w *window) IsVisible() bool { return w.visible }

func (w *window) SetVisible(visible bool) { w.visible = visible }

func (w *window) Focus() {}

func (w *window) IsFullScreen() bool { return w.fullScreen }

func (w *window) SetFullScreen(fullScreen bool) {
	if w.fullScreen == fullScreen {
		return
	}
	w.fullScreen = fullScreen
	if w.events.OnFullScreen != nil {
		w.events.OnFullScreen(fullScreen)
	}
}

func (w *window) SetTitle(title string) { w.title = title }

func (w *window) Title() string { return w.title }

func (w *window) SetMenuBar(bar *platform.MenuBar) { w.menuBar = bar }

func (w *window) MenuBar() *platform.MenuBar { return w.menuBar }

func (w *window) ContentSize() (float64, float64) {
	return float64(w.rect.W), float64(w.rect.H)
}

func (w *window) SetMinContentSize(width, height float64) {
	w.minW, w.minH = int(width), int(height)
	resized := false
	if w.rect.W < w.minW {
		w.rect.W = w.minW
		resized = true
	}
	if w.rect.H < w.minH {
		w.rect.H = w.minH
		resized = true
	}
	if resized {
		w.surface.Resize(w.rect.W, w.rect.H)
		w.Invalidate()
	}
}

// Resize simulates a host-driven size change, for tests.
func (w *window) Resize(width, height int) {
	w.rect.W, w.rect.H = width, height
	w.surface.Resize(width, height)
	w.Invalidate()
}

// Move simulates a host-driven position change, for tests.
func (w *window) Move(x, y int) {
	w.rect.X, w.rect.Y = x, y
}

func (w *window) FreezePosition(st platform.Settings, key string) {
	if !w.visible {
		return
	}
	st.FreezeInt(w.rect.X, key+"_left")
	st.FreezeInt(w.rect.Y, key+"_top")
	st.FreezeInt(w.rect.W, key+"_width")
	st.FreezeInt(w.rect.H, key+"_height")
	maximized := 0
	if w.maximized {
		maximized = 1
	}
	st.FreezeInt(maximized, key+"_maximized")
}

func (w *window) ThawPosition(st platform.Settings, key string) {
	r := platform.Rect{
		X: st.ThawInt(w.rect.X, key+"_left"),
		Y: st.ThawInt(w.rect.Y, key+"_top"),
		W: st.ThawInt(w.rect.W, key+"_width"),
		H: st.ThawInt(w.rect.H, key+"_height"),
	}
	w.rect = platform.ClampToMonitor(r, w.backend.monitors)
	w.surface.Resize(w.rect.W, w.rect.H)
	w.maximized = st.ThawInt(0, key+"_maximized") != 0
}

func (w *window) SetCursor(cursor platform.Cursor) { w.cursor = cursor }

func (w *window) SetTooltip(text string) { w.tooltip = text }

func (w *window) IsEditorVisible() bool { return w.edit != nil }

func (w *window) ShowEditor(x, y, fontHeight, minWidth float64, monospace bool, text string) {
	if w.edit != nil {
		return
	}
	w.editOpts = platform.EditorOptions{
		X: x, Y: y,
		FontHeight: fontHeight,
		MinWidth:   minWidth,
		Monospace:  monospace,
		Text:       text,
	}
	w.edit = editor.NewState(text)
	w.editRect = platform.PlaceEditor(w.editOpts, w.edit.Text())
	w.Invalidate()
}

func (w *window) HideEditor() {
	w.edit = nil
	w.Invalidate()
}

// EditorRect exposes the computed overlay rectangle, for tests.
func (w *window) EditorRect() platform.Rect { return w.editRect }

// EditorText exposes the overlay's current text, for tests.
func (w *window) EditorText() string {
	if w.edit == nil {
		return ""
	}
	return w.edit.Text()
}

func (w *window) SetScrollbarVisible(visible bool) {
	w.scroll.SetVisible(visible)
}

func (w *window) ConfigureScrollbar(min, max, pageSize float64) {
	w.scroll.Configure(min, max, pageSize)
}

func (w *window) ScrollbarPosition() float64 {
	return w.scroll.Position()
}

// SetScrollbarPosition clamps, stores, and reports the new position through
// onScrollbarAdjusted, exactly as a host scrollbar would after SetScrollInfo.
func (w *window) SetScrollbarPosition(pos float64) {
	w.scroll.SetPosition(pos)
	if w.events.OnScrollbarAdjusted != nil {
		w.events.OnScrollbarAdjusted(w.scroll.Position())
	}
}

func (w *window) Surface() *render.FrameBuffer { return w.surface }

func (w *window) Invalidate() {
	w.backend.loop.Post(w.Redraw)
}

func (w *window) Redraw() {
	if w.events.OnRender != nil {
		w.events.OnRender(w.surface)
	}
}

func (w *window) NativePtr() any { return w }

// DeliverKey routes a normalized key event the way a display backend routes
// decoded host input: the editor overlay captures the keyboard while shown,
// then menu accelerators, then the window callback.
func (w *window) DeliverKey(ev platform.KeyboardEvent) bool {
	ev = platform.NormalizeCharKey(ev)
	if w.edit != nil {
		w.editorKey(ev)
		return true
	}
	if w.menuBar != nil && w.menuBar.TriggerAccelerator(ev) {
		return true
	}
	if w.events.OnKeyboardEvent != nil {
		return w.events.OnKeyboardEvent(ev)
	}
	return false
}

func (w *window) editorKey(ev platform.KeyboardEvent) {
	if ev.Type != platform.KeyPress || ev.Key != platform.KeyCharacter {
		return
	}
	switch ev.Chr {
	case platform.CharEscape:
		w.HideEditor()
	case '\n', '\r':
		if w.events.OnEditingDone != nil {
			w.events.OnEditingDone(w.edit.Text())
		}
	case platform.CharDelete:
		w.edit.Delete()
	case '\b':
		w.edit.Backspace()
	default:
		if ev.ControlDown {
			switch ev.Chr {
			case 'c':
				w.edit.CopyToClipboard()
			case 'x':
				w.edit.CutToClipboard()
			case 'v':
				w.edit.PasteFromClipboard()
			case 'a':
				w.edit.SelectAll()
			}
			break
		}
		ch := ev.Chr
		if ev.ShiftDown {
			ch = upper(ch)
		}
		if ch >= ' ' {
			w.edit.InsertRune(ch)
		}
	}
	if w.edit != nil {
		w.editRect = platform.PlaceEditor(w.editOpts, w.edit.Text())
	}
}

// DeliverMouse routes a normalized mouse event: presses inside the popup
// suppression window are swallowed, everything else goes to the window
// callback. The editor overlay never captures the pointer.
func (w *window) DeliverMouse(ev platform.MouseEvent) bool {
	if ev.Type == platform.MousePress && platform.SuppressPress(timeNow()) {
		return false
	}
	if w.events.OnMouseEvent != nil {
		return w.events.OnMouseEvent(ev)
	}
	return false
}

func upper(r rune) rune { return unicode.ToUpper(r) }
