package headless

import (
	"testing"
	"time"

	"glshell/internal/platform"
	"glshell/internal/render"
)

func newTestWindow(t *testing.T) (*Backend, *window) {
	t.Helper()
	b := New()
	w, err := b.NewWindow(platform.WindowToplevel, nil)
	if err != nil {
		t.Fatalf("NewWindow: %v", err)
	}
	return b, w.(*window)
}

func TestScrollbarPositionSynthesizesCallback(t *testing.T) {
	_, w := newTestWindow(t)
	w.ConfigureScrollbar(0, 100, 10)

	var got []float64
	w.Events().OnScrollbarAdjusted = func(pos float64) { got = append(got, pos) }

	w.SetScrollbarPosition(5.0)
	if len(got) != 1 {
		t.Fatalf("callback ran %d times, want exactly 1", len(got))
	}
	if got[0] != 5.0 {
		t.Fatalf("pos = %v", got[0])
	}
	if w.ScrollbarPosition() != 5.0 {
		t.Fatalf("stored position = %v", w.ScrollbarPosition())
	}

	// Out-of-range positions are reported clamped.
	w.SetScrollbarPosition(1000)
	if len(got) != 2 || got[1] != 90.0 {
		t.Fatalf("clamped callback = %v", got)
	}
}

func TestFreezeSkipsInvisibleWindow(t *testing.T) {
	_, w := newTestWindow(t)
	st := platform.NewMemorySettings()
	w.FreezePosition(st, "main")
	if got := st.ThawInt(-1, "main_left"); got != -1 {
		t.Fatalf("invisible window wrote geometry: left = %d", got)
	}
}

func TestFreezeThawRoundTrip(t *testing.T) {
	b, w := newTestWindow(t)
	w.SetVisible(true)
	w.Move(200, 150)
	w.Resize(640, 480)

	st := platform.NewMemorySettings()
	w.FreezePosition(st, "main")

	w2raw, _ := b.NewWindow(platform.WindowToplevel, nil)
	w2 := w2raw.(*window)
	w2.ThawPosition(st, "main")
	if w2.rect != (platform.Rect{X: 200, Y: 150, W: 640, H: 480}) {
		t.Fatalf("thawed rect = %+v", w2.rect)
	}
}

func TestThawClampsToMonitor(t *testing.T) {
	b, w := newTestWindow(t)
	b.SetMonitors([]platform.Rect{{X: 0, Y: 0, W: 1280, H: 720}})

	st := platform.NewMemorySettings()
	st.FreezeInt(5000, "main_left")
	st.FreezeInt(100, "main_top")
	st.FreezeInt(800, "main_width")
	st.FreezeInt(600, "main_height")

	w.ThawPosition(st, "main")
	if w.rect.Right() > 1280 || w.rect.Bottom() > 720 || w.rect.X < 0 {
		t.Fatalf("thawed rect %+v escapes the monitor", w.rect)
	}
}

func TestMinContentSizeGrowsWindow(t *testing.T) {
	_, w := newTestWindow(t)
	w.Resize(300, 200)
	w.SetMinContentSize(500, 400)
	cw, ch := w.ContentSize()
	if cw != 500 || ch != 400 {
		t.Fatalf("content = %v x %v, want grown to the minimum", cw, ch)
	}
}

func TestEditorShowSeedsAndMeasures(t *testing.T) {
	_, w := newTestWindow(t)
	w.ShowEditor(50, 200, 15, 40, false, "hello")
	if !w.IsEditorVisible() {
		t.Fatalf("editor should be visible")
	}
	if got := w.EditorText(); got != "hello" {
		t.Fatalf("text = %q", got)
	}
	r := w.EditorRect()
	face := platform.FontFace(15, false)
	minW := platform.MeasureString(face, "hello ")
	if minW < 40 {
		minW = 40
	}
	if r.W != minW {
		t.Fatalf("width = %d, want %d", r.W, minW)
	}
	if r.Y >= 200 {
		t.Fatalf("top = %d, must sit above the baseline", r.Y)
	}

	// Showing while shown is a no-op and must not reseed the text.
	w.ShowEditor(50, 200, 15, 40, false, "other")
	if got := w.EditorText(); got != "hello" {
		t.Fatalf("text after repeated show = %q", got)
	}
}

func TestEditorEscapeHidesWithoutCallback(t *testing.T) {
	_, w := newTestWindow(t)
	done := false
	w.Events().OnEditingDone = func(string) { done = true }
	w.ShowEditor(0, 100, 15, 40, false, "seed")

	w.DeliverKey(platform.KeyboardEvent{
		Type: platform.KeyPress, Key: platform.KeyCharacter, Chr: platform.CharEscape,
	})
	if w.IsEditorVisible() {
		t.Fatalf("escape must hide the editor")
	}
	if done {
		t.Fatalf("escape must not report editing done")
	}
}

func TestEditorEnterReportsAndStaysVisible(t *testing.T) {
	_, w := newTestWindow(t)
	var got string
	w.Events().OnEditingDone = func(text string) { got = text }
	w.ShowEditor(0, 100, 15, 40, false, "seed")

	// The seed starts selected; typing replaces it.
	press := func(chr rune) {
		w.DeliverKey(platform.KeyboardEvent{
			Type: platform.KeyPress, Key: platform.KeyCharacter, Chr: chr,
		})
	}
	press('o')
	press('k')
	press('\n')

	if got != "ok" {
		t.Fatalf("editing done got %q", got)
	}
	if !w.IsEditorVisible() {
		t.Fatalf("enter must leave the overlay visible; hiding is the collaborator's call")
	}
}

func TestEditorCapturesKeyboardExclusively(t *testing.T) {
	_, w := newTestWindow(t)
	leaked := false
	w.Events().OnKeyboardEvent = func(platform.KeyboardEvent) bool {
		leaked = true
		return true
	}
	w.ShowEditor(0, 100, 15, 40, false, "")
	w.DeliverKey(platform.KeyboardEvent{
		Type: platform.KeyPress, Key: platform.KeyCharacter, Chr: 'a',
	})
	if leaked {
		t.Fatalf("keys must not reach the window while the editor is shown")
	}
	if got := w.EditorText(); got != "a" {
		t.Fatalf("editor text = %q", got)
	}
}

func TestAcceleratorRoutesBeforeKeyboardCallback(t *testing.T) {
	b, w := newTestWindow(t)
	bar := b.MainMenuBar()
	file := bar.AddSubMenu("File")
	fired := false
	item := file.AddItem("Save", func() { fired = true })
	ctrlS := platform.KeyboardEvent{
		Type: platform.KeyPress, Key: platform.KeyCharacter, Chr: 's', ControlDown: true,
	}
	item.SetAccelerator(ctrlS)
	w.SetMenuBar(bar)

	reached := false
	w.Events().OnKeyboardEvent = func(platform.KeyboardEvent) bool {
		reached = true
		return true
	}
	w.DeliverKey(ctrlS)
	if !fired {
		t.Fatalf("accelerator did not run")
	}
	if reached {
		t.Fatalf("consumed accelerator must not reach the window callback")
	}
}

func TestTimerRearmThroughBackendRun(t *testing.T) {
	b := New()
	tm := b.NewTimer()
	fired := 0
	tm.OnTimeout = func() {
		fired++
		b.Exit()
	}
	tm.WindUp(5 * time.Millisecond)
	tm.WindUp(25 * time.Millisecond)
	if err := b.Run(); err != nil {
		t.Fatalf("run: %v", err)
	}
	if fired != 1 {
		t.Fatalf("fired %d times, want 1", fired)
	}
}

func TestPopupHookSelection(t *testing.T) {
	b := New()
	m := b.NewMenu()
	fired := false
	item := m.AddItem("Pick", func() { fired = true })
	b.PopupHook = func(menu *platform.Menu) *platform.MenuItem {
		if menu != m {
			t.Errorf("presenter got the wrong menu")
		}
		return item
	}
	m.PopUp()
	if !fired {
		t.Fatalf("hooked selection did not trigger")
	}
}

func TestPopupDismissalSuppressesNextPress(t *testing.T) {
	b, w := newTestWindow(t)
	m := b.NewMenu()
	m.AddItem("Ignored", nil)
	// No hook: every popup is dismissed.
	m.PopUp()

	delivered := false
	w.Events().OnMouseEvent = func(platform.MouseEvent) bool {
		delivered = true
		return true
	}
	w.DeliverMouse(platform.MouseEvent{Type: platform.MousePress, Button: platform.ButtonLeft})
	if delivered {
		t.Fatalf("press inside the suppression window must be swallowed")
	}

	// Motion is never suppressed.
	w.DeliverMouse(platform.MouseEvent{Type: platform.MouseMotion})
	if !delivered {
		t.Fatalf("motion must pass through")
	}
}

func TestFullScreenCallback(t *testing.T) {
	_, w := newTestWindow(t)
	var states []bool
	w.Events().OnFullScreen = func(fs bool) { states = append(states, fs) }
	w.SetFullScreen(true)
	w.SetFullScreen(true)
	w.SetFullScreen(false)
	if len(states) != 2 || states[0] != true || states[1] != false {
		t.Fatalf("states = %v", states)
	}
}

func TestRenderCallbackGetsPersistentSurface(t *testing.T) {
	b, w := newTestWindow(t)
	var surfaces []*render.FrameBuffer
	w.Events().OnRender = func(fb *render.FrameBuffer) { surfaces = append(surfaces, fb) }
	w.Redraw()
	w.Resize(1024, 768)
	b.Loop().Post(b.Exit)
	_ = b.Run()
	if len(surfaces) < 2 {
		t.Fatalf("render ran %d times", len(surfaces))
	}
	for _, s := range surfaces[1:] {
		if s != surfaces[0] {
			t.Fatalf("surface identity changed across resize")
		}
	}
	if w.Surface().W != 1024 || w.Surface().H != 768 {
		t.Fatalf("surface size = %dx%d", w.Surface().W, w.Surface().H)
	}
}
