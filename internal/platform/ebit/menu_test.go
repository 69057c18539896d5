package ebit

import (
	"testing"

	"glshell/internal/platform"
	"glshell/internal/ui"
)

func newRowPopup(t *testing.T) (*popupState, *platform.MenuItem) {
	t.Helper()
	m := platform.NewMenu(nil)
	item := m.AddItem("Stop Tracing", nil)
	pm := ui.PopupMetrics{
		W:    100,
		H:    30,
		Rows: []platform.Rect{{X: 1, Y: 1, W: 0, H: 20}},
	}
	p := &popupState{opening: true}
	p.levels = append(p.levels, popupLevel{menu: m, pm: pm, hover: -1})
	return p, item
}

// Edge clamping can open the popup under the cursor; the release of the
// click that opened it must not select the row it lands on.
func TestPopupOpeningReleaseDoesNotSelect(t *testing.T) {
	p, _ := newRowPopup(t)

	p.handle(inputFrame{cursorX: 10, cursorY: 10, leftRelease: true})
	if p.done || p.selected != nil {
		t.Fatalf("opening release selected a row")
	}

	p.handle(inputFrame{cursorX: 10, cursorY: 10, leftRelease: true})
	if !p.done || p.selected == nil {
		t.Fatalf("second release did not select")
	}
}

// A popup opened from an already-released click has no pending release to
// swallow; the first click on a row selects it.
func TestPopupFirstClickSelectsWhenButtonUp(t *testing.T) {
	p, item := newRowPopup(t)

	p.handle(inputFrame{cursorX: 10, cursorY: 10})
	p.handle(inputFrame{cursorX: 10, cursorY: 10, leftRelease: true})
	if p.selected != item {
		t.Fatalf("selected = %v, want the clicked item", p.selected)
	}
}
