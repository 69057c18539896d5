package x11

import (
	"testing"

	"github.com/BurntSushi/xgb/xproto"

	"glshell/internal/ui"
)

// With the pointer grabbed, a press over a foreign window is reported
// against the first popup level with coordinates outside its bounds.
func TestPopupPressOutsideLevelBoundsDismisses(t *testing.T) {
	p := &popup{stack: []*popupLevel{
		{id: 7, pm: ui.PopupMetrics{W: 120, H: 80}},
	}}

	ev := xproto.ButtonPressEvent{Event: 7, EventX: 300, EventY: -5}
	if !p.dispatch(ev) {
		t.Fatalf("press during popup not consumed")
	}
	if !p.done {
		t.Fatalf("press outside the level bounds did not dismiss")
	}
}

func TestPopupPressInsideLevelBoundsKeepsMenu(t *testing.T) {
	p := &popup{stack: []*popupLevel{
		{id: 7, pm: ui.PopupMetrics{W: 120, H: 80}},
	}}

	ev := xproto.ButtonPressEvent{Event: 7, EventX: 60, EventY: 40}
	if !p.dispatch(ev) {
		t.Fatalf("press during popup not consumed")
	}
	if p.done {
		t.Fatalf("press inside the level dismissed the popup")
	}
}

func TestPopupReleaseOutsideLevelBoundsIgnored(t *testing.T) {
	p := &popup{stack: []*popupLevel{
		{id: 7, pm: ui.PopupMetrics{W: 120, H: 80}},
	}}

	ev := xproto.ButtonReleaseEvent{Event: 7, EventX: 200, EventY: 90}
	if !p.dispatch(ev) {
		t.Fatalf("release during popup not consumed")
	}
	if p.done || p.selected != nil {
		t.Fatalf("release outside the level bounds resolved the popup")
	}
}
