package platform

import (
	"testing"
	"time"
)

type scriptedPresenter struct {
	pick func(m *Menu) *MenuItem
}

func (p *scriptedPresenter) PresentPopup(m *Menu) *MenuItem {
	if p.pick == nil {
		return nil
	}
	return p.pick(m)
}

func TestMenuItemSetActiveWithoutIndicatorPanics(t *testing.T) {
	m := NewMenu(nil)
	mi := m.AddItem("Plain", nil)
	defer func() {
		if recover() == nil {
			t.Fatalf("SetActive on an indicator-less item must panic")
		}
	}()
	mi.SetActive(true)
}

func TestMenuItemIndicator(t *testing.T) {
	m := NewMenu(nil)
	mi := m.AddItem("Checked", nil)
	mi.SetIndicator(IndicatorCheckMark)
	mi.SetActive(true)
	if !mi.Active() {
		t.Fatalf("item should be active")
	}
	mi.SetActive(false)
	if mi.Active() {
		t.Fatalf("item should be inactive")
	}
}

func TestMenuItemAcceleratorLabel(t *testing.T) {
	m := NewMenu(nil)
	mi := m.AddItem("&Save", nil)
	mi.SetAccelerator(KeyboardEvent{Key: KeyCharacter, Chr: 's', ControlDown: true})
	if got := mi.Label(); got != "Save\tCtrl+S" {
		t.Fatalf("label = %q", got)
	}
	mi.SetAccelerator(KeyboardEvent{Key: KeyFunction, Num: 3})
	if got := mi.Label(); got != "Save\tF3" {
		t.Fatalf("label = %q", got)
	}
}

func TestMenuClearCascades(t *testing.T) {
	m := NewMenu(nil)
	m.AddItem("One", nil)
	sub := m.AddSubMenu("Sub")
	sub.AddItem("Nested", nil)
	m.AddSeparator()

	m.Clear()
	if len(m.Entries()) != 0 {
		t.Fatalf("menu not empty after Clear")
	}
	if len(sub.Entries()) != 0 {
		t.Fatalf("nested menu not cleared")
	}
}

func TestTriggerAccelerator(t *testing.T) {
	m := NewMenu(nil)
	fired := 0
	mi := m.AddItem("Save", func() { fired++ })
	ctrlS := KeyboardEvent{Type: KeyPress, Key: KeyCharacter, Chr: 's', ControlDown: true}
	mi.SetAccelerator(ctrlS)

	if m.TriggerAccelerator(ctrlS) != true || fired != 1 {
		t.Fatalf("accelerator did not fire, fired=%d", fired)
	}

	// Releases never trigger.
	release := ctrlS
	release.Type = KeyRelease
	if m.TriggerAccelerator(release) {
		t.Fatalf("release must not trigger")
	}

	// Disabled items are skipped.
	mi.SetEnabled(false)
	if m.TriggerAccelerator(ctrlS) {
		t.Fatalf("disabled item must not trigger")
	}
	if fired != 1 {
		t.Fatalf("fired = %d, want 1", fired)
	}
}

func TestTriggerAcceleratorSearchesSubMenus(t *testing.T) {
	bar := NewMenuBar(nil)
	file := bar.AddSubMenu("File")
	export := file.AddSubMenu("Export")
	fired := false
	item := export.AddItem("PNG", func() { fired = true })
	f7 := KeyboardEvent{Type: KeyPress, Key: KeyFunction, Num: 7}
	item.SetAccelerator(f7)

	if !bar.TriggerAccelerator(f7) || !fired {
		t.Fatalf("nested accelerator not routed")
	}
}

func TestPopUpSelectionRunsTrigger(t *testing.T) {
	fired := false
	p := &scriptedPresenter{}
	m := NewMenu(p)
	mi := m.AddItem("Go", func() { fired = true })
	p.pick = func(*Menu) *MenuItem { return mi }

	m.PopUp()
	if !fired {
		t.Fatalf("selected item's trigger did not run")
	}
}

func TestPopUpDismissalArmsSuppression(t *testing.T) {
	p := &scriptedPresenter{}
	m := NewMenu(p)
	m.AddItem("Go", nil)

	m.PopUp()
	if !SuppressPress(time.Now()) {
		t.Fatalf("press immediately after dismissal must be suppressed")
	}
	if SuppressPress(time.Now().Add(PopupSuppressWindow + time.Millisecond)) {
		t.Fatalf("press after the window must pass")
	}
}

func TestMenuBarClear(t *testing.T) {
	bar := NewMenuBar(nil)
	bar.AddSubMenu("&File")
	bar.AddSubMenu("&Edit")
	if bar.Len() != 2 {
		t.Fatalf("len = %d", bar.Len())
	}
	if got := bar.Label(0); got != "File" {
		t.Fatalf("label = %q", got)
	}
	bar.Clear()
	if bar.Len() != 0 {
		t.Fatalf("bar not empty after Clear")
	}
}
