// Package headless is the no-display backend: the full window contract with
// nothing behind it but memory. It backs the test runner and batch use, and
// is the deterministic vehicle for exercising backend-facing behavior.
package headless

import (
	"glshell/internal/platform"
)

type Backend struct {
	loop     *platform.Loop
	mainMenu *platform.MenuBar
	monitors []platform.Rect

	// PopupHook scripts the outcome of Menu.PopUp: given the menu it
	// returns the item the "user" picked, or nil for a dismissal. Unset,
	// every popup is dismissed.
	PopupHook func(m *platform.Menu) *platform.MenuItem
}

func New() *Backend {
	return &Backend{
		loop:     platform.NewLoop(),
		monitors: []platform.Rect{{X: 0, Y: 0, W: 1920, H: 1080}},
	}
}

func (b *Backend) Name() string { return "headless" }

func (b *Backend) Loop() *platform.Loop { return b.loop }

func (b *Backend) NewTimer() *platform.Timer {
	return platform.NewTimer(b.loop)
}

func (b *Backend) NewMenu() *platform.Menu {
	return platform.NewMenu(b)
}

func (b *Backend) MainMenuBar() *platform.MenuBar {
	if b.mainMenu == nil {
		b.mainMenu = platform.NewMenuBar(b)
	}
	return b.mainMenu
}

func (b *Backend) NewWindow(kind platform.WindowKind, parent platform.Window) (platform.Window, error) {
	w := newWindow(b, kind)
	_ = parent
	return w, nil
}

// PresentPopup consults PopupHook; the nested pump still spins once so the
// modal flow is the same one the display backends execute.
func (b *Backend) PresentPopup(m *platform.Menu) *platform.MenuItem {
	var sel *platform.MenuItem
	done := false
	b.loop.Post(func() {
		if b.PopupHook != nil {
			sel = b.PopupHook(m)
		}
		done = true
	})
	b.loop.RunNested(func() bool { return done })
	return sel
}

func (b *Backend) Run() error {
	b.loop.Run()
	return nil
}

func (b *Backend) Exit() {
	b.loop.Quit()
}

// SetMonitors overrides the fake monitor list used for thaw clamping.
func (b *Backend) SetMonitors(monitors []platform.Rect) {
	b.monitors = monitors
}
