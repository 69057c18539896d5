// Package x11 is the X Window System backend, speaking the wire protocol
// directly through xgb/xgbutil. Window chrome (menu bar, popup menus,
// scrollbar, editor overlay) is drawn in-process; the window manager only
// sees plain top-level windows.
package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/randr"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/keybind"

	"glshell/internal/platform"
	"glshell/internal/ui"
)

type Backend struct {
	xu   *xgbutil.XUtil
	root xproto.Window
	loop *platform.Loop

	theme    ui.Theme
	mainMenu *platform.MenuBar
	windows  map[xproto.Window]*window
	popup    *popup
}

func New() (*Backend, error) {
	xu, err := xgbutil.NewConn()
	if err != nil {
		return nil, fmt.Errorf("x11: connect: %w", err)
	}
	keybind.Initialize(xu)
	// Monitor clamping degrades to the whole screen without RandR.
	_ = randr.Init(xu.Conn())
	return &Backend{
		xu:      xu,
		root:    xu.RootWin(),
		loop:    platform.NewLoop(),
		theme:   ui.DefaultTheme(),
		windows: map[xproto.Window]*window{},
	}, nil
}

func (b *Backend) Name() string { return "x11" }

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
	var parentWin *window
	if p, ok := parent.(*window); ok {
		parentWin = p
	}
	w, err := newWindow(b, kind, parentWin)
	if err != nil {
		return nil, err
	}
	b.windows[w.id] = w
	return w, nil
}

// Run pumps the X connection from a reader goroutine into the dispatch
// loop, and dispatches on the calling goroutine until Exit.
func (b *Backend) Run() error {
	go b.readEvents()
	b.loop.Run()
	return nil
}

func (b *Backend) Exit() {
	b.loop.Quit()
}

func (b *Backend) readEvents() {
	for {
		ev, err := b.xu.Conn().WaitForEvent()
		if ev == nil && err == nil {
			// Connection closed.
			b.loop.Quit()
			return
		}
		if err != nil {
			continue
		}
		b.loop.Post(func() { b.dispatch(ev) })
	}
}

func (b *Backend) dispatch(ev xgb.Event) {
	// An open popup sees pointer and key traffic first.
	if b.popup != nil && b.popup.dispatch(ev) {
		return
	}
	switch e := ev.(type) {
	case xproto.ExposeEvent:
		if w := b.windows[e.Window]; w != nil && e.Count == 0 {
			w.paint()
		}
	case xproto.ConfigureNotifyEvent:
		if w := b.windows[e.Window]; w != nil {
			w.configured(int(e.X), int(e.Y), int(e.Width), int(e.Height))
		}
	case xproto.KeyPressEvent:
		if w := b.windows[e.Event]; w != nil {
			w.keyEvent(e.Detail, e.State, platform.KeyPress)
		}
	case xproto.KeyReleaseEvent:
		if w := b.windows[e.Event]; w != nil {
			w.keyEvent(e.Detail, e.State, platform.KeyRelease)
		}
	case xproto.ButtonPressEvent:
		if w := b.windows[e.Event]; w != nil {
			w.buttonEvent(e.Detail, e.State, int(e.EventX), int(e.EventY), e.Time, true)
		}
	case xproto.ButtonReleaseEvent:
		if w := b.windows[e.Event]; w != nil {
			w.buttonEvent(e.Detail, e.State, int(e.EventX), int(e.EventY), e.Time, false)
		}
	case xproto.MotionNotifyEvent:
		if w := b.windows[e.Event]; w != nil {
			w.motionEvent(e.State, int(e.EventX), int(e.EventY))
		}
	case xproto.LeaveNotifyEvent:
		if w := b.windows[e.Event]; w != nil {
			w.leaveEvent()
		}
	case xproto.ClientMessageEvent:
		if w := b.windows[e.Window]; w != nil {
			w.clientMessage(e)
		}
	case xproto.PropertyNotifyEvent:
		if w := b.windows[e.Window]; w != nil {
			w.propertyChanged(e.Atom)
		}
	case xproto.DestroyNotifyEvent:
		delete(b.windows, e.Window)
	}
}

func (b *Backend) atom(name string) xproto.Atom {
	reply, err := xproto.InternAtom(b.xu.Conn(), false, uint16(len(name)), name).Reply()
	if err != nil {
		return xproto.AtomNone
	}
	return reply.Atom
}

func (b *Backend) pointerPosition() (int, int) {
	reply, err := xproto.QueryPointer(b.xu.Conn(), b.root).Reply()
	if err != nil {
		return 0, 0
	}
	return int(reply.RootX), int(reply.RootY)
}
