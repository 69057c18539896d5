package x11

import (
	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/keybind"
	"github.com/BurntSushi/xgbutil/xgraphics"
	"github.com/BurntSushi/xgbutil/xwindow"

	"glshell/internal/platform"
	"glshell/internal/platform/report"
	"glshell/internal/render"
	"glshell/internal/ui"
)

// popupResult is how a presented menu ends: an item, a dismissal, or a
// press on another label of the owning menu bar, which the caller turns
// into the next dropdown.
type popupResult struct {
	selected  *platform.MenuItem
	switchToX int
}

// PresentPopup implements platform.PopupPresenter: the menu opens at the
// pointer and a nested dispatch pump runs until it resolves.
func (b *Backend) PresentPopup(m *platform.Menu) *platform.MenuItem {
	px, py := b.pointerPosition()
	res := b.presentPopupAt(m, px, py)
	return res.selected
}

func (b *Backend) presentPopupAt(menu *platform.Menu, x, y int) popupResult {
	p := &popup{backend: b, switchToX: -1}
	if b.popup != nil {
		return popupResult{switchToX: -1}
	}
	b.popup = p
	p.open(menu, x, y)
	p.grab()
	b.loop.RunNested(func() bool { return p.done })
	p.close(0)
	p.ungrab()
	b.popup = nil
	if p.selected == nil && p.switchToX < 0 {
		platform.NotePopupDismissed()
	}
	return popupResult{selected: p.selected, switchToX: p.switchToX}
}

type popup struct {
	backend   *Backend
	stack     []*popupLevel
	selected  *platform.MenuItem
	done      bool
	switchToX int
}

type popupLevel struct {
	menu  *platform.Menu
	xwin  *xwindow.Window
	id    xproto.Window
	pm    ui.PopupMetrics
	x, y  int
	hover int
	fb    *render.FrameBuffer
}

// contains reports whether the level-relative point is on the level.
func (lvl *popupLevel) contains(x, y int) bool {
	return x >= 0 && y >= 0 && x < lvl.pm.W && y < lvl.pm.H
}

func (p *popup) open(menu *platform.Menu, x, y int) {
	b := p.backend
	pm := ui.MeasurePopup(menu, b.theme, 1.0)

	screen := b.xu.Screen()
	if x+pm.W > int(screen.WidthInPixels) {
		x = int(screen.WidthInPixels) - pm.W
	}
	if y+pm.H > int(screen.HeightInPixels) {
		y -= pm.H
	}
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}

	xwin, err := xwindow.Generate(b.xu)
	if err != nil {
		p.done = true
		return
	}
	err = xwin.CreateChecked(b.root, x, y, pm.W, pm.H,
		xproto.CwOverrideRedirect|xproto.CwEventMask,
		1,
		xproto.EventMaskExposure|
			xproto.EventMaskButtonPress|
			xproto.EventMaskButtonRelease|
			xproto.EventMaskPointerMotion)
	if err != nil {
		p.done = true
		return
	}
	lvl := &popupLevel{
		menu: menu, xwin: xwin, id: xwin.Id,
		pm: pm, x: x, y: y, hover: -1,
		fb: render.NewFrameBuffer(pm.W, pm.H),
	}
	p.stack = append(p.stack, lvl)
	xwin.Map()
	p.draw(lvl)
}

// close destroys levels deeper than depth, keeping the first depth levels.
func (p *popup) close(depth int) {
	for i := len(p.stack) - 1; i >= depth; i-- {
		p.stack[i].xwin.Destroy()
	}
	p.stack = p.stack[:depth]
}

func (p *popup) grab() {
	if len(p.stack) == 0 {
		return
	}
	// A popup without its grabs can never resolve; treat failure as fatal.
	conn := p.backend.xu.Conn()
	_, err := xproto.GrabPointer(conn, true, p.stack[0].id,
		xproto.EventMaskButtonPress|xproto.EventMaskButtonRelease|xproto.EventMaskPointerMotion,
		xproto.GrabModeAsync, xproto.GrabModeAsync,
		xproto.WindowNone, xproto.CursorNone, xproto.TimeCurrentTime).Reply()
	report.Check(err, "x11: grab pointer")
	_, err = xproto.GrabKeyboard(conn, true, p.stack[0].id,
		xproto.TimeCurrentTime, xproto.GrabModeAsync, xproto.GrabModeAsync).Reply()
	report.Check(err, "x11: grab keyboard")
}

func (p *popup) ungrab() {
	conn := p.backend.xu.Conn()
	xproto.UngrabPointer(conn, xproto.TimeCurrentTime)
	xproto.UngrabKeyboard(conn, xproto.TimeCurrentTime)
}

func (p *popup) draw(lvl *popupLevel) {
	ui.DrawPopup(lvl.fb, 0, 0, lvl.menu, lvl.pm, lvl.hover, p.backend.theme, 1.0)
	ximg := xgraphics.NewConvert(p.backend.xu, lvl.fb.RGBA())
	if err := ximg.XSurfaceSet(lvl.id); err == nil {
		ximg.XDraw()
		ximg.XPaint(lvl.id)
	}
	ximg.Destroy()
}

func (p *popup) level(id xproto.Window) (int, *popupLevel) {
	for i, lvl := range p.stack {
		if lvl.id == id {
			return i, lvl
		}
	}
	return -1, nil
}

// dispatch consumes events for the open popup chain. Non-input traffic for
// other windows passes through so they keep painting underneath.
func (p *popup) dispatch(ev xgb.Event) bool {
	switch e := ev.(type) {
	case xproto.ExposeEvent:
		if _, lvl := p.level(e.Window); lvl != nil {
			p.draw(lvl)
			return true
		}
		return false
	case xproto.MotionNotifyEvent:
		i, lvl := p.level(e.Event)
		if lvl == nil {
			return true
		}
		p.hover(i, lvl, int(e.EventX), int(e.EventY))
		return true
	case xproto.ButtonPressEvent:
		if _, lvl := p.level(e.Event); lvl != nil {
			if lvl.contains(int(e.EventX), int(e.EventY)) {
				return true
			}
			// The pointer grab redirects presses over foreign windows to
			// the first level with coordinates outside its bounds. That
			// is an outside click; the popup goes away.
			p.done = true
			return true
		}
		p.dismissAt(e.Event, int(e.EventX), int(e.EventY))
		return true
	case xproto.ButtonReleaseEvent:
		i, lvl := p.level(e.Event)
		if lvl == nil || !lvl.contains(int(e.EventX), int(e.EventY)) {
			// A release that began the popup (button still down from the
			// opening click) lands outside; ignore it and keep the menu.
			return true
		}
		p.activate(i, lvl, int(e.EventX), int(e.EventY))
		return true
	case xproto.KeyPressEvent:
		if keybind.LookupString(p.backend.xu, e.State, e.Detail) == "Escape" {
			p.done = true
		}
		return true
	case xproto.KeyReleaseEvent:
		return true
	default:
		return false
	}
}

func (p *popup) hover(depth int, lvl *popupLevel, x, y int) {
	row := ui.PopupRowAt(lvl.menu, lvl.pm, x, y)
	if row == lvl.hover {
		return
	}
	lvl.hover = row
	p.draw(lvl)
	// Hovering a submenu row cascades; hovering anything else prunes
	// deeper levels.
	p.close(depth + 1)
	if row >= 0 {
		if sub := lvl.menu.Entries()[row].Item.SubMenu(); sub != nil && len(sub.Entries()) > 0 {
			p.open(sub, lvl.x+lvl.pm.W-4, lvl.y+lvl.pm.Rows[row].Y)
		}
	}
}

func (p *popup) activate(depth int, lvl *popupLevel, x, y int) {
	row := ui.PopupRowAt(lvl.menu, lvl.pm, x, y)
	if row < 0 {
		return
	}
	item := lvl.menu.Entries()[row].Item
	if sub := item.SubMenu(); sub != nil {
		p.hover(depth, lvl, x, y)
		return
	}
	p.selected = item
	p.done = true
}

// dismissAt ends the popup for a press outside every level. A press on the
// owning window's menu bar reports the bar-relative x so the caller can
// switch dropdowns.
func (p *popup) dismissAt(win xproto.Window, x, y int) {
	if w := p.backend.windows[win]; w != nil && w.menuBar != nil && y < w.layout().MenuBarH {
		p.switchToX = x
	}
	p.done = true
}
