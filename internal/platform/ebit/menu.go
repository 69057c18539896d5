package ebit

import (
	"glshell/internal/platform"
	"glshell/internal/render"
	"glshell/internal/ui"
)

// popupState is an open popup menu chain drawn over the main frame. Input
// frames route here while it is set; the nested dispatch pump in present
// keeps the modal contract.
type popupState struct {
	backend  *Backend
	levels   []popupLevel
	selected *platform.MenuItem
	done     bool

	// opening is set while the press that opened the popup has not
	// released yet. Edge clamping can park the cursor on a row, and
	// that first release must not select it.
	opening bool
}

type popupLevel struct {
	menu  *platform.Menu
	pm    ui.PopupMetrics
	x, y  int
	hover int
}

// PresentPopup implements platform.PopupPresenter at the current pointer
// position.
func (b *Backend) PresentPopup(m *platform.Menu) *platform.MenuItem {
	return b.present(m, lastCursor.x, lastCursor.y)
}

func (b *Backend) present(m *platform.Menu, x, y int) *platform.MenuItem {
	if b.popup != nil || b.main == nil {
		return nil
	}
	p := &popupState{backend: b, opening: true}
	p.push(m, x, y)
	b.popup = p
	b.loop.RunNested(func() bool { return p.done })
	b.popup = nil
	return p.selected
}

func (p *popupState) push(m *platform.Menu, x, y int) {
	pm := ui.MeasurePopup(m, p.backend.theme, 1.0)
	main := p.backend.main
	if x+pm.W > main.width {
		x = main.width - pm.W
	}
	if y+pm.H > main.height {
		y -= pm.H
	}
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	p.levels = append(p.levels, popupLevel{menu: m, pm: pm, x: x, y: y, hover: -1})
}

func (p *popupState) levelAt(x, y int) (int, *popupLevel) {
	for i := len(p.levels) - 1; i >= 0; i-- {
		lvl := &p.levels[i]
		if x >= lvl.x && x < lvl.x+lvl.pm.W && y >= lvl.y && y < lvl.y+lvl.pm.H {
			return i, lvl
		}
	}
	return -1, nil
}

func (p *popupState) handle(f inputFrame) {
	for _, key := range f.pressed {
		if r, ok := keyChars[key]; ok && r == platform.CharEscape {
			p.done = true
			platform.NotePopupDismissed()
			return
		}
	}

	release := f.leftRelease
	if p.opening {
		if release {
			p.opening = false
			release = false
		} else if !f.leftDown {
			p.opening = false
		}
	}

	x, y := f.cursorX, f.cursorY
	depth, lvl := p.levelAt(x, y)

	if lvl != nil {
		row := ui.PopupRowAt(lvl.menu, lvl.pm, x-lvl.x, y-lvl.y)
		if row != lvl.hover {
			lvl.hover = row
			p.levels = p.levels[:depth+1]
			if row >= 0 {
				if sub := lvl.menu.Entries()[row].Item.SubMenu(); sub != nil && len(sub.Entries()) > 0 {
					p.push(sub, lvl.x+lvl.pm.W-4, lvl.y+lvl.pm.Rows[row].Y)
				}
			}
		}
		if release && row >= 0 {
			item := lvl.menu.Entries()[row].Item
			if item.SubMenu() == nil {
				p.selected = item
				p.done = true
			}
		}
		return
	}

	if f.leftPress || f.rightPress || f.middlePress {
		p.done = true
		platform.NotePopupDismissed()
	}
}

func (p *popupState) draw(frame *render.FrameBuffer) {
	for i := range p.levels {
		lvl := &p.levels[i]
		ui.DrawPopup(frame, lvl.x, lvl.y, lvl.menu, lvl.pm, lvl.hover, p.backend.theme, 1.0)
	}
}

// openMenuBar drops the clicked menu below its bar label, modally like any
// popup.
func (b *Backend) openMenuBar(w *window, x int) {
	i := ui.MenuBarHit(w.menuBar, x, b.theme, w.chromeScale())
	if i < 0 {
		return
	}
	w.hotMenu = i
	cellX := ui.MenuBarCellX(w.menuBar, i, b.theme, w.chromeScale())
	sel := b.present(w.menuBar.Menu(i), w.x+cellX, w.y+w.titleBarH()+w.layout().MenuBarH)
	w.hotMenu = -1
	if sel == nil {
		platform.NotePopupDismissed()
		return
	}
	if sel.OnTrigger != nil {
		sel.OnTrigger()
	}
}
