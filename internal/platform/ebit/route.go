package ebit

import (
	"image"
	imgdraw "image/draw"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"glshell/internal/platform"
	"glshell/internal/ui"
)

func (b *Backend) monitors() []platform.Rect {
	w, h := ebiten.Monitor().Size()
	if w < 1 || h < 1 {
		w, h = 1920, 1080
	}
	return []platform.Rect{{W: w, H: h}}
}

func (b *Backend) raisePanel(p *window) {
	for i, q := range b.panels {
		if q == p {
			b.panels = append(append(b.panels[:i], b.panels[i+1:]...), p)
			return
		}
	}
}

// focused is the window that receives keyboard traffic: the topmost visible
// panel, else the main window.
func (b *Backend) focused() *window {
	for i := len(b.panels) - 1; i >= 0; i-- {
		if b.panels[i].visible && b.panels[i].overlay.Visible {
			return b.panels[i]
		}
	}
	for i := len(b.panels) - 1; i >= 0; i-- {
		if b.panels[i].visible {
			return b.panels[i]
		}
	}
	return b.main
}

// hit returns the window under a main-frame point, panels above main.
func (b *Backend) hit(x, y int) *window {
	for i := len(b.panels) - 1; i >= 0; i-- {
		if b.panels[i].contains(x, y) {
			return b.panels[i]
		}
	}
	return b.main
}

var panelDrag struct {
	panel  *window
	dx, dy int
}

func (b *Backend) processInput(f inputFrame) {
	main := b.main
	if main == nil {
		return
	}
	if f.w > 0 && f.h > 0 && (f.w != main.width || f.h != main.height) {
		main.resize(f.w, f.h)
	}
	if f.closing {
		if main.events.OnClose != nil {
			main.events.OnClose()
		}
		return
	}
	if f.fullScreen != main.fullScreen {
		main.fullScreen = f.fullScreen
		if main.events.OnFullScreen != nil {
			main.events.OnFullScreen(f.fullScreen)
		}
	}

	if b.popup != nil {
		b.popup.handle(f)
		return
	}

	b.processKeys(f)
	b.processMouse(f)
}

func (b *Backend) processKeys(f inputFrame) {
	target := b.focused()
	if target.overlay.Visible {
		b.editorKeys(target, f)
		return
	}
	for _, key := range f.pressed {
		ev, ok := decodeKey(key, f, platform.KeyPress)
		if !ok {
			continue
		}
		if b.mainMenu != nil && b.mainMenu.TriggerAccelerator(ev) {
			continue
		}
		if target.events.OnKeyboardEvent != nil {
			target.events.OnKeyboardEvent(ev)
		}
	}
	for _, key := range f.released {
		ev, ok := decodeKey(key, f, platform.KeyRelease)
		if !ok {
			continue
		}
		if target.events.OnKeyboardEvent != nil {
			target.events.OnKeyboardEvent(ev)
		}
	}
}

func (b *Backend) editorKeys(w *window, f inputFrame) {
	for _, key := range f.pressed {
		name, ok := editorKeys[key]
		if !ok {
			continue
		}
		switch w.overlay.HandleKey(ui.EditorKey{Name: name, Shift: f.shift, Control: f.control}) {
		case ui.EditorCommitted:
			if w.events.OnEditingDone != nil {
				w.events.OnEditingDone(w.overlay.Text())
			}
			return
		case ui.EditorHidden:
			return
		}
	}
	if f.control {
		for _, key := range f.pressed {
			if r, ok := keyChars[key]; ok && (r == 'a' || r == 'c' || r == 'x' || r == 'v') {
				w.overlay.HandleKey(ui.EditorKey{Name: ui.EditKeyRune, Rune: r, Control: true})
			}
		}
		return
	}
	for _, r := range f.chars {
		w.overlay.HandleKey(ui.EditorKey{Name: ui.EditKeyRune, Rune: r})
	}
}

var lastCursor struct {
	x, y   int
	inside bool
}

func (b *Backend) processMouse(f inputFrame) {
	main := b.main
	x, y := f.cursorX, f.cursorY

	inside := x >= 0 && y >= 0 && x < main.width && y < main.height
	if !inside {
		if lastCursor.inside {
			lastCursor.inside = false
			if main.events.OnMouseEvent != nil {
				main.events.OnMouseEvent(platform.MouseEvent{Type: platform.MouseLeave})
			}
		}
		return
	}

	target := b.hit(x, y)
	lx, ly := x-target.x, y-target.y
	l := target.layout()

	if delta, ok := platform.WheelDelta(f.wheelY); ok {
		if target.scroll.Visible() && l.Gutter.Contains(lx, ly) {
			changed := false
			if delta > 0 {
				changed = target.scroll.LineUp()
			} else {
				changed = target.scroll.LineDown()
			}
			if changed {
				target.scrollbarAdjusted()
			}
		} else {
			target.deliverMouse(platform.MouseEvent{
				Type:        platform.MouseScrollVert,
				X:           float64(lx - l.Content.X),
				Y:           float64(ly - l.Content.Y),
				ScrollDelta: delta,
			}, f)
		}
	}

	if f.leftPress {
		switch {
		case target.kind == platform.WindowTool && ly < target.titleBarH():
			b.raisePanel(target)
			if lx >= target.closeBoxX() {
				if target.events.OnClose != nil {
					target.events.OnClose()
				}
			} else {
				panelDrag.panel = target
				panelDrag.dx, panelDrag.dy = lx, ly
			}
		case target.menuBar != nil && ly < l.MenuBarH+target.titleBarH():
			b.openMenuBar(target, lx)
		case target.scroll.Visible() && l.Gutter.Contains(lx, ly):
			target.gutterPress(l, ly)
		default:
			b.deliverPress(target, platform.ButtonLeft, lx-l.Content.X, ly-l.Content.Y, f)
		}
	}
	if f.middlePress {
		b.deliverPress(target, platform.ButtonMiddle, lx-l.Content.X, ly-l.Content.Y, f)
	}
	if f.rightPress {
		b.deliverPress(target, platform.ButtonRight, lx-l.Content.X, ly-l.Content.Y, f)
	}

	if f.leftRelease {
		panelDrag.panel = nil
		if target.dragging {
			target.dragging = false
		} else {
			target.deliverMouse(platform.MouseEvent{
				Type: platform.MouseRelease, Button: platform.ButtonLeft,
				X: float64(lx - l.Content.X), Y: float64(ly - l.Content.Y),
			}, f)
		}
	}
	if f.middleRelease {
		target.deliverMouse(platform.MouseEvent{
			Type: platform.MouseRelease, Button: platform.ButtonMiddle,
			X: float64(lx - l.Content.X), Y: float64(ly - l.Content.Y),
		}, f)
	}
	if f.rightRelease {
		target.deliverMouse(platform.MouseEvent{
			Type: platform.MouseRelease, Button: platform.ButtonRight,
			X: float64(lx - l.Content.X), Y: float64(ly - l.Content.Y),
		}, f)
	}

	if x != lastCursor.x || y != lastCursor.y || !lastCursor.inside {
		lastCursor.x, lastCursor.y, lastCursor.inside = x, y, true
		switch {
		case panelDrag.panel != nil:
			panelDrag.panel.x = x - panelDrag.dx
			panelDrag.panel.y = y - panelDrag.dy
		case target.dragging:
			pos := ui.GutterPosition(l.Gutter, &target.scroll, ly, target.dragGrab)
			if target.scroll.SetPosition(pos) {
				target.scrollbarAdjusted()
			}
		default:
			target.trackHotMenu(lx, ly, l)
			target.deliverMouse(platform.MouseEvent{
				Type:   platform.MouseMotion,
				X:      float64(lx - l.Content.X),
				Y:      float64(ly - l.Content.Y),
				Button: f.mouseButton(),
			}, f)
		}
	}
}

func (b *Backend) deliverPress(w *window, button platform.MouseButton, x, y int, f inputFrame) {
	if platform.SuppressPress(time.Now()) {
		return
	}
	typ := platform.MousePress
	if w.clicks.isDouble(button, x, y) {
		typ = platform.MouseDblPress
	}
	w.deliverMouse(platform.MouseEvent{
		Type: typ, Button: button, X: float64(x), Y: float64(y),
	}, f)
}

func (w *window) deliverMouse(ev platform.MouseEvent, f inputFrame) {
	ev.ShiftDown = f.shift
	ev.ControlDown = f.control
	if w.events.OnMouseEvent != nil {
		w.events.OnMouseEvent(ev)
	}
}

func (w *window) gutterPress(l ui.Layout, y int) {
	thumb := ui.ThumbRect(l.Gutter, &w.scroll)
	switch {
	case y < thumb.Y:
		if w.scroll.PageUp() {
			w.scrollbarAdjusted()
		}
	case y >= thumb.Y+thumb.H:
		if w.scroll.PageDown() {
			w.scrollbarAdjusted()
		}
	default:
		w.dragging = true
		w.dragGrab = y - thumb.Y
	}
}

func (w *window) trackHotMenu(x, y int, l ui.Layout) {
	if w.menuBar == nil {
		return
	}
	hot := -1
	if y >= w.titleBarH() && y < l.MenuBarH+w.titleBarH() {
		hot = ui.MenuBarHit(w.menuBar, x, w.backend.theme, w.chromeScale())
	}
	w.hotMenu = hot
}

// composite builds the full frame for the native window: the main window's
// chrome and surface, panels above it, then any open popup and the tooltip.
func (b *Backend) composite() {
	main := b.main
	if main == nil {
		return
	}
	main.compose()
	for _, p := range b.panels {
		if !p.visible {
			continue
		}
		p.compose()
		r := image.Rect(p.x, p.y, p.x+p.width, p.y+p.height)
		imgdraw.Draw(main.frame.RGBA(), r, p.frame.RGBA(), image.Point{}, imgdraw.Src)
	}
	if b.popup != nil {
		b.popup.draw(main.frame)
	}
	if main.tooltip != "" && lastCursor.inside {
		ui.DrawTooltip(main.frame, lastCursor.x+12, lastCursor.y+16, main.tooltip, b.theme, main.chromeScale())
	}

	if main.canvas == nil ||
		main.canvas.Bounds().Dx() != main.frame.W ||
		main.canvas.Bounds().Dy() != main.frame.H {
		main.canvas = ebiten.NewImage(main.frame.W, main.frame.H)
	}
	main.canvas.WritePixels(main.frame.Pixels)
}
