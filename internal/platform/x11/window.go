package x11

import (
	"fmt"
	"image"
	"image/draw"
	"math"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/icccm"
	"github.com/BurntSushi/xgbutil/xcursor"
	"github.com/BurntSushi/xgbutil/xgraphics"
	"github.com/BurntSushi/xgbutil/xwindow"

	"glshell/internal/platform"
	"glshell/internal/render"
	"glshell/internal/ui"
)

const defaultWidth, defaultHeight = 800, 600

type window struct {
	backend *Backend
	xwin    *xwindow.Window
	id      xproto.Window
	kind    platform.WindowKind
	events  platform.WindowEvents

	width, height int
	visible       bool
	fullScreen    bool
	title         string
	tooltip       string
	menuBar       *platform.MenuBar
	hotMenu       int

	scroll   platform.Scrollbar
	dragging bool
	dragGrab int

	overlay ui.EditorOverlay
	clicks  clickTracker

	surface *render.FrameBuffer
	frame   *render.FrameBuffer

	cursors map[platform.Cursor]xproto.Cursor
}

const windowEventMask = xproto.EventMaskExposure |
	xproto.EventMaskStructureNotify |
	xproto.EventMaskKeyPress |
	xproto.EventMaskKeyRelease |
	xproto.EventMaskButtonPress |
	xproto.EventMaskButtonRelease |
	xproto.EventMaskPointerMotion |
	xproto.EventMaskLeaveWindow |
	xproto.EventMaskPropertyChange

func newWindow(b *Backend, kind platform.WindowKind, parent *window) (*window, error) {
	xwin, err := xwindow.Generate(b.xu)
	if err != nil {
		return nil, fmt.Errorf("x11: window id: %w", err)
	}
	err = xwin.CreateChecked(b.root, 0, 0, defaultWidth, defaultHeight,
		xproto.CwBackPixel|xproto.CwEventMask, 0xffffff, windowEventMask)
	if err != nil {
		return nil, fmt.Errorf("x11: create window: %w", err)
	}

	w := &window{
		backend: b,
		xwin:    xwin,
		id:      xwin.Id,
		kind:    kind,
		width:   defaultWidth,
		height:  defaultHeight,
		hotMenu: -1,
		cursors: map[platform.Cursor]xproto.Cursor{},
	}
	w.surface = render.NewFrameBuffer(defaultWidth, defaultHeight)
	w.frame = render.NewFrameBuffer(defaultWidth, defaultHeight)

	if err := icccm.WmProtocolsSet(b.xu, w.id, []string{"WM_DELETE_WINDOW"}); err != nil {
		return nil, fmt.Errorf("x11: wm protocols: %w", err)
	}
	if kind == platform.WindowTool {
		_ = ewmh.WmWindowTypeSet(b.xu, w.id, []string{"_NET_WM_WINDOW_TYPE_UTILITY"})
		_ = ewmh.WmStateSet(b.xu, w.id, []string{"_NET_WM_STATE_SKIP_TASKBAR", "_NET_WM_STATE_ABOVE"})
		if parent != nil {
			_ = icccm.WmTransientForSet(b.xu, w.id, parent.id)
		}
	}
	return w, nil
}

func (w *window) Events() *platform.WindowEvents { return &w.events }

func (w *window) Kind() platform.WindowKind { return w.kind }

func (w *window) IntegralScaleFactor() int {
	return int(math.Ceil(w.FractionalScaleFactor()))
}

func (w *window) FractionalScaleFactor() float64 {
	return w.backend.pixelDensity() / 96.0
}

func (w *window) PixelDensity() float64 { return w.backend.pixelDensity() }

func (w *window) chromeScale() float64 {
	s := w.FractionalScaleFactor()
	if s < 1 {
		s = 1
	}
	return s
}

func (w *window) layout() ui.Layout {
	return ui.ComputeLayout(w.width, w.height,
		w.menuBar != nil, w.scroll.Visible(), w.backend.theme, w.chromeScale())
}

func (w *window) IsVisible() bool { return w.visible }

func (w *window) SetVisible(visible bool) {
	if visible == w.visible {
		return
	}
	w.visible = visible
	if visible {
		w.xwin.Map()
	} else {
		w.xwin.Unmap()
	}
}

func (w *window) Focus() {
	w.xwin.Focus()
}

func (w *window) IsFullScreen() bool { return w.fullScreen }

func (w *window) SetFullScreen(fullScreen bool) {
	action := ewmh.StateRemove
	if fullScreen {
		action = ewmh.StateAdd
	}
	// The WM answers with a _NET_WM_STATE PropertyNotify; the callback
	// fires from there, not here.
	_ = ewmh.WmStateReq(w.backend.xu, w.id, action, "_NET_WM_STATE_FULLSCREEN")
}

func (w *window) SetTitle(title string) {
	w.title = title
	full := title + " - glshell"
	_ = ewmh.WmNameSet(w.backend.xu, w.id, full)
	_ = icccm.WmNameSet(w.backend.xu, w.id, full)
}

func (w *window) SetMenuBar(bar *platform.MenuBar) {
	w.menuBar = bar
	w.syncSurfaceSize()
	w.Invalidate()
}

func (w *window) ContentSize() (float64, float64) {
	l := w.layout()
	return float64(l.Content.W), float64(l.Content.H)
}

func (w *window) SetMinContentSize(width, height float64) {
	l := w.layout()
	minW := int(width) + (w.width - l.Content.W)
	minH := int(height) + (w.height - l.Content.H)
	_ = icccm.WmNormalHintsSet(w.backend.xu, w.id, &icccm.NormalHints{
		Flags:     icccm.SizeHintPMinSize,
		MinWidth:  uint(minW),
		MinHeight: uint(minH),
	})
	if w.width < minW || w.height < minH {
		w.xwin.Resize(max(w.width, minW), max(w.height, minH))
	}
}

func (w *window) rootPosition() (int, int) {
	reply, err := xproto.TranslateCoordinates(
		w.backend.xu.Conn(), w.id, w.backend.root, 0, 0).Reply()
	if err != nil {
		return 0, 0
	}
	return int(reply.DstX), int(reply.DstY)
}

func (w *window) isMaximized() bool {
	states, err := ewmh.WmStateGet(w.backend.xu, w.id)
	if err != nil {
		return false
	}
	for _, s := range states {
		if s == "_NET_WM_STATE_MAXIMIZED_VERT" || s == "_NET_WM_STATE_MAXIMIZED_HORZ" {
			return true
		}
	}
	return false
}

func (w *window) FreezePosition(st platform.Settings, key string) {
	if !w.visible {
		return
	}
	x, y := w.rootPosition()
	st.FreezeInt(x, key+"_left")
	st.FreezeInt(y, key+"_top")
	st.FreezeInt(w.width, key+"_width")
	st.FreezeInt(w.height, key+"_height")
	maximized := 0
	if w.isMaximized() {
		maximized = 1
	}
	st.FreezeInt(maximized, key+"_maximized")
}

func (w *window) ThawPosition(st platform.Settings, key string) {
	x, y := w.rootPosition()
	r := platform.Rect{
		X: st.ThawInt(x, key+"_left"),
		Y: st.ThawInt(y, key+"_top"),
		W: st.ThawInt(w.width, key+"_width"),
		H: st.ThawInt(w.height, key+"_height"),
	}
	r = platform.ClampToMonitor(r, w.backend.monitors())
	if r.W > 0 && r.H > 0 {
		w.xwin.MoveResize(r.X, r.Y, r.W, r.H)
		w.configured(r.X, r.Y, r.W, r.H)
	}
	if st.ThawInt(0, key+"_maximized") != 0 {
		_ = ewmh.WmStateReqExtra(w.backend.xu, w.id, ewmh.StateAdd,
			"_NET_WM_STATE_MAXIMIZED_VERT", "_NET_WM_STATE_MAXIMIZED_HORZ", 2)
	}
}

func (w *window) SetCursor(cursor platform.Cursor) {
	id, ok := w.cursors[cursor]
	if !ok {
		shape := uint16(xcursor.LeftPtr)
		if cursor == platform.CursorHand {
			shape = xcursor.Hand2
		}
		var err error
		id, err = xcursor.CreateCursor(w.backend.xu, shape)
		if err != nil {
			return
		}
		w.cursors[cursor] = id
	}
	xproto.ChangeWindowAttributes(w.backend.xu.Conn(), w.id,
		xproto.CwCursor, []uint32{uint32(id)})
}

// SetTooltip records the hover text; an empty string disables it. The
// drawn backends paint it through the shared chrome. This backend only
// stores it and presents no hover popup.
func (w *window) SetTooltip(text string) {
	w.tooltip = text
}

func (w *window) IsEditorVisible() bool { return w.overlay.Visible }

func (w *window) ShowEditor(x, y, fontHeight, minWidth float64, monospace bool, text string) {
	if w.overlay.Visible {
		return
	}
	w.overlay.Show(platform.EditorOptions{
		X: x, Y: y,
		FontHeight: fontHeight,
		MinWidth:   minWidth,
		Monospace:  monospace,
		Text:       text,
	})
	// The overlay owns the keyboard; pointer input stays with the content.
	xproto.GrabKeyboard(w.backend.xu.Conn(), true, w.id,
		xproto.TimeCurrentTime, xproto.GrabModeAsync, xproto.GrabModeAsync)
	w.Invalidate()
}

func (w *window) HideEditor() {
	if !w.overlay.Visible {
		return
	}
	w.overlay.Hide()
	xproto.UngrabKeyboard(w.backend.xu.Conn(), xproto.TimeCurrentTime)
	w.Invalidate()
}

func (w *window) SetScrollbarVisible(visible bool) {
	if visible == w.scroll.Visible() {
		return
	}
	w.scroll.SetVisible(visible)
	w.syncSurfaceSize()
	w.Invalidate()
}

func (w *window) ConfigureScrollbar(min, max, pageSize float64) {
	w.scroll.Configure(min, max, pageSize)
	w.Invalidate()
}

func (w *window) ScrollbarPosition() float64 {
	return w.scroll.Position()
}

func (w *window) SetScrollbarPosition(pos float64) {
	w.scroll.SetPosition(pos)
	w.scrollbarAdjusted()
}

func (w *window) scrollbarAdjusted() {
	if w.events.OnScrollbarAdjusted != nil {
		w.events.OnScrollbarAdjusted(w.scroll.Position())
	}
	w.Invalidate()
}

func (w *window) Surface() *render.FrameBuffer { return w.surface }

func (w *window) Invalidate() {
	w.backend.loop.Post(w.paint)
}

func (w *window) Redraw() {
	w.paint()
}

func (w *window) NativePtr() any { return w.id }

func (w *window) syncSurfaceSize() {
	l := w.layout()
	w.surface.Resize(l.Content.W, l.Content.H)
	w.frame.Resize(w.width, w.height)
}

func (w *window) configured(x, y, width, height int) {
	_ = x
	_ = y
	if width == w.width && height == w.height {
		return
	}
	w.width, w.height = width, height
	w.syncSurfaceSize()
	w.paint()
}

func (w *window) paint() {
	if !w.visible {
		return
	}
	l := w.layout()
	if w.events.OnRender != nil {
		w.events.OnRender(w.surface)
	}

	theme := w.backend.theme
	scale := w.chromeScale()
	dst := w.frame.RGBA()
	draw.Draw(dst, image.Rect(l.Content.X, l.Content.Y,
		l.Content.X+l.Content.W, l.Content.Y+l.Content.H),
		w.surface.RGBA(), image.Point{}, draw.Src)
	if w.menuBar != nil {
		ui.DrawMenuBar(w.frame, w.menuBar, w.hotMenu, theme, scale)
	}
	if w.scroll.Visible() {
		ui.DrawScrollbar(w.frame, l.Gutter, &w.scroll, w.dragging, theme)
	}
	w.overlay.Draw(w.frame, l.Content.Y, theme)

	w.present()
}

func (w *window) present() {
	ximg := xgraphics.NewConvert(w.backend.xu, w.frame.RGBA())
	if err := ximg.XSurfaceSet(w.id); err == nil {
		ximg.XDraw()
		ximg.XPaint(w.id)
	}
	ximg.Destroy()
}

func (w *window) clientMessage(e xproto.ClientMessageEvent) {
	data := e.Data.Data32
	if len(data) > 0 && xproto.Atom(data[0]) == w.backend.atom("WM_DELETE_WINDOW") {
		if w.events.OnClose != nil {
			w.events.OnClose()
		}
	}
}

func (w *window) propertyChanged(atom xproto.Atom) {
	if atom != w.backend.atom("_NET_WM_STATE") {
		return
	}
	states, err := ewmh.WmStateGet(w.backend.xu, w.id)
	if err != nil {
		return
	}
	fullScreen := false
	for _, s := range states {
		if s == "_NET_WM_STATE_FULLSCREEN" {
			fullScreen = true
		}
	}
	if fullScreen != w.fullScreen {
		w.fullScreen = fullScreen
		if w.events.OnFullScreen != nil {
			w.events.OnFullScreen(fullScreen)
		}
	}
}

func (w *window) keyEvent(detail xproto.Keycode, state uint16, typ platform.KeyboardEventType) {
	if w.overlay.Visible {
		if typ != platform.KeyPress {
			return
		}
		k, ok := decodeEditorKey(w.backend.xu, detail, state)
		if !ok {
			return
		}
		switch w.overlay.HandleKey(k) {
		case ui.EditorCommitted:
			if w.events.OnEditingDone != nil {
				w.events.OnEditingDone(w.overlay.Text())
			}
		case ui.EditorHidden:
			xproto.UngrabKeyboard(w.backend.xu.Conn(), xproto.TimeCurrentTime)
		}
		w.Invalidate()
		return
	}
	ev, ok := decodeKey(w.backend.xu, detail, state, typ)
	if !ok {
		return
	}
	if w.menuBar != nil && w.menuBar.TriggerAccelerator(ev) {
		return
	}
	if w.events.OnKeyboardEvent != nil {
		w.events.OnKeyboardEvent(ev)
	}
}

func (w *window) buttonEvent(detail xproto.Button, state uint16, x, y int, t xproto.Timestamp, press bool) {
	_ = t
	l := w.layout()

	// Wheel arrives as buttons 4 and 5.
	if detail == 4 || detail == 5 {
		if !press {
			return
		}
		if l.Gutter.Contains(x, y) {
			changed := false
			if detail == 4 {
				changed = w.scroll.LineUp()
			} else {
				changed = w.scroll.LineDown()
			}
			if changed {
				w.scrollbarAdjusted()
			}
			return
		}
		delta := 1
		if detail == 5 {
			delta = -1
		}
		w.deliverMouse(platform.MouseEvent{
			Type:        platform.MouseScrollVert,
			X:           float64(x - l.Content.X),
			Y:           float64(y - l.Content.Y),
			ScrollDelta: delta,
		}, state)
		return
	}

	if press && y < l.MenuBarH && w.menuBar != nil {
		w.openMenuBar(x)
		return
	}
	if w.scroll.Visible() && l.Gutter.Contains(x, y) && press && detail == 1 {
		w.gutterPress(l, y)
		return
	}
	if !press && w.dragging {
		w.dragging = false
		w.Invalidate()
		return
	}

	var button platform.MouseButton
	switch detail {
	case 1:
		button = platform.ButtonLeft
	case 2:
		button = platform.ButtonMiddle
	case 3:
		button = platform.ButtonRight
	default:
		return
	}
	typ := platform.MouseRelease
	if press {
		if platform.SuppressPress(timeNow()) {
			return
		}
		typ = platform.MousePress
		if w.clicks.isDouble(button, x, y) {
			typ = platform.MouseDblPress
		}
	}
	w.deliverMouse(platform.MouseEvent{
		Type:   typ,
		X:      float64(x - l.Content.X),
		Y:      float64(y - l.Content.Y),
		Button: button,
	}, state)
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
		w.Invalidate()
	}
}

func (w *window) motionEvent(state uint16, x, y int) {
	l := w.layout()
	if w.dragging {
		pos := ui.GutterPosition(l.Gutter, &w.scroll, y, w.dragGrab)
		if w.scroll.SetPosition(pos) {
			w.scrollbarAdjusted()
		}
		return
	}
	if w.menuBar != nil && y < l.MenuBarH {
		hot := ui.MenuBarHit(w.menuBar, x, w.backend.theme, w.chromeScale())
		if hot != w.hotMenu {
			w.hotMenu = hot
			w.Invalidate()
		}
	} else if w.hotMenu != -1 {
		w.hotMenu = -1
		w.Invalidate()
	}
	shift, control := decodeButtonMods(state)
	w.deliverMouse(platform.MouseEvent{
		Type:        platform.MouseMotion,
		X:           float64(x - l.Content.X),
		Y:           float64(y - l.Content.Y),
		Button:      maskButton(state),
		ShiftDown:   shift,
		ControlDown: control,
	}, 0)
}

func (w *window) leaveEvent() {
	if w.hotMenu != -1 {
		w.hotMenu = -1
		w.Invalidate()
	}
	if w.events.OnMouseEvent != nil {
		w.events.OnMouseEvent(platform.MouseEvent{Type: platform.MouseLeave})
	}
}

func (w *window) deliverMouse(ev platform.MouseEvent, state uint16) {
	if state != 0 {
		ev.ShiftDown, ev.ControlDown = decodeButtonMods(state)
	}
	if w.events.OnMouseEvent != nil {
		w.events.OnMouseEvent(ev)
	}
}

// openMenuBar drops the menu under x down and keeps the bar live: moving
// across the bar while the popup is open switches menus.
func (w *window) openMenuBar(x int) {
	theme := w.backend.theme
	scale := w.chromeScale()
	for {
		i := ui.MenuBarHit(w.menuBar, x, theme, scale)
		if i < 0 {
			return
		}
		w.hotMenu = i
		w.paint()
		wx, wy := w.rootPosition()
		cellX := ui.MenuBarCellX(w.menuBar, i, theme, scale)
		next := w.backend.presentPopupAt(w.menuBar.Menu(i), wx+cellX, wy+w.layout().MenuBarH)
		w.hotMenu = -1
		w.Invalidate()
		if next.selected != nil {
			if next.selected.OnTrigger != nil {
				next.selected.OnTrigger()
			}
			return
		}
		if next.switchToX < 0 {
			return
		}
		x = next.switchToX
	}
}
