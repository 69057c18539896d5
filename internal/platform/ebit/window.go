package ebit

import (
	"image"
	"image/draw"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"glshell/internal/platform"
	"glshell/internal/render"
	"glshell/internal/ui"
)

const (
	defaultWidth, defaultHeight = 800, 600
	panelWidth, panelHeight     = 320, 240
	panelTitleDp                = 22
)

type window struct {
	backend *Backend
	kind    platform.WindowKind
	events  platform.WindowEvents

	// Panels live inside the main frame at (x, y); the main window tracks
	// the native window instead and ignores them.
	x, y          int
	width, height int
	visible       bool
	fullScreen    bool
	title         string
	tooltip       string
	menuBar       *platform.MenuBar
	hotMenu       int
	minW, minH    int

	scroll   platform.Scrollbar
	dragging bool
	dragGrab int

	overlay ui.EditorOverlay
	clicks  clickTracker

	surface *render.FrameBuffer
	frame   *render.FrameBuffer
	canvas  *ebiten.Image
}

func newWindow(b *Backend, kind platform.WindowKind) *window {
	w := &window{
		backend: b,
		kind:    kind,
		width:   defaultWidth,
		height:  defaultHeight,
		hotMenu: -1,
	}
	if kind == platform.WindowTool {
		w.width, w.height = panelWidth, panelHeight
		w.x, w.y = 60, 60
	}
	w.surface = render.NewFrameBuffer(w.width, w.height)
	w.frame = render.NewFrameBuffer(w.width, w.height)
	return w
}

func (w *window) isMain() bool { return w.backend.main == w }

func (w *window) Events() *platform.WindowEvents { return &w.events }

func (w *window) Kind() platform.WindowKind { return w.kind }

func (w *window) IntegralScaleFactor() int {
	return int(math.Ceil(w.FractionalScaleFactor()))
}

func (w *window) FractionalScaleFactor() float64 {
	if !w.backend.running {
		return 1.0
	}
	return ebiten.Monitor().DeviceScaleFactor()
}

func (w *window) PixelDensity() float64 {
	return w.FractionalScaleFactor() * 96.0
}

func (w *window) chromeScale() float64 { return 1.0 }

func (w *window) titleBarH() int {
	if w.kind != platform.WindowTool {
		return 0
	}
	return panelTitleDp
}

func (w *window) layout() ui.Layout {
	l := ui.ComputeLayout(w.width, w.height-w.titleBarH(),
		w.menuBar != nil, w.scroll.Visible(), w.backend.theme, w.chromeScale())
	l.Content.Y += w.titleBarH()
	l.Gutter.Y += w.titleBarH()
	return l
}

func (w *window) IsVisible() bool { return w.visible }

func (w *window) SetVisible(visible bool) { w.visible = visible }

func (w *window) Focus() {
	if w.kind == platform.WindowTool {
		w.backend.raisePanel(w)
	}
}

func (w *window) IsFullScreen() bool { return w.fullScreen }

func (w *window) SetFullScreen(fullScreen bool) {
	if !w.isMain() {
		return
	}
	ebiten.SetFullscreen(fullScreen)
	// The state change is observed on the next input frame, which is
	// where the callback fires.
}

func (w *window) SetTitle(title string) {
	w.title = title
	if w.isMain() && w.backend.running {
		ebiten.SetWindowTitle(title + " - glshell")
	}
}

func (w *window) SetMenuBar(bar *platform.MenuBar) {
	w.menuBar = bar
	w.syncSurfaceSize()
}

func (w *window) ContentSize() (float64, float64) {
	l := w.layout()
	return float64(l.Content.W), float64(l.Content.H)
}

func (w *window) SetMinContentSize(width, height float64) {
	l := w.layout()
	w.minW = int(width) + (w.width - l.Content.W)
	w.minH = int(height) + (w.height - l.Content.H)
	if w.isMain() {
		ebiten.SetWindowSizeLimits(w.minW, w.minH, -1, -1)
	}
	if w.width < w.minW || w.height < w.minH {
		w.resize(max(w.width, w.minW), max(w.height, w.minH))
		if w.isMain() && w.backend.running {
			ebiten.SetWindowSize(w.width, w.height)
		}
	}
}

func (w *window) resize(width, height int) {
	w.width, w.height = width, height
	w.syncSurfaceSize()
}

func (w *window) syncSurfaceSize() {
	l := w.layout()
	w.surface.Resize(l.Content.W, l.Content.H)
	w.frame.Resize(w.width, w.height)
}

func (w *window) FreezePosition(st platform.Settings, key string) {
	if !w.visible {
		return
	}
	x, y := w.x, w.y
	maximized := 0
	if w.isMain() {
		x, y = ebiten.WindowPosition()
		if ebiten.IsWindowMaximized() {
			maximized = 1
		}
	}
	st.FreezeInt(x, key+"_left")
	st.FreezeInt(y, key+"_top")
	st.FreezeInt(w.width, key+"_width")
	st.FreezeInt(w.height, key+"_height")
	st.FreezeInt(maximized, key+"_maximized")
}

func (w *window) ThawPosition(st platform.Settings, key string) {
	r := platform.Rect{
		X: st.ThawInt(w.x, key+"_left"),
		Y: st.ThawInt(w.y, key+"_top"),
		W: st.ThawInt(w.width, key+"_width"),
		H: st.ThawInt(w.height, key+"_height"),
	}
	r = platform.ClampToMonitor(r, w.backend.monitors())
	if r.W < 1 || r.H < 1 {
		return
	}
	w.x, w.y = r.X, r.Y
	w.resize(r.W, r.H)
	if w.isMain() {
		ebiten.SetWindowPosition(r.X, r.Y)
		ebiten.SetWindowSize(r.W, r.H)
		if st.ThawInt(0, key+"_maximized") != 0 {
			ebiten.MaximizeWindow()
		}
	}
}

func (w *window) SetCursor(cursor platform.Cursor) {
	if !w.isMain() {
		return
	}
	shape := ebiten.CursorShapeDefault
	if cursor == platform.CursorHand {
		shape = ebiten.CursorShapePointer
	}
	ebiten.SetCursorShape(shape)
}

func (w *window) SetTooltip(text string) { w.tooltip = text }

func (w *window) IsEditorVisible() bool { return w.overlay.Visible }

func (w *window) ShowEditor(x, y, fontHeight, minWidth float64, monospace bool, text string) {
	w.overlay.Show(platform.EditorOptions{
		X: x, Y: y,
		FontHeight: fontHeight,
		MinWidth:   minWidth,
		Monospace:  monospace,
		Text:       text,
	})
}

func (w *window) HideEditor() { w.overlay.Hide() }

func (w *window) SetScrollbarVisible(visible bool) {
	if visible == w.scroll.Visible() {
		return
	}
	w.scroll.SetVisible(visible)
	w.syncSurfaceSize()
}

func (w *window) ConfigureScrollbar(min, max, pageSize float64) {
	w.scroll.Configure(min, max, pageSize)
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
}

func (w *window) Surface() *render.FrameBuffer { return w.surface }

// Invalidate is satisfied by the continuous frame loop: every Draw renders
// through the callback already.
func (w *window) Invalidate() {}

func (w *window) Redraw() {
	if w.events.OnRender != nil {
		w.events.OnRender(w.surface)
	}
}

func (w *window) NativePtr() any { return w }

// compose renders this window's frame: chrome strips around the surface,
// plus a title bar and close box for panels.
func (w *window) compose() {
	l := w.layout()
	if w.events.OnRender != nil {
		w.events.OnRender(w.surface)
	}
	theme := w.backend.theme
	dst := w.frame.RGBA()
	draw.Draw(dst, image.Rect(l.Content.X, l.Content.Y,
		l.Content.X+l.Content.W, l.Content.Y+l.Content.H),
		w.surface.RGBA(), image.Point{}, draw.Src)
	if w.kind == platform.WindowTool {
		w.drawTitleBar()
	}
	if w.menuBar != nil {
		ui.DrawMenuBar(w.frame, w.menuBar, w.hotMenu, theme, w.chromeScale())
	}
	if w.scroll.Visible() {
		ui.DrawScrollbar(w.frame, l.Gutter, &w.scroll, w.dragging, theme)
	}
	w.overlay.Draw(w.frame, l.Content.Y, theme)
}

func (w *window) drawTitleBar() {
	theme := w.backend.theme
	h := w.titleBarH()
	w.frame.FillRect(0, 0, w.width, h, theme.Highlight)
	face := platform.FontFace(float64(theme.FontHeightDp), false)
	m := face.Metrics()
	baseline := (h-m.Ascent.Ceil()-m.Descent.Ceil())/2 + m.Ascent.Ceil()
	w.frame.DrawString(6, baseline, w.title, face, theme.HighlightText)
	w.frame.DrawString(w.closeBoxX(), baseline, "×", face, theme.HighlightText)
	w.frame.StrokeRect(0, 0, w.width, w.height, 1, theme.Border)
}

func (w *window) closeBoxX() int { return w.width - 16 }

func (w *window) contains(x, y int) bool {
	return w.visible && x >= w.x && x < w.x+w.width && y >= w.y && y < w.y+w.height
}

type clickTracker struct {
	button platform.MouseButton
	at     time.Time
	x, y   int
}

func (c *clickTracker) isDouble(button platform.MouseButton, x, y int) bool {
	now := time.Now()
	double := button == c.button &&
		now.Sub(c.at) < platform.DoubleClickTime &&
		abs(x-c.x) <= int(platform.DoubleClickDist) &&
		abs(y-c.y) <= int(platform.DoubleClickDist)
	if double {
		*c = clickTracker{}
		return true
	}
	c.button, c.at, c.x, c.y = button, now, x, y
	return false
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
