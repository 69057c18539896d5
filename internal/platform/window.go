package platform

import (
	"time"

	"glshell/internal/render"
)

type WindowKind int

const (
	// WindowToplevel is an ordinary application window.
	WindowToplevel WindowKind = iota
	// WindowTool is an auxiliary palette: kept above its parent, skipped in
	// the taskbar, stacking with the parent rather than independently.
	WindowTool
)

type Cursor int

const (
	CursorPointer Cursor = iota
	CursorHand
)

// Double-press detection for hosts that do not synthesize it natively.
const (
	DoubleClickTime = 400 * time.Millisecond
	DoubleClickDist = 4.0
)

// WindowEvents holds the callback fields a collaborator assigns on a window.
// Unset callbacks mean the event is unhandled. All callbacks run on the
// dispatch loop.
type WindowEvents struct {
	OnClose             func()
	OnFullScreen        func(fullScreen bool)
	OnRender            func(fb *render.FrameBuffer)
	OnKeyboardEvent     func(ev KeyboardEvent) bool
	OnMouseEvent        func(ev MouseEvent) bool
	OnScrollbarAdjusted func(pos float64)
	OnEditingDone       func(text string)
}

// Window is the per-backend window contract. A window owns its rendering
// surface for its whole lifetime; the surface is resized in place, never
// replaced.
type Window interface {
	Events() *WindowEvents
	Kind() WindowKind

	// IntegralScaleFactor is the ceiling-rounded integer scale, for
	// collaborators that render in integer multiples; FractionalScaleFactor
	// is the exact output scale; PixelDensity is in dots per inch.
	IntegralScaleFactor() int
	FractionalScaleFactor() float64
	PixelDensity() float64

	IsVisible() bool
	SetVisible(visible bool)
	Focus()
	IsFullScreen() bool
	SetFullScreen(fullScreen bool)
	SetTitle(title string)
	SetMenuBar(bar *MenuBar)

	ContentSize() (w, h float64)
	SetMinContentSize(w, h float64)

	FreezePosition(st Settings, key string)
	ThawPosition(st Settings, key string)

	SetCursor(cursor Cursor)
	SetTooltip(text string)

	IsEditorVisible() bool
	ShowEditor(x, y, fontHeight, minWidth float64, monospace bool, text string)
	HideEditor()

	SetScrollbarVisible(visible bool)
	ConfigureScrollbar(min, max, pageSize float64)
	ScrollbarPosition() float64
	SetScrollbarPosition(pos float64)

	Surface() *render.FrameBuffer
	Invalidate()
	Redraw()

	// NativePtr exposes the backend handle for code that must talk to the
	// host directly; the concrete type is backend-specific.
	NativePtr() any
}

// Backend is the factory surface a linked backend provides. Exactly one
// backend is linked into a build; host selection happens at compile time.
type Backend interface {
	Name() string

	Loop() *Loop
	NewTimer() *Timer
	NewMenu() *Menu
	// MainMenuBar returns the process-wide menu bar model, creating it on
	// first call. Backends that render the bar per-window still share the
	// one model.
	MainMenuBar() *MenuBar
	NewWindow(kind WindowKind, parent Window) (Window, error)

	// Run dispatches events until Exit is called, then returns.
	Run() error
	Exit()
}
