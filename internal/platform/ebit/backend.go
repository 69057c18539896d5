// Package ebit hosts the window contract on Ebitengine. The process owns a
// single native window; tool windows are floating panels drawn above the
// main surface, and all chrome (menu bar, popups, scrollbar, editor
// overlay, tooltips) is rendered in-frame.
//
// Ebitengine inverts control: it calls Update and Draw on its own schedule.
// The bridge posts captured input into the dispatch loop and renders frames
// with a synchronous round-trip, so every callback still runs on the one
// dispatch goroutine and modal flows like Menu.PopUp keep their nested-pump
// semantics.
package ebit

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"glshell/internal/platform"
	"glshell/internal/ui"
)

type Backend struct {
	loop     *platform.Loop
	theme    ui.Theme
	mainMenu *platform.MenuBar

	main   *window
	panels []*window

	popup *popupState

	running bool
}

func New() *Backend {
	return &Backend{
		loop:  platform.NewLoop(),
		theme: ui.DefaultTheme(),
	}
}

func (b *Backend) Name() string { return "ebit" }

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
	if kind == platform.WindowToplevel {
		if b.main != nil {
			return nil, errors.New("ebit: a single top-level window is supported")
		}
		b.main = newWindow(b, kind)
		return b.main, nil
	}
	if b.main == nil {
		return nil, errors.New("ebit: tool windows need a top-level window first")
	}
	_ = parent
	p := newWindow(b, kind)
	b.panels = append(b.panels, p)
	return p, nil
}

// Run starts the dispatch goroutine, then gives the calling goroutine to
// Ebitengine for the lifetime of the process window.
func (b *Backend) Run() error {
	if b.main == nil {
		return errors.New("ebit: no window created")
	}
	b.running = true
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(b.main.width, b.main.height)
	if b.main.title != "" {
		ebiten.SetWindowTitle(b.main.title + " - glshell")
	}

	loopDone := make(chan struct{})
	go func() {
		b.loop.Run()
		close(loopDone)
	}()

	err := ebiten.RunGame(&game{backend: b})
	b.loop.Quit()
	<-loopDone
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("ebit: run: %w", err)
	}
	return nil
}

func (b *Backend) Exit() {
	b.loop.Quit()
}

type game struct {
	backend *Backend
	w, h    int
}

func (g *game) Update() error {
	b := g.backend
	if b.loop.Quitting() {
		return ebiten.Termination
	}
	f := captureInput(g.w, g.h)
	b.loop.Post(func() { b.processInput(f) })
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	b := g.backend
	if b.loop.Quitting() {
		return
	}
	b.loop.CallSync(func() { b.composite() })
	if b.main != nil && b.main.canvas != nil {
		screen.DrawImage(b.main.canvas, nil)
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth < 1 {
		outsideWidth = 1
	}
	if outsideHeight < 1 {
		outsideHeight = 1
	}
	g.w, g.h = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}
