// Package app is the demonstration collaborator: a small line viewer that
// exercises the whole windowing contract against whichever backend the
// build links.
package app

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"time"

	"glshell/internal/platform"
	"glshell/internal/platform/host"
	"glshell/internal/render"
)

const settingsKey = "main_window"

type App struct {
	backend  platform.Backend
	settings platform.Settings
	window   platform.Window

	lines     []string
	topLine   float64
	cursor    int
	blinkOn   bool
	blink     *platform.Timer
	scrollbar bool

	contextMenu *platform.Menu
}

func New() *App {
	return &App{
		lines: []string{
			"Double-click a line to rename it.",
			"Right-click for the context menu.",
			"Scroll with the wheel or the bar.",
		},
		scrollbar: true,
	}
}

func (a *App) Run() error {
	backend, err := host.New()
	if err != nil {
		return fmt.Errorf("app: backend: %w", err)
	}
	a.backend = backend
	a.settings = openSettings()

	w, err := backend.NewWindow(platform.WindowToplevel, nil)
	if err != nil {
		return fmt.Errorf("app: window: %w", err)
	}
	a.window = w
	w.SetTitle("glshell demo")
	w.SetMinContentSize(480, 320)
	w.SetMenuBar(a.buildMenuBar())
	a.contextMenu = a.buildContextMenu()
	a.configureScroll()

	ev := w.Events()
	ev.OnRender = a.draw
	ev.OnClose = a.quit
	ev.OnKeyboardEvent = a.keyboard
	ev.OnMouseEvent = a.mouse
	ev.OnScrollbarAdjusted = func(pos float64) { a.topLine = pos }
	ev.OnEditingDone = a.renameDone
	ev.OnFullScreen = func(fs bool) { _ = fs }

	w.ThawPosition(a.settings, settingsKey)
	w.SetVisible(true)

	a.blink = backend.NewTimer()
	a.blink.OnTimeout = func() {
		a.blinkOn = !a.blinkOn
		a.window.Invalidate()
		a.blink.WindUp(500 * time.Millisecond)
	}
	a.blink.WindUp(500 * time.Millisecond)

	return backend.Run()
}

func (a *App) quit() {
	a.window.FreezePosition(a.settings, settingsKey)
	a.blink.Destroy()
	a.backend.Exit()
}

func (a *App) buildMenuBar() *platform.MenuBar {
	bar := a.backend.MainMenuBar()

	file := bar.AddSubMenu("&File")
	add := file.AddItem("&Add Line", func() {
		a.lines = append(a.lines, fmt.Sprintf("Line %d", len(a.lines)+1))
		a.configureScroll()
		a.window.Invalidate()
	})
	add.SetAccelerator(platform.KeyboardEvent{
		Type: platform.KeyPress, Key: platform.KeyCharacter, Chr: 'n', ControlDown: true,
	})
	file.AddSeparator()
	quit := file.AddItem("&Quit", a.quit)
	quit.SetAccelerator(platform.KeyboardEvent{
		Type: platform.KeyPress, Key: platform.KeyCharacter, Chr: 'q', ControlDown: true,
	})

	view := bar.AddSubMenu("&View")
	scroll := view.AddItem("Show &Scrollbar", nil)
	scroll.SetIndicator(platform.IndicatorCheckMark)
	scroll.SetActive(a.scrollbar)
	scroll.OnTrigger = func() {
		a.scrollbar = !a.scrollbar
		scroll.SetActive(a.scrollbar)
		a.window.SetScrollbarVisible(a.scrollbar)
	}
	full := view.AddItem("&Full Screen", func() {
		a.window.SetFullScreen(!a.window.IsFullScreen())
	})
	full.SetAccelerator(platform.KeyboardEvent{
		Type: platform.KeyPress, Key: platform.KeyFunction, Num: 11,
	})
	return bar
}

func (a *App) buildContextMenu() *platform.Menu {
	m := a.backend.NewMenu()
	m.AddItem("&Rename", func() { a.openEditor(a.cursor) })
	m.AddItem("&Delete", func() {
		if a.cursor < len(a.lines) {
			a.lines = append(a.lines[:a.cursor], a.lines[a.cursor+1:]...)
			a.configureScroll()
			a.window.Invalidate()
		}
	})
	m.AddSeparator()
	more := m.AddSubMenu("&More")
	more.AddItem("Duplicate", func() {
		if a.cursor < len(a.lines) {
			a.lines = append(a.lines, a.lines[a.cursor])
			a.configureScroll()
			a.window.Invalidate()
		}
	})
	return m
}

const lineHeight = 22

func (a *App) visibleLines() float64 {
	_, h := a.window.ContentSize()
	return h / lineHeight
}

func (a *App) configureScroll() {
	a.window.SetScrollbarVisible(a.scrollbar)
	a.window.ConfigureScrollbar(0, float64(len(a.lines)), a.visibleLines())
}

func (a *App) draw(fb *render.FrameBuffer) {
	fb.Clear(color.RGBA{0xFF, 0xFF, 0xFF, 0xFF})
	face := platform.FontFace(15, false)
	for i, line := range a.lines {
		y := int((float64(i)-a.topLine)*lineHeight) + lineHeight
		if y < 0 || y > fb.H+lineHeight {
			continue
		}
		if i == a.cursor {
			fb.FillRect(0, y-lineHeight+4, fb.W, lineHeight, color.RGBA{0xE8, 0xEE, 0xF8, 0xFF})
			if a.blinkOn {
				fb.FillRect(2, y-lineHeight+4, 3, lineHeight, color.RGBA{0x2B, 0x57, 0x9A, 0xFF})
			}
		}
		fb.DrawString(12, y, line, face, color.RGBA{0x10, 0x12, 0x16, 0xFF})
	}
}

func (a *App) lineAt(y float64) int {
	i := int(a.topLine + (y-4)/lineHeight)
	if i < 0 {
		i = 0
	}
	if i >= len(a.lines) {
		i = len(a.lines) - 1
	}
	return i
}

func (a *App) keyboard(ev platform.KeyboardEvent) bool {
	if ev.Type != platform.KeyPress || ev.Key != platform.KeyCharacter {
		return false
	}
	switch ev.Chr {
	case platform.CharEscape:
		a.quit()
		return true
	case platform.CharDelete:
		if a.cursor < len(a.lines) {
			a.lines = append(a.lines[:a.cursor], a.lines[a.cursor+1:]...)
			a.configureScroll()
			a.window.Invalidate()
		}
		return true
	}
	return false
}

func (a *App) mouse(ev platform.MouseEvent) bool {
	switch ev.Type {
	case platform.MousePress:
		if len(a.lines) == 0 {
			return false
		}
		a.cursor = a.lineAt(ev.Y)
		a.window.Invalidate()
		if ev.Button == platform.ButtonRight {
			a.contextMenu.PopUp()
		}
		return true
	case platform.MouseDblPress:
		a.openEditor(a.lineAt(ev.Y))
		return true
	case platform.MouseScrollVert:
		pos := a.topLine - float64(ev.ScrollDelta)
		a.window.SetScrollbarPosition(pos)
		return true
	}
	return false
}

func (a *App) openEditor(i int) {
	if i >= len(a.lines) {
		return
	}
	a.cursor = i
	baseline := (float64(i)-a.topLine)*lineHeight + lineHeight
	a.window.ShowEditor(12, baseline, 15, 120, false, a.lines[i])
}

func (a *App) renameDone(text string) {
	if a.cursor < len(a.lines) {
		a.lines[a.cursor] = text
	}
	a.window.HideEditor()
	a.window.Invalidate()
}

func openSettings() platform.Settings {
	dir, err := os.UserConfigDir()
	if err != nil {
		return platform.NewMemorySettings()
	}
	st, err := platform.OpenFileSettings(filepath.Join(dir, "glshell", "settings.yaml"))
	if err != nil {
		return platform.NewMemorySettings()
	}
	return st
}
