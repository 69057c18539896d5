package platform

import (
	"sync"
	"time"
)

type MenuIndicator int

const (
	IndicatorNone MenuIndicator = iota
	IndicatorCheckMark
	IndicatorRadioMark
)

// MenuItem is one entry of a Menu. OnTrigger runs on the dispatch loop when
// the item is activated, either from a presented menu or through its
// accelerator.
type MenuItem struct {
	OnTrigger func()

	label     string
	accel     KeyboardEvent
	hasAccel  bool
	indicator MenuIndicator
	active    bool
	enabled   bool
	subMenu   *Menu
}

// Label returns the display label, including the accelerator suffix if one
// is set, with mnemonic markers stripped.
func (mi *MenuItem) Label() string {
	return StripMnemonics(mi.label)
}

func (mi *MenuItem) Accelerator() (KeyboardEvent, bool) {
	return mi.accel, mi.hasAccel
}

// SetAccelerator records the shortcut and appends its description to the
// label, replacing any previous suffix.
func (mi *MenuItem) SetAccelerator(accel KeyboardEvent) {
	mi.accel = accel
	mi.hasAccel = true
	mi.label = AcceleratorLabel(mi.label, accel)
}

func (mi *MenuItem) Indicator() MenuIndicator { return mi.indicator }

func (mi *MenuItem) SetIndicator(ind MenuIndicator) {
	mi.indicator = ind
}

func (mi *MenuItem) Active() bool { return mi.active }

// SetActive toggles the check or radio mark. Calling it on an item that has
// no indicator is a programming error.
func (mi *MenuItem) SetActive(active bool) {
	if mi.indicator == IndicatorNone {
		panic("cannot change state of a menu item without indicator")
	}
	mi.active = active
}

func (mi *MenuItem) Enabled() bool { return mi.enabled }

func (mi *MenuItem) SetEnabled(enabled bool) {
	mi.enabled = enabled
}

// SubMenu returns the nested menu for items created by AddSubMenu, nil for
// plain items.
func (mi *MenuItem) SubMenu() *Menu { return mi.subMenu }

// MenuEntry is a row of a presented menu: either an item or a separator.
type MenuEntry struct {
	Item      *MenuItem
	Separator bool
}

// PopupPresenter displays a menu modally at the current pointer position and
// blocks (via a nested dispatch pump) until the user selects an item or
// dismisses the menu. It returns the selected item, nil on dismissal.
// Presentation is owned by the linked backend.
type PopupPresenter interface {
	PresentPopup(m *Menu) *MenuItem
}

// Menu is an ordered list of items and separators. The model is shared by
// every backend; only presentation differs.
type Menu struct {
	entries   []MenuEntry
	presenter PopupPresenter
}

func NewMenu(presenter PopupPresenter) *Menu {
	return &Menu{presenter: presenter}
}

// AddItem appends an item with the given label and trigger callback.
func (m *Menu) AddItem(label string, onTrigger func()) *MenuItem {
	mi := &MenuItem{OnTrigger: onTrigger, label: label, enabled: true}
	m.entries = append(m.entries, MenuEntry{Item: mi})
	return mi
}

// AddSubMenu appends an item that opens a nested menu.
func (m *Menu) AddSubMenu(label string) *Menu {
	sub := &Menu{presenter: m.presenter}
	mi := &MenuItem{label: label, enabled: true, subMenu: sub}
	m.entries = append(m.entries, MenuEntry{Item: mi})
	return sub
}

func (m *Menu) AddSeparator() {
	m.entries = append(m.entries, MenuEntry{Separator: true})
}

func (m *Menu) Entries() []MenuEntry { return m.entries }

// Clear removes all entries. Nested menus previously returned by AddSubMenu
// become detached empty shells; holding onto them is a caller bug.
func (m *Menu) Clear() {
	for _, e := range m.entries {
		if e.Item != nil && e.Item.subMenu != nil {
			e.Item.subMenu.Clear()
		}
	}
	m.entries = nil
}

// PopUp presents the menu modally. The selected item's trigger runs before
// PopUp returns; a dismissal arms the press-suppression window instead.
func (m *Menu) PopUp() {
	if m.presenter == nil {
		return
	}
	if !beginPopup() {
		panic("menu already popped up")
	}
	sel := m.presenter.PresentPopup(m)
	endPopup(sel == nil)
	if sel != nil && sel.OnTrigger != nil {
		sel.OnTrigger()
	}
}

// TriggerAccelerator activates the first enabled item, searching nested
// menus depth-first, whose accelerator matches a key press. It reports
// whether an item consumed the event.
func (m *Menu) TriggerAccelerator(ev KeyboardEvent) bool {
	if ev.Type != KeyPress {
		return false
	}
	for _, e := range m.entries {
		mi := e.Item
		if mi == nil {
			continue
		}
		if mi.subMenu != nil {
			if mi.subMenu.TriggerAccelerator(ev) {
				return true
			}
			continue
		}
		if mi.hasAccel && mi.enabled && mi.accel.Equals(ev) {
			if mi.OnTrigger != nil {
				mi.OnTrigger()
			}
			return true
		}
	}
	return false
}

// MenuBar is the horizontal bar of top-level menus attached to a window.
type MenuBar struct {
	menus     []*Menu
	labels    []string
	presenter PopupPresenter
}

func NewMenuBar(presenter PopupPresenter) *MenuBar {
	return &MenuBar{presenter: presenter}
}

func (b *MenuBar) AddSubMenu(label string) *Menu {
	m := &Menu{presenter: b.presenter}
	b.menus = append(b.menus, m)
	b.labels = append(b.labels, label)
	return m
}

func (b *MenuBar) Len() int { return len(b.menus) }

func (b *MenuBar) Menu(i int) *Menu { return b.menus[i] }

func (b *MenuBar) Label(i int) string { return StripMnemonics(b.labels[i]) }

func (b *MenuBar) Clear() {
	for _, m := range b.menus {
		m.Clear()
	}
	b.menus = nil
	b.labels = nil
}

// TriggerAccelerator routes a key press through every top-level menu in
// order. Backends call this before delivering the event to the window's
// keyboard callback.
func (b *MenuBar) TriggerAccelerator(ev KeyboardEvent) bool {
	for _, m := range b.menus {
		if m.TriggerAccelerator(ev) {
			return true
		}
	}
	return false
}

// PopupSuppressWindow is how long after a dismissed popup menu pointer
// presses are swallowed, so the click that closed the menu does not also
// activate whatever sat underneath it.
var PopupSuppressWindow = 100 * time.Millisecond

var popupState struct {
	mu         sync.Mutex
	active     bool
	cancelTime time.Time
}

func beginPopup() bool {
	popupState.mu.Lock()
	defer popupState.mu.Unlock()
	if popupState.active {
		return false
	}
	popupState.active = true
	return true
}

func endPopup(cancelled bool) {
	popupState.mu.Lock()
	defer popupState.mu.Unlock()
	popupState.active = false
	if cancelled {
		popupState.cancelTime = time.Now()
	}
}

// NotePopupDismissed arms the press-suppression window. Menu.PopUp does
// this itself; backends presenting menus outside PopUp (menu bar dropdowns)
// report their dismissals here.
func NotePopupDismissed() {
	popupState.mu.Lock()
	popupState.cancelTime = time.Now()
	popupState.mu.Unlock()
}

// SuppressPress reports whether a pointer press arriving now falls inside
// the post-dismissal suppression window and should be dropped.
func SuppressPress(now time.Time) bool {
	popupState.mu.Lock()
	defer popupState.mu.Unlock()
	if popupState.cancelTime.IsZero() {
		return false
	}
	return now.Sub(popupState.cancelTime) < PopupSuppressWindow
}
