// Package ui carries the theme and layout metrics for the window chrome the
// backends draw themselves: the menu bar, popup menus, the scrollbar gutter,
// the editor overlay, and tooltips.
package ui

import "image/color"

type Theme struct {
	MenuBar       color.RGBA
	MenuBarText   color.RGBA
	Popup         color.RGBA
	PopupText     color.RGBA
	PopupDisabled color.RGBA
	Highlight     color.RGBA
	HighlightText color.RGBA
	Border        color.RGBA
	Separator     color.RGBA
	Gutter        color.RGBA
	Thumb         color.RGBA
	ThumbActive   color.RGBA
	EditorFill    color.RGBA
	EditorText    color.RGBA
	EditorSelect  color.RGBA
	Tooltip       color.RGBA
	TooltipText   color.RGBA

	MenuBarHeightDp int
	MenuRowHeightDp int
	MenuPadDp       int
	SeparatorDp     int
	ScrollWidthDp   int
	FontHeightDp    int
}

func DefaultTheme() Theme {
	return Theme{
		MenuBar:       color.RGBA{0xEE, 0xEF, 0xF2, 0xFF},
		MenuBarText:   color.RGBA{0x20, 0x24, 0x2A, 0xFF},
		Popup:         color.RGBA{0xFA, 0xFA, 0xFC, 0xFF},
		PopupText:     color.RGBA{0x20, 0x24, 0x2A, 0xFF},
		PopupDisabled: color.RGBA{0x9A, 0xA0, 0xA8, 0xFF},
		Highlight:     color.RGBA{0x2B, 0x57, 0x9A, 0xFF},
		HighlightText: color.RGBA{0xFF, 0xFF, 0xFF, 0xFF},
		Border:        color.RGBA{0xB2, 0xBF, 0xD0, 0xFF},
		Separator:     color.RGBA{0xD5, 0xDA, 0xE1, 0xFF},
		Gutter:        color.RGBA{0xE9, 0xEB, 0xEF, 0xFF},
		Thumb:         color.RGBA{0xB8, 0xBE, 0xC7, 0xFF},
		ThumbActive:   color.RGBA{0x8F, 0x98, 0xA5, 0xFF},
		EditorFill:    color.RGBA{0xFF, 0xFF, 0xFF, 0xFF},
		EditorText:    color.RGBA{0x10, 0x12, 0x16, 0xFF},
		EditorSelect:  color.RGBA{0xBF, 0xD3, 0xF0, 0xFF},
		Tooltip:       color.RGBA{0xFF, 0xFF, 0xE1, 0xFF},
		TooltipText:   color.RGBA{0x20, 0x24, 0x2A, 0xFF},

		MenuBarHeightDp: 26,
		MenuRowHeightDp: 24,
		MenuPadDp:       10,
		SeparatorDp:     7,
		ScrollWidthDp:   14,
		FontHeightDp:    14,
	}
}
