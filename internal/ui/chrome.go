package ui

import (
	"image/color"
	"strings"

	"golang.org/x/image/font"

	"glshell/internal/editor"
	"glshell/internal/platform"
	"glshell/internal/render"
)

// Layout splits a window into the chrome strips and the content area the
// render callback owns. Coordinates are in output pixels.
type Layout struct {
	MenuBarH int
	Content  platform.Rect
	Gutter   platform.Rect
}

func ComputeLayout(w, h int, hasMenuBar, hasScrollbar bool, theme Theme, scale float64) Layout {
	if scale <= 0 {
		scale = 1
	}
	dp := func(v int) int { return int(float64(v) * scale) }

	menuH := 0
	if hasMenuBar {
		menuH = dp(theme.MenuBarHeightDp)
	}
	gutterW := 0
	if hasScrollbar {
		gutterW = dp(theme.ScrollWidthDp)
	}
	contentH := h - menuH
	if contentH < 0 {
		contentH = 0
	}
	contentW := w - gutterW
	if contentW < 0 {
		contentW = 0
	}
	return Layout{
		MenuBarH: menuH,
		Content:  platform.Rect{X: 0, Y: menuH, W: contentW, H: contentH},
		Gutter:   platform.Rect{X: contentW, Y: menuH, W: gutterW, H: contentH},
	}
}

// MenuBarHit returns the index of the menu whose label covers x, or -1.
func MenuBarHit(bar *platform.MenuBar, x int, theme Theme, scale float64) int {
	if bar == nil {
		return -1
	}
	face := chromeFace(theme, scale)
	pad := int(float64(theme.MenuPadDp) * scale)
	cx := 0
	for i := 0; i < bar.Len(); i++ {
		w := platform.MeasureString(face, bar.Label(i)) + pad*2
		if x >= cx && x < cx+w {
			return i
		}
		cx += w
	}
	return -1
}

// MenuBarCellX returns the left edge of the i-th menu label, for anchoring
// its dropdown.
func MenuBarCellX(bar *platform.MenuBar, i int, theme Theme, scale float64) int {
	face := chromeFace(theme, scale)
	pad := int(float64(theme.MenuPadDp) * scale)
	cx := 0
	for j := 0; j < i && j < bar.Len(); j++ {
		cx += platform.MeasureString(face, bar.Label(j)) + pad*2
	}
	return cx
}

func DrawMenuBar(fb *render.FrameBuffer, bar *platform.MenuBar, hot int, theme Theme, scale float64) {
	h := int(float64(theme.MenuBarHeightDp) * scale)
	fb.FillRect(0, 0, fb.W, h, theme.MenuBar)
	fb.FillRect(0, h-1, fb.W, 1, theme.Border)
	if bar == nil {
		return
	}
	face := chromeFace(theme, scale)
	pad := int(float64(theme.MenuPadDp) * scale)
	baseline := baselineIn(face, 0, h)
	cx := 0
	for i := 0; i < bar.Len(); i++ {
		label := bar.Label(i)
		w := platform.MeasureString(face, label) + pad*2
		fg := theme.MenuBarText
		if i == hot {
			fb.FillRect(cx, 0, w, h, theme.Highlight)
			fg = theme.HighlightText
		}
		fb.DrawString(cx+pad, baseline, label, face, fg)
		cx += w
	}
}

// PopupMetrics is the precomputed geometry of one presented menu: the
// overall size and the vertical extent of every row.
type PopupMetrics struct {
	W, H int
	Rows []platform.Rect
}

func MeasurePopup(m *platform.Menu, theme Theme, scale float64) PopupMetrics {
	face := chromeFace(theme, scale)
	rowH := int(float64(theme.MenuRowHeightDp) * scale)
	sepH := int(float64(theme.SeparatorDp) * scale)
	pad := int(float64(theme.MenuPadDp) * scale)
	mark := markColumn(theme, scale)

	var pm PopupMetrics
	y := 1
	maxW := 0
	for _, e := range m.Entries() {
		if e.Separator {
			pm.Rows = append(pm.Rows, platform.Rect{X: 1, Y: y, W: 0, H: sepH})
			y += sepH
			continue
		}
		label, accel := splitLabel(e.Item.Label())
		w := mark + platform.MeasureString(face, label) + pad*3
		if accel != "" {
			w += platform.MeasureString(face, accel) + pad
		}
		if e.Item.SubMenu() != nil {
			w += pad
		}
		if w > maxW {
			maxW = w
		}
		pm.Rows = append(pm.Rows, platform.Rect{X: 1, Y: y, W: 0, H: rowH})
		y += rowH
	}
	if maxW < rowH*4 {
		maxW = rowH * 4
	}
	pm.W = maxW + 2
	pm.H = y + 1
	for i := range pm.Rows {
		pm.Rows[i].W = pm.W - 2
	}
	return pm
}

// PopupRowAt maps a point inside the popup to a selectable entry index;
// separators and disabled items report -1.
func PopupRowAt(m *platform.Menu, pm PopupMetrics, x, y int) int {
	if x < 0 || x >= pm.W {
		return -1
	}
	for i, r := range pm.Rows {
		if y >= r.Y && y < r.Y+r.H {
			e := m.Entries()[i]
			if e.Separator || !e.Item.Enabled() {
				return -1
			}
			return i
		}
	}
	return -1
}

func DrawPopup(fb *render.FrameBuffer, ox, oy int, m *platform.Menu, pm PopupMetrics, hover int, theme Theme, scale float64) {
	face := chromeFace(theme, scale)
	pad := int(float64(theme.MenuPadDp) * scale)
	mark := markColumn(theme, scale)

	fb.FillRect(ox, oy, pm.W, pm.H, theme.Popup)
	fb.StrokeRect(ox, oy, pm.W, pm.H, 1, theme.Border)
	for i, e := range m.Entries() {
		r := pm.Rows[i]
		if e.Separator {
			fb.FillRect(ox+r.X+pad, oy+r.Y+r.H/2, r.W-pad*2, 1, theme.Separator)
			continue
		}
		mi := e.Item
		fg := theme.PopupText
		if !mi.Enabled() {
			fg = theme.PopupDisabled
		}
		if i == hover && mi.Enabled() {
			fb.FillRect(ox+r.X, oy+r.Y, r.W, r.H, theme.Highlight)
			fg = theme.HighlightText
		}
		baseline := baselineIn(face, oy+r.Y, r.H)
		if mi.Indicator() != platform.IndicatorNone && mi.Active() {
			drawMark(fb, ox+r.X+pad/2, oy+r.Y, mark, r.H, mi.Indicator(), fg)
		}
		label, accel := splitLabel(mi.Label())
		fb.DrawString(ox+r.X+mark+pad, baseline, label, face, fg)
		if accel != "" {
			ax := ox + r.X + r.W - pad - platform.MeasureString(face, accel)
			fb.DrawString(ax, baseline, accel, face, fg)
		}
		if mi.SubMenu() != nil {
			fb.DrawString(ox+r.X+r.W-pad, baseline, "▸", face, fg)
		}
	}
}

func drawMark(fb *render.FrameBuffer, x, y, w, h int, ind platform.MenuIndicator, c color.RGBA) {
	switch ind {
	case platform.IndicatorRadioMark:
		d := min(w, h) / 3
		fb.FillRect(x+(w-d)/2, y+(h-d)/2, d, d, c)
	default:
		d := min(w, h) / 2
		fb.FillRect(x+(w-d)/2, y+h/2, d, 2, c)
		fb.FillRect(x+(w-d)/2+d-2, y+h/2-d+2, 2, d, c)
	}
}

func DrawScrollbar(fb *render.FrameBuffer, r platform.Rect, sb *platform.Scrollbar, active bool, theme Theme) {
	fb.FillRect(r.X, r.Y, r.W, r.H, theme.Gutter)
	fb.FillRect(r.X, r.Y, 1, r.H, theme.Border)
	tr := ThumbRect(r, sb)
	c := theme.Thumb
	if active {
		c = theme.ThumbActive
	}
	fb.FillRect(tr.X+2, tr.Y, tr.W-4, tr.H, c)
}

// ThumbRect positions the draggable thumb inside the gutter from the
// scrollbar's page and position fractions.
func ThumbRect(gutter platform.Rect, sb *platform.Scrollbar) platform.Rect {
	th := int(float64(gutter.H) * sb.PageFraction())
	minTh := gutter.W * 2
	if th < minTh {
		th = minTh
	}
	if th > gutter.H {
		th = gutter.H
	}
	ty := gutter.Y + int(float64(gutter.H-th)*sb.Fraction())
	return platform.Rect{X: gutter.X, Y: ty, W: gutter.W, H: th}
}

// GutterPosition converts a drag of the thumb to a scrollbar position for a
// pointer at y, anchored at grab offset within the thumb.
func GutterPosition(gutter platform.Rect, sb *platform.Scrollbar, y, grab int) float64 {
	th := ThumbRect(gutter, sb).H
	span := gutter.H - th
	if span <= 0 {
		return sb.Position()
	}
	frac := float64(y-grab-gutter.Y) / float64(span)
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}
	// Invert Fraction: min + frac*(max-page-min), recovered through the
	// scrollbar itself to avoid duplicating the fixed-point clamp.
	lo, hi := sb.PositionBounds()
	return lo + frac*(hi-lo)
}

func DrawEditor(fb *render.FrameBuffer, r platform.Rect, st *editor.State, face font.Face, theme Theme) {
	fb.FillRect(r.X-1, r.Y-1, r.W+2, r.H+2, theme.EditorFill)
	fb.StrokeRect(r.X-1, r.Y-1, r.W+2, r.H+2, 1, theme.Border)

	m := face.Metrics()
	baseline := r.Y + m.Ascent.Ceil()
	text := st.Text()
	if st.HasSelection() {
		a, b := st.SelectionRange()
		x0 := r.X + platform.MeasureString(face, text[:a])
		x1 := r.X + platform.MeasureString(face, text[:b])
		fb.FillRect(x0, r.Y, x1-x0, r.H, theme.EditorSelect)
	}
	fb.DrawString(r.X, baseline, text, face, theme.EditorText)
	cx := r.X + platform.MeasureString(face, text[:st.CaretByte()])
	fb.FillRect(cx, r.Y, 1, r.H, theme.EditorText)
}

func DrawTooltip(fb *render.FrameBuffer, x, y int, text string, theme Theme, scale float64) {
	if text == "" {
		return
	}
	face := chromeFace(theme, scale)
	pad := int(4 * scale)
	w := platform.MeasureString(face, text) + pad*2
	m := face.Metrics()
	h := m.Ascent.Ceil() + m.Descent.Ceil() + pad*2
	if x+w > fb.W {
		x = fb.W - w
	}
	if y+h > fb.H {
		y -= h
	}
	fb.FillRect(x, y, w, h, theme.Tooltip)
	fb.StrokeRect(x, y, w, h, 1, theme.Border)
	fb.DrawString(x+pad, y+pad+m.Ascent.Ceil(), text, face, theme.TooltipText)
}

func chromeFace(theme Theme, scale float64) font.Face {
	return platform.FontFace(float64(theme.FontHeightDp)*scale, false)
}

func baselineIn(face font.Face, y, h int) int {
	m := face.Metrics()
	asc, desc := m.Ascent.Ceil(), m.Descent.Ceil()
	return y + (h-asc-desc)/2 + asc
}

func markColumn(theme Theme, scale float64) int {
	return int(float64(theme.MenuRowHeightDp) * scale * 3 / 4)
}

func splitLabel(label string) (string, string) {
	if i := strings.IndexByte(label, '\t'); i >= 0 {
		return label[:i], label[i+1:]
	}
	return label, ""
}
