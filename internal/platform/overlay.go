package platform

import "golang.org/x/image/font"

// EditorOptions is what ShowEditor receives: the text baseline position in
// content coordinates, the font height in pixels, a minimum width, whether
// to use the monospaced face, and the seed text.
type EditorOptions struct {
	X, Y       float64
	FontHeight float64
	MinWidth   float64
	Monospace  bool
	Text       string
}

// PlaceEditor computes the overlay rectangle for an editor. (X, Y) names the
// baseline of the first character, so the box top sits one ascent above Y.
// The width tracks the measured extent of the text plus one trailing space,
// never dropping below MinWidth.
func PlaceEditor(opts EditorOptions, text string) Rect {
	face := FontFace(opts.FontHeight, opts.Monospace)
	return placeEditorFace(face, opts, text)
}

func placeEditorFace(face font.Face, opts EditorOptions, text string) Rect {
	m := face.Metrics()
	ascent := m.Ascent.Ceil()
	descent := m.Descent.Ceil()
	w := MeasureString(face, text+" ")
	if w < int(opts.MinWidth) {
		w = int(opts.MinWidth)
	}
	return Rect{
		X: int(opts.X),
		Y: int(opts.Y) - ascent,
		W: w,
		H: ascent + descent,
	}
}
