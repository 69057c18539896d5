package platform

import (
	"log"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// fontBank lazily builds and caches faces for the chrome the backends draw
// themselves: menus, the editor overlay, tooltips. Sizes are pixel heights;
// faces are rendered at 72 DPI so points and pixels coincide.
type fontBank struct {
	mu         sync.Mutex
	regular    *opentype.Font
	mono       *opentype.Font
	faces      map[faceKey]font.Face
	parsedOnce sync.Once
}

type faceKey struct {
	sizePx int
	mono   bool
}

var fonts fontBank

func (b *fontBank) parse() {
	b.parsedOnce.Do(func() {
		var err error
		b.regular, err = opentype.Parse(goregular.TTF)
		if err != nil {
			log.Printf("font: parse regular: %v", err)
		}
		b.mono, err = opentype.Parse(gomono.TTF)
		if err != nil {
			log.Printf("font: parse mono: %v", err)
		}
		b.faces = map[faceKey]font.Face{}
	})
}

// FontFace returns a cached face of the requested pixel height. Falls back
// to the fixed 7x13 face if the embedded fonts fail to parse.
func FontFace(sizePx float64, mono bool) font.Face {
	b := &fonts
	b.parse()
	b.mu.Lock()
	defer b.mu.Unlock()

	key := faceKey{sizePx: int(sizePx + 0.5), mono: mono}
	if key.sizePx < 6 {
		key.sizePx = 6
	}
	if f, ok := b.faces[key]; ok {
		return f
	}
	src := b.regular
	if mono {
		src = b.mono
	}
	if src == nil {
		return basicfont.Face7x13
	}
	f, err := opentype.NewFace(src, &opentype.FaceOptions{
		Size:    float64(key.sizePx),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		log.Printf("font: face %dpx: %v", key.sizePx, err)
		return basicfont.Face7x13
	}
	b.faces[key] = f
	return f
}

// MeasureString reports the advance width of s in whole pixels, rounded.
func MeasureString(face font.Face, s string) int {
	adv := font.MeasureString(face, s)
	return (int(adv) + 32) >> 6
}
