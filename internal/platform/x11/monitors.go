package x11

import (
	"github.com/BurntSushi/xgb/randr"

	"glshell/internal/platform"
)

// monitors enumerates active CRTCs via XRandR. Falls back to one rectangle
// covering the whole X screen when RandR is unavailable.
func (b *Backend) monitors() []platform.Rect {
	var out []platform.Rect
	resources, err := randr.GetScreenResourcesCurrent(b.xu.Conn(), b.root).Reply()
	if err == nil {
		for _, crtc := range resources.Crtcs {
			info, err := randr.GetCrtcInfo(b.xu.Conn(), crtc, resources.ConfigTimestamp).Reply()
			if err != nil {
				continue
			}
			if info.Width == 0 || info.Height == 0 || len(info.Outputs) == 0 {
				continue
			}
			out = append(out, platform.Rect{
				X: int(info.X),
				Y: int(info.Y),
				W: int(info.Width),
				H: int(info.Height),
			})
		}
	}
	if len(out) == 0 {
		screen := b.xu.Screen()
		out = append(out, platform.Rect{
			W: int(screen.WidthInPixels),
			H: int(screen.HeightInPixels),
		})
	}
	return out
}

// pixelDensity derives DPI from the screen's physical size; 96 when the
// server does not report one.
func (b *Backend) pixelDensity() float64 {
	screen := b.xu.Screen()
	if screen.WidthInMillimeters == 0 {
		return 96.0
	}
	return float64(screen.WidthInPixels) / float64(screen.WidthInMillimeters) * 25.4
}
