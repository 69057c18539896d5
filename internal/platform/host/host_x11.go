//go:build x11

package host

import (
	"glshell/internal/platform"
	"glshell/internal/platform/x11"
)

func New() (platform.Backend, error) {
	return x11.New()
}
