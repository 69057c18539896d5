//go:build !x11 && !ebit

package host

import (
	"glshell/internal/platform"
	"glshell/internal/platform/headless"
)

// New links the headless backend: the default for builds without a display
// stack, and the one the tests run against.
func New() (platform.Backend, error) {
	return headless.New(), nil
}
