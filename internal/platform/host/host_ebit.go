//go:build ebit

package host

import (
	"glshell/internal/platform"
	"glshell/internal/platform/ebit"
)

func New() (platform.Backend, error) {
	return ebit.New(), nil
}
