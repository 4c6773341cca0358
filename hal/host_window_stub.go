//go:build !tinygo && !cgo

package hal

import "errors"

// WindowConfig controls the desktop window.
type WindowConfig struct {
	Scale  int
	TPS    int
	Invert bool
}

func RunWindow(_ Config, _ WindowConfig, _ func(HAL) error) error {
	return errors.New("window mode requires cgo (build/run with CGO_ENABLED=1)")
}
