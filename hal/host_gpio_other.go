//go:build !tinygo && !linux

package hal

import "fmt"

func openGPIO(cfg GPIOConfig) (rows, cols []GPIOPin, err error) {
	return nil, nil, fmt.Errorf("gpio lines: %w", ErrNotImplemented)
}
