//go:build !tinygo && !linux

package hal

import "fmt"

type hostSystem struct{}

func newHostSystem() (*hostSystem, error) {
	return nil, fmt.Errorf("host telemetry: %w", ErrNotImplemented)
}

func (s *hostSystem) MemoryUsed() uint64  { return 0 }
func (s *hostSystem) MemoryTotal() uint64 { return 0 }
func (s *hostSystem) BatteryLevel() uint8 { return 0 }
