//go:build !tinygo && linux

package hal

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/sys/unix"
)

// hostSystem reports the machine the simulator runs on.
type hostSystem struct {
	supplies []string
}

func newHostSystem() (*hostSystem, error) {
	var info unix.Sysinfo_t
	if err := unix.Sysinfo(&info); err != nil {
		return nil, err
	}
	supplies, _ := filepath.Glob("/sys/class/power_supply/BAT*/capacity")
	return &hostSystem{supplies: supplies}, nil
}

func (s *hostSystem) sysinfo() (used, total uint64) {
	var info unix.Sysinfo_t
	if err := unix.Sysinfo(&info); err != nil {
		return 0, 0
	}
	unit := uint64(info.Unit)
	total = uint64(info.Totalram) * unit
	free := (uint64(info.Freeram) + uint64(info.Bufferram)) * unit
	if free > total {
		free = total
	}
	return total - free, total
}

func (s *hostSystem) MemoryUsed() uint64 {
	used, total := s.sysinfo()
	return clampMemory(used, total)
}

func (s *hostSystem) MemoryTotal() uint64 {
	_, total := s.sysinfo()
	return total
}

// BatteryLevel reads the first battery the kernel exposes. Machines
// without one report a full battery.
func (s *hostSystem) BatteryLevel() uint8 {
	for _, p := range s.supplies {
		b, err := os.ReadFile(p)
		if err != nil {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(string(b)))
		if err != nil {
			continue
		}
		if n < 0 {
			n = 0
		}
		if n > 100 {
			n = 100
		}
		return uint8(n)
	}
	return 100
}
