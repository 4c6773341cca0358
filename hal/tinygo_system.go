//go:build tinygo && baremetal

package hal

import (
	"machine"
	"runtime"
)

// RP2040 SRAM.
const picoRAMBytes = 256 * 1024

type picoSystem struct {
	vsys machine.ADC
}

func newPicoSystem() *picoSystem {
	machine.InitADC()
	s := &picoSystem{vsys: machine.ADC{Pin: machine.ADC3}}
	s.vsys.Configure(machine.ADCConfig{})
	return s
}

func (s *picoSystem) MemoryTotal() uint64 { return picoRAMBytes }

func (s *picoSystem) MemoryUsed() uint64 {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	return clampMemory(ms.HeapInuse, picoRAMBytes)
}

// BatteryLevel reads VSYS through the on-board 1:3 divider.
func (s *picoSystem) BatteryLevel() uint8 {
	raw := uint32(s.vsys.Get())
	mv := raw * 3300 * 3 / 0xFFFF
	return batteryPercent(mv)
}
