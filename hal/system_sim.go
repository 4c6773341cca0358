package hal

import "time"

// Simulated allocation rate in bytes per second.
const simMemoryDrift = 512

// SimSystemConfig shapes the simulated telemetry.
type SimSystemConfig struct {
	// MemoryTotal is the reported RAM size in bytes.
	MemoryTotal uint64
	// BatteryStart is the charge at start-up in percent.
	BatteryStart uint8
	// BatteryDrain is the discharge rate in percent per hour.
	BatteryDrain uint8
}

// simSystem synthesizes memory use inside a fixed total and a battery
// discharging linearly from its start level.
type simSystem struct {
	cfg   SimSystemConfig
	start time.Time
	now   func() time.Time
}

func newSimSystem(cfg SimSystemConfig, now func() time.Time) *simSystem {
	if cfg.MemoryTotal == 0 {
		cfg.MemoryTotal = 256 * 1024
	}
	if cfg.BatteryStart > 100 {
		cfg.BatteryStart = 100
	}
	return &simSystem{cfg: cfg, start: now(), now: now}
}

func (s *simSystem) MemoryTotal() uint64 { return s.cfg.MemoryTotal }

// MemoryUsed reports a third of the total plus a sawtooth that climbs
// simMemoryDrift bytes per second through a quarter of the total.
func (s *simSystem) MemoryUsed() uint64 {
	total := s.cfg.MemoryTotal
	base := total / 3
	span := total / 4
	if span == 0 {
		return clampMemory(base, total)
	}
	elapsed := s.now().Sub(s.start)
	if elapsed < 0 {
		elapsed = 0
	}
	drift := uint64(elapsed/time.Millisecond) * simMemoryDrift / 1000 % span
	return clampMemory(base+drift, total)
}

func (s *simSystem) BatteryLevel() uint8 {
	elapsed := s.now().Sub(s.start)
	if elapsed < 0 {
		elapsed = 0
	}
	drained := uint64(elapsed) * uint64(s.cfg.BatteryDrain) / uint64(time.Hour)
	if drained >= uint64(s.cfg.BatteryStart) {
		return 0
	}
	return s.cfg.BatteryStart - uint8(drained)
}
