package hal

import (
	"testing"
	"time"
)

func TestBatteryPercent(t *testing.T) {
	tests := []struct {
		mv   uint32
		want uint8
	}{
		{0, 0},
		{3000, 0},
		{3600, 50},
		{4200, 100},
		{5000, 100},
	}
	for _, tt := range tests {
		if got := batteryPercent(tt.mv); got != tt.want {
			t.Fatalf("batteryPercent(%d) = %d, want %d", tt.mv, got, tt.want)
		}
	}
}

func TestSimSystemInvariants(t *testing.T) {
	now := time.Unix(0, 0)
	s := newSimSystem(SimSystemConfig{MemoryTotal: 1024, BatteryStart: 90, BatteryDrain: 10}, func() time.Time { return now })

	for i := 0; i < 20; i++ {
		used, total := s.MemoryUsed(), s.MemoryTotal()
		if used > total {
			t.Fatalf("used %d > total %d", used, total)
		}
		if b := s.BatteryLevel(); b > 100 {
			t.Fatalf("battery %d", b)
		}
		now = now.Add(time.Hour)
	}
	if b := s.BatteryLevel(); b != 0 {
		t.Fatalf("battery after 20h = %d, want 0", b)
	}
}

func TestSimSystemDrain(t *testing.T) {
	now := time.Unix(0, 0)
	s := newSimSystem(SimSystemConfig{BatteryStart: 250, BatteryDrain: 6}, func() time.Time { return now })
	if s.MemoryTotal() != 256*1024 {
		t.Fatalf("default total = %d", s.MemoryTotal())
	}
	if b := s.BatteryLevel(); b != 100 {
		t.Fatalf("start level = %d, want clamp to 100", b)
	}
	now = now.Add(30 * time.Minute)
	if b := s.BatteryLevel(); b != 97 {
		t.Fatalf("level after 30m = %d, want 97", b)
	}
	now = now.Add(-time.Hour)
	if b := s.BatteryLevel(); b != 100 {
		t.Fatalf("level before start = %d, want 100", b)
	}
}

func TestSimSystemMemoryMoves(t *testing.T) {
	now := time.Unix(0, 0)
	s := newSimSystem(SimSystemConfig{BatteryStart: 100}, func() time.Time { return now })
	total := s.MemoryTotal()

	seen := make(map[uint64]bool)
	for i := 0; i < 10; i++ {
		used := s.MemoryUsed()
		if used == 0 || used >= total {
			t.Fatalf("used = %d of %d, want strictly inside", used, total)
		}
		seen[used] = true
		now = now.Add(time.Second)
	}
	if len(seen) < 2 {
		t.Fatalf("memory reading constant at %v", seen)
	}

	now = time.Unix(10, 0)
	if got, want := s.MemoryUsed(), total/3+10*simMemoryDrift; got != want {
		t.Fatalf("used after 10s = %d, want %d", got, want)
	}
	// The sawtooth wraps inside its quarter of the total.
	now = time.Unix(0, 0).Add(24 * time.Hour)
	if got := s.MemoryUsed(); got < total/3 || got >= total/3+total/4 {
		t.Fatalf("used after a day = %d out of band", got)
	}
}
