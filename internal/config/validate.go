// internal/config/validate.go
package config

import (
	"fmt"

	"algcalc/keypad"
)

// Validate checks configuration correctness.
// It performs declarative validation only.
// It MUST NOT mutate configuration.
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config: nil configuration")
	}

	// ------------------------------------------------------------
	// WINDOW
	// ------------------------------------------------------------

	if cfg.Window.Scale < 1 || cfg.Window.Scale > 16 {
		return fmt.Errorf("window: scale %d out of range 1..16", cfg.Window.Scale)
	}
	if cfg.Window.TPS < 1 || cfg.Window.TPS > 1000 {
		return fmt.Errorf("window: tps %d out of range 1..1000", cfg.Window.TPS)
	}

	// ------------------------------------------------------------
	// CHANNEL / SCANNER
	// ------------------------------------------------------------

	if cfg.Channel.Depth < 1 || cfg.Channel.Depth > 1024 {
		return fmt.Errorf("channel: depth %d out of range 1..1024", cfg.Channel.Depth)
	}
	if cfg.Scanner.IntervalMs < 0 {
		return fmt.Errorf("scanner: interval_ms must not be negative")
	}
	// A pass slower than the debounce window would merge separate presses.
	if cfg.Scanner.IntervalMs >= int(keypad.DebounceWindow.Milliseconds()) {
		return fmt.Errorf("scanner: interval_ms %d must be below the %v debounce window",
			cfg.Scanner.IntervalMs, keypad.DebounceWindow)
	}

	// ------------------------------------------------------------
	// SYSTEM
	// ------------------------------------------------------------

	switch cfg.System.Source {
	case "sim", "host":
	default:
		return fmt.Errorf("system: unknown source %q (want sim or host)", cfg.System.Source)
	}
	if cfg.System.Source == "sim" && cfg.System.MemoryTotal == 0 {
		return fmt.Errorf("system: memory_total must be positive")
	}
	if cfg.System.BatteryStart > 100 {
		return fmt.Errorf("system: battery_start %d exceeds 100", cfg.System.BatteryStart)
	}

	// ------------------------------------------------------------
	// TERMINAL
	// ------------------------------------------------------------

	if cfg.Terminal.HoldMs < 0 {
		return fmt.Errorf("terminal: hold_ms must not be negative")
	}

	// ------------------------------------------------------------
	// GPIO (OPT-IN)
	// ------------------------------------------------------------

	if g := cfg.GPIO; g != nil {
		if len(g.Rows) != keypad.Rows {
			return fmt.Errorf("gpio: %d rows, want %d", len(g.Rows), keypad.Rows)
		}
		if len(g.Cols) != keypad.Cols {
			return fmt.Errorf("gpio: %d cols, want %d", len(g.Cols), keypad.Cols)
		}
		seen := make(map[string]bool)
		for _, name := range append(append([]string{}, g.Rows...), g.Cols...) {
			if name == "" {
				return fmt.Errorf("gpio: empty line name")
			}
			if seen[name] {
				return fmt.Errorf("gpio: line %q used twice", name)
			}
			seen[name] = true
		}
	}

	// ------------------------------------------------------------
	// BINDINGS / SCRIPT
	// ------------------------------------------------------------

	for input, name := range cfg.Bindings {
		if input == "" {
			return fmt.Errorf("bindings: empty input name")
		}
		if _, err := keypad.ParseKey(name); err != nil {
			return fmt.Errorf("bindings: input %q: %w", input, err)
		}
	}
	for i, st := range cfg.Script {
		if _, err := keypad.ParseKey(st.Key); err != nil {
			return fmt.Errorf("script step %d: %w", i, err)
		}
		if st.GapMs < 0 || st.HoldMs < 0 {
			return fmt.Errorf("script step %d: negative timing", i)
		}
	}

	return nil
}
