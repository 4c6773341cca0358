// internal/config/normalize.go
package config

import "algcalc/keypad"

// Script timing floors. Presses closer than the debounce window would
// be swallowed by the scanner.
const (
	minGapMs  = 80
	minHoldMs = 20
)

// Normalize applies post-validation normalization.
// It is allowed to mutate configuration.
// It MUST be called only after Validate().
func Normalize(cfg *Config) {
	if cfg == nil {
		return
	}

	if floor := int(keypad.DebounceWindow.Milliseconds()) + 10; cfg.Terminal.HoldMs < floor {
		cfg.Terminal.HoldMs = floor
	}

	for i := range cfg.Script {
		st := &cfg.Script[i]
		if st.GapMs < minGapMs {
			st.GapMs = minGapMs
		}
		if st.HoldMs < minHoldMs {
			st.HoldMs = minHoldMs
		}
	}
}

// Keys returns the bindings with key names resolved. It MUST be called
// only after Validate().
func (c *Config) Keys() map[string]keypad.Key {
	out := make(map[string]keypad.Key, len(c.Bindings))
	for input, name := range c.Bindings {
		k, _ := keypad.ParseKey(name)
		out[input] = k
	}
	return out
}
