//go:build !tinygo

package hal

import (
	"fmt"
	"io"
	"os"
	"time"

	"algcalc/fifo"
	"algcalc/keypad"
)

// Config configures the host backend.
type Config struct {
	// ChannelDepth is the capacity of the scanner-to-loop queue.
	ChannelDepth int
	// ScanInterval is the pause between matrix passes.
	ScanInterval time.Duration
	// Hold is how long a desktop key press keeps its switch closed.
	Hold time.Duration

	// GPIO selects real lines. Nil scans a virtual matrix fed by the
	// desktop frontends.
	GPIO *GPIOConfig

	System SystemConfig

	// Bindings maps frontend input names to calculator keys. Nil uses
	// DefaultBindings.
	Bindings map[string]keypad.Key

	// Log receives log lines. Nil means stdout.
	Log   io.Writer
	Color bool
}

// GPIOConfig names the host GPIO lines wired to the key matrix.
type GPIOConfig struct {
	Rows []string
	Cols []string
}

// SystemConfig selects where telemetry comes from.
type SystemConfig struct {
	// Source is "sim" or "host".
	Source string
	Sim    SimSystemConfig
}

type hostHAL struct {
	logger *hostLogger
	disp   *hostDisplay
	kbd    *keypad.Driver
	sys    System
	matrix *Matrix
	binds  map[string]keypad.Key
	hold   time.Duration
}

// New returns a host HAL implementation with its scanner already running.
func New(cfg Config) (HAL, error) {
	h, err := newHost(cfg)
	if err != nil {
		return nil, err
	}
	return h, nil
}

func newHost(cfg Config) (*hostHAL, error) {
	w := cfg.Log
	if w == nil {
		w = os.Stdout
	}
	logger := newHostLogger(w, cfg.Color)

	if cfg.ChannelDepth <= 0 {
		cfg.ChannelDepth = 16
	}
	if cfg.Hold <= 0 {
		cfg.Hold = 2 * keypad.DebounceWindow
	}
	binds := cfg.Bindings
	if binds == nil {
		binds = DefaultBindings()
	}

	h := &hostHAL{
		logger: logger,
		disp:   newHostDisplay(logger),
		binds:  binds,
		hold:   cfg.Hold,
	}

	var rows, cols []GPIOPin
	if cfg.GPIO != nil {
		var err error
		rows, cols, err = openGPIO(*cfg.GPIO)
		if err != nil {
			return nil, fmt.Errorf("keypad gpio: %w", err)
		}
	} else {
		h.matrix = NewMatrix()
		rows, cols = h.matrix.Rows(), h.matrix.Cols()
	}
	outs, ins, err := KeypadLines(rows, cols)
	if err != nil {
		return nil, fmt.Errorf("keypad lines: %w", err)
	}

	switch cfg.System.Source {
	case "", "sim":
		h.sys = newSimSystem(cfg.System.Sim, time.Now)
	case "host":
		sys, err := newHostSystem()
		if err != nil {
			return nil, fmt.Errorf("system: %w", err)
		}
		h.sys = sys
	default:
		return nil, fmt.Errorf("system: unknown source %q", cfg.System.Source)
	}

	ch := fifo.NewChan[keypad.Message](cfg.ChannelDepth)
	sc, err := keypad.NewScanner(outs, ins, ch)
	if err != nil {
		return nil, err
	}
	sc.Interval = cfg.ScanInterval
	startScanner(sc, logger)

	h.kbd = keypad.NewDriver(ch, logger)
	return h, nil
}

func (h *hostHAL) Logger() Logger   { return h.logger }
func (h *hostHAL) Display() Display { return h.disp }
func (h *hostHAL) Keypad() Keypad   { return h.kbd }
func (h *hostHAL) System() System   { return h.sys }

// cell resolves a frontend input name to its matrix position.
func (h *hostHAL) cell(name string) (keypad.Coord, bool) {
	k, ok := h.binds[name]
	if !ok || h.matrix == nil {
		return keypad.Coord{}, false
	}
	return keypad.DefaultLayout.Find(k)
}

// input taps the key bound to a frontend input name, for frontends that
// see no key releases. It reports whether a key was tapped.
func (h *hostHAL) input(name string) bool {
	c, ok := h.cell(name)
	if ok {
		h.matrix.Tap(c, h.hold)
	}
	return ok
}

// setKey presses or releases the key bound to name, for frontends that
// report both edges.
func (h *hostHAL) setKey(name string, down bool) bool {
	c, ok := h.cell(name)
	if !ok {
		return false
	}
	if down {
		h.matrix.Press(c)
	} else {
		h.matrix.Release(c)
	}
	return true
}

// DefaultBindings maps desktop keys onto the calculator keypad.
func DefaultBindings() map[string]keypad.Key {
	b := map[string]keypad.Key{
		"+":         keypad.Add,
		"-":         keypad.Sub,
		"*":         keypad.Mul,
		"x":         keypad.Mul,
		"/":         keypad.Div,
		"=":         keypad.Eq,
		"enter":     keypad.Eq,
		".":         keypad.Dot,
		",":         keypad.Dot,
		"backspace": keypad.Backspace,
		"delete":    keypad.Backspace,
		"left":      keypad.Left,
		"right":     keypad.Right,
		"f":         keypad.Fn,
		"escape":    keypad.Fn,
	}
	for d := 0; d <= 9; d++ {
		b[fmt.Sprint(d)] = keypad.D0 + keypad.Key(d)
	}
	return b
}
