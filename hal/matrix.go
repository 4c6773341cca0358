package hal

import (
	"fmt"
	"sync"
	"time"

	"algcalc/keypad"
)

// Matrix is a virtual key matrix. Row pins are outputs, column pins
// read high while a pressed key sits on a driven row, the way the
// diode-less passive matrix on the real board behaves.
//
// Press and Release may be called from any goroutine.
type Matrix struct {
	mu      sync.Mutex
	driven  [keypad.Rows]bool
	pressed [keypad.Rows][keypad.Cols]bool
	// free is when the cell can take its next tap.
	free [keypad.Rows][keypad.Cols]time.Time

	rows []GPIOPin
	cols []GPIOPin
}

// NewMatrix returns a matrix with every key released.
func NewMatrix() *Matrix {
	m := &Matrix{}
	for r := 0; r < keypad.Rows; r++ {
		m.rows = append(m.rows, &matrixRow{m: m, r: r, name: fmt.Sprintf("ROW%d", r)})
	}
	for c := 0; c < keypad.Cols; c++ {
		m.cols = append(m.cols, &matrixCol{m: m, c: c, name: fmt.Sprintf("COL%d", c)})
	}
	return m
}

// Rows returns the row pins.
func (m *Matrix) Rows() []GPIOPin { return m.rows }

// Cols returns the column pins.
func (m *Matrix) Cols() []GPIOPin { return m.cols }

// Press closes the switch at c.
func (m *Matrix) Press(c keypad.Coord) { m.set(c, true) }

// Release opens the switch at c.
func (m *Matrix) Release(c keypad.Coord) { m.set(c, false) }

// tapGap is the release-to-press spacing between queued taps. It
// clears the scanner's debounce window with a margin for the scan
// interval.
const tapGap = keypad.DebounceWindow + 10*time.Millisecond

// Tap presses c for hold. A tap on a cell that is still held, or was
// released less than tapGap ago, starts once that gap has passed, so
// every tap reaches the scanner as its own press.
func (m *Matrix) Tap(c keypad.Coord, hold time.Duration) {
	if !c.Valid() {
		return
	}
	now := time.Now()
	m.mu.Lock()
	start := now
	if next := m.free[c.Row][c.Col]; next.After(start) {
		start = next
	}
	m.free[c.Row][c.Col] = start.Add(hold + tapGap)
	m.mu.Unlock()

	press := func() {
		m.Press(c)
		time.AfterFunc(hold, func() { m.Release(c) })
	}
	if start.Equal(now) {
		press()
		return
	}
	time.AfterFunc(start.Sub(now), press)
}

func (m *Matrix) set(c keypad.Coord, down bool) {
	if !c.Valid() {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pressed[c.Row][c.Col] = down
}

type matrixRow struct {
	m    *Matrix
	r    int
	name string

	mu   sync.Mutex
	mode GPIOMode
	set  bool
}

func (p *matrixRow) Name() string   { return p.name }
func (p *matrixRow) Caps() GPIOCaps { return GPIOCapOutput }

func (p *matrixRow) Configure(mode GPIOMode, pull GPIOPull) error {
	if err := checkConfig(p.name, p.Caps(), mode, pull); err != nil {
		return err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.mode = mode
	p.set = true
	return nil
}

func (p *matrixRow) Read() (bool, error) {
	p.m.mu.Lock()
	defer p.m.mu.Unlock()
	return p.m.driven[p.r], nil
}

func (p *matrixRow) Write(level bool) error {
	p.mu.Lock()
	ok := p.set && p.mode == GPIOModeOutput
	p.mu.Unlock()
	if !ok {
		return fmt.Errorf("gpio: pin %s: not in output mode", p.name)
	}
	p.m.mu.Lock()
	defer p.m.mu.Unlock()
	p.m.driven[p.r] = level
	return nil
}

type matrixCol struct {
	m    *Matrix
	c    int
	name string

	mu  sync.Mutex
	set bool
}

func (p *matrixCol) Name() string   { return p.name }
func (p *matrixCol) Caps() GPIOCaps { return GPIOCapInput | GPIOCapPullDown }

func (p *matrixCol) Configure(mode GPIOMode, pull GPIOPull) error {
	if err := checkConfig(p.name, p.Caps(), mode, pull); err != nil {
		return err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.set = true
	return nil
}

func (p *matrixCol) Read() (bool, error) {
	p.mu.Lock()
	ok := p.set
	p.mu.Unlock()
	if !ok {
		return false, fmt.Errorf("gpio: pin %s: not configured", p.name)
	}

	p.m.mu.Lock()
	defer p.m.mu.Unlock()
	for r := 0; r < keypad.Rows; r++ {
		if p.m.driven[r] && p.m.pressed[r][p.c] {
			return true, nil
		}
	}
	return false, nil
}

func (p *matrixCol) Write(level bool) error {
	_ = level
	return fmt.Errorf("gpio: pin %s: output unsupported", p.name)
}
