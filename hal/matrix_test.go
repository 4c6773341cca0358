package hal

import (
	"errors"
	"strings"
	"testing"
	"time"

	"algcalc/fifo"
	"algcalc/keypad"
)

func TestMatrixColumnFollowsDrivenRow(t *testing.T) {
	m := NewMatrix()
	outs, ins, err := KeypadLines(m.Rows(), m.Cols())
	if err != nil {
		t.Fatalf("KeypadLines: %v", err)
	}
	m.Press(keypad.Coord{Row: 2, Col: 3})

	for r := range outs {
		if err := outs[r].Write(true); err != nil {
			t.Fatal(err)
		}
		for c := range ins {
			got, err := ins[c].Read()
			if err != nil {
				t.Fatal(err)
			}
			want := r == 2 && c == 3
			if got != want {
				t.Fatalf("row %d col %d = %v, want %v", r, c, got, want)
			}
		}
		if err := outs[r].Write(false); err != nil {
			t.Fatal(err)
		}
	}

	m.Release(keypad.Coord{Row: 2, Col: 3})
	_ = outs[2].Write(true)
	if got, _ := ins[3].Read(); got {
		t.Fatalf("released key still reads high")
	}
}

func TestMatrixPinsRejectMisuse(t *testing.T) {
	m := NewMatrix()
	if err := m.Rows()[0].Write(true); err == nil {
		t.Fatalf("unconfigured row accepted a write")
	}
	if _, err := m.Cols()[0].Read(); err == nil {
		t.Fatalf("unconfigured column accepted a read")
	}
	if err := m.Rows()[0].Configure(GPIOModeInput, GPIOPullNone); err == nil {
		t.Fatalf("row accepted input mode")
	}
	if err := m.Cols()[0].Configure(GPIOModeInput, GPIOPullUp); err == nil {
		t.Fatalf("column accepted pull-up")
	}
	if err := m.Cols()[0].Write(true); err == nil {
		t.Fatalf("column accepted a write")
	}
}

func TestKeypadLinesCounts(t *testing.T) {
	m := NewMatrix()
	outs, ins, err := KeypadLines(m.Rows()[:3], m.Cols())
	if err != nil {
		t.Fatalf("KeypadLines: %v", err)
	}
	if _, err := keypad.NewScanner(outs, ins, fifo.NewChan[keypad.Message](1)); err == nil {
		t.Fatalf("scanner accepted three rows")
	}
}

// The scanner, channel and driver running on their own goroutine over
// the virtual matrix, as the simulator wires them.
func TestMatrixScannerDriver(t *testing.T) {
	m := NewMatrix()
	outs, ins, err := KeypadLines(m.Rows(), m.Cols())
	if err != nil {
		t.Fatalf("KeypadLines: %v", err)
	}
	ch := fifo.NewChan[keypad.Message](4)
	sc, err := keypad.NewScanner(outs, ins, ch)
	if err != nil {
		t.Fatalf("NewScanner: %v", err)
	}
	sc.Interval = time.Millisecond
	log := &captureLog{}
	startScanner(sc, log)
	drv := keypad.NewDriver(ch, nil)

	// Let the start-up debounce window pass.
	time.Sleep(2 * keypad.DebounceWindow)

	for _, want := range []keypad.Key{keypad.D2, keypad.D3, keypad.D2} {
		c, _ := keypad.DefaultLayout.Find(want)
		m.Press(c)
		k, ok := drv.ReadKeyTimeout(time.Second)
		m.Release(c)
		if !ok || k != want {
			t.Fatalf("read %v, %v; want %v", k, ok, want)
		}
		time.Sleep(2 * keypad.DebounceWindow)
	}
	if drv.WaitForKey(0) {
		t.Fatalf("held keys produced extra events")
	}
}

type captureLog struct {
	lines chan string
}

func (l *captureLog) WriteLineString(s string) {
	if l.lines != nil {
		l.lines <- s
	}
}

func (l *captureLog) WriteLineBytes(b []byte) { l.WriteLineString(string(b)) }

type brokenLine struct{}

func (brokenLine) Write(bool) error { return errors.New("line stuck") }

func TestScannerFailureIsLogged(t *testing.T) {
	var outs []keypad.OutputLine
	for i := 0; i < keypad.Rows; i++ {
		outs = append(outs, brokenLine{})
	}
	_, ins, err := KeypadLines(nil, NewMatrix().Cols())
	if err != nil {
		t.Fatal(err)
	}
	sc, err := keypad.NewScanner(outs, ins, fifo.NewChan[keypad.Message](1))
	if err != nil {
		t.Fatal(err)
	}
	log := &captureLog{lines: make(chan string, 1)}
	startScanner(sc, log)

	select {
	case line := <-log.lines:
		if !strings.HasPrefix(line, "scan: fatal: ") || !strings.Contains(line, "line stuck") {
			t.Fatalf("log = %q", line)
		}
	case <-time.After(time.Second):
		t.Fatalf("scanner failure not reported")
	}
}

func TestRepeatedTapsReachScannerSeparately(t *testing.T) {
	m := NewMatrix()
	outs, ins, err := KeypadLines(m.Rows(), m.Cols())
	if err != nil {
		t.Fatalf("KeypadLines: %v", err)
	}
	ch := fifo.NewChan[keypad.Message](4)
	sc, err := keypad.NewScanner(outs, ins, ch)
	if err != nil {
		t.Fatalf("NewScanner: %v", err)
	}
	sc.Interval = time.Millisecond
	startScanner(sc, &captureLog{})
	drv := keypad.NewDriver(ch, nil)
	time.Sleep(2 * keypad.DebounceWindow)

	c := keypad.Coord{Row: 2, Col: 0}
	m.Tap(c, 120*time.Millisecond)
	time.Sleep(90 * time.Millisecond)
	m.Tap(c, 120*time.Millisecond)

	for i := 0; i < 2; i++ {
		k, ok := drv.ReadKeyTimeout(time.Second)
		if !ok || k != keypad.D1 {
			t.Fatalf("tap %d: read %v, %v; want D1", i, k, ok)
		}
	}
	if drv.WaitForKey(200 * time.Millisecond) {
		t.Fatalf("two taps produced a third event")
	}
}

func TestTapQueuesBehindHeldCell(t *testing.T) {
	m := NewMatrix()
	c := keypad.Coord{Row: 0, Col: 4}
	m.Tap(c, 40*time.Millisecond)
	m.Tap(c, 40*time.Millisecond)

	m.mu.Lock()
	gap := m.free[c.Row][c.Col].Sub(time.Now())
	down := m.pressed[c.Row][c.Col]
	m.mu.Unlock()
	if !down {
		t.Fatalf("first tap not pressed immediately")
	}
	// Two holds plus two gaps from now, less scheduling slack.
	if want := 2*(40*time.Millisecond+tapGap) - 20*time.Millisecond; gap < want {
		t.Fatalf("second tap scheduled too early: free in %v, want >= %v", gap, want)
	}

	time.Sleep(60 * time.Millisecond)
	m.mu.Lock()
	down = m.pressed[c.Row][c.Col]
	m.mu.Unlock()
	if down {
		t.Fatalf("second tap pressed before the gap elapsed")
	}
}
