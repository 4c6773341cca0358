package keypad

import (
	"errors"
	"testing"
	"time"
)

// fakeMatrix models a passive key matrix: a column reads high when a
// pressed cell in that column sits on a driven row.
type fakeMatrix struct {
	driven  [Rows]bool
	pressed [Rows][Cols]bool
	failRow int
}

type fakeRow struct {
	m *fakeMatrix
	r int
}

func (l fakeRow) Write(level bool) error {
	if l.m.failRow == l.r {
		return errors.New("line stuck")
	}
	l.m.driven[l.r] = level
	return nil
}

type fakeCol struct {
	m *fakeMatrix
	c int
}

func (l fakeCol) Read() (bool, error) {
	for r := 0; r < Rows; r++ {
		if l.m.driven[r] && l.m.pressed[r][l.c] {
			return true, nil
		}
	}
	return false, nil
}

func (m *fakeMatrix) lines() ([]OutputLine, []InputLine) {
	var rows []OutputLine
	for r := 0; r < Rows; r++ {
		rows = append(rows, fakeRow{m: m, r: r})
	}
	var cols []InputLine
	for c := 0; c < Cols; c++ {
		cols = append(cols, fakeCol{m: m, c: c})
	}
	return rows, cols
}

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

type sliceSender struct{ msgs []Message }

func (s *sliceSender) Send(m Message) { s.msgs = append(s.msgs, m) }

func newTestScanner(t *testing.T) (*Scanner, *fakeMatrix, *fakeClock, *sliceSender) {
	t.Helper()
	m := &fakeMatrix{failRow: -1}
	clk := &fakeClock{t: time.Unix(0, 0)}
	out := &sliceSender{}
	rows, cols := m.lines()
	s, err := NewScannerWithClock(rows, cols, out, clk.now)
	if err != nil {
		t.Fatalf("NewScannerWithClock: %v", err)
	}
	return s, m, clk, out
}

func TestNewScannerLineCount(t *testing.T) {
	m := &fakeMatrix{failRow: -1}
	rows, cols := m.lines()
	if _, err := NewScanner(rows[:2], cols, &sliceSender{}); err == nil {
		t.Fatal("expected error for short row list")
	}
	if _, err := NewScanner(rows, cols[:1], &sliceSender{}); err == nil {
		t.Fatal("expected error for short column list")
	}
}

func TestScanIdle(t *testing.T) {
	s, m, clk, _ := newTestScanner(t)
	clk.advance(time.Second)
	if c, ok, err := s.Scan(); ok || err != nil {
		t.Fatalf("Scan() = %v, %v, %v on idle matrix", c, ok, err)
	}
	for r, d := range m.driven {
		if d {
			t.Fatalf("row %d left driven", r)
		}
	}
}

func TestScanPressDeassertsRow(t *testing.T) {
	s, m, clk, _ := newTestScanner(t)
	clk.advance(time.Second)
	m.pressed[2][1] = true

	c, ok, err := s.Scan()
	if err != nil || !ok || c != (Coord{Row: 2, Col: 1}) {
		t.Fatalf("Scan() = %v, %v, %v, want (2,1)", c, ok, err)
	}
	if m.driven[2] {
		t.Fatal("row 2 still driven after press")
	}
}

func TestDebounceWithinWindow(t *testing.T) {
	s, m, clk, out := newTestScanner(t)
	clk.advance(time.Second)

	m.pressed[3][1] = true
	if _, err := s.Step(); err != nil {
		t.Fatal(err)
	}
	m.pressed[3][1] = false
	clk.advance(10 * time.Millisecond)
	if _, err := s.Step(); err != nil {
		t.Fatal(err)
	}

	// Second contact 30ms after the first: a bounce.
	clk.advance(20 * time.Millisecond)
	m.pressed[3][1] = true
	if ok, err := s.Step(); ok || err != nil {
		t.Fatalf("Step() = %v, %v, want bounce", ok, err)
	}

	if len(out.msgs) != 1 {
		t.Fatalf("emitted %d events, want 1", len(out.msgs))
	}
	if out.msgs[0] != Encode(Coord{Row: 3, Col: 1}) {
		t.Fatalf("emitted 0x%x", uint32(out.msgs[0]))
	}
}

func TestDebounceOutsideWindow(t *testing.T) {
	s, m, clk, out := newTestScanner(t)
	clk.advance(time.Second)

	m.pressed[0][0] = true
	if _, err := s.Step(); err != nil {
		t.Fatal(err)
	}
	m.pressed[0][0] = false
	clk.advance(DebounceWindow + time.Millisecond)
	m.pressed[0][0] = true
	if _, err := s.Step(); err != nil {
		t.Fatal(err)
	}
	if len(out.msgs) != 2 {
		t.Fatalf("emitted %d events, want 2", len(out.msgs))
	}
}

func TestDebounceUpdatesOnBounce(t *testing.T) {
	s, m, clk, out := newTestScanner(t)
	clk.advance(time.Second)

	// Held key sampled every 40ms: each visit refreshes the timestamp,
	// so it never clears the window again.
	m.pressed[1][3] = true
	for i := 0; i < 5; i++ {
		if _, err := s.Step(); err != nil {
			t.Fatal(err)
		}
		clk.advance(40 * time.Millisecond)
	}
	if len(out.msgs) != 1 {
		t.Fatalf("emitted %d events for a held key, want 1", len(out.msgs))
	}
}

func TestDebounceFromStart(t *testing.T) {
	s, m, clk, _ := newTestScanner(t)
	m.pressed[0][0] = true
	clk.advance(10 * time.Millisecond)
	if _, ok, _ := s.Scan(); ok {
		t.Fatal("press inside the window after start was accepted")
	}
}

func TestScanOneEventPerPass(t *testing.T) {
	s, m, clk, _ := newTestScanner(t)
	clk.advance(time.Second)
	m.pressed[0][4] = true
	m.pressed[2][2] = true

	c, ok, _ := s.Scan()
	if !ok || c != (Coord{Row: 0, Col: 4}) {
		t.Fatalf("first pass = %v, %v", c, ok)
	}
	c, ok, _ = s.Scan()
	if !ok || c != (Coord{Row: 2, Col: 2}) {
		t.Fatalf("second pass = %v, %v", c, ok)
	}
}

func TestScanTimeout(t *testing.T) {
	s, _, clk, _ := newTestScanner(t)
	clk.advance(time.Second)

	calls := 0
	s.now = func() time.Time {
		calls++
		clk.advance(5 * time.Millisecond)
		return clk.t
	}
	if _, ok, err := s.ScanTimeout(50 * time.Millisecond); ok || err != nil {
		t.Fatalf("ScanTimeout() = %v, %v on idle matrix", ok, err)
	}
	if calls < 2 {
		t.Fatalf("ScanTimeout made %d clock reads, want several passes", calls)
	}
}

func TestScanTimeoutFindsPress(t *testing.T) {
	s, m, clk, _ := newTestScanner(t)
	clk.advance(time.Second)
	m.pressed[3][4] = true
	c, ok, err := s.ScanTimeout(time.Second)
	if err != nil || !ok || c != (Coord{Row: 3, Col: 4}) {
		t.Fatalf("ScanTimeout() = %v, %v, %v", c, ok, err)
	}
}

func TestRunFailsOnLineError(t *testing.T) {
	s, m, clk, _ := newTestScanner(t)
	clk.advance(time.Second)
	m.failRow = 1
	err := s.Run()
	if err == nil {
		t.Fatal("Run() returned nil error")
	}
}
