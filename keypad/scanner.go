package keypad

import (
	"fmt"
	"runtime"
	"time"
)

// OutputLine is a row line the scanner drives.
type OutputLine interface {
	Write(level bool) error
}

// InputLine is a column line the scanner samples.
type InputLine interface {
	Read() (level bool, err error)
}

// Sender is the producing end of the event channel. Send blocks until
// the message is queued.
type Sender interface {
	Send(Message)
}

// Scanner strobes the key matrix and emits debounced presses.
//
// A Scanner belongs to exactly one goroutine: it is built by the
// spawner and handed over to the scanning goroutine, which is then the
// only code touching it.
type Scanner struct {
	rows [Rows]OutputLine
	cols [Cols]InputLine
	out  Sender
	now  func() time.Time

	// Interval is the pause between two scan passes. Zero yields to
	// the scheduler instead of sleeping.
	Interval time.Duration

	lastPressed [Rows][Cols]time.Time
}

// NewScanner returns a scanner using the wall clock.
func NewScanner(rows []OutputLine, cols []InputLine, out Sender) (*Scanner, error) {
	return NewScannerWithClock(rows, cols, out, time.Now)
}

// NewScannerWithClock returns a scanner reading time from now.
func NewScannerWithClock(rows []OutputLine, cols []InputLine, out Sender, now func() time.Time) (*Scanner, error) {
	if len(rows) != Rows {
		return nil, fmt.Errorf("keypad: %d row lines, want %d", len(rows), Rows)
	}
	if len(cols) != Cols {
		return nil, fmt.Errorf("keypad: %d column lines, want %d", len(cols), Cols)
	}
	if now == nil {
		now = time.Now
	}
	s := &Scanner{out: out, now: now}
	for i, l := range rows {
		if l == nil {
			return nil, fmt.Errorf("keypad: row line %d is nil", i)
		}
		s.rows[i] = l
	}
	for i, l := range cols {
		if l == nil {
			return nil, fmt.Errorf("keypad: column line %d is nil", i)
		}
		s.cols[i] = l
	}

	start := now()
	for r := range s.lastPressed {
		for c := range s.lastPressed[r] {
			s.lastPressed[r][c] = start
		}
	}
	return s, nil
}

// Scan performs one pass over the matrix and returns the first cell
// that reads as a genuine press.
func (s *Scanner) Scan() (Coord, bool, error) {
	now := s.now()
	for r, row := range s.rows {
		if err := row.Write(true); err != nil {
			return Coord{}, false, fmt.Errorf("row %d: %w", r, err)
		}
		for c, col := range s.cols {
			active, err := col.Read()
			if err != nil {
				return Coord{}, false, fmt.Errorf("row %d col %d: %w", r, c, err)
			}
			if !active {
				continue
			}

			elapsed := now.Sub(s.lastPressed[r][c])
			s.lastPressed[r][c] = now
			if elapsed < DebounceWindow {
				continue
			}

			if err := row.Write(false); err != nil {
				return Coord{}, false, fmt.Errorf("row %d: %w", r, err)
			}
			return Coord{Row: r, Col: c}, true, nil
		}
		if err := row.Write(false); err != nil {
			return Coord{}, false, fmt.Errorf("row %d: %w", r, err)
		}
	}
	return Coord{}, false, nil
}

// ScanTimeout repeats Scan until a press is found or timeout has
// elapsed since the call began.
func (s *Scanner) ScanTimeout(timeout time.Duration) (Coord, bool, error) {
	start := s.now()
	for {
		c, ok, err := s.Scan()
		if err != nil || ok {
			return c, ok, err
		}
		if s.now().Sub(start) >= timeout {
			return Coord{}, false, nil
		}
		s.pause()
	}
}

// Step scans once and sends the press, if any, on the event channel.
func (s *Scanner) Step() (bool, error) {
	c, ok, err := s.Scan()
	if err != nil || !ok {
		return false, err
	}
	s.out.Send(Encode(c))
	return true, nil
}

// Run scans forever. It returns only when a line fails; the scanner
// must not be used afterwards.
func (s *Scanner) Run() error {
	for {
		if _, err := s.Step(); err != nil {
			return fmt.Errorf("keypad scan: %w", err)
		}
		s.pause()
	}
}

func (s *Scanner) pause() {
	if s.Interval > 0 {
		time.Sleep(s.Interval)
		return
	}
	runtime.Gosched()
}
