package app

import (
	"errors"
	"fmt"
	"time"

	"algcalc/hal"
	"algcalc/internal/buildinfo"
	"algcalc/keypad"
)

// State is the run loop state.
type State uint8

const (
	Drawing State = iota
	Listening
)

func (s State) String() string {
	switch s {
	case Drawing:
		return "drawing"
	case Listening:
		return "listening"
	default:
		return fmt.Sprintf("State(%d)", uint8(s))
	}
}

// ClearKey resets the accumulator.
const ClearKey = keypad.Fn

// Loop is the application loop. It only talks to the HAL facades and
// must run on the goroutine that owns them.
type Loop struct {
	log  hal.Logger
	disp hal.Display
	kbd  hal.Keypad
	sys  hal.System

	state State
	buf   Buffer
	r     *renderer
}

// NewLoop returns a loop in the Drawing state.
func NewLoop(h hal.HAL) *Loop {
	return &Loop{
		log:   h.Logger(),
		disp:  h.Display(),
		kbd:   h.Keypad(),
		sys:   h.System(),
		state: Drawing,
		r:     newRenderer(h.Display()),
	}
}

func (l *Loop) State() State { return l.state }

// Text returns the accumulated input.
func (l *Loop) Text() string { return l.buf.String() }

// Start runs the Drawing state: clear, static content, full refresh,
// commit. The loop is Listening afterwards.
func (l *Loop) Start() error {
	l.state = Drawing
	if err := l.draw(); err != nil {
		return fmt.Errorf("display draw: %w", err)
	}
	if err := hal.Refresh(l.disp); err != nil {
		return fmt.Errorf("display refresh: %w", err)
	}
	if err := l.disp.Update(); err != nil {
		return fmt.Errorf("display update: %w", err)
	}
	l.state = Listening
	return nil
}

// HandleKey applies one key press.
func (l *Loop) HandleKey(k keypad.Key) error {
	if k == ClearKey {
		l.buf.Reset()
		return l.Start()
	}

	if err := l.buf.Append(k.String()); err != nil {
		if errors.Is(err, ErrBufferFull) {
			l.log.WriteLineString(fmt.Sprintf("app: buffer full (%d bytes), dropped %s", l.buf.Len(), k))
			return nil
		}
		return err
	}
	if err := l.r.body(l.buf.String()); err != nil {
		return fmt.Errorf("display draw: %w", err)
	}
	if err := l.disp.Update(); err != nil {
		return fmt.Errorf("display update: %w", err)
	}
	return nil
}

func (l *Loop) draw() error {
	if err := l.r.clear(); err != nil {
		return err
	}
	if err := l.r.header(l.status()); err != nil {
		return err
	}
	return l.r.footer(keyHint())
}

// keyHint names the keycaps with a meaning on this screen.
func keyHint() string {
	return ClearKey.Legend() + " clear"
}

// Next waits up to timeout for a key and handles it. It reports whether
// a key was handled.
func (l *Loop) Next(timeout time.Duration) (bool, error) {
	if l.state == Drawing {
		if err := l.Start(); err != nil {
			return false, err
		}
	}
	k, ok := l.kbd.ReadKeyTimeout(timeout)
	if !ok {
		return false, nil
	}
	return true, l.HandleKey(k)
}

// Run draws the first screen and handles keys until a commit fails.
func Run(h hal.HAL) error {
	h.Logger().WriteLineString("boot: " + buildinfo.Long())
	l := NewLoop(h)
	for {
		if _, err := l.Next(keypad.Forever); err != nil {
			return err
		}
	}
}

func (l *Loop) status() string {
	return fmt.Sprintf("mem %dK/%dK  bat %d%%",
		l.sys.MemoryUsed()/1024, l.sys.MemoryTotal()/1024, l.sys.BatteryLevel())
}
