package hal

import (
	"errors"
	"image/color"
	"time"

	"algcalc/keypad"
)

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

var ErrNotImplemented = errors.New("not implemented")

// Panel geometry shared by every backend.
const (
	PanelWidth  = 296
	PanelHeight = 128
)

// Palette of the two-tone panel.
var (
	Black = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xFF}
	White = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
)

// Display is a pixel surface plus a commit operation.
//
// Drawing only touches the working buffer; nothing becomes visible
// until Update. Size never changes for the lifetime of the handle.
type Display interface {
	Size() (x, y int16)
	SetPixel(x, y int16, c color.RGBA)
	FillRectangle(x, y, width, height int16, c color.RGBA) error
	Update() error
}

// Refresher is implemented by displays that distinguish a full
// hardware refresh (e.g. clearing e-ink ghosting) from Update.
type Refresher interface {
	Refresh() error
}

// Refresh performs a full refresh if d supports it and is a no-op
// otherwise.
func Refresh(d Display) error {
	if r, ok := d.(Refresher); ok {
		return r.Refresh()
	}
	return nil
}

// Keypad delivers decoded key presses to the application loop.
type Keypad interface {
	ReadKey() (keypad.Key, bool)
	WaitForKey(timeout time.Duration) bool
	ReadKeyTimeout(timeout time.Duration) (keypad.Key, bool)
}

// System reports coarse device telemetry. Memory is in bytes, battery
// in percent. Every call samples anew.
type System interface {
	MemoryUsed() uint64
	MemoryTotal() uint64
	BatteryLevel() uint8
}

// HAL provides the only contact point between the application loop and
// the outside world. All handles belong to the goroutine running the
// loop.
type HAL interface {
	Logger() Logger
	Display() Display
	Keypad() Keypad
	System() System
}
