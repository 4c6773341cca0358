//go:build tinygo && !baremetal

package hal

import (
	"bufio"
	"image/color"
	"os"
	"time"

	"algcalc/fifo"
	"algcalc/keypad"
)

type tinyGoHostHAL struct {
	logger *tinyGoHostLogger
	disp   *tinyGoHostDisplay
	kbd    *keypad.Driver
	sys    *simSystem
}

// New returns a TinyGo-on-host HAL implementation.
//
// This is used by `tinygo run` targets like linux/wasm where there is no
// MCU pin mapping. Bytes on stdin tap the keys bound to them and every
// committed frame is printed as braille.
func New() HAL {
	l := &tinyGoHostLogger{}
	m := NewMatrix()
	outs, ins, err := KeypadLines(m.Rows(), m.Cols())
	if err != nil {
		panic(err)
	}
	ring := fifo.NewRing[keypad.Message](4)
	sc, err := keypad.NewScanner(outs, ins, ring)
	if err != nil {
		panic(err)
	}
	sc.Interval = time.Millisecond
	startScanner(sc, l)

	go feedStdin(m, DefaultBindings())

	return &tinyGoHostHAL{
		logger: l,
		disp:   &tinyGoHostDisplay{fb: NewFramebuffer(PanelWidth, PanelHeight)},
		kbd:    keypad.NewDriver(ring, l),
		sys:    newSimSystem(SimSystemConfig{BatteryStart: 100}, time.Now),
	}
}

func (h *tinyGoHostHAL) Logger() Logger   { return h.logger }
func (h *tinyGoHostHAL) Display() Display { return h.disp }
func (h *tinyGoHostHAL) Keypad() Keypad   { return h.kbd }
func (h *tinyGoHostHAL) System() System   { return h.sys }

func feedStdin(m *Matrix, binds map[string]keypad.Key) {
	r := bufio.NewReader(os.Stdin)
	for {
		b, err := r.ReadByte()
		if err != nil {
			return
		}
		k, ok := binds[string(rune(b))]
		if !ok {
			continue
		}
		if c, ok := keypad.DefaultLayout.Find(k); ok {
			m.Tap(c, 2*keypad.DebounceWindow)
		}
	}
}

type tinyGoHostDisplay struct {
	fb *Framebuffer
}

func (d *tinyGoHostDisplay) Size() (x, y int16) { return d.fb.Size() }

func (d *tinyGoHostDisplay) SetPixel(x, y int16, c color.RGBA) { d.fb.SetPixel(x, y, c) }

func (d *tinyGoHostDisplay) FillRectangle(x, y, width, height int16, c color.RGBA) error {
	return d.fb.FillRectangle(x, y, width, height, c)
}

func (d *tinyGoHostDisplay) Update() error {
	for _, line := range Braille(d.fb) {
		println(line)
	}
	return nil
}

type tinyGoHostLogger struct{}

func (l *tinyGoHostLogger) WriteLineString(s string) {
	println(s)
}

func (l *tinyGoHostLogger) WriteLineBytes(b []byte) {
	println(string(b))
}
