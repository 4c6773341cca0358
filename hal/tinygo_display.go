//go:build tinygo && baremetal

package hal

import (
	"image/color"
	"machine"

	"tinygo.org/x/drivers/uc8151"
)

// einkDisplay draws into a local framebuffer and pushes it to the panel
// on Update. The panel keeps its own copy, so nothing reaches the glass
// before Display.
type einkDisplay struct {
	dev uc8151.Device
	fb  *Framebuffer
}

func newEinkDisplay() *einkDisplay {
	machine.SPI1.Configure(machine.SPIConfig{
		Frequency: 12 * machine.MHz,
		SCK:       machine.GP10,
		SDO:       machine.GP11,
	})

	d := &einkDisplay{
		dev: uc8151.New(machine.SPI1, machine.GP9, machine.GP8, machine.GP12, machine.GP13),
		fb:  NewFramebuffer(PanelWidth, PanelHeight),
	}
	d.dev.Configure(uc8151.Config{
		Speed:       uc8151.TURBO,
		FlickerFree: true,
		Rotation:    uc8151.ROTATION_270,
	})
	d.dev.ClearDisplay()
	return d
}

func (d *einkDisplay) Size() (x, y int16) { return d.fb.Size() }

func (d *einkDisplay) SetPixel(x, y int16, c color.RGBA) { d.fb.SetPixel(x, y, c) }

func (d *einkDisplay) FillRectangle(x, y, width, height int16, c color.RGBA) error {
	return d.fb.FillRectangle(x, y, width, height, c)
}

func (d *einkDisplay) Update() error {
	w, h := d.dev.Size()
	if int(w) > d.fb.Width() {
		w = int16(d.fb.Width())
	}
	if int(h) > d.fb.Height() {
		h = int16(d.fb.Height())
	}
	for y := int16(0); y < h; y++ {
		for x := int16(0); x < w; x++ {
			c := White
			if d.fb.Black(int(x), int(y)) {
				c = Black
			}
			d.dev.SetPixel(x, y, c)
		}
	}
	return d.dev.Display()
}

// Refresh runs the full clear cycle that removes ghosting. The next
// Update repaints the frame.
func (d *einkDisplay) Refresh() error {
	d.dev.ClearDisplay()
	return nil
}
