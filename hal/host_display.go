//go:build !tinygo

package hal

import (
	"image/color"
	"sync"
)

// hostDisplay keeps the drawing buffer private to the loop and publishes
// a copy on Update. Frontends only ever see committed frames.
type hostDisplay struct {
	log  Logger
	work *Framebuffer

	mu        sync.Mutex
	visible   *Framebuffer
	commits   uint64
	refreshes uint64
	onCommit  func()
}

func newHostDisplay(log Logger) *hostDisplay {
	return &hostDisplay{
		log:     log,
		work:    NewFramebuffer(PanelWidth, PanelHeight),
		visible: NewFramebuffer(PanelWidth, PanelHeight),
	}
}

func (d *hostDisplay) Size() (x, y int16) { return d.work.Size() }

func (d *hostDisplay) SetPixel(x, y int16, c color.RGBA) { d.work.SetPixel(x, y, c) }

func (d *hostDisplay) FillRectangle(x, y, width, height int16, c color.RGBA) error {
	return d.work.FillRectangle(x, y, width, height, c)
}

func (d *hostDisplay) Update() error {
	d.mu.Lock()
	d.visible.CopyFrom(d.work)
	d.commits++
	hook := d.onCommit
	d.mu.Unlock()

	if hook != nil {
		hook()
	}
	return nil
}

// Refresh has nothing to flush on a simulated panel; it is counted so
// frontends can show it.
func (d *hostDisplay) Refresh() error {
	d.mu.Lock()
	d.refreshes++
	n := d.refreshes
	d.mu.Unlock()
	if n == 1 || n%64 == 0 {
		d.log.WriteLineString("display: full refresh")
	}
	return nil
}

// snapshot copies the last committed frame into dst.
func (d *hostDisplay) snapshot(dst *Framebuffer) {
	d.mu.Lock()
	defer d.mu.Unlock()
	dst.CopyFrom(d.visible)
}

func (d *hostDisplay) stats() (commits, refreshes uint64) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.commits, d.refreshes
}

func (d *hostDisplay) setOnCommit(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.onCommit = fn
}
