package hal

import "image/color"

// Framebuffer is a 1bpp two-tone pixel buffer, row-major, MSB first.
// A set bit is a black pixel.
type Framebuffer struct {
	width  int
	height int
	stride int
	buf    []byte
}

// NewFramebuffer returns a white framebuffer of the given size.
func NewFramebuffer(width, height int) *Framebuffer {
	stride := (width + 7) / 8
	return &Framebuffer{
		width:  width,
		height: height,
		stride: stride,
		buf:    make([]byte, stride*height),
	}
}

func (f *Framebuffer) Width() int  { return f.width }
func (f *Framebuffer) Height() int { return f.height }

// Size implements the tinygo drivers Displayer contract.
func (f *Framebuffer) Size() (x, y int16) { return int16(f.width), int16(f.height) }

// Black reports whether the pixel at (x, y) is black. Out-of-range
// pixels are white.
func (f *Framebuffer) Black(x, y int) bool {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return false
	}
	return f.buf[y*f.stride+x/8]&(0x80>>(x%8)) != 0
}

// Set paints one pixel black or white. Out-of-range writes are dropped.
func (f *Framebuffer) Set(x, y int, black bool) {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return
	}
	off := y*f.stride + x/8
	bit := byte(0x80 >> (x % 8))
	if black {
		f.buf[off] |= bit
	} else {
		f.buf[off] &^= bit
	}
}

// SetPixel paints c, thresholded on luminance.
func (f *Framebuffer) SetPixel(x, y int16, c color.RGBA) {
	f.Set(int(x), int(y), isDark(c))
}

// FillRectangle paints a clipped rectangle.
func (f *Framebuffer) FillRectangle(x, y, width, height int16, c color.RGBA) error {
	x0 := clampInt(int(x), 0, f.width)
	y0 := clampInt(int(y), 0, f.height)
	x1 := clampInt(int(x)+int(width), 0, f.width)
	y1 := clampInt(int(y)+int(height), 0, f.height)
	dark := isDark(c)
	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			f.Set(px, py, dark)
		}
	}
	return nil
}

// CopyFrom copies src into f. Both must have the same geometry.
func (f *Framebuffer) CopyFrom(src *Framebuffer) {
	copy(f.buf, src.buf)
}

// isDark uses the Rec. 601 luma weights scaled to integers.
func isDark(c color.RGBA) bool {
	y := (299*uint32(c.R) + 587*uint32(c.G) + 114*uint32(c.B)) / 1000
	return y < 0x80
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
