package app

import (
	"image/color"
	"strings"
	"unicode/utf8"

	"algcalc/hal"
	"algcalc/internal/buildinfo"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

// surface lets tinyfont draw on a hal.Display. Committing stays with
// the loop, so Display is a no-op.
type surface struct {
	d hal.Display
}

var _ drivers.Displayer = surface{}

func (s surface) Size() (x, y int16)                { return s.d.Size() }
func (s surface) SetPixel(x, y int16, c color.RGBA) { s.d.SetPixel(x, y, c) }
func (s surface) Display() error                    { return nil }

const (
	headerHeight = 14
	margin       = 2
)

type renderer struct {
	d    hal.Display
	s    surface
	font *tinyfont.Font

	glyphW  int16
	lineH   int16
	ascent  int16
	w, h    int16
	columns int16
}

func newRenderer(d hal.Display) *renderer {
	font := &proggy.TinySZ8pt7b
	_, outbox := tinyfont.LineWidth(font, "0")
	r := &renderer{
		d:      d,
		s:      surface{d: d},
		font:   font,
		glyphW: int16(outbox),
		lineH:  int16(font.YAdvance),
		ascent: int16(font.YAdvance) - 2,
	}
	if r.glyphW <= 0 {
		r.glyphW = 6
	}
	if r.lineH <= 0 {
		r.lineH = 10
		r.ascent = 8
	}
	r.w, r.h = d.Size()
	r.columns = (r.w - 2*margin) / r.glyphW
	if r.columns <= 0 {
		r.columns = 1
	}
	return r
}

func (r *renderer) clear() error {
	return r.d.FillRectangle(0, 0, r.w, r.h, hal.White)
}

// header draws the title, the status text right-aligned and a rule.
func (r *renderer) header(status string) error {
	if err := r.d.FillRectangle(0, 0, r.w, headerHeight, hal.White); err != nil {
		return err
	}
	tinyfont.WriteLine(r.s, r.font, margin, margin+r.ascent, buildinfo.Name, hal.Black)
	_, sw := tinyfont.LineWidth(r.font, status)
	tinyfont.WriteLine(r.s, r.font, r.w-margin-int16(sw), margin+r.ascent, status, hal.Black)
	return r.d.FillRectangle(0, headerHeight-1, r.w, 1, hal.Black)
}

// footerTop is the first row of the key hint strip.
func (r *renderer) footerTop() int16 {
	return r.h - r.lineH - 1
}

// footer draws a rule and the keycap hint line at the bottom edge.
func (r *renderer) footer(hint string) error {
	top := r.footerTop()
	if err := r.d.FillRectangle(0, top, r.w, r.h-top, hal.White); err != nil {
		return err
	}
	if err := r.d.FillRectangle(0, top, r.w, 1, hal.Black); err != nil {
		return err
	}
	chunk, _ := takeRunes(hint, r.columns)
	drawTextLine(r.s, r.font, r.glyphW, r.ascent, margin, top+1, chunk, hal.Black)
	return nil
}

// body redraws the text area with s wrapped to the panel width.
func (r *renderer) body(s string) error {
	bottom := r.footerTop()
	if err := r.d.FillRectangle(0, headerHeight, r.w, bottom-headerHeight, hal.White); err != nil {
		return err
	}
	r.lines(headerHeight+margin, bottom, s)
	return nil
}

// lines draws s wrapped at the column count from y down to bottom. It
// returns false if the text was cut.
func (r *renderer) lines(y, bottom int16, s string) bool {
	for len(s) > 0 {
		if y+r.lineH > bottom {
			return false
		}
		chunk, rest := takeRunes(s, r.columns)
		drawTextLine(r.s, r.font, r.glyphW, r.ascent, margin, y, chunk, hal.Black)
		y += r.lineH
		s = strings.TrimLeft(rest, " ")
	}
	return true
}

func drawTextLine(
	d drivers.Displayer,
	font tinyfont.Fonter,
	glyphW, ascent int16,
	x0, y0 int16,
	s string,
	fg color.RGBA,
) {
	x := x0
	for _, c := range s {
		tinyfont.DrawChar(d, font, x, y0+ascent, c, fg)
		x += glyphW
	}
}

func takeRunes(s string, n int16) (prefix, rest string) {
	if n <= 0 || s == "" {
		return "", s
	}
	if int64(len(s)) <= int64(n) {
		return s, ""
	}
	var i int
	var count int16
	for i < len(s) && count < n {
		_, size := utf8.DecodeRuneInString(s[i:])
		if size <= 0 {
			break
		}
		i += size
		count++
	}
	if i >= len(s) {
		return s, ""
	}
	return s[:i], s[i:]
}
