package hal

// Braille dot bits for the 2x4 cell layout, indexed [y][x].
var brailleDots = [4][2]rune{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

// Braille renders fb as lines of Unicode braille, one character per 2x4
// block of pixels. Black pixels become raised dots.
func Braille(fb *Framebuffer) []string {
	cols := (fb.Width() + 1) / 2
	rows := (fb.Height() + 3) / 4
	lines := make([]string, 0, rows)
	line := make([]rune, cols)
	for cy := 0; cy < rows; cy++ {
		for cx := 0; cx < cols; cx++ {
			r := rune(0x2800)
			for dy := 0; dy < 4; dy++ {
				for dx := 0; dx < 2; dx++ {
					if fb.Black(cx*2+dx, cy*4+dy) {
						r |= brailleDots[dy][dx]
					}
				}
			}
			line[cx] = r
		}
		lines = append(lines, string(line))
	}
	return lines
}
