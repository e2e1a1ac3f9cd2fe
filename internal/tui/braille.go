package tui

// brailleBuf is a dot canvas with 2x4 dots per terminal cell.
type brailleBuf struct {
	w, h int       // in cells
	m    [][]uint8 // per-cell 8-bit mask
}

// dotBits maps a dot's column and row inside its cell to the braille bit.
var dotBits = [2][4]uint8{
	{0x01, 0x02, 0x04, 0x40},
	{0x08, 0x10, 0x20, 0x80},
}

func newBrailleBuf(w, h int) *brailleBuf {
	m := make([][]uint8, h)
	for i := range m {
		m[i] = make([]uint8, w)
	}
	return &brailleBuf{w: w, h: h, m: m}
}

// dotsW and dotsH are the canvas size in dots.
func (b *brailleBuf) dotsW() int { return b.w * 2 }
func (b *brailleBuf) dotsH() int { return b.h * 4 }

// setDot sets the dot at (dx, dy). Dots off the canvas are ignored.
func (b *brailleBuf) setDot(dx, dy int) {
	if dx < 0 || dy < 0 || dx >= b.dotsW() || dy >= b.dotsH() {
		return
	}
	b.m[dy/4][dx/2] |= dotBits[dx%2][dy%4]
}

// line draws a Bresenham line between two dots.
func (b *brailleBuf) line(x0, y0, x1, y1 int) {
	dx := abs(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -abs(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		b.setDot(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// blank reports whether no dot is set.
func (b *brailleBuf) blank() bool {
	for _, row := range b.m {
		for _, mask := range row {
			if mask != 0 {
				return false
			}
		}
	}
	return true
}

func (b *brailleBuf) toLines() []string {
	out := make([]string, b.h)
	for y := 0; y < b.h; y++ {
		row := make([]rune, b.w)
		for x := 0; x < b.w; x++ {
			if mask := b.m[y][x]; mask != 0 {
				row[x] = rune(0x2800 + int(mask))
			} else {
				row[x] = ' '
			}
		}
		out[y] = string(row)
	}
	return out
}
