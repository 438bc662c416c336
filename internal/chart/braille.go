package chart

// Braille character rendering for high-resolution terminal graphs.
//
// Braille patterns use a 2x4 dot matrix per character:
//
//	  Col 0  Col 1
//	Row 0:   ⠁      ⠈     (dots 1, 4)
//	Row 1:   ⠂      ⠐     (dots 2, 5)
//	Row 2:   ⠄      ⠠     (dots 3, 6)
//	Row 3:   ⡀      ⢀     (dots 7, 8)
//
// Unicode braille starts at U+2800 (empty) and uses bit patterns:
// bit 0 = dot 1, bit 1 = dot 2, bit 2 = dot 3, bit 3 = dot 4,
// bit 4 = dot 5, bit 5 = dot 6, bit 6 = dot 7, bit 7 = dot 8

const brailleBase = '\u2800'

// brailleDots maps row/column to the bit offset for braille pattern
// [row][col] where row is 0-3 (top to bottom) and col is 0-1 (left to right)
var brailleDots = [4][2]uint8{
	{0, 3}, // Row 0: dots 1 and 4
	{1, 4}, // Row 1: dots 2 and 5
	{2, 5}, // Row 2: dots 3 and 6
	{6, 7}, // Row 3: dots 7 and 8
}

// canvas is a grid of braille cells addressed in dots.
// Dot x grows rightward, dot y grows upward from the bottom row.
type canvas struct {
	width  int // cells
	height int // cells
	cells  [][]rune
}

func newCanvas(width, height int) *canvas {
	cells := make([][]rune, height)
	for i := range cells {
		cells[i] = make([]rune, width)
		for j := range cells[i] {
			cells[i][j] = brailleBase
		}
	}
	return &canvas{width: width, height: height, cells: cells}
}

func (c *canvas) dotsWide() int { return c.width * 2 }
func (c *canvas) dotsHigh() int { return c.height * 4 }

// set turns on one dot. Out-of-range dots are ignored.
func (c *canvas) set(x, y int) {
	if x < 0 || y < 0 || x >= c.dotsWide() || y >= c.dotsHigh() {
		return
	}
	fromTop := c.dotsHigh() - 1 - y
	row, subRow := fromTop/4, fromTop%4
	col, subCol := x/2, x%2
	c.cells[row][col] |= rune(1 << brailleDots[subRow][subCol])
}

// line draws a straight segment between two dots (Bresenham).
func (c *canvas) line(x0, y0, x1, y1 int) {
	dx := absInt(x1 - x0)
	dy := -absInt(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy
	for {
		c.set(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

// rows returns the grid top to bottom. Empty cells become spaces.
func (c *canvas) rows() []string {
	out := make([]string, c.height)
	for i, row := range c.cells {
		line := make([]rune, len(row))
		for j, r := range row {
			if r == brailleBase {
				line[j] = ' '
			} else {
				line[j] = r
			}
		}
		out[i] = string(line)
	}
	return out
}

// clampInt clamps an integer to a range [0, maxVal].
func clampInt(val, maxVal int) int {
	if val < 0 {
		return 0
	}
	if val > maxVal {
		return maxVal
	}
	return val
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
