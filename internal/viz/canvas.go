package viz

import "strings"

// brailleBlank is U+2800, the empty braille cell. Dots are bits on top of it:
//
//	1 4
//	2 5
//	3 6
//	7 8
const brailleBlank = '⠀'

var dotBits = [4][2]rune{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

// Canvas is a grid of braille cells, each holding 2x4 dots.
type Canvas struct {
	Width, Height int
	Grid          [][]rune
}

func NewCanvas(w, h int) *Canvas {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	c := &Canvas{Width: w, Height: h, Grid: make([][]rune, h)}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
	}
	c.Clear()
	return c
}

// Dots returns the canvas size in dots.
func (c *Canvas) Dots() (w, h int) { return c.Width * 2, c.Height * 4 }

// locate returns the cell holding dot (x, y) and the dot's bit, or nil
// when the dot is off the canvas.
func (c *Canvas) locate(x, y int) (*rune, rune) {
	if x < 0 || y < 0 || x >= c.Width*2 || y >= c.Height*4 {
		return nil, 0
	}
	return &c.Grid[y/4][x/2], dotBits[y%4][x%2]
}

func (c *Canvas) Set(x, y int) {
	if cell, bit := c.locate(x, y); cell != nil {
		*cell |= bit
	}
}

func (c *Canvas) Unset(x, y int) {
	if cell, bit := c.locate(x, y); cell != nil {
		*cell = brailleBlank | (*cell &^ bit)
	}
}

func (c *Canvas) IsSet(x, y int) bool {
	cell, bit := c.locate(x, y)
	return cell != nil && *cell&bit != 0
}

// Clear blanks every cell.
func (c *Canvas) Clear() {
	for _, row := range c.Grid {
		for j := range row {
			row[j] = brailleBlank
		}
	}
}

func (c *Canvas) String() string {
	var b strings.Builder
	b.Grow(c.Height * (c.Width*3 + 1))
	for _, row := range c.Grid {
		b.WriteString(string(row))
		b.WriteByte('\n')
	}
	return b.String()
}
