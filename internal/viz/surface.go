package viz

import (
	"image/color"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// bayer4 is the ordered-dither threshold matrix used to shade fills.
var bayer4 = [4][4]float64{
	{0, 8, 2, 10},
	{12, 4, 14, 6},
	{3, 11, 1, 9},
	{15, 7, 13, 5},
}

const (
	// minStrokeLevel is the weakest stroke that still lights its outline.
	minStrokeLevel = 0.04
	// blackLevel and below never lights a dot.
	blackLevel = 0.05
)

// Surface paints scene primitives onto a braille Canvas. Colour is reduced
// to a lit/unlit dot per position plus one tint per cell.
type Surface struct {
	canvas *Canvas
	sx, sy float64
	tint   [][]color.NRGBA
	text   [][]rune
	ttint  [][]color.NRGBA
}

// NewSurface maps a width x height pixel canvas onto c.
func NewSurface(c *Canvas, width, height float64) *Surface {
	s := &Surface{
		canvas: c,
		tint:   make([][]color.NRGBA, c.Height),
		text:   make([][]rune, c.Height),
		ttint:  make([][]color.NRGBA, c.Height),
	}
	for i := range s.tint {
		s.tint[i] = make([]color.NRGBA, c.Width)
		s.text[i] = make([]rune, c.Width)
		s.ttint[i] = make([]color.NRGBA, c.Width)
	}
	dw, dh := c.Dots()
	if width > 0 {
		s.sx = float64(dw) / width
	}
	if height > 0 {
		s.sy = float64(dh) / height
	}
	return s
}

func (s *Surface) Canvas() *Canvas { return s.canvas }

func luminance(c color.NRGBA) float64 {
	return (0.2126*float64(c.R) + 0.7152*float64(c.G) + 0.0722*float64(c.B)) / 255
}

func level(c color.NRGBA) float64 {
	return luminance(c) * float64(c.A) / 255
}

func (s *Surface) plot(x, y int, lit bool, c color.NRGBA) {
	if lit {
		s.canvas.Set(x, y)
		if x >= 0 && y >= 0 && x/2 < s.canvas.Width && y/4 < s.canvas.Height {
			s.tint[y/4][x/2] = c
		}
	} else {
		s.canvas.Unset(x, y)
	}
}

func (s *Surface) Clear(c color.NRGBA) {
	s.canvas.Clear()
	for i := range s.tint {
		for j := range s.tint[i] {
			s.tint[i][j] = color.NRGBA{}
			s.text[i][j] = 0
			s.ttint[i][j] = color.NRGBA{}
		}
	}
	if level(c) > 0.5 {
		s.FillRect(0, 0, float64(s.canvas.Width*2)/s.sx, float64(s.canvas.Height*4)/s.sy, c)
	}
}

// shade fills dots by ordered dithering. Opaque dark paint erases.
func (s *Surface) shade(x0, y0, x1, y1 int, inside func(x, y int) bool, c color.NRGBA) {
	lv := level(c)
	opaque := c.A == 255
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if !inside(x, y) {
				continue
			}
			lit := lv > blackLevel && lv > (bayer4[y&3][x&3]+0.5)/16
			if lit || opaque {
				s.plot(x, y, lit, c)
			}
		}
	}
}

func (s *Surface) FillRect(x, y, w, h float64, c color.NRGBA) {
	if w <= 0 || h <= 0 || s.sx == 0 || s.sy == 0 {
		return
	}
	x0, y0 := int(math.Floor(x*s.sx)), int(math.Floor(y*s.sy))
	x1, y1 := int(math.Ceil((x+w)*s.sx))-1, int(math.Ceil((y+h)*s.sy))-1
	s.shade(x0, y0, x1, y1, func(int, int) bool { return true }, c)
}

func (s *Surface) FillCircle(cx, cy, r float64, c color.NRGBA) {
	if r <= 0 || s.sx == 0 || s.sy == 0 {
		return
	}
	px, py := cx*s.sx, cy*s.sy
	rx, ry := math.Max(r*s.sx, 0.5), math.Max(r*s.sy, 0.5)
	inside := func(x, y int) bool {
		dx := (float64(x) + 0.5 - px) / rx
		dy := (float64(y) + 0.5 - py) / ry
		return dx*dx+dy*dy <= 1
	}
	s.shade(int(px-rx), int(py-ry), int(px+rx), int(py+ry), inside, c)
}

func (s *Surface) StrokeCircle(cx, cy, r, width float64, c color.NRGBA) {
	if r <= 0 || level(c) < minStrokeLevel || s.sx == 0 || s.sy == 0 {
		return
	}
	px, py := cx*s.sx, cy*s.sy
	rx, ry := r*s.sx, r*s.sy
	n := int(2*math.Pi*math.Max(rx, ry)) + 8
	for i := 0; i < n; i++ {
		a := 2 * math.Pi * float64(i) / float64(n)
		s.plot(int(math.Floor(px+rx*math.Cos(a))), int(math.Floor(py+ry*math.Sin(a))), true, c)
	}
}

func (s *Surface) RadialGlow(cx, cy, r float64, c color.NRGBA) {
	if r <= 0 || s.sx == 0 || s.sy == 0 {
		return
	}
	px, py := cx*s.sx, cy*s.sy
	rx, ry := r*s.sx, r*s.sy
	lv := level(c)
	for y := int(py - ry); y <= int(py+ry); y++ {
		for x := int(px - rx); x <= int(px+rx); x++ {
			dx := (float64(x) + 0.5 - px) / rx
			dy := (float64(y) + 0.5 - py) / ry
			d := math.Sqrt(dx*dx + dy*dy)
			if d >= 1 {
				continue
			}
			if lv*(1-d) > (bayer4[y&3][x&3]+0.5)/16 {
				s.plot(x, y, true, c)
			}
		}
	}
}

// Text writes s into the cell row containing the baseline. Letters replace
// the braille cells they cover. Labels that land on an occupied row are
// stacked below it, or push the earlier label up on the last row.
func (s *Surface) Text(x, y, size float64, str string, c color.NRGBA) {
	if s.sx == 0 || s.sy == 0 {
		return
	}
	runes := []rune(str)
	col := int(math.Floor(x * s.sx / 2))
	row := int(math.Floor((y - 1) * s.sy / 4))
	if row < 0 || row >= s.canvas.Height {
		return
	}
	if s.occupied(row, col, len(runes)) {
		if row+1 < s.canvas.Height {
			row++
		} else if row > 0 {
			s.text[row-1], s.text[row] = s.text[row], s.text[row-1]
			s.ttint[row-1], s.ttint[row] = s.ttint[row], s.ttint[row-1]
		}
	}
	for i, r := range runes {
		cc := col + i
		if cc < 0 || cc >= s.canvas.Width {
			continue
		}
		s.text[row][cc] = r
		s.ttint[row][cc] = c
	}
}

func (s *Surface) occupied(row, col, n int) bool {
	for cc := max(col, 0); cc < col+n && cc < s.canvas.Width; cc++ {
		if s.text[row][cc] != 0 {
			return true
		}
	}
	return false
}

func (s *Surface) cell(row, col int) rune {
	if r := s.text[row][col]; r != 0 {
		return r
	}
	return s.canvas.Grid[row][col]
}

// String returns the uncoloured grid with labels.
func (s *Surface) String() string {
	var b strings.Builder
	for row := range s.canvas.Grid {
		for col := range s.canvas.Grid[row] {
			b.WriteRune(s.cell(row, col))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// View returns the grid coloured with each cell's tint. Runs of equal tint
// share one style.
func (s *Surface) View() string {
	var b strings.Builder
	for row := range s.canvas.Grid {
		var run strings.Builder
		var cur color.NRGBA
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if cur.A == 0 {
				b.WriteString(run.String())
			} else {
				b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(hexColor(int(cur.R), int(cur.G), int(cur.B)))).Render(run.String()))
			}
			run.Reset()
		}
		for col := range s.canvas.Grid[row] {
			t := s.tint[row][col]
			if s.text[row][col] != 0 {
				t = s.ttint[row][col]
			}
			t.A = min(t.A, 1)
			if t != cur {
				flush()
				cur = t
			}
			run.WriteRune(s.cell(row, col))
		}
		flush()
		if row < len(s.canvas.Grid)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
