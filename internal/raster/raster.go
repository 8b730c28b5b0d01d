// Package raster implements scene.Surface on an in-memory RGBA image using
// the anti-aliasing rasterizer from golang.org/x/image/vector.
package raster

import (
	"image"
	"image/color"
	"math"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/san-kum/waveoptics/internal/optics"
	"github.com/san-kum/waveoptics/internal/scene"
)

type Canvas struct {
	img  *image.RGBA
	ras  *vector.Rasterizer
	face *basicfont.Face
}

func New(width, height int) *Canvas {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Canvas{
		img:  image.NewRGBA(image.Rect(0, 0, width, height)),
		ras:  vector.NewRasterizer(width, height),
		face: basicfont.Face7x13,
	}
}

func (c *Canvas) Image() *image.RGBA { return c.img }

// Snapshot renders f onto a fresh image the size of its canvas.
func Snapshot(f optics.Frame) *image.RGBA {
	c := New(int(math.Ceil(f.Geometry.Width)), int(math.Ceil(f.Geometry.Height)))
	scene.Render(c, f)
	return c.img
}

// Scale resamples src to width x height.
func Scale(src image.Image, width, height int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst
}

func (c *Canvas) Clear(col color.NRGBA) {
	xdraw.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{}, xdraw.Src)
}

func (c *Canvas) FillRect(x, y, w, h float64, col color.NRGBA) {
	if w <= 0 || h <= 0 {
		return
	}
	c.fill(image.NewUniform(col), [][]pt{{
		{x, y}, {x + w, y}, {x + w, y + h}, {x, y + h},
	}})
}

func (c *Canvas) FillCircle(cx, cy, r float64, col color.NRGBA) {
	if r <= 0 {
		return
	}
	c.fill(image.NewUniform(col), [][]pt{circle(cx, cy, r, false)})
}

func (c *Canvas) StrokeCircle(cx, cy, r, width float64, col color.NRGBA) {
	outer := r + width/2
	inner := r - width/2
	if outer <= 0 {
		return
	}
	contours := [][]pt{circle(cx, cy, outer, false)}
	if inner > 0 {
		contours = append(contours, circle(cx, cy, inner, true))
	}
	c.fill(image.NewUniform(col), contours)
}

func (c *Canvas) RadialGlow(cx, cy, r float64, col color.NRGBA) {
	if r <= 0 {
		return
	}
	c.fill(&radial{cx: cx, cy: cy, r: r, c: col}, [][]pt{circle(cx, cy, r, false)})
}

// Text draws with the 7x13 bitmap face, resampled to the requested size.
func (c *Canvas) Text(x, y, size float64, s string, col color.NRGBA) {
	if s == "" || size <= 0 {
		return
	}
	m := c.face.Metrics()
	lineH := (m.Ascent + m.Descent).Ceil()
	textW := font.MeasureString(c.face, s).Ceil()
	tmp := image.NewRGBA(image.Rect(0, 0, textW, lineH))
	d := &font.Drawer{
		Dst:  tmp,
		Src:  image.NewUniform(col),
		Face: c.face,
		Dot:  fixed.Point26_6{X: 0, Y: m.Ascent},
	}
	d.DrawString(s)

	k := size / float64(lineH)
	top := y - float64(m.Ascent.Ceil())*k
	dr := image.Rect(
		int(math.Round(x)), int(math.Round(top)),
		int(math.Round(x+float64(textW)*k)), int(math.Round(top+float64(lineH)*k)),
	)
	xdraw.ApproxBiLinear.Scale(c.img, dr, tmp, tmp.Bounds(), xdraw.Over, nil)
}

func (c *Canvas) fill(src image.Image, contours [][]pt) {
	b := c.img.Bounds()
	if b.Empty() {
		return
	}
	c.ras.Reset(b.Dx(), b.Dy())
	drawn := false
	for _, poly := range contours {
		poly = clip(poly, float64(b.Dx()), float64(b.Dy()))
		if len(poly) < 3 {
			continue
		}
		c.ras.MoveTo(float32(poly[0].x), float32(poly[0].y))
		for _, p := range poly[1:] {
			c.ras.LineTo(float32(p.x), float32(p.y))
		}
		c.ras.ClosePath()
		drawn = true
	}
	if drawn {
		c.ras.Draw(c.img, b, src, image.Point{})
	}
}

// radial is an unbounded image whose alpha falls off linearly from c.A at
// the centre to zero at radius r.
type radial struct {
	cx, cy, r float64
	c         color.NRGBA
}

func (g *radial) ColorModel() color.Model { return color.NRGBAModel }

func (g *radial) Bounds() image.Rectangle {
	return image.Rect(-1<<20, -1<<20, 1<<20, 1<<20)
}

func (g *radial) At(x, y int) color.Color {
	d := math.Hypot(float64(x)+0.5-g.cx, float64(y)+0.5-g.cy)
	f := 1 - d/g.r
	if f <= 0 {
		return color.NRGBA{}
	}
	out := g.c
	out.A = uint8(float64(g.c.A)*f + 0.5)
	return out
}
