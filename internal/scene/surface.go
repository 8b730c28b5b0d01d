// Package scene paints an optics.Frame onto any 2D Surface.
//
// The same render pass feeds the raylib window, the braille terminal canvas
// and the PNG, GIF and SVG exporters. Coordinates are canvas pixels with the
// origin at the top left.
package scene

import "image/color"

// Surface is the minimal set of drawing primitives the render pass needs.
// Colors are non-premultiplied; implementations blend with source-over.
type Surface interface {
	Clear(c color.NRGBA)
	FillRect(x, y, w, h float64, c color.NRGBA)
	FillCircle(cx, cy, r float64, c color.NRGBA)
	StrokeCircle(cx, cy, r, width float64, c color.NRGBA)
	// RadialGlow fills a disc whose alpha falls linearly from c.A at the
	// centre to zero at r.
	RadialGlow(cx, cy, r float64, c color.NRGBA)
	// Text draws s with its baseline at y.
	Text(x, y, size float64, s string, c color.NRGBA)
}

var (
	ColBackground = color.NRGBA{10, 10, 10, 255}
	ColSource     = color.NRGBA{255, 255, 0, 255}
	ColGlow       = color.NRGBA{255, 255, 0, 77}
	ColWavefront  = color.NRGBA{255, 200, 0, 102}
	ColBarrier    = color.NRGBA{51, 51, 51, 255}
	ColWavelet    = color.NRGBA{100, 200, 255, 255}
	ColSlit       = color.NRGBA{0, 255, 255, 255}
	ColScreen     = color.NRGBA{68, 68, 68, 255}
	ColLabel      = color.NRGBA{255, 255, 255, 255}
)

// Gray is the pattern color for a brightness value.
func Gray(b uint8) color.NRGBA {
	return color.NRGBA{b, b, b, 255}
}

// WithAlpha returns c with alpha a in [0,1].
func WithAlpha(c color.NRGBA, a float64) color.NRGBA {
	if a < 0 {
		a = 0
	} else if a > 1 {
		a = 1
	}
	c.A = uint8(a*255 + 0.5)
	return c
}
