package export

import (
	"fmt"
	"image/color"
	"io"
	"strings"

	"github.com/san-kum/waveoptics/internal/optics"
	"github.com/san-kum/waveoptics/internal/scene"
	"github.com/san-kum/waveoptics/internal/viz"
)

// SVGSurface records the render pass as SVG elements.
type SVGSurface struct {
	width, height float64
	sb            strings.Builder
	glows         int
}

func NewSVGSurface(width, height float64) *SVGSurface {
	return &SVGSurface{width: width, height: height}
}

func rgb(c color.NRGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// paint renders the fill or stroke attributes of c, adding an opacity only
// when c is translucent.
func paint(attr string, c color.NRGBA) string {
	if c.A == 255 {
		return fmt.Sprintf(`%s="%s"`, attr, rgb(c))
	}
	return fmt.Sprintf(`%s="%s" %s-opacity="%.3f"`, attr, rgb(c), attr, float64(c.A)/255)
}

func (s *SVGSurface) Clear(c color.NRGBA) {
	s.sb.Reset()
	s.glows = 0
	s.sb.WriteString(fmt.Sprintf(`<rect width="100%%" height="100%%" %s/>
`, paint("fill", c)))
}

func (s *SVGSurface) FillRect(x, y, w, h float64, c color.NRGBA) {
	if w <= 0 || h <= 0 {
		return
	}
	s.sb.WriteString(fmt.Sprintf(`<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" %s/>
`, x, y, w, h, paint("fill", c)))
}

func (s *SVGSurface) FillCircle(cx, cy, r float64, c color.NRGBA) {
	if r <= 0 {
		return
	}
	s.sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.2f" %s/>
`, cx, cy, r, paint("fill", c)))
}

func (s *SVGSurface) StrokeCircle(cx, cy, r, width float64, c color.NRGBA) {
	if r <= 0 || width <= 0 {
		return
	}
	s.sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.2f" fill="none" stroke-width="%.2f" %s/>
`, cx, cy, r, width, paint("stroke", c)))
}

// RadialGlow defines a gradient inline so each glow stays self-contained.
func (s *SVGSurface) RadialGlow(cx, cy, r float64, c color.NRGBA) {
	if r <= 0 {
		return
	}
	s.glows++
	id := fmt.Sprintf("glow%d", s.glows)
	s.sb.WriteString(fmt.Sprintf(`<defs><radialGradient id="%s"><stop offset="0" stop-color="%s" stop-opacity="%.3f"/><stop offset="1" stop-color="%s" stop-opacity="0"/></radialGradient></defs>
<circle cx="%.1f" cy="%.1f" r="%.2f" fill="url(#%s)"/>
`, id, rgb(c), float64(c.A)/255, rgb(c), cx, cy, r, id))
}

func (s *SVGSurface) Text(x, y, size float64, str string, c color.NRGBA) {
	if str == "" || size <= 0 {
		return
	}
	s.sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" font-family="monospace" font-size="%.1f" %s>%s</text>
`, x, y, size, paint("fill", c), escape(str)))
}

var escaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")

func escape(s string) string { return escaper.Replace(s) }

// String wraps the recorded elements in a complete document.
func (s *SVGSurface) String() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
`, s.width, s.height, s.width, s.height))
	sb.WriteString(s.sb.String())
	sb.WriteString("</svg>\n")
	return sb.String()
}

// FrameToSVG renders one frame as an SVG document.
func FrameToSVG(f optics.Frame) string {
	s := NewSVGSurface(f.Geometry.Width, f.Geometry.Height)
	scene.Render(s, f)
	return s.String()
}

func WriteSVG(w io.Writer, f optics.Frame) error {
	_, err := io.WriteString(w, FrameToSVG(f))
	return err
}

// CanvasToSVG converts a braille canvas to SVG, one circle per lit dot.
func CanvasToSVG(canvas *viz.Canvas, scale float64) string {
	if canvas == nil {
		return ""
	}
	dw, dh := canvas.Dots()
	width := float64(dw) * scale
	height := float64(dh) * scale

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="%s"/>
<g fill="%s">
`, width, height, width, height, rgb(scene.ColBackground), rgb(scene.ColWavelet)))

	r := scale * 0.4
	for y := 0; y < dh; y++ {
		for x := 0; x < dw; x++ {
			if !canvas.IsSet(x, y) {
				continue
			}
			sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f"/>
`, float64(x)*scale+scale/2, float64(y)*scale+scale/2, r))
		}
	}
	sb.WriteString("</g>\n</svg>")
	return sb.String()
}

// ProfileToSVG plots intensity against screen height as a polyline, with
// intensity on the horizontal axis so the plot reads like the screen.
func ProfileToSVG(samples []optics.Sample, width, height int, strokeColor string) string {
	if len(samples) < 2 {
		return ""
	}
	minY, maxY := samples[0].Y, samples[len(samples)-1].Y
	rangeY := maxY - minY
	if rangeY == 0 {
		rangeY = 1
	}
	pad := 0.05 * float64(width)
	plotW := float64(width) - 2*pad

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
<path fill="none" stroke="%s" stroke-width="1.5" d="M`,
		width, height, width, height, rgb(scene.ColBackground), strokeColor))

	for i, s := range samples {
		x := pad + s.Intensity*plotW
		y := (s.Y - minY) / rangeY * float64(height)
		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
		}
	}

	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}
