package scene

import (
	"github.com/san-kum/waveoptics/internal/optics"
)

// Size helpers, as fractions of the canvas width with a floor in pixels.
type sizes struct {
	source    float64
	wavefront float64
	barrier   float64
	wavelet   float64
	slitDot   float64
	screen    float64
	font      float64
}

func sizesFor(g optics.Geometry) sizes {
	return sizes{
		source:    g.Scale(0.009, 6),
		wavefront: g.Scale(0.002, 1.5),
		barrier:   g.Scale(0.011, 10),
		wavelet:   g.Scale(0.0017, 1),
		slitDot:   g.Scale(0.004, 3),
		screen:    g.Scale(0.009, 8),
		font:      g.Scale(0.015, 10),
	}
}

const glowScale = 3.5

// Render paints one frame: background, light source, source wavefronts,
// barrier, slit wavelets, screen, interference pattern and labels, in that
// order. A nil surface or an empty canvas draws nothing.
func Render(s Surface, f optics.Frame) {
	if s == nil || f.Geometry.Empty() {
		return
	}
	g := f.Geometry
	sz := sizesFor(g)

	s.Clear(ColBackground)
	drawSource(s, g, sz, f.Time)
	drawWavefronts(s, f, sz)
	drawBarrier(s, f, sz)
	drawWavelets(s, f, sz)
	drawScreen(s, g, sz)
	drawPattern(s, f)
	drawLabels(s, f, sz)
}

func drawSource(s Surface, g optics.Geometry, sz sizes, t float64) {
	s.FillCircle(g.SourceX, g.CenterY, sz.source*optics.SourcePulse(t), ColSource)
	s.RadialGlow(g.SourceX, g.CenterY, sz.source*glowScale, ColGlow)
}

func drawWavefronts(s Surface, f optics.Frame, sz sizes) {
	g := f.Geometry
	for _, r := range optics.Wavefronts(f.Params, g, f.Time) {
		s.StrokeCircle(g.SourceX, g.CenterY, r.Radius, sz.wavefront, ColWavefront)
	}
}

func drawBarrier(s Surface, f optics.Frame, sz sizes) {
	x := f.Geometry.SlitX - sz.barrier/2
	for _, span := range f.Geometry.BarrierSpans(f.Params) {
		s.FillRect(x, span.Top, sz.barrier, span.Height(), ColBarrier)
	}
}

func drawWavelets(s Surface, f optics.Frame, sz sizes) {
	g := f.Geometry
	rings := optics.Wavelets(f.Params, g, f.Time)
	for _, y := range f.Slits() {
		for _, r := range rings {
			s.StrokeCircle(g.SlitX, y, r.Radius, sz.wavelet, WithAlpha(ColWavelet, r.Alpha))
		}
		s.FillCircle(g.SlitX, y, sz.slitDot, ColSlit)
	}
}

func drawScreen(s Surface, g optics.Geometry, sz sizes) {
	s.FillRect(g.ScreenX-sz.screen/2, 0, sz.screen, g.Height, ColScreen)
}

func drawPattern(s Surface, f optics.Frame) {
	g := f.Geometry
	x, w := g.PatternX(), g.PatternWidth()
	step := float64(g.PatternStep())
	for _, smp := range f.Profile() {
		s.FillRect(x, smp.Y, w, step, Gray(smp.Brightness))
	}
}

// Label texts.
const (
	LabelSource  = "Light Source"
	LabelScreen  = "Screen"
	LabelPattern = "Pattern"
	LabelFringes = "Interference"
)

// SlitLabel names the barrier for the current mode.
func SlitLabel(m optics.SlitMode) string {
	if m == optics.Single {
		return "Single Slit"
	}
	return "Double Slit"
}

func drawLabels(s Surface, f optics.Frame, sz sizes) {
	g := f.Geometry
	fs := sz.font
	s.Text(g.SourceX-fs*2, g.CenterY-fs*2, fs, LabelSource, ColLabel)
	s.Text(g.SlitX-fs*2, fs*2, fs, SlitLabel(f.Params.Mode), ColLabel)
	s.Text(g.ScreenX-fs*1.5, fs*2, fs, LabelScreen, ColLabel)

	bottom := g.Height - fs*0.5
	s.Text(g.ScreenX+fs*0.5, bottom-fs, fs, LabelFringes, ColLabel)
	s.Text(g.ScreenX+fs*0.5, bottom, fs, LabelPattern, ColLabel)
}
