package optics

import "math"

// Layout fractions of the canvas.
const (
	sourceFrac = 0.11
	slitFrac   = 0.39
	screenFrac = 0.83
	centerFrac = 0.5
)

// Responsive sizing constants.
const (
	MobileBreakpoint = 768.0
	containerPadding = 32.0
	desktopMaxWidth  = 900.0
	desktopMaxHeight = 600.0
	desktopAspect    = 0.67
	mobileMaxWidth   = 500.0
	mobileMaxHeight  = 500.0
	mobileAspect     = 1.2
	patternSamples   = 300.0
)

// Geometry is the horizontal layout of source, barrier and screen plus the
// vertical axis of symmetry. It is recomputed whenever the canvas is resized.
type Geometry struct {
	Width   float64
	Height  float64
	SourceX float64
	SlitX   float64
	ScreenX float64
	CenterY float64
}

func NewGeometry(width, height float64) Geometry {
	return Geometry{
		Width:   width,
		Height:  height,
		SourceX: width * sourceFrac,
		SlitX:   width * slitFrac,
		ScreenX: width * screenFrac,
		CenterY: height * centerFrac,
	}
}

// FitCanvas sizes the canvas from the width of its container and of the
// whole viewport. Narrow viewports get a taller, smaller canvas.
func FitCanvas(containerWidth, viewportWidth float64) (width, height float64) {
	mobile := viewportWidth < MobileBreakpoint
	maxWidth := desktopMaxWidth
	if mobile {
		maxWidth = mobileMaxWidth
	}
	width = math.Max(0, math.Min(containerWidth-containerPadding, maxWidth))
	if mobile {
		height = math.Min(width*mobileAspect, mobileMaxHeight)
	} else {
		height = math.Min(width*desktopAspect, desktopMaxHeight)
	}
	return width, height
}

func (g Geometry) Empty() bool {
	return g.Width <= 0 || g.Height <= 0
}

// Scale returns frac of the canvas width, but never less than min.
func (g Geometry) Scale(frac, min float64) float64 {
	return math.Max(min, g.Width*frac)
}

// ScreenDistance is the horizontal distance from the barrier to the screen.
func (g Geometry) ScreenDistance() float64 {
	return g.ScreenX - g.SlitX
}

// SlitPositions returns the y coordinate of every active slit.
func (g Geometry) SlitPositions(p Params) []float64 {
	if p.Mode == Single {
		return []float64{g.CenterY}
	}
	half := p.SlitSeparation / 2
	return []float64{g.CenterY - half, g.CenterY + half}
}

// Span is a vertical interval [Top, Bottom).
type Span struct {
	Top    float64
	Bottom float64
}

func (s Span) Height() float64 { return s.Bottom - s.Top }

// BarrierSpans returns the opaque parts of the barrier, top to bottom.
func (g Geometry) BarrierSpans(p Params) []Span {
	hw := p.SlitWidth / 2
	var spans []Span
	if p.Mode == Single {
		spans = []Span{
			{Top: 0, Bottom: g.CenterY - hw},
			{Top: g.CenterY + hw, Bottom: g.Height},
		}
	} else {
		hs := p.SlitSeparation / 2
		spans = []Span{
			{Top: 0, Bottom: g.CenterY - hs - hw},
			{Top: g.CenterY - hs + hw, Bottom: g.CenterY + hs - hw},
			{Top: g.CenterY + hs + hw, Bottom: g.Height},
		}
	}
	out := spans[:0]
	for _, s := range spans {
		if s.Height() > 0 {
			out = append(out, s)
		}
	}
	return out
}

// PatternStep is the vertical sampling step of the intensity pattern.
func (g Geometry) PatternStep() int {
	return int(math.Max(1, math.Ceil(g.Height/patternSamples)))
}

// PatternX is the left edge of the intensity strip.
func (g Geometry) PatternX() float64 {
	return g.ScreenX + g.Scale(0.011, 5)
}

func (g Geometry) PatternWidth() float64 {
	return g.Scale(0.033, 20)
}
