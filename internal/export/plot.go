package export

import (
	"fmt"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/waveoptics/internal/optics"
)

// PlotProfile draws the intensity profile as an ASCII line graph, top of the
// screen on the left.
func PlotProfile(samples []optics.Sample, width, height int, caption string) string {
	if len(samples) == 0 {
		return ""
	}
	data := optics.Intensities(samples)
	if width <= 0 {
		width = 80
	}
	if height <= 0 {
		height = 10
	}
	return asciigraph.Plot(data,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.LowerBound(0),
		asciigraph.UpperBound(1),
		asciigraph.Caption(caption),
	)
}

// ProfileCaption describes the parameters a profile was computed with.
func ProfileCaption(f optics.Frame) string {
	if f.Params.Mode == optics.Single {
		return fmt.Sprintf("intensity, single slit, λ=%.0f w=%.0f t=%.1f",
			f.Params.Wavelength, f.Params.SlitWidth, f.Time)
	}
	return fmt.Sprintf("intensity, double slit, λ=%.0f w=%.0f d=%.0f t=%.1f",
		f.Params.Wavelength, f.Params.SlitWidth, f.Params.SlitSeparation, f.Time)
}
