package analysis

import (
	"math"

	"github.com/san-kum/waveoptics/internal/optics"
)

// TheoreticalSpacing is the small-angle fringe spacing λ·L/d for a double
// slit. A single slit has no two-beam fringes and returns 0.
func TheoreticalSpacing(p optics.Params, g optics.Geometry) float64 {
	if p.Mode != optics.Double || p.SlitSeparation <= 0 {
		return 0
	}
	return p.Wavelength * g.ScreenDistance() / p.SlitSeparation
}

type Comparison struct {
	Params      optics.Params
	Measured    float64
	Theoretical float64
	// RelError is |measured − theoretical| / theoretical.
	RelError float64
	Fringe   Fringe
}

// averageSteps samples one phase period; any count of three or more cancels
// the carrier exactly.
const averageSteps = 16

// Compare measures the fringe spacing of the time-averaged profile within
// half pixels of the axis and sets it against the small-angle estimate.
func Compare(p optics.Params, g optics.Geometry, half float64) (Comparison, error) {
	if err := p.Validate(); err != nil {
		return Comparison{}, err
	}
	if g.Empty() {
		return Comparison{}, optics.ErrEmptyGeometry
	}
	prof := AveragedProfile(p, g, 0, averageSteps)
	if half > 0 {
		prof = Window(prof, g.CenterY, half)
	}
	fr, err := Fringes(prof)
	c := Comparison{Params: p, Theoretical: TheoreticalSpacing(p, g), Fringe: fr}
	if err != nil {
		return c, err
	}
	c.Measured = fr.Spacing
	if c.Theoretical > 0 {
		c.RelError = math.Abs(c.Measured-c.Theoretical) / c.Theoretical
	}
	return c, nil
}
