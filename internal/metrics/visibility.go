package metrics

import (
	"gonum.org/v1/gonum/floats"

	"github.com/san-kum/waveoptics/internal/optics"
)

// FringeVisibility is (Imax-Imin)/(Imax+Imin) of one profile. A dark profile
// has visibility 0.
func FringeVisibility(intensities []float64) float64 {
	if len(intensities) == 0 {
		return 0
	}
	hi, lo := floats.Max(intensities), floats.Min(intensities)
	if hi+lo <= 0 {
		return 0
	}
	return (hi - lo) / (hi + lo)
}

// Visibility averages FringeVisibility over the observed frames.
type Visibility struct {
	name    string
	sum     float64
	samples int
}

func NewVisibility() *Visibility {
	return &Visibility{name: "visibility"}
}

func (v *Visibility) Name() string { return v.name }

func (v *Visibility) Observe(f optics.Frame, intensities []float64) {
	if len(intensities) == 0 {
		return
	}
	v.sum += FringeVisibility(intensities)
	v.samples++
}

func (v *Visibility) Value() float64 {
	if v.samples == 0 {
		return 0
	}
	return v.sum / float64(v.samples)
}

func (v *Visibility) Reset() {
	v.sum = 0
	v.samples = 0
}
