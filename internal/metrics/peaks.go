package metrics

import (
	"gonum.org/v1/gonum/floats"

	"github.com/san-kum/waveoptics/internal/optics"
)

// Peaks returns the indices of local maxima whose value is at least
// frac of the profile maximum. A flat run counts once, at its first index.
func Peaks(intensities []float64, frac float64) []int {
	n := len(intensities)
	if n == 0 {
		return nil
	}
	cut := frac * floats.Max(intensities)
	var out []int
	for i := 0; i < n; i++ {
		v := intensities[i]
		if v <= 0 || v < cut {
			continue
		}
		if i > 0 && intensities[i-1] >= v {
			continue
		}
		j := i
		for j+1 < n && intensities[j+1] == v {
			j++
		}
		if j+1 < n && intensities[j+1] > v {
			continue
		}
		out = append(out, i)
		i = j
	}
	return out
}

// PeakCount is the mean number of bright fringes per frame.
type PeakCount struct {
	name    string
	frac    float64
	total   int
	samples int
}

func NewPeakCount(frac float64) *PeakCount {
	return &PeakCount{name: "peak_count", frac: frac}
}

func (p *PeakCount) Name() string { return p.name }

func (p *PeakCount) Observe(f optics.Frame, intensities []float64) {
	p.total += len(Peaks(intensities, p.frac))
	p.samples++
}

func (p *PeakCount) Value() float64 {
	if p.samples == 0 {
		return 0
	}
	return float64(p.total) / float64(p.samples)
}

func (p *PeakCount) Reset() {
	p.total = 0
	p.samples = 0
}
