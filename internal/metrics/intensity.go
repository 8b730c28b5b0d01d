package metrics

import (
	"gonum.org/v1/gonum/floats"

	"github.com/san-kum/waveoptics/internal/optics"
)

// MeanIntensity averages the mean screen intensity over all observed frames.
type MeanIntensity struct {
	name    string
	sum     float64
	samples int
}

func NewMeanIntensity() *MeanIntensity {
	return &MeanIntensity{name: "mean_intensity"}
}

func (m *MeanIntensity) Name() string { return m.name }

func (m *MeanIntensity) Observe(f optics.Frame, intensities []float64) {
	if len(intensities) == 0 {
		return
	}
	m.sum += floats.Sum(intensities) / float64(len(intensities))
	m.samples++
}

func (m *MeanIntensity) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return m.sum / float64(m.samples)
}

func (m *MeanIntensity) Reset() {
	m.sum = 0
	m.samples = 0
}
