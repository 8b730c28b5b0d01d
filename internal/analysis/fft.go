package analysis

import (
	"errors"
	"math"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
	"github.com/mjibson/go-dsp/window"
	"gonum.org/v1/gonum/floats"

	"github.com/san-kum/waveoptics/internal/optics"
)

// Profiles are zero-padded to at least this many points so the peak bin
// lands close to the true frequency.
const minFFTSize = 4096

var (
	ErrShortProfile = errors.New("profile too short")
	ErrNoFringes    = errors.New("no fringes in profile")
)

// Fringe is the dominant periodic component of a profile.
type Fringe struct {
	Frequency float64 // cycles per pixel
	Spacing   float64 // pixels
	// Power of the peak relative to the whole spectrum.
	Power float64
}

func nextPow2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

// PowerSpectrum returns |X(k)| for k in [0, N/2] of the mean-removed,
// Hann-windowed data zero-padded to N points.
func PowerSpectrum(data []float64) []float64 {
	n := nextPow2(max(len(data), minFFTSize))
	x := make([]float64, n)
	copy(x, data)
	if len(data) > 0 {
		mean := floats.Sum(data) / float64(len(data))
		floats.AddConst(-mean, x[:len(data)])
		window.Apply(x[:len(data)], window.Hann)
	}

	spec := fft.FFTReal(x)
	ps := make([]float64, n/2+1)
	for i := range ps {
		ps[i] = cmplx.Abs(spec[i])
	}
	return ps
}

// Fringes finds the dominant spatial frequency of an evenly sampled profile.
// Components with fewer than two cycles across the profile are ignored.
func Fringes(samples []optics.Sample) (Fringe, error) {
	if len(samples) < 8 {
		return Fringe{}, ErrShortProfile
	}
	step := samples[1].Y - samples[0].Y
	if step <= 0 {
		return Fringe{}, ErrShortProfile
	}

	ps := PowerSpectrum(optics.Intensities(samples))
	n := 2 * (len(ps) - 1)
	lo := int(math.Ceil(2 * float64(n) / float64(len(samples))))
	if lo >= len(ps) {
		return Fringe{}, ErrShortProfile
	}

	band := ps[lo:]
	k := floats.MaxIdx(band)
	total := floats.Sum(ps)
	if band[k] < 1e-9 || total == 0 {
		return Fringe{}, ErrNoFringes
	}

	freq := float64(k+lo) / (float64(n) * step)
	return Fringe{
		Frequency: freq,
		Spacing:   1 / freq,
		Power:     band[k] / total,
	}, nil
}

// Window keeps the samples within half pixels of center.
func Window(samples []optics.Sample, center, half float64) []optics.Sample {
	var out []optics.Sample
	for _, s := range samples {
		if math.Abs(s.Y-center) <= half {
			out = append(out, s)
		}
	}
	return out
}

// PhasePeriod is the animation time over which every wavelet's phase turns
// once.
const PhasePeriod = 2 * math.Pi / optics.PhaseRate

// AveragedProfile is the profile a slow detector would see: the mean of
// steps profiles spread evenly over one phase period starting at t0.
func AveragedProfile(p optics.Params, g optics.Geometry, t0 float64, steps int) []optics.Sample {
	if steps < 3 {
		steps = 3
	}
	var acc []float64
	var base []optics.Sample
	for i := 0; i < steps; i++ {
		t := t0 + PhasePeriod*float64(i)/float64(steps)
		prof := optics.Profile(p, g, t)
		if base == nil {
			base = prof
			acc = make([]float64, len(prof))
		}
		floats.Add(acc, optics.Intensities(prof))
	}
	if len(base) == 0 {
		return nil
	}
	floats.Scale(1/float64(steps), acc)

	out := make([]optics.Sample, len(base))
	for i, s := range base {
		out[i] = optics.Sample{Y: s.Y, Intensity: acc[i], Brightness: optics.Brightness(acc[i])}
	}
	return out
}
