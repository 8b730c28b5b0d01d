package optics

import "math"

// Ring animation constants. Rings are cosmetic; radii grow linearly in time
// and wrap around.
const (
	RingSpeed        = 2.0
	WavefrontCount   = 10
	WaveletCount     = 15
	WavefrontAlpha   = 0.4
	WaveletMaxAlpha  = 0.3
	wavefrontOverrun = 50.0
	waveletMinRadius = 5.0
)

// Ring is one circle of a wavefront or wavelet family.
type Ring struct {
	Radius float64
	Alpha  float64
}

// Wavefronts emitted by the source, limited to the region left of the barrier.
func Wavefronts(p Params, g Geometry, t float64) []Ring {
	reach := g.SlitX - g.SourceX
	period := reach + wavefrontOverrun
	if period <= 0 {
		return nil
	}
	rings := make([]Ring, 0, WavefrontCount)
	for i := 0; i < WavefrontCount; i++ {
		r := math.Mod(t*RingSpeed+float64(i)*p.Wavelength, period)
		if r < reach {
			rings = append(rings, Ring{Radius: r, Alpha: WavefrontAlpha})
		}
	}
	return rings
}

// Wavelets emitted by a single slit. Alpha fades linearly with radius.
func Wavelets(p Params, g Geometry, t float64) []Ring {
	reach := g.ScreenDistance()
	if reach <= 0 {
		return nil
	}
	rings := make([]Ring, 0, WaveletCount)
	for i := 0; i < WaveletCount; i++ {
		r := math.Mod(t*RingSpeed+float64(i)*p.Wavelength/2, reach)
		if r <= waveletMinRadius {
			continue
		}
		alpha := math.Max(0, WaveletMaxAlpha-r/reach*WaveletMaxAlpha)
		rings = append(rings, Ring{Radius: r, Alpha: alpha})
	}
	return rings
}

// SourcePulse scales the source dot radius over time.
func SourcePulse(t float64) float64 {
	return 0.3 + 0.2*math.Sin(t*0.1)
}
