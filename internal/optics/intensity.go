package optics

import "math"

// PhaseRate is how fast every wavelet's phase drifts with animation time.
const PhaseRate = 0.1

// Floor of 255·I would turn a numerically exact maximum such as
// 0.9999999999 into 254.
const brightnessEpsilon = 1e-6

// Sample is one point of the screen intensity profile.
type Sample struct {
	Y          float64
	Intensity  float64
	Brightness uint8
}

// Phase of a wavelet that travelled distance at time t.
func Phase(distance, wavelength, t float64) float64 {
	return distance/wavelength*2*math.Pi - t*PhaseRate
}

// PathIntensity superposes unit wavelets with the given path lengths and
// returns the squared mean amplitude in [0,1].
func PathIntensity(distances []float64, wavelength, t float64) float64 {
	if len(distances) == 0 || wavelength <= 0 {
		return 0
	}
	var amp float64
	for _, d := range distances {
		amp += math.Cos(Phase(d, wavelength, t))
	}
	mean := amp / float64(len(distances))
	return math.Min(1, mean*mean)
}

// Intensity at height y on the screen plane.
func Intensity(y float64, p Params, g Geometry, t float64) float64 {
	slits := g.SlitPositions(p)
	dx := g.ScreenDistance()
	distances := make([]float64, len(slits))
	for i, sy := range slits {
		distances[i] = math.Hypot(dx, y-sy)
	}
	return PathIntensity(distances, p.Wavelength, t)
}

// Brightness maps an intensity in [0,1] onto a grey level.
func Brightness(intensity float64) uint8 {
	if math.IsNaN(intensity) || intensity <= 0 {
		return 0
	}
	if intensity >= 1 {
		return 255
	}
	return uint8(math.Floor(intensity*255 + brightnessEpsilon))
}

// Profile samples the screen from top to bottom every PatternStep pixels.
func Profile(p Params, g Geometry, t float64) []Sample {
	if g.Empty() {
		return nil
	}
	step := float64(g.PatternStep())
	out := make([]Sample, 0, int(g.Height/step)+1)
	for y := 0.0; y < g.Height; y += step {
		in := Intensity(y, p, g, t)
		out = append(out, Sample{Y: y, Intensity: in, Brightness: Brightness(in)})
	}
	return out
}

// Intensities extracts the intensity column of a profile.
func Intensities(samples []Sample) []float64 {
	out := make([]float64, len(samples))
	for i, s := range samples {
		out[i] = s.Intensity
	}
	return out
}
