package analysis

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/waveoptics/internal/optics"
)

func synthetic(n int, step, period float64) []optics.Sample {
	out := make([]optics.Sample, n)
	for i := range out {
		y := float64(i) * step
		c := math.Cos(math.Pi * y / period)
		out[i] = optics.Sample{Y: y, Intensity: c * c}
	}
	return out
}

func TestFringesSynthetic(t *testing.T) {
	tests := []struct {
		name   string
		n      int
		step   float64
		period float64
	}{
		{"unit step", 400, 1, 25},
		{"step 2", 300, 2, 40},
		{"long period", 300, 4, 150},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fr, err := Fringes(synthetic(tt.n, tt.step, tt.period))
			if err != nil {
				t.Fatal(err)
			}
			if math.Abs(fr.Spacing-tt.period)/tt.period > 0.02 {
				t.Errorf("spacing = %.2f, want %.2f", fr.Spacing, tt.period)
			}
			if fr.Power <= 0 || fr.Power > 1 {
				t.Errorf("power = %v", fr.Power)
			}
		})
	}
}

func TestFringesErrors(t *testing.T) {
	if _, err := Fringes(synthetic(4, 1, 10)); !errors.Is(err, ErrShortProfile) {
		t.Errorf("short profile: %v", err)
	}
	flat := make([]optics.Sample, 64)
	for i := range flat {
		flat[i] = optics.Sample{Y: float64(i), Intensity: 0.5}
	}
	if _, err := Fringes(flat); !errors.Is(err, ErrNoFringes) {
		t.Errorf("flat profile: %v", err)
	}
	bad := synthetic(16, 1, 4)
	bad[1].Y = bad[0].Y
	if _, err := Fringes(bad); !errors.Is(err, ErrShortProfile) {
		t.Errorf("zero step: %v", err)
	}
}

func TestPowerSpectrumSize(t *testing.T) {
	if got := len(PowerSpectrum(make([]float64, 10))); got != minFFTSize/2+1 {
		t.Errorf("len = %d", got)
	}
	if got := len(PowerSpectrum(make([]float64, 5000))); got != 8192/2+1 {
		t.Errorf("len = %d", got)
	}
}

func TestAveragedProfileRemovesCarrier(t *testing.T) {
	p := optics.DefaultParams()
	p.Mode = optics.Single
	g := optics.NewGeometry(900, 600)
	for _, s := range AveragedProfile(p, g, 3, 16) {
		if math.Abs(s.Intensity-0.5) > 1e-9 {
			t.Fatalf("y=%v: intensity %v, want 0.5", s.Y, s.Intensity)
		}
	}

	p.Mode = optics.Double
	prof := AveragedProfile(p, g, 0, 16)
	centre := prof[len(prof)/2]
	// equal paths: the mean of ((cos φ + cos φ)/2)² over a period is 1/2
	if centre.Y != g.CenterY || math.Abs(centre.Intensity-0.5) > 1e-9 {
		t.Errorf("centre sample %+v, want 0.5", centre)
	}
}

func TestWindow(t *testing.T) {
	s := synthetic(101, 1, 10)
	w := Window(s, 50, 10)
	if len(w) != 21 || w[0].Y != 40 || w[20].Y != 60 {
		t.Errorf("window = %d samples from %v", len(w), w[0].Y)
	}
}

func TestTheoreticalSpacing(t *testing.T) {
	g := optics.NewGeometry(900, 600)
	p := optics.DefaultParams()
	want := 50 * g.ScreenDistance() / 100
	if got := TheoreticalSpacing(p, g); math.Abs(got-want) > 1e-9 {
		t.Errorf("spacing = %v, want %v", got, want)
	}
	p.Mode = optics.Single
	if TheoreticalSpacing(p, g) != 0 {
		t.Error("single slit should have no two-beam spacing")
	}
}

func TestCompareMatchesSmallAngle(t *testing.T) {
	tests := []struct {
		name       string
		w, h       float64
		wavelength float64
		separation float64
		half       float64
		tol        float64
	}{
		{"default canvas", 900, 600, 20, 200, 120, 0.08},
		{"wide canvas", 3600, 1200, 20, 200, 300, 0.03},
		{"longer wave", 3600, 1200, 30, 200, 400, 0.03},
		{"closer slits", 3600, 1200, 20, 150, 400, 0.03},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := optics.DefaultParams()
			p.Wavelength = tt.wavelength
			p.SlitSeparation = tt.separation
			c, err := Compare(p, optics.NewGeometry(tt.w, tt.h), tt.half)
			if err != nil {
				t.Fatal(err)
			}
			if c.RelError > tt.tol {
				t.Errorf("measured %.2f vs %.2f (err %.3f)", c.Measured, c.Theoretical, c.RelError)
			}
		})
	}
}

func TestCompareErrors(t *testing.T) {
	p := optics.DefaultParams()
	if _, err := Compare(p, optics.Geometry{}, 0); !errors.Is(err, optics.ErrEmptyGeometry) {
		t.Errorf("empty geometry: %v", err)
	}
	p.Wavelength = 500
	if _, err := Compare(p, optics.NewGeometry(900, 600), 0); !errors.Is(err, optics.ErrParameterBounds) {
		t.Errorf("bad params: %v", err)
	}
	p = optics.DefaultParams()
	p.Mode = optics.Single
	if _, err := Compare(p, optics.NewGeometry(900, 600), 0); !errors.Is(err, ErrNoFringes) {
		t.Errorf("single slit: %v", err)
	}
}
