package metrics

import (
	"math"
	"reflect"
	"testing"

	"github.com/san-kum/waveoptics/internal/optics"
)

func TestFringeVisibility(t *testing.T) {
	tests := []struct {
		name string
		in   []float64
		want float64
	}{
		{"empty", nil, 0},
		{"dark", []float64{0, 0, 0}, 0},
		{"flat", []float64{0.4, 0.4}, 0},
		{"full contrast", []float64{0, 1, 0}, 1},
		{"partial", []float64{0.25, 0.75}, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FringeVisibility(tt.in); math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("expected %f, got %f", tt.want, got)
			}
		})
	}
}

func TestPeaks(t *testing.T) {
	tests := []struct {
		name string
		in   []float64
		frac float64
		want []int
	}{
		{"empty", nil, 0.5, nil},
		{"single", []float64{0, 1, 0}, 0.5, []int{1}},
		{"edges", []float64{1, 0, 0, 1}, 0.5, []int{0, 3}},
		{"plateau", []float64{0, 1, 1, 0, 0.8, 0}, 0.5, []int{1, 4}},
		{"below cut", []float64{0, 1, 0, 0.2, 0}, 0.5, []int{1}},
		{"rising shoulder", []float64{0.5, 0.5, 1}, 0.1, []int{2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Peaks(tt.in, tt.frac); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestMetricsReset(t *testing.T) {
	f := optics.Frame{Params: optics.DefaultParams(), Geometry: optics.NewGeometry(900, 600)}
	in := optics.Intensities(f.Profile())

	ms := []interface {
		Observe(optics.Frame, []float64)
		Value() float64
		Reset()
	}{NewMeanIntensity(), NewVisibility(), NewPeakCount(0.5)}

	for _, m := range ms {
		m.Observe(f, in)
		if m.Value() <= 0 {
			t.Errorf("%T: expected positive value, got %f", m, m.Value())
		}
		m.Reset()
		if m.Value() != 0 {
			t.Errorf("%T: expected 0 after reset, got %f", m, m.Value())
		}
	}
}

func TestDoubleSlitHasManyFringes(t *testing.T) {
	f := optics.Frame{Params: optics.DefaultParams(), Geometry: optics.NewGeometry(900, 600)}
	in := optics.Intensities(f.Profile())

	if v := FringeVisibility(in); v < 0.9 {
		t.Errorf("expected high visibility for a double slit, got %f", v)
	}
	if n := len(Peaks(in, 0.5)); n < 3 {
		t.Errorf("expected several bright fringes, got %d", n)
	}
}
