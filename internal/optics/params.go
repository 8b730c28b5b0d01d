package optics

import (
	"fmt"
	"math"
	"strings"
)

// SlitMode selects how many apertures the barrier has.
type SlitMode int

const (
	Single SlitMode = iota
	Double
)

func (m SlitMode) String() string {
	switch m {
	case Single:
		return "single"
	case Double:
		return "double"
	default:
		return fmt.Sprintf("SlitMode(%d)", int(m))
	}
}

// Slits returns the number of wavelet sources for the mode.
func (m SlitMode) Slits() int {
	if m == Single {
		return 1
	}
	return 2
}

func (m SlitMode) MarshalText() ([]byte, error) {
	if m != Single && m != Double {
		return nil, fmt.Errorf("%w: %d", ErrUnknownMode, int(m))
	}
	return []byte(m.String()), nil
}

func (m *SlitMode) UnmarshalText(text []byte) error {
	mode, err := ParseSlitMode(string(text))
	if err != nil {
		return err
	}
	*m = mode
	return nil
}

// ParseSlitMode accepts "single"/"1" and "double"/"2", case-insensitively.
func ParseSlitMode(s string) (SlitMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "single", "1":
		return Single, nil
	case "double", "2":
		return Double, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

// Range is the min/max/step of a slider.
type Range struct {
	Min  float64
	Max  float64
	Step float64
}

// Slider ranges of the control panel.
var (
	SpeedRange          = Range{Min: 0.1, Max: 3, Step: 0.1}
	WavelengthRange     = Range{Min: 20, Max: 80, Step: 1}
	SlitWidthRange      = Range{Min: 10, Max: 50, Step: 1}
	SlitSeparationRange = Range{Min: 50, Max: 200, Step: 1}
)

func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// Clamp limits v to the range and snaps it to the nearest step.
func (r Range) Clamp(v float64) float64 {
	if math.IsNaN(v) {
		return r.Min
	}
	if r.Step > 0 {
		v = math.Round(v/r.Step) * r.Step
		v = math.Round(v*1e9) / 1e9
	}
	return math.Max(r.Min, math.Min(r.Max, v))
}

// Fraction maps v onto [0,1] across the range.
func (r Range) Fraction(v float64) float64 {
	if r.Max <= r.Min {
		return 0
	}
	return math.Max(0, math.Min(1, (v-r.Min)/(r.Max-r.Min)))
}

// At is the inverse of Fraction, clamped and snapped.
func (r Range) At(frac float64) float64 {
	return r.Clamp(r.Min + frac*(r.Max-r.Min))
}

// Params holds the user-adjustable simulation parameters.
// SlitSeparation is only meaningful in Double mode.
type Params struct {
	Mode           SlitMode `yaml:"mode" json:"mode"`
	Wavelength     float64  `yaml:"wavelength" json:"wavelength"`
	SlitWidth      float64  `yaml:"slit_width" json:"slit_width"`
	SlitSeparation float64  `yaml:"slit_separation" json:"slit_separation"`
	Speed          float64  `yaml:"speed" json:"speed"`
}

func DefaultParams() Params {
	return Params{
		Mode:           Double,
		Wavelength:     50,
		SlitWidth:      20,
		SlitSeparation: 100,
		Speed:          0.1,
	}
}

// Validate reports the first parameter outside its slider range.
func (p Params) Validate() error {
	if p.Mode != Single && p.Mode != Double {
		return fmt.Errorf("%w: %d", ErrUnknownMode, int(p.Mode))
	}
	checks := []struct {
		field string
		value float64
		rng   Range
	}{
		{"speed", p.Speed, SpeedRange},
		{"wavelength", p.Wavelength, WavelengthRange},
		{"slit_width", p.SlitWidth, SlitWidthRange},
		{"slit_separation", p.SlitSeparation, SlitSeparationRange},
	}
	for _, c := range checks {
		if c.field == "slit_separation" && p.Mode == Single {
			continue
		}
		if math.IsNaN(c.value) || !c.rng.Contains(c.value) {
			return &ParamError{Field: c.field, Value: c.value, Range: c.rng}
		}
	}
	return nil
}

// Clamped returns a copy with every value clamped and snapped to its range.
func (p Params) Clamped() Params {
	if p.Mode != Single {
		p.Mode = Double
	}
	p.Speed = SpeedRange.Clamp(p.Speed)
	p.Wavelength = WavelengthRange.Clamp(p.Wavelength)
	p.SlitWidth = SlitWidthRange.Clamp(p.SlitWidth)
	p.SlitSeparation = SlitSeparationRange.Clamp(p.SlitSeparation)
	return p
}
