// Package controls is the input surface of the visualization: two mode
// buttons, play/pause, reset and four sliders bound to a sim.Store.
//
// It holds layout, hit testing and key bindings only. The raylib window
// draws the widgets it returns; the terminal UI reuses the key bindings.
package controls

import (
	"fmt"

	"github.com/san-kum/waveoptics/internal/optics"
	"github.com/san-kum/waveoptics/internal/sim"
)

type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

type Action int

const (
	ActSingle Action = iota
	ActDouble
	ActPlay
	ActReset
)

type Button struct {
	Action Action
	Bounds Rect
	Label  string
	Active bool
}

// Slider binds one parameter to its range.
type Slider struct {
	Name       string
	Label      string
	Format     string
	Range      optics.Range
	DoubleOnly bool
	get        func(*sim.Store) float64
	set        func(*sim.Store, float64)
}

func (s *Slider) Value(st *sim.Store) float64 { return s.get(st) }

func (s *Slider) Text(st *sim.Store) string {
	return fmt.Sprintf("%s: "+s.Format, s.Label, s.get(st))
}

var sliders = []*Slider{
	{
		Name: "speed", Label: "Speed", Format: "%.1fx", Range: optics.SpeedRange,
		get: func(s *sim.Store) float64 { return s.Params.Speed },
		set: (*sim.Store).SetSpeed,
	},
	{
		Name: "wavelength", Label: "Wavelength", Format: "%.0f", Range: optics.WavelengthRange,
		get: func(s *sim.Store) float64 { return s.Params.Wavelength },
		set: (*sim.Store).SetWavelength,
	},
	{
		Name: "slit_width", Label: "Slit Width", Format: "%.0f", Range: optics.SlitWidthRange,
		get: func(s *sim.Store) float64 { return s.Params.SlitWidth },
		set: (*sim.Store).SetSlitWidth,
	},
	{
		Name: "slit_separation", Label: "Slit Separation", Format: "%.0f", Range: optics.SlitSeparationRange,
		DoubleOnly: true,
		get:        func(s *sim.Store) float64 { return s.Params.SlitSeparation },
		set:        (*sim.Store).SetSlitSeparation,
	},
}

// SliderTrack is a laid-out slider. Track is the draggable bar below the label.
type SliderTrack struct {
	*Slider
	Bounds Rect
	Track  Rect
}

// Fraction is the knob position along the track.
func (t SliderTrack) Fraction(st *sim.Store) float64 {
	return t.Range.Fraction(t.get(st))
}

// Layout metrics in pixels.
const (
	ButtonW   = 110.0
	ButtonH   = 34.0
	Gap       = 10.0
	SliderH   = 44.0
	LabelH    = 20.0
	TrackH    = 8.0
	minColumn = 220.0
)
