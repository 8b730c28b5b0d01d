package sim

import "github.com/san-kum/waveoptics/internal/optics"

// Store is the mutable state of one running visualization. Front ends mutate
// it from their input handlers and read it once per tick through Frame.
type Store struct {
	Params  optics.Params
	Time    float64
	Playing bool
	Width   float64
	Height  float64
}

func NewStore(p optics.Params, width, height float64) *Store {
	return &Store{
		Params:  p.Clamped(),
		Playing: true,
		Width:   width,
		Height:  height,
	}
}

func (s *Store) TogglePlay() { s.Playing = !s.Playing }
func (s *Store) Play()       { s.Playing = true }
func (s *Store) Pause()      { s.Playing = false }

// Reset rewinds the clock. Parameters and the play state are kept.
func (s *Store) Reset() { s.Time = 0 }

func (s *Store) SetMode(m optics.SlitMode) {
	if m != optics.Single {
		m = optics.Double
	}
	s.Params.Mode = m
}

func (s *Store) SetWavelength(v float64) {
	s.Params.Wavelength = optics.WavelengthRange.Clamp(v)
}

func (s *Store) SetSlitWidth(v float64) {
	s.Params.SlitWidth = optics.SlitWidthRange.Clamp(v)
}

func (s *Store) SetSlitSeparation(v float64) {
	s.Params.SlitSeparation = optics.SlitSeparationRange.Clamp(v)
}

func (s *Store) SetSpeed(v float64) {
	s.Params.Speed = optics.SpeedRange.Clamp(v)
}

func (s *Store) Resize(width, height float64) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	s.Width, s.Height = width, height
}

func (s *Store) Geometry() optics.Geometry {
	return optics.NewGeometry(s.Width, s.Height)
}

// Frame snapshots the current state.
func (s *Store) Frame() optics.Frame {
	return optics.Frame{
		Params:   s.Params,
		Geometry: s.Geometry(),
		Time:     s.Time,
		Playing:  s.Playing,
	}
}

// Tick advances the clock by one frame if playing and returns the new time.
func (s *Store) Tick() float64 {
	if s.Playing {
		s.Time += s.Params.Speed
	}
	return s.Time
}
