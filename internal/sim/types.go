package sim

import "github.com/san-kum/waveoptics/internal/optics"

// Metric accumulates a scalar over the frames of a run.
type Metric interface {
	Name() string
	Observe(f optics.Frame, intensities []float64)
	Value() float64
	Reset()
}

// Observer is notified of every frame a Runner produces.
type Observer interface {
	OnFrame(f optics.Frame, samples []optics.Sample)
}

// ObserverFunc adapts a plain function to Observer.
type ObserverFunc func(f optics.Frame, samples []optics.Sample)

func (fn ObserverFunc) OnFrame(f optics.Frame, samples []optics.Sample) { fn(f, samples) }

type Config struct {
	Frames int
	// Every keeps one profile out of Every frames in the result. Zero keeps all.
	Every int
}

type Result struct {
	Params   optics.Params
	Geometry optics.Geometry
	Times    []float64
	Profiles [][]optics.Sample
	Metrics  map[string]float64
	Frames   int
}
