package sim

import (
	"context"
	"fmt"

	"github.com/san-kum/waveoptics/internal/optics"
)

// Runner drives a Store without a window, the same way a front end does:
// snapshot a frame, hand it out, then tick.
type Runner struct {
	metrics   []Metric
	observers []Observer
}

func NewRunner() *Runner {
	return &Runner{
		metrics:   make([]Metric, 0),
		observers: make([]Observer, 0),
	}
}

func (r *Runner) AddMetric(m Metric)     { r.metrics = append(r.metrics, m) }
func (r *Runner) AddObserver(o Observer) { r.observers = append(r.observers, o) }

func (r *Runner) Run(ctx context.Context, s *Store, cfg Config) (*Result, error) {
	if err := validateConfig(s, cfg); err != nil {
		return nil, err
	}

	every := cfg.Every
	if every <= 0 {
		every = 1
	}

	result := &Result{
		Params:   s.Params,
		Geometry: s.Geometry(),
		Times:    make([]float64, 0, cfg.Frames/every+1),
		Profiles: make([][]optics.Sample, 0, cfg.Frames/every+1),
		Metrics:  make(map[string]float64),
	}

	for _, m := range r.metrics {
		m.Reset()
	}

	for i := 0; i < cfg.Frames; i++ {
		select {
		case <-ctx.Done():
			r.collect(result)
			return result, ctx.Err()
		default:
		}

		f := s.Frame()
		samples := f.Profile()
		intensities := optics.Intensities(samples)

		for _, m := range r.metrics {
			m.Observe(f, intensities)
		}
		for _, obs := range r.observers {
			obs.OnFrame(f, samples)
		}

		if i%every == 0 {
			result.Times = append(result.Times, f.Time)
			result.Profiles = append(result.Profiles, samples)
		}

		s.Tick()
		result.Frames++
	}

	r.collect(result)
	return result, nil
}

func (r *Runner) collect(result *Result) {
	for _, m := range r.metrics {
		result.Metrics[m.Name()] = m.Value()
	}
}

func validateConfig(s *Store, cfg Config) error {
	if cfg.Frames <= 0 {
		return fmt.Errorf("frames must be positive, got %d", cfg.Frames)
	}
	if s.Geometry().Empty() {
		return fmt.Errorf("run %dx%d canvas: %w", int(s.Width), int(s.Height), optics.ErrEmptyGeometry)
	}
	if err := s.Params.Validate(); err != nil {
		return fmt.Errorf("invalid parameters: %w", err)
	}
	return nil
}
