package sim

import (
	"context"
	"sync"

	"github.com/san-kum/waveoptics/internal/optics"
)

// Sweep runs one independent Store per parameter set, concurrently.
// Metrics are built per run by newMetrics so runs share no state.
type Sweep struct {
	Params     []optics.Params
	Width      float64
	Height     float64
	StartTime  float64
	NewMetrics func() []Metric
}

func (w *Sweep) Run(ctx context.Context, cfg Config) ([]*Result, error) {
	results := make([]*Result, len(w.Params))
	errs := make([]error, len(w.Params))

	var wg sync.WaitGroup
	for i, p := range w.Params {
		wg.Add(1)
		go func(idx int, p optics.Params) {
			defer wg.Done()

			s := NewStore(p, w.Width, w.Height)
			s.Time = w.StartTime
			r := NewRunner()
			if w.NewMetrics != nil {
				for _, m := range w.NewMetrics() {
					r.AddMetric(m)
				}
			}
			results[idx], errs[idx] = r.Run(ctx, s, cfg)
		}(i, p)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return results, nil
}
