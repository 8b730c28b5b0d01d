package optics

// Frame is everything a renderer needs to paint one tick.
type Frame struct {
	Params   Params
	Geometry Geometry
	Time     float64
	Playing  bool
}

func (f Frame) Profile() []Sample {
	return Profile(f.Params, f.Geometry, f.Time)
}

func (f Frame) Slits() []float64 {
	return f.Geometry.SlitPositions(f.Params)
}
