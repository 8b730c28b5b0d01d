package raster

import "math"

type pt struct{ x, y float64 }

// circle approximates a circle by a polygon with roughly 1.5px edges.
// reverse flips the winding so the contour cuts a hole in an outer one.
func circle(cx, cy, r float64, reverse bool) []pt {
	n := int(math.Ceil(2 * math.Pi * r / 1.5))
	if n < 12 {
		n = 12
	} else if n > 720 {
		n = 720
	}
	out := make([]pt, n)
	for i := range out {
		a := 2 * math.Pi * float64(i) / float64(n)
		if reverse {
			a = -a
		}
		out[i] = pt{cx + r*math.Cos(a), cy + r*math.Sin(a)}
	}
	return out
}

// clip cuts a closed polygon to [0,w]x[0,h] (Sutherland-Hodgman). The
// rasterizer only accumulates coverage inside its bounds.
func clip(poly []pt, w, h float64) []pt {
	edges := []struct {
		inside func(pt) bool
		cross  func(a, b pt) pt
	}{
		{func(p pt) bool { return p.x >= 0 }, func(a, b pt) pt { return atX(a, b, 0) }},
		{func(p pt) bool { return p.x <= w }, func(a, b pt) pt { return atX(a, b, w) }},
		{func(p pt) bool { return p.y >= 0 }, func(a, b pt) pt { return atY(a, b, 0) }},
		{func(p pt) bool { return p.y <= h }, func(a, b pt) pt { return atY(a, b, h) }},
	}
	for _, e := range edges {
		if len(poly) == 0 {
			return nil
		}
		out := make([]pt, 0, len(poly)+4)
		prev := poly[len(poly)-1]
		for _, cur := range poly {
			switch {
			case e.inside(cur) && e.inside(prev):
				out = append(out, cur)
			case e.inside(cur):
				out = append(out, e.cross(prev, cur), cur)
			case e.inside(prev):
				out = append(out, e.cross(prev, cur))
			}
			prev = cur
		}
		poly = out
	}
	return poly
}

func atX(a, b pt, x float64) pt {
	t := (x - a.x) / (b.x - a.x)
	return pt{x, a.y + t*(b.y-a.y)}
}

func atY(a, b pt, y float64) pt {
	t := (y - a.y) / (b.y - a.y)
	return pt{a.x + t*(b.x-a.x), y}
}
