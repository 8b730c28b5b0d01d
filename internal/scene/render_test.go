package scene

import (
	"fmt"
	"image/color"
	"reflect"
	"testing"

	"github.com/san-kum/waveoptics/internal/optics"
)

type op struct {
	kind string
	c    color.NRGBA
	text string
	args [4]float64
}

type recorder struct{ ops []op }

func (r *recorder) Clear(c color.NRGBA) { r.ops = append(r.ops, op{kind: "clear", c: c}) }
func (r *recorder) FillRect(x, y, w, h float64, c color.NRGBA) {
	r.ops = append(r.ops, op{kind: "rect", c: c, args: [4]float64{x, y, w, h}})
}
func (r *recorder) FillCircle(cx, cy, rad float64, c color.NRGBA) {
	r.ops = append(r.ops, op{kind: "disc", c: c, args: [4]float64{cx, cy, rad}})
}
func (r *recorder) StrokeCircle(cx, cy, rad, w float64, c color.NRGBA) {
	r.ops = append(r.ops, op{kind: "ring", c: c, args: [4]float64{cx, cy, rad, w}})
}
func (r *recorder) RadialGlow(cx, cy, rad float64, c color.NRGBA) {
	r.ops = append(r.ops, op{kind: "glow", c: c, args: [4]float64{cx, cy, rad}})
}
func (r *recorder) Text(x, y, size float64, s string, c color.NRGBA) {
	r.ops = append(r.ops, op{kind: "text", c: c, text: s, args: [4]float64{x, y, size}})
}

var patternX = optics.NewGeometry(900, 600).PatternX()

// layer classifies a recorded op into the stage of the render pass.
func layer(o op) string {
	switch {
	case o.kind == "clear":
		return "background"
	case o.kind == "rect" && o.args[0] == patternX:
		return "pattern"
	case o.c == ColSource || o.kind == "glow":
		return "source"
	case o.c == ColWavefront:
		return "wavefronts"
	case o.c == ColBarrier:
		return "barrier"
	case o.kind == "ring" || o.c == ColSlit:
		return "wavelets"
	case o.c == ColScreen:
		return "screen"
	case o.kind == "text":
		return "labels"
	}
	return "unknown"
}

func stages(ops []op) []string {
	var out []string
	for _, o := range ops {
		l := layer(o)
		if len(out) == 0 || out[len(out)-1] != l {
			out = append(out, l)
		}
	}
	return out
}

func frame(mode optics.SlitMode, t float64) optics.Frame {
	p := optics.DefaultParams()
	p.Mode = mode
	return optics.Frame{Params: p, Geometry: optics.NewGeometry(900, 600), Time: t, Playing: true}
}

func TestRenderOrder(t *testing.T) {
	var r recorder
	Render(&r, frame(optics.Double, 12))

	want := []string{"background", "source", "wavefronts", "barrier", "wavelets", "screen", "pattern", "labels"}
	if got := stages(r.ops); !reflect.DeepEqual(got, want) {
		t.Errorf("expected stages %v, got %v", want, got)
	}
}

func TestRenderCounts(t *testing.T) {
	tests := []struct {
		name     string
		mode     optics.SlitMode
		barriers int
		dots     int
		label    string
	}{
		{"single", optics.Single, 2, 1, "Single Slit"},
		{"double", optics.Double, 3, 2, "Double Slit"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var r recorder
			Render(&r, frame(tt.mode, 0))

			counts := map[string]int{}
			var labels []string
			for _, o := range r.ops {
				counts[layer(o)]++
				if o.kind == "text" {
					labels = append(labels, o.text)
				}
			}
			if counts["barrier"] != tt.barriers {
				t.Errorf("expected %d barrier rects, got %d", tt.barriers, counts["barrier"])
			}
			slitDots := 0
			for _, o := range r.ops {
				if o.c == ColSlit {
					slitDots++
				}
			}
			if slitDots != tt.dots {
				t.Errorf("expected %d slit dots, got %d", tt.dots, slitDots)
			}
			if counts["pattern"] != 300 {
				t.Errorf("expected 300 pattern rows, got %d", counts["pattern"])
			}
			want := []string{"Light Source", tt.label, "Screen", "Interference", "Pattern"}
			if !reflect.DeepEqual(labels, want) {
				t.Errorf("expected labels %v, got %v", want, labels)
			}
		})
	}
}

func TestRenderDeterministic(t *testing.T) {
	var a, b recorder
	Render(&a, frame(optics.Double, 42.5))
	Render(&b, frame(optics.Double, 42.5))
	if !reflect.DeepEqual(a.ops, b.ops) {
		t.Error("identical frames rendered differently")
	}
}

func TestRenderSkips(t *testing.T) {
	Render(nil, frame(optics.Double, 0))

	var r recorder
	f := frame(optics.Double, 0)
	f.Geometry = optics.NewGeometry(0, 0)
	Render(&r, f)
	if len(r.ops) != 0 {
		t.Errorf("expected no ops for an empty canvas, got %d", len(r.ops))
	}
}

func TestRenderPatternColumn(t *testing.T) {
	var r recorder
	f := frame(optics.Single, 0)
	Render(&r, f)

	samples := f.Profile()
	i := 0
	for _, o := range r.ops {
		if layer(o) != "pattern" {
			continue
		}
		want := Gray(samples[i].Brightness)
		if o.c != want || o.args[1] != samples[i].Y {
			t.Fatalf("row %d: expected %v at y=%v, got %v at y=%v", i, want, samples[i].Y, o.c, o.args[1])
		}
		if o.args[0] != f.Geometry.PatternX() {
			t.Fatalf("row %d: x=%v", i, o.args[0])
		}
		i++
	}
	if i != len(samples) {
		t.Errorf("expected %d rows, got %d", len(samples), i)
	}
}

func TestWithAlpha(t *testing.T) {
	tests := []struct {
		a    float64
		want uint8
	}{{0, 0}, {0.3, 77}, {0.4, 102}, {1, 255}, {2, 255}, {-1, 0}}
	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.a), func(t *testing.T) {
			if got := WithAlpha(ColWavelet, tt.a).A; got != tt.want {
				t.Errorf("expected %d, got %d", tt.want, got)
			}
		})
	}
}
