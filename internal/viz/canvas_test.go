package viz

import (
	"image/color"
	"strings"
	"testing"

	"github.com/san-kum/waveoptics/internal/optics"
	"github.com/san-kum/waveoptics/internal/scene"
)

func TestCanvasSetUnset(t *testing.T) {
	c := NewCanvas(2, 1)
	c.Set(0, 0)
	c.Set(3, 3)
	if c.Grid[0][0] != brailleBlank+0x1 {
		t.Errorf("expected dot 1, got %U", c.Grid[0][0])
	}
	if c.Grid[0][1] != brailleBlank+0x80 {
		t.Errorf("expected dot 8, got %U", c.Grid[0][1])
	}
	if !c.IsSet(3, 3) || c.IsSet(2, 3) {
		t.Error("IsSet disagrees with Set")
	}

	c.Unset(3, 3)
	if c.Grid[0][1] != brailleBlank {
		t.Errorf("expected blank cell, got %U", c.Grid[0][1])
	}

	c.Set(-1, 0)
	c.Set(100, 100)
	if got := c.String(); got != "⠁⠀\n" {
		t.Errorf("unexpected canvas %q", got)
	}
}

func TestCanvasBounds(t *testing.T) {
	c := NewCanvas(3, 2)
	if w, h := c.Dots(); w != 6 || h != 8 {
		t.Fatalf("dots = %dx%d", w, h)
	}
	for _, p := range [][2]int{{5, 7}, {0, 4}} {
		c.Set(p[0], p[1])
		if !c.IsSet(p[0], p[1]) {
			t.Errorf("dot %v not set", p)
		}
	}
	for _, p := range [][2]int{{6, 0}, {0, 8}, {-1, -1}} {
		if c.IsSet(p[0], p[1]) {
			t.Errorf("off-canvas dot %v reported set", p)
		}
	}
	c.Clear()
	if strings.Trim(c.String(), "\u2800\n") != "" {
		t.Error("Clear left dots behind")
	}
	if NewCanvas(-1, 2).String() != "\n\n" {
		t.Error("negative width should give empty rows")
	}
}

func TestSurfaceFill(t *testing.T) {
	c := NewCanvas(10, 5)
	s := NewSurface(c, 20, 20)
	s.Clear(scene.ColBackground)
	s.FillRect(0, 0, 10, 20, color.NRGBA{255, 255, 255, 255})

	w, h := c.Dots()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			want := x < w/2
			if c.IsSet(x, y) != want {
				t.Fatalf("dot (%d,%d): expected %v", x, y, want)
			}
		}
	}

	s.FillRect(0, 0, 20, 20, scene.ColBackground)
	if strings.ContainsAny(s.String(), "⣿") {
		t.Error("opaque dark fill should erase dots")
	}
}

func TestSurfaceDithersGray(t *testing.T) {
	c := NewCanvas(8, 4)
	s := NewSurface(c, 16, 16)
	s.FillRect(0, 0, 16, 16, scene.Gray(128))

	w, h := c.Dots()
	lit := 0
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if c.IsSet(x, y) {
				lit++
			}
		}
	}
	if lit != w*h/2 {
		t.Errorf("expected half the dots lit, got %d of %d", lit, w*h)
	}
}

func TestSurfaceRendersScene(t *testing.T) {
	c := NewCanvas(60, 20)
	s := NewSurface(c, 900, 600)
	f := optics.Frame{Params: optics.DefaultParams(), Geometry: optics.NewGeometry(900, 600)}
	scene.Render(s, f)

	out := s.String()
	for _, label := range []string{scene.LabelSource, "Double Slit", scene.LabelScreen} {
		if !strings.Contains(out, label) {
			t.Errorf("expected label %q in\n%s", label, out)
		}
	}
	if lines := strings.Count(out, "\n"); lines != 20 {
		t.Errorf("expected 20 rows, got %d", lines)
	}
	if s.View() == "" {
		t.Error("expected a coloured view")
	}
}

func TestIntensityColumn(t *testing.T) {
	col := IntensityColumn([]uint8{0, 0, 255, 255, 128, 0}, 3, 2)
	want := []string{"  ", "██", "▒▒"}
	for i := range want {
		if col[i] != want[i] {
			t.Errorf("row %d: expected %q, got %q", i, want[i], col[i])
		}
	}
}

func TestNextTheme(t *testing.T) {
	if got := NextTheme("lab").Name; got != "retro" {
		t.Errorf("expected retro after lab, got %s", got)
	}
	if got := NextTheme("ocean").Name; got != "lab" {
		t.Errorf("expected wrap to lab, got %s", got)
	}
	if got := GetTheme("nope").Name; got != "lab" {
		t.Errorf("expected fallback lab, got %s", got)
	}
}
