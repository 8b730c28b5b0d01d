package gui

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// surface draws scene primitives into the window, offset to the canvas
// rectangle.
type surface struct {
	ox, oy float32
	font   rl.Font
}

func toRL(c color.NRGBA) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}

func (s *surface) at(x, y float64) rl.Vector2 {
	return rl.NewVector2(s.ox+float32(x), s.oy+float32(y))
}

func (s *surface) Clear(c color.NRGBA) {
	w, h := rl.GetScreenWidth(), rl.GetScreenHeight()
	rl.DrawRectangle(0, 0, int32(w), int32(h), toRL(c))
}

func (s *surface) FillRect(x, y, w, h float64, c color.NRGBA) {
	p := s.at(x, y)
	rl.DrawRectangleRec(rl.NewRectangle(p.X, p.Y, float32(w), float32(h)), toRL(c))
}

func (s *surface) FillCircle(cx, cy, r float64, c color.NRGBA) {
	rl.DrawCircleV(s.at(cx, cy), float32(r), toRL(c))
}

func (s *surface) StrokeCircle(cx, cy, r, width float64, c color.NRGBA) {
	inner := float32(r - width/2)
	if inner < 0 {
		inner = 0
	}
	rl.DrawRing(s.at(cx, cy), inner, float32(r+width/2), 0, 360, 96, toRL(c))
}

func (s *surface) RadialGlow(cx, cy, r float64, c color.NRGBA) {
	edge := c
	edge.A = 0
	p := s.at(cx, cy)
	rl.DrawCircleGradient(int32(p.X), int32(p.Y), float32(r), toRL(c), toRL(edge))
}

func (s *surface) Text(x, y, size float64, str string, c color.NRGBA) {
	// raylib places text by its top edge.
	p := s.at(x, y-size*0.8)
	rl.DrawTextEx(s.font, str, p, float32(size), 1, toRL(c))
}
