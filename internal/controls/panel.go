package controls

import (
	"math"

	"github.com/san-kum/waveoptics/internal/optics"
	"github.com/san-kum/waveoptics/internal/sim"
)

// Panel lays out the controls and routes pointer and key input to a Store.
type Panel struct {
	store   *sim.Store
	focus   int
	drag    *Slider
	buttons []Button
	tracks  []SliderTrack
}

func NewPanel(store *sim.Store) *Panel {
	return &Panel{store: store}
}

func (p *Panel) Store() *sim.Store { return p.store }

// Sliders returns the sliders visible in the current mode.
func (p *Panel) Sliders() []*Slider {
	out := make([]*Slider, 0, len(sliders))
	for _, s := range sliders {
		if s.DoubleOnly && p.store.Params.Mode != optics.Double {
			continue
		}
		out = append(out, s)
	}
	return out
}

// Focused returns the slider adjusted by the arrow keys.
func (p *Panel) Focused() *Slider {
	vis := p.Sliders()
	if p.focus >= len(vis) {
		p.focus = len(vis) - 1
	}
	return vis[p.focus]
}

func (p *Panel) FocusNext() { p.focus = (p.focus + 1) % len(p.Sliders()) }

func (p *Panel) FocusPrev() {
	n := len(p.Sliders())
	p.focus = (p.focus + n - 1) % n
}

// Nudge moves the focused slider by steps.
func (p *Panel) Nudge(steps int) {
	s := p.Focused()
	s.set(p.store, s.get(p.store)+float64(steps)*s.Range.Step)
}

func (p *Panel) Do(a Action) {
	switch a {
	case ActSingle:
		p.store.SetMode(optics.Single)
	case ActDouble:
		p.store.SetMode(optics.Double)
	case ActPlay:
		p.store.TogglePlay()
	case ActReset:
		p.store.Reset()
	}
}

// Layout places the widgets inside a panel of the given width whose top
// left corner is (x, y). It returns the height used.
func (p *Panel) Layout(x, y, width float64) float64 {
	p.buttons = p.buttons[:0]
	labels := []struct {
		a      Action
		label  string
		active bool
	}{
		{ActSingle, "Single Slit", p.store.Params.Mode == optics.Single},
		{ActDouble, "Double Slit", p.store.Params.Mode == optics.Double},
		{ActPlay, playLabel(p.store.Playing), p.store.Playing},
		{ActReset, "Reset", false},
	}
	bx, by := x, y
	for _, l := range labels {
		if bx > x && bx+ButtonW > x+width {
			bx = x
			by += ButtonH + Gap
		}
		p.buttons = append(p.buttons, Button{
			Action: l.a,
			Bounds: Rect{bx, by, ButtonW, ButtonH},
			Label:  l.label,
			Active: l.active,
		})
		bx += ButtonW + Gap
	}

	vis := p.Sliders()
	cols := int(math.Max(1, math.Min(2, math.Floor((width+Gap)/(minColumn+Gap)))))
	colW := (width - Gap*float64(cols-1)) / float64(cols)
	top := by + ButtonH + Gap*2
	p.tracks = p.tracks[:0]
	for i, s := range vis {
		cx := x + float64(i%cols)*(colW+Gap)
		cy := top + float64(i/cols)*SliderH
		p.tracks = append(p.tracks, SliderTrack{
			Slider: s,
			Bounds: Rect{cx, cy, colW, SliderH},
			Track:  Rect{cx, cy + LabelH, colW, TrackH},
		})
	}
	rows := (len(vis) + cols - 1) / cols
	return top + float64(rows)*SliderH - y
}

func playLabel(playing bool) string {
	if playing {
		return "Pause"
	}
	return "Play"
}

func (p *Panel) Buttons() []Button      { return p.buttons }
func (p *Panel) Tracks() []SliderTrack { return p.tracks }

// Press handles a mouse-down. It reports whether a widget was hit.
func (p *Panel) Press(x, y float64) bool {
	for _, b := range p.buttons {
		if b.Bounds.Contains(x, y) {
			p.Do(b.Action)
			return true
		}
	}
	for _, t := range p.tracks {
		if t.Bounds.Contains(x, y) {
			p.drag = t.Slider
			p.setFocus(t.Slider)
			p.Drag(x)
			return true
		}
	}
	return false
}

// Drag moves the slider grabbed by Press to the pointer.
func (p *Panel) Drag(x float64) {
	if p.drag == nil {
		return
	}
	for _, t := range p.tracks {
		if t.Slider != p.drag || t.Track.W <= 0 {
			continue
		}
		frac := (x - t.Track.X) / t.Track.W
		t.set(p.store, t.Range.At(frac))
	}
}

func (p *Panel) Release() { p.drag = nil }

func (p *Panel) Dragging() bool { return p.drag != nil }

func (p *Panel) setFocus(s *Slider) {
	for i, v := range p.Sliders() {
		if v == s {
			p.focus = i
		}
	}
}

// Key applies a key binding named as Bubble Tea names keys. It reports
// whether the key asks to quit.
func (p *Panel) Key(k string) (quit bool) {
	switch k {
	case " ", "space":
		p.Do(ActPlay)
	case "r", "R":
		p.Do(ActReset)
	case "1":
		p.Do(ActSingle)
	case "2":
		p.Do(ActDouble)
	case "tab", "down", "j":
		p.FocusNext()
	case "shift+tab", "up", "k":
		p.FocusPrev()
	case "right", "l", "+", "=":
		p.Nudge(1)
	case "left", "h", "-":
		p.Nudge(-1)
	case "q", "Q", "ctrl+c", "esc":
		return true
	}
	return false
}
