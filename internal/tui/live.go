package tui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/san-kum/waveoptics/internal/optics"
	"github.com/san-kum/waveoptics/internal/scene"
	"github.com/san-kum/waveoptics/internal/viz"
)

const (
	clearScreen = "\033[2J\033[H"
	hideCursor  = "\033[?25l"
	showCursor  = "\033[?25h"
)

// LiveRenderer prints frames of a headless run to a terminal, throttled to
// frameRate. It is a sim.Observer.
type LiveRenderer struct {
	out       io.Writer
	frameRate int
	lastFrame time.Time
	cols      int
	rows      int
}

func NewLiveRenderer(out io.Writer, frameRate, cols, rows int) *LiveRenderer {
	if frameRate <= 0 {
		frameRate = 30
	}
	return &LiveRenderer{out: out, frameRate: frameRate, cols: cols, rows: rows}
}

func (r *LiveRenderer) OnFrame(f optics.Frame, samples []optics.Sample) {
	elapsed := time.Since(r.lastFrame)
	if elapsed < time.Second/time.Duration(r.frameRate) {
		return
	}
	r.lastFrame = time.Now()
	fmt.Fprint(r.out, r.render(f, samples))
}

func (r *LiveRenderer) render(f optics.Frame, samples []optics.Sample) string {
	canvas := viz.NewCanvas(r.cols, r.rows)
	surface := viz.NewSurface(canvas, f.Geometry.Width, f.Geometry.Height)
	scene.Render(surface, f)

	bright := make([]uint8, len(samples))
	for i, s := range samples {
		bright[i] = s.Brightness
	}
	column := viz.IntensityColumn(bright, r.rows, patternCols)

	var b strings.Builder
	b.WriteString(clearScreen)
	b.WriteString(fmt.Sprintf("  %s  λ=%.0f  t=%.2f\n", scene.SlitLabel(f.Params.Mode), f.Params.Wavelength, f.Time))
	b.WriteString("  " + strings.Repeat("-", r.cols+patternCols+1) + "\n")

	lines := strings.Split(strings.TrimRight(surface.String(), "\n"), "\n")
	for i, line := range lines {
		b.WriteString("  " + line + " " + column[i] + "\n")
	}

	b.WriteString("  " + strings.Repeat("-", r.cols+patternCols+1) + "\n")
	return b.String()
}

func (r *LiveRenderer) Start() { fmt.Fprint(r.out, hideCursor) }
func (r *LiveRenderer) Stop()  { fmt.Fprint(r.out, showCursor) }
