package export

import (
	"errors"
	"image"
	"image/color/palette"
	"image/gif"
	"image/png"
	"io"

	xdraw "golang.org/x/image/draw"

	"github.com/san-kum/waveoptics/internal/optics"
	"github.com/san-kum/waveoptics/internal/raster"
)

var ErrNoFrames = errors.New("no frames recorded")

// Render draws f at its canvas size, then resamples it when scale is
// positive and not 1.
func Render(f optics.Frame, scale float64) *image.RGBA {
	img := raster.Snapshot(f)
	if scale <= 0 || scale == 1 {
		return img
	}
	b := img.Bounds()
	w := int(float64(b.Dx())*scale + 0.5)
	h := int(float64(b.Dy())*scale + 0.5)
	if w < 1 || h < 1 {
		return img
	}
	return raster.Scale(img, w, h)
}

func WritePNG(w io.Writer, f optics.Frame, scale float64) error {
	return png.Encode(w, Render(f, scale))
}

// GIFRecorder collects frames from a run and encodes them as a looping
// animation. It satisfies sim.Observer.
type GIFRecorder struct {
	Scale float64
	// Every keeps one frame out of Every.
	Every int
	// Delay between frames, in hundredths of a second.
	Delay int

	seen   int
	frames []*image.Paletted
}

func NewGIFRecorder(scale float64, every, delay int) *GIFRecorder {
	if every < 1 {
		every = 1
	}
	if delay < 1 {
		delay = 2
	}
	return &GIFRecorder{Scale: scale, Every: every, Delay: delay}
}

func (r *GIFRecorder) OnFrame(f optics.Frame, _ []optics.Sample) {
	r.seen++
	if (r.seen-1)%r.Every != 0 {
		return
	}
	r.Add(f)
}

// Add renders f and appends it unconditionally.
func (r *GIFRecorder) Add(f optics.Frame) {
	img := Render(f, r.Scale)
	pal := image.NewPaletted(img.Bounds(), palette.Plan9)
	xdraw.FloydSteinberg.Draw(pal, pal.Bounds(), img, img.Bounds().Min)
	r.frames = append(r.frames, pal)
}

func (r *GIFRecorder) Len() int { return len(r.frames) }

func (r *GIFRecorder) Encode(w io.Writer) error {
	if len(r.frames) == 0 {
		return ErrNoFrames
	}
	anim := gif.GIF{LoopCount: 0}
	for _, frame := range r.frames {
		anim.Image = append(anim.Image, frame)
		anim.Delay = append(anim.Delay, r.Delay)
	}
	return gif.EncodeAll(w, &anim)
}
