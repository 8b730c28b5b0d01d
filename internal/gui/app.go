package gui

import (
	"fmt"
	"math"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/sirupsen/logrus"

	"github.com/san-kum/waveoptics/internal/controls"
	"github.com/san-kum/waveoptics/internal/optics"
	"github.com/san-kum/waveoptics/internal/scene"
	"github.com/san-kum/waveoptics/internal/sim"
)

var (
	ColBg      = rl.NewColor(18, 18, 20, 255)
	ColPanel   = rl.NewColor(28, 28, 32, 255)
	ColButton  = rl.NewColor(45, 45, 52, 255)
	ColActive  = rl.NewColor(0, 120, 140, 255)
	ColText    = rl.NewColor(220, 220, 220, 255)
	ColTextDim = rl.NewColor(110, 110, 110, 255)
	ColTrack   = rl.NewColor(60, 60, 66, 255)
	ColKnob    = rl.NewColor(0, 255, 255, 255)
)

const (
	margin   = 16.0
	hudH     = 28.0
	panelH   = 170.0
	fontPath = "/usr/share/fonts/liberation/LiberationMono-Regular.ttf"
)

// Options sizes the canvas; the window adds room for the HUD and the
// controls panel around it.
type Options struct {
	Width  int
	Height int
	FPS    int
	Title  string
}

type App struct {
	Store  *sim.Store
	Panel  *controls.Panel
	Font   rl.Font
	Log    *logrus.Entry
	canvas rl.Rectangle
	panel  rl.Rectangle
	quit   bool
}

// WindowSize is the window that fits a canvas of the given size together
// with the HUD and panel.
func WindowSize(canvasW, canvasH int) (int, int) {
	return canvasW + 2*margin, canvasH + int(3*margin+hudH+panelH)
}

func initWindow(opts Options) {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	w, h := WindowSize(opts.Width, opts.Height)
	rl.InitWindow(int32(w), int32(h), opts.Title)
	rl.SetWindowMinSize(360, 480)
	rl.SetTargetFPS(int32(opts.FPS))
	rl.SetExitKey(0)
}

// loadFont uses Liberation Mono when installed and raylib's built-in font
// otherwise.
func loadFont() rl.Font {
	if _, err := os.Stat(fontPath); err != nil {
		return rl.GetFontDefault()
	}
	font := rl.LoadFontEx(fontPath, 32, nil, 0)
	rl.SetTextureFilter(font.Texture, rl.FilterBilinear)
	return font
}

func NewApp(store *sim.Store, log *logrus.Entry) *App {
	return &App{
		Store: store,
		Panel: controls.NewPanel(store),
		Font:  loadFont(),
		Log:   log,
	}
}

// Run opens the window and blocks until it is closed.
func Run(store *sim.Store, opts Options, log *logrus.Entry) {
	if opts.Title == "" {
		opts.Title = "waveoptics"
	}
	if opts.FPS <= 0 {
		opts.FPS = 60
	}
	initWindow(opts)
	defer rl.CloseWindow()

	app := NewApp(store, log)
	app.Log.WithFields(logrus.Fields{
		"width":  opts.Width,
		"height": opts.Height,
		"fps":    opts.FPS,
	}).Info("window opened")
	app.layout()
	app.RunLoop()
	app.Log.WithField("time", store.Time).Info("window closed")
}

func (a *App) RunLoop() {
	for !rl.WindowShouldClose() && !a.quit {
		a.Update()
		a.Draw()
		a.Store.Tick()
	}
}

// layout sizes the canvas from the window width the way a page sizes it
// from its container, and centres it.
func (a *App) layout() {
	sw := float64(rl.GetScreenWidth())
	w, h := optics.FitCanvas(sw, sw)
	if w != a.Store.Width || h != a.Store.Height {
		a.Store.Resize(w, h)
		a.Log.WithFields(logrus.Fields{"width": w, "height": h}).Debug("canvas resized")
	}
	a.canvas = rl.NewRectangle(float32(math.Floor((sw-w)/2)), float32(margin+hudH), float32(w), float32(h))
	a.layoutPanel()
}

func (a *App) layoutPanel() {
	y := a.canvas.Y + a.canvas.Height + margin
	h := a.Panel.Layout(float64(a.canvas.X), float64(y), float64(a.canvas.Width))
	a.panel = rl.NewRectangle(a.canvas.X-8, y-8, a.canvas.Width+16, float32(h)+16)
}

var keyNames = []struct {
	key  int32
	name string
}{
	{rl.KeySpace, "space"},
	{rl.KeyR, "r"},
	{rl.KeyOne, "1"},
	{rl.KeyTwo, "2"},
	{rl.KeyUp, "up"},
	{rl.KeyDown, "down"},
	{rl.KeyLeft, "left"},
	{rl.KeyRight, "right"},
	{rl.KeyQ, "q"},
}

func (a *App) Update() {
	if rl.IsWindowResized() {
		a.layout()
	}

	if rl.IsKeyPressed(rl.KeyTab) {
		if rl.IsKeyDown(rl.KeyLeftShift) || rl.IsKeyDown(rl.KeyRightShift) {
			a.Panel.Key("shift+tab")
		} else {
			a.Panel.Key("tab")
		}
	}
	for _, k := range keyNames {
		pressed := rl.IsKeyPressed(k.key)
		if k.name == "left" || k.name == "right" {
			pressed = pressed || rl.IsKeyPressedRepeat(k.key)
		}
		if pressed && a.Panel.Key(k.name) {
			a.quit = true
		}
	}

	mouse := rl.GetMousePosition()
	mx, my := float64(mouse.X), float64(mouse.Y)
	switch {
	case rl.IsMouseButtonPressed(rl.MouseLeftButton):
		a.Panel.Press(mx, my)
	case rl.IsMouseButtonDown(rl.MouseLeftButton) && a.Panel.Dragging():
		a.Panel.Drag(mx)
	case rl.IsMouseButtonReleased(rl.MouseLeftButton):
		a.Panel.Release()
	}

	// The mode buttons change the slider set.
	a.layoutPanel()
}

func (a *App) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(ColBg)

	a.drawHUD()

	rl.BeginScissorMode(int32(a.canvas.X), int32(a.canvas.Y), int32(a.canvas.Width), int32(a.canvas.Height))
	scene.Render(&surface{ox: a.canvas.X, oy: a.canvas.Y, font: a.Font}, a.Store.Frame())
	rl.EndScissorMode()

	a.drawPanel()

	rl.EndDrawing()
}

func (a *App) drawHUD() {
	x := int(a.canvas.X)
	a.drawText("Wave Optics", x, int(margin), 20, ColText)

	status := "PLAYING"
	col := ColKnob
	if !a.Store.Playing {
		status = "PAUSED"
		col = ColTextDim
	}
	a.drawText(fmt.Sprintf("%s  t=%.1f  %d FPS", status, a.Store.Time, rl.GetFPS()), x+170, int(margin)+4, 14, col)
}

func (a *App) drawPanel() {
	rl.DrawRectangleRounded(a.panel, 0.05, 6, ColPanel)
	for _, b := range a.Panel.Buttons() {
		r := rl.NewRectangle(float32(b.Bounds.X), float32(b.Bounds.Y), float32(b.Bounds.W), float32(b.Bounds.H))
		col := ColButton
		if b.Active {
			col = ColActive
		}
		rl.DrawRectangleRounded(r, 0.25, 6, col)
		size := float32(15)
		m := rl.MeasureTextEx(a.Font, b.Label, size, 1)
		rl.DrawTextEx(a.Font, b.Label, rl.NewVector2(r.X+(r.Width-m.X)/2, r.Y+(r.Height-m.Y)/2), size, 1, ColText)
	}

	focused := a.Panel.Focused()
	for _, t := range a.Panel.Tracks() {
		col := ColTextDim
		if t.Slider == focused {
			col = ColText
		}
		a.drawText(t.Text(a.Store), int(t.Bounds.X), int(t.Bounds.Y), 14, col)

		track := rl.NewRectangle(float32(t.Track.X), float32(t.Track.Y), float32(t.Track.W), float32(t.Track.H))
		rl.DrawRectangleRounded(track, 1, 4, ColTrack)
		frac := float32(t.Fraction(a.Store))
		filled := track
		filled.Width *= frac
		rl.DrawRectangleRounded(filled, 1, 4, ColActive)
		rl.DrawCircleV(rl.NewVector2(track.X+track.Width*frac, track.Y+track.Height/2), 8, ColKnob)
	}

	hint := "[SPACE] PLAY/PAUSE  [R] RESET  [1/2] SLITS  [TAB] SELECT  [←/→] ADJUST  [Q] QUIT"
	a.drawText(hint, int(a.canvas.X), rl.GetScreenHeight()-22, 12, ColTextDim)
}

func (a *App) drawText(text string, x, y int, size int, color rl.Color) {
	rl.DrawTextEx(a.Font, text, rl.NewVector2(float32(x), float32(y)), float32(size), 1, color)
}
