package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/waveoptics/internal/controls"
	"github.com/san-kum/waveoptics/internal/metrics"
	"github.com/san-kum/waveoptics/internal/optics"
	"github.com/san-kum/waveoptics/internal/scene"
	"github.com/san-kum/waveoptics/internal/sim"
	"github.com/san-kum/waveoptics/internal/viz"
)

// cellPx is the nominal width of a terminal cell when sizing the canvas.
const cellPx = 8.0

const (
	chromeRows   = 10
	patternCols  = 3
	minCanvasCol = 20
	minCanvasRow = 6
	sliderBar    = 20
	visHistory   = 40
)

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(16*time.Millisecond, func(t time.Time) tea.Msg { return tickMsg(t) })
}

type model struct {
	store     *sim.Store
	panel     *controls.Panel
	theme     viz.Theme
	width     int
	height    int
	cols      int
	rows      int
	lastFrame time.Time
	fps       float64
	// fringe visibility of the most recent frames, oldest first
	vis []float64
}

func NewModel(store *sim.Store, theme string) model {
	m := model{
		store: store,
		panel: controls.NewPanel(store),
		theme: viz.GetTheme(theme),
	}
	m.resize(80, 24)
	return m
}

func (m model) Init() tea.Cmd { return tick() }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, tea.ClearScreen
	case tickMsg:
		now := time.Time(msg)
		if !m.lastFrame.IsZero() {
			if dt := now.Sub(m.lastFrame).Seconds(); dt > 0 {
				m.fps = 1.0 / dt
			}
		}
		m.lastFrame = now
		m.store.Tick()
		m.recordVisibility()
		return m, tick()
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.String() {
	case "t":
		m.theme = viz.NextTheme(m.theme.Name)
		return m, nil
	}
	if m.panel.Key(msg.String()) {
		return m, tea.Quit
	}
	return m, nil
}

func (m *model) recordVisibility() {
	v := metrics.FringeVisibility(optics.Intensities(m.store.Frame().Profile()))
	if len(m.vis) >= visHistory {
		m.vis = append(m.vis[:0:0], m.vis[len(m.vis)-visHistory+1:]...)
	}
	m.vis = append(m.vis, v)
}

// resize fits the braille canvas into the terminal, keeping the aspect
// ratio FitCanvas gives for a window of that many cells.
func (m *model) resize(width, height int) {
	m.width, m.height = width, height

	avail := width - patternCols - 4
	w, h := optics.FitCanvas(float64(avail)*cellPx, float64(width)*cellPx)
	if w <= 0 || h <= 0 {
		w, h = optics.FitCanvas(minCanvasCol*cellPx+32, 1024)
	}
	m.store.Resize(w, h)

	cols := avail
	if cols < minCanvasCol {
		cols = minCanvasCol
	}
	// One cell is 2x4 dots and dots are roughly square on screen.
	rows := int(float64(cols) * h / w / 2)
	if maxRows := height - chromeRows - len(m.panel.Sliders()); rows > maxRows {
		rows = maxRows
		cols = int(float64(rows) * 2 * w / h)
	}
	if rows < minCanvasRow {
		rows = minCanvasRow
	}
	m.cols, m.rows = cols, rows
}

func (m model) View() string {
	f := m.store.Frame()
	t := m.theme

	canvas := viz.NewCanvas(m.cols, m.rows)
	surface := viz.NewSurface(canvas, f.Geometry.Width, f.Geometry.Height)
	scene.Render(surface, f)

	var sceneView string
	if t.Tinted {
		sceneView = surface.View()
	} else {
		sceneView = lipgloss.NewStyle().Foreground(t.Text).Render(strings.TrimRight(surface.String(), "\n"))
	}

	samples := f.Profile()
	bright := make([]uint8, len(samples))
	for i, s := range samples {
		bright[i] = s.Brightness
	}
	column := lipgloss.NewStyle().
		Foreground(t.Pattern).
		Render(strings.Join(viz.IntensityColumn(bright, m.rows, patternCols), "\n"))

	var b strings.Builder

	status := viz.StatusRunning.Render("● playing")
	if !f.Playing {
		status = viz.StatusPaused.Render("○ paused")
	}
	title := lipgloss.NewStyle().Bold(true).Foreground(t.Primary).Render("wave optics")
	mode := lipgloss.NewStyle().Foreground(t.Secondary).Render(scene.SlitLabel(f.Params.Mode))
	b.WriteString(fmt.Sprintf("\n  %s  %s  %s  %s\n\n", title, mode, status,
		viz.MetricLabel.Render(fmt.Sprintf("t=%.1f  %.0ffps", f.Time, m.fps))))

	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, "  ", sceneView, " ", column))
	b.WriteString("\n\n")

	focused := m.panel.Focused()
	for _, s := range m.panel.Sliders() {
		label := viz.MetricLabel.Render(fmt.Sprintf("%-16s", s.Label))
		if s == focused {
			label = viz.Focused.Render(fmt.Sprintf("%-16s", "› "+s.Label))
		}
		value := viz.MetricValue.Render(fmt.Sprintf(s.Format, s.Value(m.store)))
		b.WriteString(fmt.Sprintf("  %s %s %s\n", label, viz.ProgressBar(s.Range.Fraction(s.Value(m.store)), sliderBar), value))
	}

	if len(m.vis) > 0 {
		b.WriteString(fmt.Sprintf("\n  %s %s %s\n",
			viz.MetricLabel.Render(fmt.Sprintf("%-16s", "Visibility")),
			viz.SparklineChart(m.vis, sliderBar),
			viz.MetricValue.Render(fmt.Sprintf("%.2f", m.vis[len(m.vis)-1]))))
	}

	b.WriteString("\n" + viz.KeyHint.Render("  space play/pause  r reset  1/2 slits  tab/↑↓ select  ←→ adjust  t theme  q quit") + "\n")
	return b.String()
}

// RunInteractive runs the terminal UI until the user quits.
func RunInteractive(store *sim.Store, theme string) error {
	p := tea.NewProgram(NewModel(store, theme), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
