package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/san-kum/waveoptics/internal/config"
	"github.com/san-kum/waveoptics/internal/gui"
	"github.com/san-kum/waveoptics/internal/optics"
	"github.com/san-kum/waveoptics/internal/sim"
	"github.com/san-kum/waveoptics/internal/tui"
	"github.com/san-kum/waveoptics/internal/viz"
)

var (
	dataDir    string
	configFile string
	preset     string
	logLevel   string
	theme      string
	mode       string
	wavelength float64
	slitWidth  float64
	separation float64
	speed      float64
	width      int
	height     int

	// resolved in PersistentPreRunE
	cfg *config.Config
	log = logrus.New()
)

// main opens the window when no subcommand is given and exits with status 1
// if the command fails.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:               "waveoptics",
		Short:             "single and double slit interference lab",
		SilenceUsage:      true,
		PersistentPreRunE: setup,
		RunE:              runGUI,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&dataDir, "data", ".waveoptics", "capture directory")
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "start from a named preset")
	pf.StringVar(&logLevel, "log-level", config.DefaultLogLevel, "log level")
	pf.StringVar(&theme, "theme", config.DefaultTheme, "terminal theme ("+strings.Join(viz.ThemeNames(), "|")+")")
	pf.StringVar(&mode, "mode", "double", "slit mode (single|double)")
	pf.Float64Var(&wavelength, "wavelength", 50, "wavelength in pixels")
	pf.Float64Var(&slitWidth, "slit-width", 20, "slit width in pixels")
	pf.Float64Var(&separation, "separation", 100, "slit separation in pixels")
	pf.Float64Var(&speed, "speed", 0.1, "animation speed")
	pf.IntVar(&width, "width", config.DefaultWidth, "window or canvas width")
	pf.IntVar(&height, "height", config.DefaultHeight, "window or canvas height")

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "open the interactive window",
		RunE:  runGUI,
	}

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "run the interactive terminal view",
		RunE: func(cmd *cobra.Command, args []string) error {
			log.WithField("theme", cfg.Theme).Debug("starting terminal view")
			return tui.RunInteractive(newStore(), cfg.Theme)
		},
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE:  listPresets,
	}

	rootCmd.AddCommand(guiCmd, tuiCmd, presetsCmd)
	rootCmd.AddCommand(analysisCommands()...)
	rootCmd.AddCommand(exportCommands()...)
	rootCmd.AddCommand(captureCommands()...)
	return rootCmd
}

// setup resolves the configuration (defaults, then preset, then config
// file, then explicit flags) and configures logging.
func setup(cmd *cobra.Command, args []string) error {
	c, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	cfg = c

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	log.SetLevel(level)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	log.SetOutput(os.Stderr)
	return nil
}

func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	c := config.DefaultConfig()
	if preset != "" {
		c = config.GetPreset(preset)
		if c == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}
	if configFile != "" {
		if err := config.LoadInto(configFile, c); err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}

	flags := cmd.Flags()
	if flags.Changed("mode") {
		m, err := optics.ParseSlitMode(mode)
		if err != nil {
			return nil, err
		}
		c.Params.Mode = m
	}
	if flags.Changed("wavelength") {
		c.Params.Wavelength = wavelength
	}
	if flags.Changed("slit-width") {
		c.Params.SlitWidth = slitWidth
	}
	if flags.Changed("separation") {
		c.Params.SlitSeparation = separation
	}
	if flags.Changed("speed") {
		c.Params.Speed = speed
	}
	if flags.Changed("width") {
		c.Window.Width = width
	}
	if flags.Changed("height") {
		c.Window.Height = height
	}
	if flags.Changed("theme") {
		c.Theme = theme
	}
	if flags.Changed("log-level") {
		c.LogLevel = logLevel
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}
	return c, nil
}

// newStore builds the state store for a canvas of the configured size.
func newStore() *sim.Store {
	s := sim.NewStore(cfg.Params, float64(cfg.Window.Width), float64(cfg.Window.Height))
	s.Playing = cfg.Playing
	return s
}

func runGUI(cmd *cobra.Command, args []string) error {
	gui.Run(newStore(), gui.Options{
		Width:  cfg.Window.Width,
		Height: cfg.Window.Height,
		FPS:    cfg.Window.FPS,
	}, log.WithField("front_end", "gui"))
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	fmt.Println("presets:")
	for _, name := range config.ListPresets() {
		p := config.Presets[name]
		if p.Mode == optics.Single {
			fmt.Printf("  %-16s single  λ=%-3.0f w=%-3.0f speed=%.1f\n", name, p.Wavelength, p.SlitWidth, p.Speed)
			continue
		}
		fmt.Printf("  %-16s double  λ=%-3.0f w=%-3.0f d=%-3.0f speed=%.1f\n",
			name, p.Wavelength, p.SlitWidth, p.SlitSeparation, p.Speed)
	}
	return nil
}
