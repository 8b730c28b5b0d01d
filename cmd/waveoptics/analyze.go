package main

import (
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/san-kum/waveoptics/internal/analysis"
	"github.com/san-kum/waveoptics/internal/export"
	"github.com/san-kum/waveoptics/internal/metrics"
	"github.com/san-kum/waveoptics/internal/optics"
	"github.com/san-kum/waveoptics/internal/sim"
)

var (
	atTime      float64
	averaged    bool
	plotWidth   int
	plotHeight  int
	windowHalf  float64
	wavelengths []float64
	sweepFrames int
	peakFrac    float64
)

func analysisCommands() []*cobra.Command {
	profileCmd := &cobra.Command{
		Use:   "profile",
		Short: "plot the screen intensity profile",
		RunE:  showProfile,
	}
	profileCmd.Flags().Float64Var(&atTime, "time", 0, "animation time")
	profileCmd.Flags().BoolVar(&averaged, "average", false, "average over one phase period")
	profileCmd.Flags().IntVar(&plotWidth, "cols", 80, "plot width")
	profileCmd.Flags().IntVar(&plotHeight, "rows", 12, "plot height")

	analyzeCmd := &cobra.Command{
		Use:   "analyze",
		Short: "measure fringe spacing against λL/d",
		RunE:  analyzeFringes,
	}
	analyzeCmd.Flags().Float64Var(&windowHalf, "window", 120, "half height of the analysed band around the axis (0 = whole screen)")
	analyzeCmd.Flags().Float64SliceVar(&wavelengths, "sweep", nil, "wavelengths to sweep (default: configured wavelength)")
	analyzeCmd.Flags().IntVar(&sweepFrames, "frames", 200, "frames per sweep run")
	analyzeCmd.Flags().Float64Var(&peakFrac, "peak-frac", 0.5, "peak threshold as a fraction of the maximum")

	return []*cobra.Command{profileCmd, analyzeCmd}
}

func frameAt(t float64) optics.Frame {
	s := newStore()
	s.Time = t
	return s.Frame()
}

func showProfile(cmd *cobra.Command, args []string) error {
	f := frameAt(atTime)
	samples := f.Profile()
	caption := export.ProfileCaption(f)
	if averaged {
		samples = analysis.AveragedProfile(f.Params, f.Geometry, f.Time, 16)
		caption += " (averaged)"
	}
	if len(samples) == 0 {
		return optics.ErrEmptyGeometry
	}

	in := optics.Intensities(samples)
	fmt.Println(export.PlotProfile(samples, plotWidth, plotHeight, caption))
	fmt.Println()
	fmt.Printf("samples:    %d (every %d px)\n", len(samples), f.Geometry.PatternStep())
	fmt.Printf("visibility: %.4f\n", metrics.FringeVisibility(in))
	fmt.Printf("peaks:      %d\n", len(metrics.Peaks(in, peakFrac)))
	return nil
}

func analyzeFringes(cmd *cobra.Command, args []string) error {
	base := cfg.Params
	g := optics.NewGeometry(float64(cfg.Window.Width), float64(cfg.Window.Height))

	params := []optics.Params{base}
	if len(wavelengths) > 0 {
		params = params[:0]
		for _, wl := range wavelengths {
			p := base
			p.Wavelength = wl
			if err := p.Validate(); err != nil {
				return err
			}
			params = append(params, p)
		}
	}

	sweep := &sim.Sweep{
		Params: params,
		Width:  g.Width,
		Height: g.Height,
		NewMetrics: func() []sim.Metric {
			return []sim.Metric{metrics.NewVisibility(), metrics.NewPeakCount(peakFrac)}
		},
	}
	log.WithFields(logrus.Fields{"runs": len(params), "frames": sweepFrames}).Debug("running sweep")
	results, err := sweep.Run(cmd.Context(), sim.Config{Frames: sweepFrames, Every: sweepFrames})
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "λ\tMODE\tMEASURED\tλL/d\tERROR\tVISIBILITY\tPEAKS")
	for i, p := range params {
		c, err := analysis.Compare(p, g, windowHalf)
		measured, expected, rel := "-", "-", "-"
		switch {
		case errors.Is(err, analysis.ErrNoFringes):
		case err != nil:
			return err
		default:
			measured = fmt.Sprintf("%.1f px", c.Measured)
			if c.Theoretical > 0 {
				expected = fmt.Sprintf("%.1f px", c.Theoretical)
				rel = fmt.Sprintf("%.1f%%", 100*c.RelError)
			}
		}
		m := results[i].Metrics
		fmt.Fprintf(w, "%.0f\t%s\t%s\t%s\t%s\t%.3f\t%.1f\n",
			p.Wavelength, p.Mode, measured, expected, rel, m["visibility"], m["peak_count"])
	}
	return w.Flush()
}
