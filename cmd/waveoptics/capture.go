package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/san-kum/waveoptics/internal/metrics"
	"github.com/san-kum/waveoptics/internal/sim"
	"github.com/san-kum/waveoptics/internal/storage"
	"github.com/san-kum/waveoptics/internal/tui"
)

var (
	captureFrames int
	captureEvery  int
	live          bool
	frameRate     int
	index         int
	jsonOut       string
)

func captureCommands() []*cobra.Command {
	captureCmd := &cobra.Command{
		Use:   "capture",
		Short: "run headless and store intensity profiles",
		RunE:  capture,
	}
	captureCmd.Flags().IntVar(&captureFrames, "frames", 600, "frames to simulate")
	captureCmd.Flags().IntVar(&captureEvery, "every", 10, "store one profile out of every N frames")
	captureCmd.Flags().Float64Var(&peakFrac, "peak-frac", 0.5, "peak threshold as a fraction of the maximum")
	captureCmd.Flags().BoolVar(&live, "live", false, "draw frames in the terminal while running")
	captureCmd.Flags().IntVar(&frameRate, "fps", 30, "live frame rate")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list captures",
		RunE:  listCaptures,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [capture_id]",
		Short: "plot a stored profile",
		Args:  cobra.ExactArgs(1),
		RunE:  plotCapture,
	}
	plotCmd.Flags().IntVar(&index, "index", -1, "profile index (negative counts from the end)")

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [capture_id]",
		Short: "export a capture to JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return storage.New(dataDir).ExportJSON(args[0], jsonOut)
		},
	}
	exportJSONCmd.Flags().StringVarP(&jsonOut, "out", "o", "", "output file (default stdout)")

	return []*cobra.Command{captureCmd, listCmd, plotCmd, exportJSONCmd}
}

func capture(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	r := sim.NewRunner()
	r.AddMetric(metrics.NewMeanIntensity())
	r.AddMetric(metrics.NewVisibility())
	r.AddMetric(metrics.NewPeakCount(peakFrac))

	if live {
		lr := tui.NewLiveRenderer(os.Stdout, frameRate, 80, 24)
		lr.Start()
		defer lr.Stop()
		r.AddObserver(lr)
	}

	start := time.Now()
	result, err := r.Run(cmd.Context(), newStore(), sim.Config{Frames: captureFrames, Every: captureEvery})
	if err != nil && result == nil {
		return err
	}
	if err != nil {
		log.WithError(err).Warn("run interrupted, saving partial capture")
	}

	id, serr := st.Save(result)
	if serr != nil {
		return serr
	}
	log.WithFields(logrus.Fields{
		"id":       id,
		"frames":   result.Frames,
		"profiles": len(result.Profiles),
		"elapsed":  time.Since(start),
	}).Info("capture saved")

	fmt.Printf("capture id: %s\n", id)
	fmt.Printf("frames: %d\n", result.Frames)
	fmt.Println("\nmetrics:")
	for _, name := range []string{"mean_intensity", "visibility", "peak_count"} {
		fmt.Printf("  %s: %.6f\n", name, result.Metrics[name])
	}
	return nil
}

func listCaptures(cmd *cobra.Command, args []string) error {
	captures, err := storage.New(dataDir).List()
	if err != nil {
		return err
	}
	if len(captures) == 0 {
		fmt.Println("no captures found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tMODE\tTIME\tλ\tWIDTH\tSEP\tFRAMES\tPROFILES")
	for _, c := range captures {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.0f\t%.0f\t%.0f\t%d\t%d\n",
			c.ID,
			c.Mode,
			c.Timestamp.Format("2006-01-02 15:04:05"),
			c.Params.Wavelength,
			c.Params.SlitWidth,
			c.Params.SlitSeparation,
			c.Frames,
			c.Profiles,
		)
	}
	return w.Flush()
}

func plotCapture(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	prof, err := st.LoadProfiles(args[0])
	if err != nil {
		return err
	}
	if len(prof.Intensities) == 0 {
		return fmt.Errorf("no data to plot")
	}

	i := index
	if i < 0 {
		i += len(prof.Intensities)
	}
	if i < 0 || i >= len(prof.Intensities) {
		return fmt.Errorf("profile index %d out of range [0, %d)", index, len(prof.Intensities))
	}

	fmt.Printf("capture: %s\n", meta.ID)
	fmt.Printf("mode: %s\n", meta.Mode)
	fmt.Printf("profiles: %d\n\n", len(prof.Intensities))

	fmt.Println(asciigraph.Plot(prof.Intensities[i],
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("intensity at t=%.1f", prof.Times[i])),
	))
	fmt.Println()

	vis := make([]float64, len(prof.Intensities))
	for j, in := range prof.Intensities {
		vis[j] = metrics.FringeVisibility(in)
	}
	if len(vis) > 1 {
		fmt.Println(asciigraph.Plot(vis,
			asciigraph.Height(6),
			asciigraph.Width(80),
			asciigraph.Caption("visibility vs time"),
		))
	}

	return nil
}
