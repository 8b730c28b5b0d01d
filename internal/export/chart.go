package export

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/san-kum/waveoptics/internal/optics"
)

// Series is one intensity profile to plot, labelled by its name.
type Series struct {
	Name    string
	Samples []optics.Sample
}

// ProfileChart builds an interactive line chart of intensity against screen
// height. All series are assumed to share the sample heights of the first.
func ProfileChart(title string, series []Series) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			BackgroundColor: "#ffffff",
			Width:           "100%",
			Height:          "600px",
			PageTitle:       title,
		}),
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type:       "slider",
			Start:      0,
			End:        100,
			XAxisIndex: []int{0},
		}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type:       "inside",
			Start:      0,
			End:        100,
			XAxisIndex: []int{0},
		}),
		charts.WithLegendOpts(opts.Legend{
			Orient:       "horizontal",
			Show:         opts.Bool(true),
			SelectedMode: "multiple",
			Type:         "scroll",
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "axis",
			AxisPointer: &opts.AxisPointer{
				Type: "cross",
				Snap: opts.Bool(true),
			},
		}),
		charts.WithToolboxOpts(opts.Toolbox{
			Show: opts.Bool(true),
			Top:  "0%",
			Feature: &opts.ToolBoxFeature{
				SaveAsImage: &opts.ToolBoxFeatureSaveAsImage{
					Show:  opts.Bool(true),
					Type:  "png",
					Name:  "profile",
					Title: "Save as image",
				},
				Restore: &opts.ToolBoxFeatureRestore{
					Show:  opts.Bool(true),
					Title: "refresh",
				},
			},
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name: "y, px",
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(true),
			},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: "intensity",
			Type: "value",
			Show: opts.Bool(true),
			Min:  0,
			Max:  1,
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(true),
			},
		}),
	)

	if len(series) == 0 {
		return line
	}
	x := make([]string, len(series[0].Samples))
	for i, s := range series[0].Samples {
		x[i] = fmt.Sprintf("%.0f", s.Y)
	}
	line.SetXAxis(x)
	for _, s := range series {
		line.AddSeries(s.Name, lineData(s.Samples))
	}
	return line
}

func lineData(samples []optics.Sample) []opts.LineData {
	data := make([]opts.LineData, 0, len(samples))
	for _, s := range samples {
		data = append(data, opts.LineData{Value: s.Intensity})
	}
	return data
}

// WriteChart renders the chart as a standalone HTML page.
func WriteChart(w io.Writer, title string, series []Series) error {
	return ProfileChart(title, series).Render(w)
}
