package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/edgaromeroc/bioslurry-simulator/internal/sim"
)

// RenderChart writes a concentration/removal chart for traj to path.
// The extension picks the format: .svg renders vector, anything else PNG.
func RenderChart(path string, traj sim.Trajectory) error {
	if len(traj) < 2 {
		return fmt.Errorf("export: need at least 2 snapshots to chart, got %d", len(traj))
	}

	days := traj.TimesDays()
	series := func(name string) []float64 {
		vals, _ := traj.Column(name)
		return vals
	}

	graph := chart.Chart{
		Width:  1024,
		Height: 640,
		XAxis: chart.XAxis{
			Name: "time (days)",
		},
		YAxis: chart.YAxis{
			Name: "concentration (mg/L)",
		},
		YAxisSecondary: chart.YAxis{
			Name: "removal (%)",
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "aqueous glyphosate",
				XValues: days,
				YValues: series("aqueous"),
				Style:   chart.Style{StrokeColor: chart.ColorBlue, StrokeWidth: 2.0},
			},
			chart.ContinuousSeries{
				Name:    "sorbed glyphosate",
				XValues: days,
				YValues: series("sorbed"),
				Style:   chart.Style{StrokeColor: drawing.Color{R: 139, G: 94, B: 60, A: 255}, StrokeWidth: 2.0},
			},
			chart.ContinuousSeries{
				Name:    "AMPA",
				XValues: days,
				YValues: series("ampa"),
				Style:   chart.Style{StrokeColor: chart.ColorRed, StrokeWidth: 2.0},
			},
			chart.ContinuousSeries{
				Name:    "biomass",
				XValues: days,
				YValues: series("biomass"),
				Style:   chart.Style{StrokeColor: chart.ColorGreen, StrokeWidth: 2.0},
			},
			chart.ContinuousSeries{
				Name:    "removal",
				XValues: days,
				YValues: series("removal"),
				YAxis:   chart.YAxisSecondary,
				Style: chart.Style{
					StrokeColor:     drawing.Color{R: 120, G: 120, B: 120, A: 255},
					StrokeWidth:     2.0,
					StrokeDashArray: []float64{5.0, 5.0},
				},
			},
		},
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	format := chart.PNG
	if strings.EqualFold(filepath.Ext(path), ".svg") {
		format = chart.SVG
	}
	return graph.Render(format, file)
}
