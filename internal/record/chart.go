package record

import (
	"os"

	"github.com/pkg/errors"
	"github.com/wcharczuk/go-chart/v2"
)

// WriteChart renders moved-per-tick as a line chart PNG at path.
func WriteChart(path string, moved []int) error {
	if len(moved) == 0 {
		return errors.New("no ticks to chart")
	}
	xs := make([]float64, len(moved))
	ys := make([]float64, len(moved))
	yMax := 1.0
	for i, m := range moved {
		xs[i] = float64(i + 1)
		ys[i] = float64(m)
		if ys[i] > yMax {
			yMax = ys[i]
		}
	}
	xMax := float64(len(moved))
	if xMax < 2 {
		xMax = 2
	}

	graph := chart.Chart{
		Width:  640,
		Height: 240,
		XAxis: chart.XAxis{
			Name:  "tick",
			Style: chart.Style{FontSize: 10.0},
			Range: &chart.ContinuousRange{Min: 1, Max: xMax},
		},
		YAxis: chart.YAxis{
			Name:  "moved",
			Style: chart.Style{FontSize: 10.0},
			Range: &chart.ContinuousRange{Min: 0, Max: yMax},
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "particles moved",
				XValues: xs,
				YValues: ys,
				Style: chart.Style{
					StrokeColor: chart.ColorBlue,
					StrokeWidth: 2.0,
				},
			},
		},
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create chart")
	}
	defer f.Close()
	if err := graph.Render(chart.PNG, f); err != nil {
		return errors.Wrap(err, "render chart")
	}
	return nil
}
