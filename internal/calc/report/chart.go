package report

import (
	"errors"
	"io"

	"Catalyst/internal/history"

	chart "github.com/wcharczuk/go-chart/v2"
)

var ErrNoData = errors.New("no history records")

// TrendChart renders the precursor mass of every record, in log order, as a
// PNG line chart.
func TrendChart(w io.Writer, records []history.Record) error {
	if len(records) == 0 {
		return ErrNoData
	}
	xs := make([]float64, 0, len(records)+1)
	ys := make([]float64, 0, len(records)+1)
	maxY := 0.0
	for i, rec := range records {
		y := rec.Results.Rounded().PrecursorMass
		xs = append(xs, float64(i+1))
		ys = append(ys, y)
		maxY = max(maxY, y)
	}
	// go-chart needs two X values to build a range.
	if len(xs) == 1 {
		xs = append(xs, 2)
		ys = append(ys, ys[0])
	}
	top := maxY * 1.1
	if top == 0 {
		top = 1
	}

	ch := chart.Chart{
		Title:      "Precursor mass (g)",
		Width:      800,
		Height:     360,
		Background: chart.Style{Padding: chart.Box{Top: 24, Left: 16, Right: 16, Bottom: 12}},
		XAxis:      chart.XAxis{Name: "Record"},
		YAxis:      chart.YAxis{Name: "g", Range: &chart.ContinuousRange{Min: 0, Max: top}},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "Precursor mass",
				XValues: xs,
				YValues: ys,
				Style: chart.Style{
					StrokeColor: chart.ColorBlue,
					StrokeWidth: 2,
					DotWidth:    3,
					DotColor:    chart.ColorBlue,
				},
			},
		},
	}
	return ch.Render(chart.PNG, w)
}
