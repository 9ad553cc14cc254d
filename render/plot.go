package render

import (
	"fmt"

	"github.com/swdee/go-camshift/preprocess"
	"github.com/swdee/go-camshift/tracker"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// HistogramPlot returns a bar chart of the hue histogram with each bar
// colored by the hue of its bin and labeled with its hue range
func HistogramPlot(hist tracker.Histogram, title string) (*plot.Plot, error) {

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Hue"
	p.Y.Label.Text = "Likelihood"
	p.Y.Min = 0
	p.Y.Max = tracker.HistCeiling

	width := vg.Points(14)
	step := preprocess.HueRange / tracker.HistBins

	names := make([]string, tracker.HistBins)

	for i, v := range hist {
		names[i] = fmt.Sprintf("%d", i*step)

		// each bin gets its own chart so it can carry its own color
		vals := make(plotter.Values, tracker.HistBins)
		vals[i] = float64(v)

		bars, err := plotter.NewBarChart(vals, width)

		if err != nil {
			return nil, fmt.Errorf("error creating bar for bin %d: %w", i, err)
		}

		bars.Color = hueToRGBA(float64(i*step + step/2))
		bars.LineStyle.Width = vg.Length(0)

		p.Add(bars)
	}

	p.NominalX(names...)

	return p, nil
}

// SaveHistogramPlot writes the hue histogram bar chart to file, the image
// format is chosen by the file extension
func SaveHistogramPlot(hist tracker.Histogram, title, file string) error {

	p, err := HistogramPlot(hist, title)

	if err != nil {
		return err
	}

	if err := p.Save(6*vg.Inch, 3*vg.Inch, file); err != nil {
		return fmt.Errorf("error saving histogram plot %s: %w", file, err)
	}

	return nil
}
