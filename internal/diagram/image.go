package diagram

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// ExportTorqueCurve exports the torque curves to an image file.
// The format follows the extension (.png, .svg, .pdf); anything else is saved as PNG.
func ExportTorqueCurve(data TorqueCurveData, filename string) (string, error) {
	if len(data.Curves) == 0 {
		return "", fmt.Errorf("no curves to export")
	}

	p := plot.New()
	p.Title.Text = data.Title
	p.X.Label.Text = data.XLabel
	p.Y.Label.Text = data.YLabel
	p.Y.Min = 0
	p.Add(plotter.NewGrid())

	var yMax float64
	for i, c := range data.Curves {
		if len(c.X) != len(c.Y) {
			return "", fmt.Errorf("curve %q has %d x values and %d y values", c.Label, len(c.X), len(c.Y))
		}
		pts := make(plotter.XYs, len(c.X))
		for j := range c.X {
			pts[j] = plotter.XY{X: c.X[j], Y: c.Y[j]}
			yMax = max(yMax, c.Y[j])
		}

		line, err := plotter.NewLine(pts)
		if err != nil {
			return "", err
		}
		line.LineStyle.Width = vg.Points(2)
		line.LineStyle.Color = plotutil.Color(i)
		p.Add(line)
		p.Legend.Add(c.Label, line)
	}
	p.Legend.Top = true
	p.Legend.Left = true

	// Design airspeed reference line
	if data.MarkX > 0 && yMax > 0 {
		markLine, err := plotter.NewLine(plotter.XYs{
			{X: data.MarkX, Y: 0},
			{X: data.MarkX, Y: yMax},
		})
		if err != nil {
			return "", err
		}
		markLine.LineStyle.Width = vg.Points(1)
		markLine.LineStyle.Color = color.RGBA{R: 255, G: 0, B: 0, A: 255}
		markLine.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
		p.Add(markLine)
		p.Legend.Add(fmt.Sprintf("V = %.1f", data.MarkX), markLine)
	}

	// Create directory if needed
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", err
		}
	}

	switch filepath.Ext(filename) {
	case ".png", ".svg", ".pdf":
	default:
		filename += ".png"
	}

	if err := p.Save(8*vg.Inch, 6*vg.Inch, filename); err != nil {
		return "", err
	}
	return filename, nil
}
