package diagram

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"
)

// Curve is one labelled series of a chart
type Curve struct {
	Label string
	X     []float64
	Y     []float64
}

// TorqueCurveData holds the series drawn by the torque charts
type TorqueCurveData struct {
	Title  string
	XLabel string // e.g. "Airspeed (m/s)"
	YLabel string // e.g. "Torque (kg·cm)"
	Curves []Curve

	// MarkX draws a reference line at this X (the design airspeed); 0 disables it
	MarkX float64
}

var seriesColors = []asciigraph.AnsiColor{
	asciigraph.Blue,
	asciigraph.Red,
	asciigraph.Green,
	asciigraph.Goldenrod,
}

// DrawTorqueCurve renders all curves as an ASCII line chart
func DrawTorqueCurve(data TorqueCurveData, height int) (string, error) {
	if len(data.Curves) == 0 {
		return "", fmt.Errorf("no curves to draw")
	}

	series := make([][]float64, 0, len(data.Curves))
	legends := make([]string, 0, len(data.Curves))
	colors := make([]asciigraph.AnsiColor, 0, len(data.Curves))
	for i, c := range data.Curves {
		if len(c.Y) == 0 {
			return "", fmt.Errorf("curve %q has no points", c.Label)
		}
		series = append(series, c.Y)
		legends = append(legends, c.Label)
		colors = append(colors, seriesColors[i%len(seriesColors)])
	}

	first := data.Curves[0]
	caption := data.YLabel
	if len(first.X) > 0 {
		caption = fmt.Sprintf("%s vs %s, %.1f to %.1f", data.YLabel, data.XLabel, first.X[0], first.X[len(first.X)-1])
	}

	graph := asciigraph.PlotMany(series,
		asciigraph.Height(height),
		asciigraph.Precision(2),
		asciigraph.LowerBound(0),
		asciigraph.Caption(caption),
		asciigraph.SeriesColors(colors...),
		asciigraph.SeriesLegends(legends...),
	)

	var sb strings.Builder
	sb.WriteString("\n")
	if data.Title != "" {
		sb.WriteString("  " + data.Title + "\n")
		sb.WriteString("  " + strings.Repeat("─", len([]rune(data.Title))) + "\n\n")
	}
	sb.WriteString(graph)
	sb.WriteString("\n")
	return sb.String(), nil
}

// Bar is one row of a horizontal bar chart
type Bar struct {
	Label string
	Value float64
	Unit  string
}

// DrawBars creates a horizontal bar chart scaled to the largest value
func DrawBars(title string, bars []Bar, width int) string {
	var sb strings.Builder

	sb.WriteString("\n")
	sb.WriteString("  " + title + "\n")
	sb.WriteString("  " + strings.Repeat("─", len([]rune(title))) + "\n\n")

	maxValue, labelWidth := 0.0, 0
	for _, b := range bars {
		maxValue = max(maxValue, b.Value)
		labelWidth = max(labelWidth, len(b.Label))
	}

	for _, b := range bars {
		barLen := 0
		if maxValue > 0 {
			barLen = int(b.Value / maxValue * float64(width))
		}
		if barLen < 0 {
			barLen = 0
		}
		sb.WriteString(fmt.Sprintf("  %-*s │%s %.2f %s\n", labelWidth, b.Label, strings.Repeat("█", barLen), b.Value, b.Unit))
	}

	return sb.String()
}

// DrawSummaryBox creates a summary box for results
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := len([]rune(title))
	for _, line := range lines {
		if n := len([]rune(line)); n > maxLen {
			maxLen = n
		}
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(title, maxLen-4)))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(line, maxLen-4)))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}

// pad right-pads s to n runes
func pad(s string, n int) string {
	if gap := n - len([]rune(s)); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}
