package chart

import (
	"fmt"
	"math"
	"strconv"

	"stockviz/internal/frame"
)

// Line draws each series as a line over x. A nil x plots against the row index.
func Line(title string, x []string, ys ...Series) (Spec, error) {
	if len(ys) == 0 {
		return Spec{}, ErrEmptySeries
	}
	if err := checkPaired(x, ys...); err != nil {
		return Spec{}, err
	}

	spec := Spec{Layout: themedLayout(title)}
	for i, s := range ys {
		spec.Data = append(spec.Data, lineTrace(x, s, &LineStyle{Color: colorAt(i)}))
	}
	spec.Layout.ShowLegend = len(ys) > 1
	return spec, nil
}

// MovingAverageOverlay draws the close series solid and the indicators
// dashed on the same x axis.
func MovingAverageOverlay(title string, x []string, closeSeries Series, indicators ...Series) (Spec, error) {
	all := append([]Series{closeSeries}, indicators...)
	if err := checkPaired(x, all...); err != nil {
		return Spec{}, err
	}

	spec := Spec{Layout: themedLayout(title)}
	spec.Data = append(spec.Data, lineTrace(x, closeSeries, &LineStyle{Color: AccentColor, Width: 2}))
	for i, s := range indicators {
		spec.Data = append(spec.Data, lineTrace(x, s, &LineStyle{Color: colorAt(i + 1), Width: 1.5, Dash: "dot"}))
	}
	return spec, nil
}

func Candlestick(title string, x []string, open, high, low, closeSeries []float64) (Spec, error) {
	n := len(closeSeries)
	if len(open) != n || len(high) != n || len(low) != n {
		return Spec{}, fmt.Errorf("%w: open=%d high=%d low=%d close=%d", ErrShapeMismatch, len(open), len(high), len(low), n)
	}
	if x != nil && len(x) != n {
		return Spec{}, fmt.Errorf("%w: x has %d values, prices have %d", ErrShapeMismatch, len(x), n)
	}

	spec := Spec{Layout: themedLayout(title)}
	spec.Layout.XAxis.RangeSlider = &RangeSlider{Visible: false}
	spec.Layout.ShowLegend = false
	spec.Data = []Trace{CandlestickTrace{
		Type:       "candlestick",
		Name:       "OHLC",
		X:          x,
		Open:       frame.Floats(open),
		High:       frame.Floats(high),
		Low:        frame.Floats(low),
		Close:      frame.Floats(closeSeries),
		Increasing: CandleSide{Line: LineStyle{Color: AccentColor}},
		Decreasing: CandleSide{Line: LineStyle{Color: DecreaseColor}},
	}}
	return spec, nil
}

// Histogram plots the distribution of one series.
func Histogram(title string, s Series) (Spec, error) {
	spec := Spec{Layout: themedLayout(title)}
	spec.Layout.ShowLegend = false
	spec.Layout.XAxis.Title = &Title{Text: s.Name}
	spec.Layout.YAxis.Title = &Title{Text: "Count"}
	spec.Data = []Trace{HistogramTrace{
		Type:   "histogram",
		Name:   s.Name,
		X:      frame.Floats(s.Values),
		Marker: &Marker{Color: AccentColor},
	}}
	return spec, nil
}

// Heatmap renders a square matrix with labels on both axes. Each cell shows
// its value rounded to two decimals; undefined cells are left blank.
func Heatmap(title string, labels []string, matrix [][]float64) (Spec, error) {
	if len(labels) != len(matrix) {
		return Spec{}, fmt.Errorf("%w: %d labels for %d rows", ErrShapeMismatch, len(labels), len(matrix))
	}
	z := make([]frame.Floats, len(matrix))
	text := make([][]string, len(matrix))
	for i, row := range matrix {
		if len(row) != len(matrix) {
			return Spec{}, fmt.Errorf("%w: row %d has %d values, want %d", ErrShapeMismatch, i, len(row), len(matrix))
		}
		z[i] = frame.Floats(row)
		text[i] = make([]string, len(row))
		for j, v := range row {
			if math.IsNaN(v) {
				continue
			}
			text[i][j] = strconv.FormatFloat(v, 'f', 2, 64)
		}
	}

	spec := Spec{Layout: themedLayout(title)}
	spec.Layout.ShowLegend = false
	spec.Data = []Trace{HeatmapTrace{
		Type:         "heatmap",
		X:            labels,
		Y:            labels,
		Z:            z,
		Text:         text,
		TextTemplate: "%{text}",
		ColorScale:   heatmapScale,
		ZMin:         -1,
		ZMax:         1,
	}}
	return spec, nil
}

func lineTrace(x []string, s Series, line *LineStyle) ScatterTrace {
	return ScatterTrace{
		Type: "scatter",
		Mode: "lines",
		Name: s.Name,
		X:    x,
		Y:    frame.Floats(s.Values),
		Line: line,
	}
}

func checkPaired(x []string, ys ...Series) error {
	if len(ys) == 0 {
		return nil
	}
	n := len(ys[0].Values)
	if x != nil {
		n = len(x)
	}
	for _, s := range ys {
		if len(s.Values) != n {
			return fmt.Errorf("%w: series %q has %d values, want %d", ErrShapeMismatch, s.Name, len(s.Values), n)
		}
	}
	return nil
}
