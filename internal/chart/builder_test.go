package chart

import (
	"encoding/json"
	"errors"
	"math"
	"testing"

	"github.com/go-playground/assert/v2"
)

func TestLine(t *testing.T) {
	x := []string{"2024-01-01", "2024-01-02"}
	spec, err := Line("Close Price Over Time", x, Series{Name: "Close", Values: []float64{1, 2}})

	assert.Equal(t, nil, err)
	assert.Equal(t, 1, len(spec.Data))
	assert.Equal(t, KindLine, spec.Data[0].Kind())

	trace := spec.Data[0].(ScatterTrace)
	assert.Equal(t, "scatter", trace.Type)
	assert.Equal(t, "lines", trace.Mode)
	assert.Equal(t, AccentColor, trace.Line.Color)
	assert.Equal(t, "Close Price Over Time", spec.Layout.Title.Text)
}

func TestLineShapeMismatch(t *testing.T) {
	_, err := Line("t", []string{"a", "b", "c"}, Series{Name: "y", Values: []float64{1, 2}})
	assert.Equal(t, true, errors.Is(err, ErrShapeMismatch))

	_, err = Line("t", nil, Series{Name: "a", Values: []float64{1}}, Series{Name: "b", Values: []float64{1, 2}})
	assert.Equal(t, true, errors.Is(err, ErrShapeMismatch))

	_, err = Line("t", nil)
	assert.Equal(t, true, errors.Is(err, ErrEmptySeries))
}

func TestLineWithoutXOmitsAxis(t *testing.T) {
	spec, err := Line("t", nil, Series{Name: "y", Values: []float64{3, math.NaN()}})
	assert.Equal(t, nil, err)

	b, err := json.Marshal(spec.Data[0])
	assert.Equal(t, nil, err)
	assert.Equal(t, `{"type":"scatter","mode":"lines","name":"y","y":[3,null],"line":{"color":"#00ffff"}}`, string(b))
}

func TestMovingAverageOverlay(t *testing.T) {
	x := []string{"d1", "d2", "d3"}
	spec, err := MovingAverageOverlay("t", x,
		Series{Name: "Close", Values: []float64{1, 2, 3}},
		Series{Name: "MA 20", Values: []float64{1, 1.5, 2}},
		Series{Name: "MA 50", Values: []float64{1, 1.5, 2}},
	)

	assert.Equal(t, nil, err)
	assert.Equal(t, 3, len(spec.Data))
	assert.Equal(t, "dot", spec.Data[1].(ScatterTrace).Line.Dash)
	assert.NotEqual(t, spec.Data[1].(ScatterTrace).Line.Color, spec.Data[2].(ScatterTrace).Line.Color)

	_, err = MovingAverageOverlay("t", x,
		Series{Name: "Close", Values: []float64{1, 2, 3}},
		Series{Name: "MA 20", Values: []float64{1, 1.5}},
	)
	assert.Equal(t, true, errors.Is(err, ErrShapeMismatch))
}

func TestCandlestick(t *testing.T) {
	x := []string{"d1", "d2"}
	spec, err := Candlestick("t", x, []float64{1, 2}, []float64{3, 4}, []float64{0, 1}, []float64{2, 3})

	assert.Equal(t, nil, err)
	assert.Equal(t, KindCandlestick, spec.Data[0].Kind())
	assert.Equal(t, false, spec.Layout.XAxis.RangeSlider.Visible)
}

func TestCandlestickShapeMismatch(t *testing.T) {
	tests := []struct {
		name                   string
		x                      []string
		open, high, low, close []float64
	}{
		{name: "short open", open: []float64{1}, high: []float64{1, 2}, low: []float64{1, 2}, close: []float64{1, 2}},
		{name: "long low", open: []float64{1, 2}, high: []float64{1, 2}, low: []float64{1, 2, 3}, close: []float64{1, 2}},
		{name: "x mismatch", x: []string{"d1"}, open: []float64{1, 2}, high: []float64{1, 2}, low: []float64{1, 2}, close: []float64{1, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec, err := Candlestick("t", tt.x, tt.open, tt.high, tt.low, tt.close)
			assert.Equal(t, true, errors.Is(err, ErrShapeMismatch))
			assert.Equal(t, 0, len(spec.Data))
		})
	}
}

func TestHistogram(t *testing.T) {
	spec, err := Histogram("Distribution", Series{Name: "pct", Values: []float64{0, 0.1, -0.1}})

	assert.Equal(t, nil, err)
	assert.Equal(t, KindHistogram, spec.Data[0].Kind())
	assert.Equal(t, "pct", spec.Layout.XAxis.Title.Text)
}

func TestHeatmap(t *testing.T) {
	labels := []string{"a", "b"}
	spec, err := Heatmap("Correlation Matrix", labels, [][]float64{{1, 0.12345}, {0.12345, 1}})

	assert.Equal(t, nil, err)
	trace := spec.Data[0].(HeatmapTrace)
	assert.Equal(t, KindHeatmap, trace.Kind())
	assert.Equal(t, [][]string{{"1.00", "0.12"}, {"0.12", "1.00"}}, trace.Text)
	assert.Equal(t, "%{text}", trace.TextTemplate)
	assert.Equal(t, labels, trace.X)
}

func TestHeatmapBlankUndefinedCells(t *testing.T) {
	nan := math.NaN()
	spec, err := Heatmap("t", []string{"a", "flat"}, [][]float64{{1, nan}, {nan, nan}})

	assert.Equal(t, nil, err)
	trace := spec.Data[0].(HeatmapTrace)
	assert.Equal(t, [][]string{{"1.00", ""}, {"", ""}}, trace.Text)

	b, err := json.Marshal(trace.Z)
	assert.Equal(t, nil, err)
	assert.Equal(t, "[[1,null],[null,null]]", string(b))
}

func TestHeatmapShapeMismatch(t *testing.T) {
	_, err := Heatmap("t", []string{"a", "b"}, [][]float64{{1, 0}, {0}})
	assert.Equal(t, true, errors.Is(err, ErrShapeMismatch))

	_, err = Heatmap("t", []string{"a"}, [][]float64{{1, 0}, {0, 1}})
	assert.Equal(t, true, errors.Is(err, ErrShapeMismatch))
}

func TestLayoutTheme(t *testing.T) {
	spec, _ := Histogram("t", Series{Name: "v", Values: []float64{1}})

	b, err := json.Marshal(spec.Layout)
	assert.Equal(t, nil, err)

	var layout map[string]any
	assert.Equal(t, nil, json.Unmarshal(b, &layout))
	assert.Equal(t, PaperBackground, layout["paper_bgcolor"])
	assert.Equal(t, PlotBackground, layout["plot_bgcolor"])
	assert.Equal(t, AccentColor, layout["font"].(map[string]any)["color"])
	assert.Equal(t, GridColor, layout["yaxis"].(map[string]any)["gridcolor"])
}
