package chart

import (
	"fmt"

	"stockviz/internal/frame"
)

var priceColumns = []string{"Open", "High", "Low", "Close"}

// PriceCharts builds the stock dashboard: one line per price column,
// a candlestick, the close with its moving averages and the distribution
// of fractional change. Indicator charts are skipped when the indicator
// columns are absent.
func PriceCharts(f *frame.Frame, windows []int) ([]Spec, error) {
	x := timeAxis(f)

	prices := make(map[string][]float64, len(priceColumns))
	for _, name := range priceColumns {
		s, ok := f.Lookup(name)
		if !ok || s.Kind != frame.Numeric {
			return nil, fmt.Errorf("%w: %s", frame.ErrMissingColumn, name)
		}
		prices[name] = s.Floats
	}

	var charts []Spec
	for _, name := range priceColumns {
		spec, err := Line(fmt.Sprintf("%s Price Over Time", name), x, Series{Name: name, Values: prices[name]})
		if err != nil {
			return nil, err
		}
		charts = append(charts, spec)
	}

	candles, err := Candlestick("Candlestick", x, prices["Open"], prices["High"], prices["Low"], prices["Close"])
	if err != nil {
		return nil, err
	}
	charts = append(charts, candles)

	var overlays []Series
	for _, w := range windows {
		if s, ok := f.Column(frame.MovingAverageName(w)); ok {
			overlays = append(overlays, Series{Name: fmt.Sprintf("MA %d", w), Values: s.Floats})
		}
	}
	if len(overlays) > 0 {
		spec, err := MovingAverageOverlay("Close with Moving Averages", x, Series{Name: "Close", Values: prices["Close"]}, overlays...)
		if err != nil {
			return nil, err
		}
		charts = append(charts, spec)
	}

	if s, ok := f.Column(frame.PctChangeName); ok {
		spec, err := Histogram("Daily Change Distribution", Series{Name: "Fractional change", Values: s.Floats})
		if err != nil {
			return nil, err
		}
		charts = append(charts, spec)
	}
	return charts, nil
}

// DatasetCharts builds charts for an arbitrary classified frame: a line and
// a histogram per numeric column, a candlestick when OHLC columns exist and
// a correlation heatmap for two or more numeric columns.
func DatasetCharts(f *frame.Frame, c frame.Classification) ([]Spec, error) {
	if len(c.Numeric) == 0 {
		return nil, frame.ErrNoNumericColumns
	}
	x := timeAxis(f)

	columns := make([]*frame.Series, 0, len(c.Numeric))
	for _, name := range c.Numeric {
		s, ok := f.Column(name)
		if !ok {
			return nil, fmt.Errorf("%w: %s", frame.ErrMissingColumn, name)
		}
		columns = append(columns, s)
	}

	var charts []Spec
	for _, s := range columns {
		title := fmt.Sprintf("%s by Row", s.Name)
		if x != nil {
			title = fmt.Sprintf("%s Over Time", s.Name)
		}
		spec, err := Line(title, x, Series{Name: s.Name, Values: s.Floats})
		if err != nil {
			return nil, err
		}
		charts = append(charts, spec)
	}

	if ohlc, ok := lookupNumeric(f, priceColumns...); ok {
		spec, err := Candlestick("Candlestick", x, ohlc[0], ohlc[1], ohlc[2], ohlc[3])
		if err != nil {
			return nil, err
		}
		charts = append(charts, spec)
	}

	for _, s := range columns {
		spec, err := Histogram(fmt.Sprintf("Distribution of %s", s.Name), Series{Name: s.Name, Values: s.Floats})
		if err != nil {
			return nil, err
		}
		charts = append(charts, spec)
	}

	if len(c.Numeric) >= 2 {
		mat, err := frame.Correlation(f, c.Numeric)
		if err != nil {
			return nil, err
		}
		spec, err := Heatmap("Correlation Matrix", c.Numeric, mat)
		if err != nil {
			return nil, err
		}
		charts = append(charts, spec)
	}
	return charts, nil
}

func timeAxis(f *frame.Frame) []string {
	ts, ok := f.Time()
	if !ok {
		return nil
	}
	return frame.FormatTimes(ts.Times)
}

func lookupNumeric(f *frame.Frame, names ...string) ([][]float64, bool) {
	out := make([][]float64, len(names))
	for i, name := range names {
		s, ok := f.Lookup(name)
		if !ok || s.Kind != frame.Numeric {
			return nil, false
		}
		out[i] = s.Floats
	}
	return out, true
}
