package frame

import (
	"fmt"
	"math"
)

// DefaultWindows are the moving average windows used when none are configured.
var DefaultWindows = []int{20, 50}

const PctChangeName = "pct_change"

func MovingAverageName(window int) string {
	return fmt.Sprintf("ma_%d", window)
}

// AddIndicators appends ma_<w> for every window and pct_change, all
// computed from the close column.
func AddIndicators(f *Frame, windows []int) error {
	closeSeries, ok := f.Lookup("close")
	if !ok || closeSeries.Kind != Numeric {
		return fmt.Errorf("%w: close", ErrMissingColumn)
	}
	for _, w := range windows {
		if w <= 0 {
			return fmt.Errorf("%w: %d", ErrInvalidWindow, w)
		}
	}

	for _, w := range windows {
		ma := &Series{Name: MovingAverageName(w), Kind: Numeric, Floats: MovingAverage(closeSeries.Floats, w)}
		if err := f.Add(ma); err != nil {
			return err
		}
	}
	pct := &Series{Name: PctChangeName, Kind: Numeric, Floats: PctChange(closeSeries.Floats)}
	return f.Add(pct)
}

// MovingAverage is a trailing mean with a minimum period of one: row i
// averages the present values in rows max(0, i-window+1)..i. NaN cells are
// skipped; a row with no present values is NaN.
func MovingAverage(values []float64, window int) []float64 {
	out := make([]float64, len(values))
	for i := range values {
		start := i - window + 1
		if start < 0 {
			start = 0
		}
		sum, n := 0.0, 0
		for _, v := range values[start : i+1] {
			if math.IsNaN(v) {
				continue
			}
			sum += v
			n++
		}
		if n == 0 {
			out[i] = math.NaN()
			continue
		}
		out[i] = sum / float64(n)
	}
	return out
}

// PctChange returns (v[i]-v[i-1])/v[i-1]. Row 0, a zero previous value and
// any NaN operand all yield 0.
func PctChange(values []float64) []float64 {
	out := make([]float64, len(values))
	for i := 1; i < len(values); i++ {
		prev, cur := values[i-1], values[i]
		if prev == 0 || math.IsNaN(prev) || math.IsNaN(cur) {
			continue
		}
		out[i] = (cur - prev) / prev
	}
	return out
}
