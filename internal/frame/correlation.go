package frame

import (
	"fmt"
	"math"
)

// Correlation returns the Pearson correlation matrix of the named numeric
// columns. Each pair uses only rows where both values are present; pairs
// with fewer than two such rows or zero variance are NaN.
func Correlation(f *Frame, names []string) ([][]float64, error) {
	cols := make([][]float64, len(names))
	for i, name := range names {
		s, ok := f.Column(name)
		if !ok || s.Kind != Numeric {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, name)
		}
		cols[i] = s.Floats
	}

	mat := make([][]float64, len(names))
	for i := range mat {
		mat[i] = make([]float64, len(names))
	}
	for i := range cols {
		for j := i; j < len(cols); j++ {
			r := pearson(cols[i], cols[j])
			mat[i][j] = r
			mat[j][i] = r
		}
	}
	return mat, nil
}

func pearson(a, b []float64) float64 {
	var n, sa, sb float64
	for i := range a {
		if math.IsNaN(a[i]) || math.IsNaN(b[i]) {
			continue
		}
		n++
		sa += a[i]
		sb += b[i]
	}
	if n < 2 {
		return math.NaN()
	}
	ma, mb := sa/n, sb/n

	var cov, va, vb float64
	for i := range a {
		if math.IsNaN(a[i]) || math.IsNaN(b[i]) {
			continue
		}
		da, db := a[i]-ma, b[i]-mb
		cov += da * db
		va += da * da
		vb += db * db
	}
	if va == 0 || vb == 0 {
		return math.NaN()
	}
	r := cov / math.Sqrt(va*vb)
	return math.Max(-1, math.Min(1, r))
}
