package frame

import (
	"math"
	"strconv"
)

// Floats is a float slice that encodes NaN and ±Inf as JSON null.
type Floats []float64

func (fs Floats) MarshalJSON() ([]byte, error) {
	buf := make([]byte, 0, 2+len(fs)*8)
	buf = append(buf, '[')
	for i, v := range fs {
		if i > 0 {
			buf = append(buf, ',')
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			buf = append(buf, "null"...)
			continue
		}
		buf = strconv.AppendFloat(buf, v, 'g', -1, 64)
	}
	return append(buf, ']'), nil
}
