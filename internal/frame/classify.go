package frame

// Classification partitions a frame's columns by role.
type Classification struct {
	Numeric  []string
	Temporal string
}

// Classify collects the numeric columns and, when the frame has no time
// column yet, promotes the first text column whose timestamp ratio exceeds
// threshold. The promoted column is replaced by its parsed form and the
// frame is re-sorted by it. A threshold <= 0 means DefaultTemporalThreshold.
func Classify(f *Frame, threshold float64) (Classification, error) {
	if threshold <= 0 {
		threshold = DefaultTemporalThreshold
	}

	var c Classification
	for _, s := range f.series {
		if s.Kind == Numeric {
			c.Numeric = append(c.Numeric, s.Name)
		}
	}

	if f.timeCol == "" {
		f.promoteTemporal(threshold)
	}
	c.Temporal = f.timeCol

	if len(c.Numeric) == 0 {
		return c, ErrNoNumericColumns
	}
	return c, nil
}

// promoteTemporal stops at the first qualifying column, not the best one.
func (f *Frame) promoteTemporal(threshold float64) string {
	for _, s := range f.series {
		if s.Kind != Categorical {
			continue
		}
		times, ratio := ParseTimes(s.Strings)
		if ratio > threshold {
			f.setTime(&Series{Name: s.Name, Kind: Temporal, Times: times})
			return s.Name
		}
	}
	return ""
}
