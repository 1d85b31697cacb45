package frame

import (
	"fmt"
	"strings"
	"time"
)

type Direction int

const (
	FromEnd Direction = iota
	FromStart
)

// CanonicalColumns must all be present in a sliced frame.
var CanonicalColumns = []string{"date", "open", "high", "low", "close"}

func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "end", "latest", "recent":
		return FromEnd, nil
	case "start", "earliest":
		return FromStart, nil
	}
	return FromEnd, fmt.Errorf("unknown direction %q", s)
}

// Slice takes n rows from one end of the frame and flattens it into a map
// keyed by lower-cased column name. The time column, whatever its header,
// is published as "date". Numeric columns become Floats and text columns
// plain strings. When two columns fold to the same name the first one wins.
func Slice(f *Frame, n int, dir Direction) (map[string]any, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCount, n)
	}

	var part *Frame
	if dir == FromStart {
		part = Head(f, n)
	} else {
		part = Tail(f, n)
	}

	out := make(map[string]any, len(part.series))
	if ts, ok := part.Time(); ok {
		out["date"] = FormatTimes(ts.Times)
	}
	for _, s := range part.series {
		if s.Name == part.timeCol {
			continue
		}
		key := normalizeName(s.Name)
		if _, taken := out[key]; taken {
			continue
		}
		switch s.Kind {
		case Temporal:
			out[key] = FormatTimes(s.Times)
		case Numeric:
			out[key] = Floats(s.Floats)
		default:
			out[key] = s.Strings
		}
	}

	for _, name := range CanonicalColumns {
		if _, ok := out[name]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, name)
		}
	}
	return out, nil
}

// FormatTimes renders timestamps as ISO dates, or as RFC3339 when any value
// carries a time of day. Missing values become "".
func FormatTimes(times []time.Time) []string {
	layout := "2006-01-02"
	for _, t := range times {
		if !t.IsZero() && (t.Hour() != 0 || t.Minute() != 0 || t.Second() != 0 || t.Nanosecond() != 0) {
			layout = time.RFC3339
			break
		}
	}
	out := make([]string, len(times))
	for i, t := range times {
		if !t.IsZero() {
			out[i] = t.Format(layout)
		}
	}
	return out
}
