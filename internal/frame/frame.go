package frame

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Kind is the semantic type of a column.
type Kind int

const (
	Categorical Kind = iota
	Numeric
	Temporal
)

func (k Kind) String() string {
	switch k {
	case Numeric:
		return "numeric"
	case Temporal:
		return "temporal"
	default:
		return "categorical"
	}
}

// Series is a single named column. Only the slice matching Kind is populated.
// Missing numeric cells are NaN, missing temporal cells are the zero time.
type Series struct {
	Name    string
	Kind    Kind
	Floats  []float64
	Times   []time.Time
	Strings []string
}

func (s *Series) Len() int {
	switch s.Kind {
	case Numeric:
		return len(s.Floats)
	case Temporal:
		return len(s.Times)
	default:
		return len(s.Strings)
	}
}

func (s *Series) take(idx []int) *Series {
	out := &Series{Name: s.Name, Kind: s.Kind}
	switch s.Kind {
	case Numeric:
		out.Floats = make([]float64, len(idx))
		for i, j := range idx {
			out.Floats[i] = s.Floats[j]
		}
	case Temporal:
		out.Times = make([]time.Time, len(idx))
		for i, j := range idx {
			out.Times[i] = s.Times[j]
		}
	default:
		out.Strings = make([]string, len(idx))
		for i, j := range idx {
			out.Strings[i] = s.Strings[j]
		}
	}
	return out
}

// Frame is an ordered set of equal-length columns.
type Frame struct {
	series  []*Series
	index   map[string]int
	timeCol string
	rows    int
}

// New builds a frame from columns. Names must be unique and lengths equal.
func New(series ...*Series) (*Frame, error) {
	f := &Frame{index: make(map[string]int, len(series))}
	for _, s := range series {
		if _, dup := f.index[s.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate column %q", ErrParse, s.Name)
		}
		if err := f.Add(s); err != nil {
			return nil, err
		}
	}
	return f, nil
}

func (f *Frame) Len() int { return f.rows }

func (f *Frame) Names() []string {
	names := make([]string, len(f.series))
	for i, s := range f.series {
		names[i] = s.Name
	}
	return names
}

func (f *Frame) Series() []*Series { return f.series }

// Column returns the column with exactly this name.
func (f *Frame) Column(name string) (*Series, bool) {
	i, ok := f.index[name]
	if !ok {
		return nil, false
	}
	return f.series[i], true
}

// Lookup finds a column ignoring case and surrounding whitespace. An exact
// match wins over a folded one.
func (f *Frame) Lookup(name string) (*Series, bool) {
	if s, ok := f.Column(name); ok {
		return s, true
	}
	want := normalizeName(name)
	for _, s := range f.series {
		if normalizeName(s.Name) == want {
			return s, true
		}
	}
	return nil, false
}

// Add appends a column, or replaces the column with the same name.
func (f *Frame) Add(s *Series) error {
	if len(f.series) > 0 && s.Len() != f.rows {
		return fmt.Errorf("%w: column %q has %d rows, frame has %d", ErrParse, s.Name, s.Len(), f.rows)
	}
	if f.index == nil {
		f.index = make(map[string]int)
	}
	if i, ok := f.index[s.Name]; ok {
		f.series[i] = s
	} else {
		f.index[s.Name] = len(f.series)
		f.series = append(f.series, s)
	}
	f.rows = s.Len()
	return nil
}

// TimeColumn is the name of the temporal column, or "" when none was found.
func (f *Frame) TimeColumn() string { return f.timeCol }

// Time returns the temporal column.
func (f *Frame) Time() (*Series, bool) {
	if f.timeCol == "" {
		return nil, false
	}
	return f.Column(f.timeCol)
}

func (f *Frame) setTime(s *Series) {
	f.series[f.index[s.Name]] = s
	f.timeCol = s.Name
	f.sortByTime()
}

// sortByTime orders rows ascending by the temporal column. Missing
// timestamps go last; ties keep file order.
func (f *Frame) sortByTime() {
	ts, ok := f.Time()
	if !ok {
		return
	}
	idx := make([]int, f.rows)
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		ta, tb := ts.Times[idx[a]], ts.Times[idx[b]]
		if ta.IsZero() || tb.IsZero() {
			return !ta.IsZero() && tb.IsZero()
		}
		return ta.Before(tb)
	})
	f.apply(idx)
}

func (f *Frame) apply(idx []int) {
	for i, s := range f.series {
		f.series[i] = s.take(idx)
	}
	f.rows = len(idx)
}

func (f *Frame) rowRange(from, to int) *Frame {
	idx := make([]int, 0, to-from)
	for i := from; i < to; i++ {
		idx = append(idx, i)
	}
	out := &Frame{index: make(map[string]int, len(f.series)), timeCol: f.timeCol, rows: len(idx)}
	for i, s := range f.series {
		out.index[s.Name] = i
		out.series = append(out.series, s.take(idx))
	}
	return out
}

// Head returns a copy holding the first n rows.
func Head(f *Frame, n int) *Frame {
	return f.rowRange(0, clamp(n, f.rows))
}

// Tail returns a copy holding the last n rows.
func Tail(f *Frame, n int) *Frame {
	return f.rowRange(f.rows-clamp(n, f.rows), f.rows)
}

func clamp(n, max int) int {
	if n < 0 {
		return 0
	}
	if n > max {
		return max
	}
	return n
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
