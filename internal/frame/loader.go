package frame

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

// DefaultTemporalThreshold is the share of cells that must parse as
// timestamps before a column is treated as the time axis.
const DefaultTemporalThreshold = 0.5

// DefaultTimeCandidates are tried in order when looking for the time column by name.
var DefaultTimeCandidates = []string{"Date", "date", "timestamp", "time"}

var timeLayouts = []string{
	time.RFC3339,
	time.RFC3339Nano,
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006/01/02",
	"01/02/2006",
	"1/2/2006",
	"1/2/2006 15:04",
	"1/2/2006 15:04:05",
	"02-Jan-2006",
	"Jan 2, 2006",
	"2 Jan 2006",
}

var missingTokens = map[string]bool{
	"":     true,
	"na":   true,
	"n/a":  true,
	"nan":  true,
	"null": true,
	"none": true,
	"#n/a": true,
	"nat":  true,
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

type LoadOptions struct {
	// TimeCandidates are exact column names tried in order. Nil means DefaultTimeCandidates.
	TimeCandidates []string
	// TemporalThreshold overrides DefaultTemporalThreshold when > 0.
	TemporalThreshold float64
	// DetectTemporal enables trial coercion of text columns when no candidate name matches.
	DetectTemporal bool
}

func (o LoadOptions) candidates() []string {
	if o.TimeCandidates == nil {
		return DefaultTimeCandidates
	}
	return o.TimeCandidates
}

func (o LoadOptions) threshold() float64 {
	if o.TemporalThreshold <= 0 {
		return DefaultTemporalThreshold
	}
	return o.TemporalThreshold
}

// LoadFile reads a CSV file from disk.
func LoadFile(path string, opts LoadOptions) (*Frame, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, path)
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return LoadBytes(data, opts)
}

func Load(r io.Reader, opts LoadOptions) (*Frame, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	return LoadBytes(data, opts)
}

// LoadBytes parses delimited text into a Frame. When a time column is
// found the rows are sorted ascending by it.
func LoadBytes(data []byte, opts LoadOptions) (*Frame, error) {
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("%w: input is not valid UTF-8", ErrParse)
	}
	data = bytes.TrimPrefix(data, utf8BOM)

	r := csv.NewReader(bytes.NewReader(data))
	r.TrimLeadingSpace = true
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: empty input", ErrParse)
	}

	header, rows := records[0], records[1:]
	names := make([]string, len(header))
	pos := make(map[string]int, len(header))
	for j, h := range header {
		name := strings.TrimSpace(h)
		if name == "" {
			return nil, fmt.Errorf("%w: column %d has an empty name", ErrParse, j+1)
		}
		if _, dup := pos[name]; dup {
			return nil, fmt.Errorf("%w: duplicate column %q", ErrParse, name)
		}
		names[j] = name
		pos[name] = j
	}

	raw := make([][]string, len(header))
	for j := range raw {
		raw[j] = make([]string, len(rows))
		for i, row := range rows {
			raw[j][i] = row[j]
		}
	}

	timeIdx := -1
	for _, cand := range opts.candidates() {
		if j, ok := pos[cand]; ok {
			timeIdx = j
			break
		}
	}

	// A name match that holds no dates is fatal for a stock file but on
	// the generic path it is just another column.
	var timeSeries *Series
	if timeIdx >= 0 {
		times, ratio := ParseTimes(raw[timeIdx])
		switch {
		case len(rows) == 0 || ratio > opts.threshold():
			timeSeries = &Series{Name: names[timeIdx], Kind: Temporal, Times: times}
		case opts.DetectTemporal:
			timeIdx = -1
		default:
			return nil, fmt.Errorf("%w: column %q: only %.0f%% of values are dates", ErrParse, names[timeIdx], ratio*100)
		}
	}

	f := &Frame{index: make(map[string]int, len(names))}
	for j, name := range names {
		s := timeSeries
		if j != timeIdx {
			s = inferSeries(name, raw[j])
		}
		if err := f.Add(s); err != nil {
			return nil, err
		}
	}

	if timeIdx >= 0 {
		f.timeCol = names[timeIdx]
		f.sortByTime()
	} else if opts.DetectTemporal {
		f.promoteTemporal(opts.threshold())
	}
	return f, nil
}

// inferSeries makes a numeric column when every present cell parses as a
// float and at least one cell is present. Anything else stays text.
func inferSeries(name string, values []string) *Series {
	floats := make([]float64, len(values))
	present := 0
	for i, v := range values {
		v = strings.TrimSpace(v)
		if isMissing(v) {
			floats[i] = math.NaN()
			continue
		}
		x, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return &Series{Name: name, Kind: Categorical, Strings: values}
		}
		floats[i] = x
		present++
	}
	if present == 0 {
		return &Series{Name: name, Kind: Categorical, Strings: values}
	}
	return &Series{Name: name, Kind: Numeric, Floats: floats}
}

// ParseTimes coerces every value to a timestamp. The ratio is parsed cells
// over total cells, 0 for an empty input.
func ParseTimes(values []string) ([]time.Time, float64) {
	times := make([]time.Time, len(values))
	parsed := 0
	for i, v := range values {
		if t, ok := parseTime(v); ok {
			times[i] = t
			parsed++
		}
	}
	if len(values) == 0 {
		return times, 0
	}
	return times, float64(parsed) / float64(len(values))
}

func parseTime(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if isMissing(s) {
		return time.Time{}, false
	}
	for _, l := range timeLayouts {
		if t, err := time.Parse(l, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func isMissing(s string) bool {
	return missingTokens[strings.ToLower(s)]
}
