package analysis

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"stockviz/internal/frame"
	"stockviz/pkg/llm"
)

var excerptColumns = []string{"Date", "Open", "High", "Low", "Close"}

// GenerationError marks a failure of the text generation service, as
// opposed to a problem with the data handed to it.
type GenerationError struct {
	Err error
}

func (e *GenerationError) Error() string { return "generate analysis: " + e.Err.Error() }

func (e *GenerationError) Unwrap() error { return e.Err }

type Summarizer struct {
	analyzer llm.Analyzer
}

func NewSummarizer(analyzer llm.Analyzer) *Summarizer {
	return &Summarizer{analyzer: analyzer}
}

// Summarize asks the analyzer for a trend summary of the last n rows.
func (s *Summarizer) Summarize(ctx context.Context, f *frame.Frame, n int) (*llm.AnalysisResult, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: %d", frame.ErrInvalidCount, n)
	}

	excerpt, err := FormatExcerpt(frame.Tail(f, n))
	if err != nil {
		return nil, err
	}

	res, err := s.analyzer.Analyze(ctx, llm.BuildAnalysisPrompt(excerpt))
	if err != nil {
		return nil, &GenerationError{Err: err}
	}
	return res, nil
}

// FormatExcerpt renders Date/Open/High/Low/Close as a right-aligned text
// table with a header row and no index. Date is the frame's time column
// under whatever name it was loaded.
func FormatExcerpt(f *frame.Frame) (string, error) {
	cells := make([][]string, len(excerptColumns))
	for j, name := range excerptColumns {
		s, ok := f.Lookup(name)
		if name == "Date" {
			s, ok = f.Time()
		}
		if !ok {
			return "", fmt.Errorf("%w: %s", frame.ErrMissingColumn, name)
		}
		cells[j] = append([]string{name}, formatCells(s)...)
	}

	widths := make([]int, len(cells))
	for j, col := range cells {
		for _, c := range col {
			if len(c) > widths[j] {
				widths[j] = len(c)
			}
		}
	}

	var sb strings.Builder
	for i := 0; i <= f.Len(); i++ {
		for j, col := range cells {
			if j > 0 {
				sb.WriteString(" ")
			}
			sb.WriteString(strings.Repeat(" ", widths[j]-len(col[i])))
			sb.WriteString(col[i])
		}
		sb.WriteString("\n")
	}
	return sb.String(), nil
}

func formatCells(s *frame.Series) []string {
	switch s.Kind {
	case frame.Temporal:
		return frame.FormatTimes(s.Times)
	case frame.Numeric:
		out := make([]string, len(s.Floats))
		for i, v := range s.Floats {
			out[i] = strconv.FormatFloat(v, 'f', -1, 64)
		}
		return out
	default:
		return s.Strings
	}
}
