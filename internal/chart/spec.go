package chart

import (
	"errors"

	"stockviz/internal/frame"
)

var (
	ErrShapeMismatch = errors.New("shape mismatch")
	ErrEmptySeries   = errors.New("no series to plot")
)

// Kind is the geometry a trace draws.
type Kind string

const (
	KindLine        Kind = "line"
	KindCandlestick Kind = "candlestick"
	KindHistogram   Kind = "histogram"
	KindHeatmap     Kind = "heatmap"
)

type Trace interface {
	Kind() Kind
}

// Spec is a Plotly figure: traces plus layout.
type Spec struct {
	Data   []Trace `json:"data"`
	Layout Layout  `json:"layout"`
}

// Series is one named y (or value) array passed to a builder.
type Series struct {
	Name   string
	Values []float64
}

type Font struct {
	Color string `json:"color,omitempty"`
	Size  int    `json:"size,omitempty"`
}

type Title struct {
	Text string `json:"text"`
	Font *Font  `json:"font,omitempty"`
}

type RangeSlider struct {
	Visible bool `json:"visible"`
}

type Axis struct {
	Title       *Title       `json:"title,omitempty"`
	GridColor   string       `json:"gridcolor,omitempty"`
	RangeSlider *RangeSlider `json:"rangeslider,omitempty"`
}

type Layout struct {
	Title        Title  `json:"title"`
	Font         Font   `json:"font"`
	PaperBgColor string `json:"paper_bgcolor"`
	PlotBgColor  string `json:"plot_bgcolor"`
	XAxis        Axis   `json:"xaxis"`
	YAxis        Axis   `json:"yaxis"`
	ShowLegend   bool   `json:"showlegend"`
}

type LineStyle struct {
	Color string  `json:"color,omitempty"`
	Width float64 `json:"width,omitempty"`
	Dash  string  `json:"dash,omitempty"`
}

type Marker struct {
	Color string `json:"color,omitempty"`
}

type ScatterTrace struct {
	Type string       `json:"type"`
	Mode string       `json:"mode"`
	Name string       `json:"name,omitempty"`
	X    []string     `json:"x,omitempty"`
	Y    frame.Floats `json:"y"`
	Line *LineStyle   `json:"line,omitempty"`
}

func (ScatterTrace) Kind() Kind { return KindLine }

type CandleSide struct {
	Line LineStyle `json:"line"`
}

type CandlestickTrace struct {
	Type       string       `json:"type"`
	Name       string       `json:"name,omitempty"`
	X          []string     `json:"x,omitempty"`
	Open       frame.Floats `json:"open"`
	High       frame.Floats `json:"high"`
	Low        frame.Floats `json:"low"`
	Close      frame.Floats `json:"close"`
	Increasing CandleSide   `json:"increasing"`
	Decreasing CandleSide   `json:"decreasing"`
}

func (CandlestickTrace) Kind() Kind { return KindCandlestick }

type HistogramTrace struct {
	Type   string       `json:"type"`
	Name   string       `json:"name,omitempty"`
	X      frame.Floats `json:"x"`
	Marker *Marker      `json:"marker,omitempty"`
}

func (HistogramTrace) Kind() Kind { return KindHistogram }

type HeatmapTrace struct {
	Type         string         `json:"type"`
	X            []string       `json:"x"`
	Y            []string       `json:"y"`
	Z            []frame.Floats `json:"z"`
	Text         [][]string     `json:"text"`
	TextTemplate string         `json:"texttemplate"`
	ColorScale   [][2]any       `json:"colorscale"`
	ZMin         float64        `json:"zmin"`
	ZMax         float64        `json:"zmax"`
}

func (HeatmapTrace) Kind() Kind { return KindHeatmap }
