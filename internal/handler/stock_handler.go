package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"stockviz/internal/chart"
	"stockviz/internal/frame"
)

const (
	defaultChartRows = 1000
	defaultDataRows  = 500
)

type DatasetSource interface {
	LoadDataset() (*frame.Frame, error)
	Stat() error
}

type StockHandler struct {
	source  DatasetSource
	windows []int
}

func NewStockHandler(source DatasetSource, windows []int) *StockHandler {
	if len(windows) == 0 {
		windows = frame.DefaultWindows
	}
	return &StockHandler{source: source, windows: windows}
}

// GetCharts serves the dashboard for the last nrows rows. Indicators are
// computed over the whole dataset before slicing so the first shown rows
// still see their full window.
func (h *StockHandler) GetCharts(c *gin.Context) {
	n, err := getQueryPositiveInt(c, "nrows", defaultChartRows)
	if err != nil {
		respondDatasetError(c, err)
		return
	}

	f, err := h.source.LoadDataset()
	if err != nil {
		respondDatasetError(c, err)
		return
	}

	if err := frame.AddIndicators(f, h.windows); err != nil {
		respondDatasetError(c, err)
		return
	}

	charts, err := chart.PriceCharts(frame.Tail(f, n), h.windows)
	if err != nil {
		respondDatasetError(c, err)
		return
	}

	c.JSON(http.StatusOK, ChartsResponse{Charts: charts})
}

// GetData returns the raw column arrays for nrows rows from either end.
func (h *StockHandler) GetData(c *gin.Context) {
	n, err := getQueryPositiveInt(c, "nrows", defaultDataRows)
	if err != nil {
		respondDatasetError(c, err)
		return
	}

	dir, err := frame.ParseDirection(c.Query("from"))
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	f, err := h.source.LoadDataset()
	if err != nil {
		respondDatasetError(c, err)
		return
	}

	data, err := frame.Slice(f, n, dir)
	if err != nil {
		respondDatasetError(c, err)
		return
	}

	c.JSON(http.StatusOK, data)
}

func (h *StockHandler) GetHealth(c *gin.Context) {
	if err := h.source.Stat(); err != nil {
		c.JSON(http.StatusServiceUnavailable, HealthResponse{
			Status:  "unhealthy",
			Dataset: "missing",
		})
		return
	}

	c.JSON(http.StatusOK, HealthResponse{
		Status:  "healthy",
		Dataset: "present",
	})
}
