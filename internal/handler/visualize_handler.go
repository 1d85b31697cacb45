package handler

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"stockviz/internal/chart"
	"stockviz/internal/frame"
)

// multipartOverhead covers part headers and boundaries on top of the file.
const multipartOverhead = 4 << 10

type VisualizeHandler struct {
	maxBytes  int64
	threshold float64
}

// NewVisualizeHandler accepts uploads up to maxBytes. A threshold <= 0
// means frame.DefaultTemporalThreshold.
func NewVisualizeHandler(maxBytes int64, threshold float64) *VisualizeHandler {
	return &VisualizeHandler{maxBytes: maxBytes, threshold: threshold}
}

// Visualize charts an arbitrary uploaded CSV. Columns are classified on the
// fly: numeric ones are plotted and the first text column that mostly
// parses as timestamps becomes the x axis.
func (h *VisualizeHandler) Visualize(c *gin.Context) {
	if h.maxBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxBytes+multipartOverhead)
	}

	fh, err := c.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.respondTooLarge(c)
			return
		}
		respondError(c, http.StatusBadRequest, "No file uploaded")
		return
	}
	if h.maxBytes > 0 && fh.Size > h.maxBytes {
		h.respondTooLarge(c)
		return
	}

	file, err := fh.Open()
	if err != nil {
		slog.Error("error opening upload", "error", err, "file", fh.Filename)
		respondError(c, http.StatusBadRequest, "Could not read file")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		slog.Error("error reading upload", "error", err, "file", fh.Filename)
		respondError(c, http.StatusBadRequest, "Could not read file")
		return
	}

	f, err := frame.LoadBytes(data, frame.LoadOptions{
		TemporalThreshold: h.threshold,
		DetectTemporal:    true,
	})
	if err != nil {
		respondUploadError(c, err)
		return
	}

	cls, err := frame.Classify(f, h.threshold)
	if err != nil {
		respondUploadError(c, err)
		return
	}

	charts, err := chart.DatasetCharts(f, cls)
	if err != nil {
		respondUploadError(c, err)
		return
	}

	slog.Info("visualized upload", "file", fh.Filename, "rows", f.Len(), "numeric_columns", len(cls.Numeric))
	c.JSON(http.StatusOK, VisualizeResponse{
		Charts:   charts,
		FileName: fh.Filename,
	})
}

func (h *VisualizeHandler) respondTooLarge(c *gin.Context) {
	respondError(c, http.StatusRequestEntityTooLarge, fmt.Sprintf("File exceeds %d bytes", h.maxBytes))
}
