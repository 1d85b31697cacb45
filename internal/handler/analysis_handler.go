package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"stockviz/internal/analysis"
	"stockviz/internal/frame"
	"stockviz/pkg/llm"
)

const defaultAnalysisRows = 100

type Summarizer interface {
	Summarize(ctx context.Context, f *frame.Frame, n int) (*llm.AnalysisResult, error)
}

type AnalysisHandler struct {
	source     DatasetSource
	summarizer Summarizer
}

func NewAnalysisHandler(source DatasetSource, summarizer Summarizer) *AnalysisHandler {
	return &AnalysisHandler{source: source, summarizer: summarizer}
}

func (h *AnalysisHandler) Analyze(c *gin.Context) {
	n, err := getQueryPositiveInt(c, "nrows", defaultAnalysisRows)
	if err != nil {
		respondDatasetError(c, err)
		return
	}

	f, err := h.source.LoadDataset()
	if err != nil {
		respondDatasetError(c, err)
		return
	}

	res, err := h.summarizer.Summarize(c.Request.Context(), f, n)
	if err != nil {
		var genErr *analysis.GenerationError
		if errors.As(err, &genErr) {
			slog.Error("error generating analysis", "error", genErr.Err, "nrows", n)
			respondError(c, http.StatusBadGateway, "Failed to generate analysis: "+genErr.Err.Error())
			return
		}
		respondDatasetError(c, err)
		return
	}

	c.JSON(http.StatusOK, AnalysisResponse{
		Analysis: res.Text,
		Model:    res.ModelUsed,
	})
}
