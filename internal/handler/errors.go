package handler

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"stockviz/internal/frame"
)

var errInvalidQuery = errors.New("invalid query parameter")

func respondError(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, gin.H{"error": msg})
}

// respondDatasetError maps a failure to load or shape the stored dataset.
// Only a missing file is the caller's concern; everything else is ours.
func respondDatasetError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, frame.ErrSourceNotFound):
		respondError(c, http.StatusNotFound, "Dataset not found")
	case errors.Is(err, errInvalidQuery), errors.Is(err, frame.ErrInvalidCount):
		respondError(c, http.StatusBadRequest, err.Error())
	default:
		slog.Error("error processing dataset", "error", err, "path", c.Request.URL.Path)
		respondError(c, http.StatusInternalServerError, "Failed to process dataset")
	}
}

// respondUploadError maps a failure on user supplied data. Anything wrong
// with the content is a bad request.
func respondUploadError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, frame.ErrParse),
		errors.Is(err, frame.ErrNoNumericColumns),
		errors.Is(err, frame.ErrMissingColumn):
		respondError(c, http.StatusBadRequest, err.Error())
	default:
		slog.Error("error processing upload", "error", err)
		respondError(c, http.StatusInternalServerError, "Failed to process file")
	}
}

// getQueryPositiveInt returns defaultValue when the parameter is absent.
// Unlike a limit it is never silently clamped: a garbage or non-positive
// value is rejected.
func getQueryPositiveInt(c *gin.Context, name string, defaultValue int) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return defaultValue, nil
	}

	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		slog.Warn("invalid query parameter", "param", name, "value", raw)
		return 0, fmt.Errorf("%w: %s must be a positive integer", errInvalidQuery, name)
	}
	return v, nil
}
