package repository

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"stockviz/internal/frame"
)

// DatasetRepository reads the stock CSV from disk on every call.
type DatasetRepository struct {
	path string
	opts frame.LoadOptions
}

// NewDatasetRepository reads path, looking for the time column among
// timeColumns in order. Empty timeColumns keeps frame.DefaultTimeCandidates.
func NewDatasetRepository(path string, timeColumns ...string) *DatasetRepository {
	var opts frame.LoadOptions
	if len(timeColumns) > 0 {
		opts.TimeCandidates = timeColumns
	}
	return &DatasetRepository{path: path, opts: opts}
}

func (r *DatasetRepository) Path() string { return r.path }

func (r *DatasetRepository) LoadDataset() (*frame.Frame, error) {
	return frame.LoadFile(r.path, r.opts)
}

// Stat reports whether the dataset file is readable.
func (r *DatasetRepository) Stat() error {
	info, err := os.Stat(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", frame.ErrSourceNotFound, r.path)
		}
		return err
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory", r.path)
	}
	return nil
}
