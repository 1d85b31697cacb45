package frame

import "errors"

var (
	ErrSourceNotFound   = errors.New("source not found")
	ErrParse            = errors.New("parse error")
	ErrMissingColumn    = errors.New("missing column")
	ErrNoNumericColumns = errors.New("no numeric columns found")
	ErrInvalidWindow    = errors.New("window must be a positive integer")
	ErrInvalidCount     = errors.New("row count must be a positive integer")
)
