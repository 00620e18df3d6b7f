package errors

import "errors"

var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrInputExhausted   = errors.New("input exhausted")
	ErrUnknownCity      = errors.New("unknown city")
	ErrDatasetNotFound  = errors.New("dataset not found")
	ErrInvalidDataset   = errors.New("invalid dataset")
	ErrEmptyDataset     = errors.New("empty dataset")
	ErrMissingAttribute = errors.New("missing attribute")
	ErrInvalidConfig    = errors.New("invalid config")
)
