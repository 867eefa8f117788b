package dataset

import "errors"

var (
	// ErrUnavailable is returned when the dataset source cannot be read
	ErrUnavailable = errors.New("dataset unavailable")

	// ErrMalformed is returned when the dataset cannot be decoded or fails validation
	ErrMalformed = errors.New("dataset malformed")

	// ErrUnsupportedFormat is returned for file extensions with no decoder
	ErrUnsupportedFormat = errors.New("unsupported dataset format")
)
