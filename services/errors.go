package services

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingRegion means the region is a key of neither bucket.
	ErrMissingRegion = errors.New("no data found")
	// ErrNoProperties means no listing survived the query filters.
	ErrNoProperties = errors.New("no properties found")
	// ErrEmptyInput means the source had no header row.
	ErrEmptyInput = errors.New("input has no header row")
	// ErrUnknownStat means a stat name is not registered.
	ErrUnknownStat = errors.New("unknown stat")
	// ErrNoAreaField means the header has neither a sqft nor a house_size column.
	ErrNoAreaField = errors.New("no area column")
)

// FileNotFoundError reports a data file that could not be opened. The caller
// decides whether to prompt for another path, retry or abort.
type FileNotFoundError struct {
	Path string
	Err  error
}

func (e *FileNotFoundError) Error() string {
	return fmt.Sprintf("File not found: %s", e.Path)
}

func (e *FileNotFoundError) Unwrap() error { return e.Err }

// QueryError is the diagnosis returned alongside an empty query result.
// Reason is the human-readable message shown to the user.
type QueryError struct {
	Op     string
	Region string
	Reason string
	Err    error
}

func (e *QueryError) Error() string { return e.Reason }

func (e *QueryError) Unwrap() error { return e.Err }

func missingRegion(op, region string) error {
	return &QueryError{
		Op:     op,
		Region: region,
		Reason: fmt.Sprintf("No data found for '%s'", region),
		Err:    ErrMissingRegion,
	}
}

func noProperties(op, region, reason string) error {
	return &QueryError{Op: op, Region: region, Reason: reason, Err: ErrNoProperties}
}
