package domain

import (
	"errors"
	"fmt"
)

// ErrCompanyNotFound marks an empty result set for a company lookup. It is a
// recoverable condition, distinct from a query or connectivity failure.
var ErrCompanyNotFound = errors.New("company not found")

// DataSourceError wraps a warehouse lookup or query failure.
type DataSourceError struct {
	Op  string
	Err error
}

func (e *DataSourceError) Error() string {
	return fmt.Sprintf("data source error during %s: %v", e.Op, e.Err)
}

func (e *DataSourceError) Unwrap() error { return e.Err }

// GenerationError wraps a completion-service failure. Never retried.
type GenerationError struct {
	Model string
	Err   error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("generation failed with model %s: %v", e.Model, e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }
