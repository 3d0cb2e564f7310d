package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Input-data errors
	ErrEmptyDataset    = errors.New("the dataset is empty")
	ErrMalformedRecord = errors.New("malformed analysis record")

	// Validation errors
	ErrUnknownAnalysis   = errors.New("unknown analysis kind")
	ErrUnknownMetricKind = errors.New("unknown scalar metric kind")
	ErrUnknownTemplate   = errors.New("unknown recommendation template")
)

// Error constructors with context
func NewMalformedRecordError(analysis string, reason string) error {
	return fmt.Errorf("%w: %s: %s", ErrMalformedRecord, analysis, reason)
}

func NewValidationError(field string, reason string) error {
	return fmt.Errorf("validation failed for %s: %s", field, reason)
}

// Error checking helpers
func IsEmptyDatasetError(err error) bool {
	return errors.Is(err, ErrEmptyDataset)
}

func IsMalformedRecordError(err error) bool {
	return errors.Is(err, ErrMalformedRecord)
}
