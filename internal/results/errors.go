// internal/results/errors.go
package results

import (
	"errors"
	"fmt"
)

var (
	// ErrLoadFailure matches any *LoadFailure.
	ErrLoadFailure = errors.New("load failure")
	// ErrMissingProvider matches any *MissingProviderError.
	ErrMissingProvider = errors.New("record has no provider id")
)

// LoadFailure reports that the input document could not be retrieved or parsed.
type LoadFailure struct {
	Location string
	Err      error
}

func (e *LoadFailure) Error() string {
	return fmt.Sprintf("unable to load evaluation results %s: %v", e.Location, e.Err)
}

func (e *LoadFailure) Unwrap() error { return e.Err }

// Is lets errors.Is(err, ErrLoadFailure) match.
func (e *LoadFailure) Is(target error) bool { return target == ErrLoadFailure }

// MissingProviderError rejects a document whose record at Index lacks a provider id.
type MissingProviderError struct {
	Index int
}

func (e *MissingProviderError) Error() string {
	return fmt.Sprintf("record %d: %v", e.Index, ErrMissingProvider)
}

// Is lets errors.Is(err, ErrMissingProvider) match.
func (e *MissingProviderError) Is(target error) bool { return target == ErrMissingProvider }
