// ABOUTME: Custom error types for the core business logic
// ABOUTME: Provides structured errors for better error handling at the orchestration boundary

package errors

import (
	"errors"
	"fmt"
)

// InputError represents caller-supplied input the pipeline cannot work with,
// such as an empty product list or a non-positive budget.
type InputError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (e *InputError) Error() string {
	return fmt.Sprintf("invalid input on field '%s': %s", e.Field, e.Message)
}

// NoResultsError signals that a candidate pool yielded zero products after
// filtering and ranking. It triggers the alternative-generation path rather
// than aborting the request.
type NoResultsError struct {
	Message string
}

// Error implements the error interface
func (e *NoResultsError) Error() string {
	return e.Message
}

// AnalysisError represents a violated scoring invariant. Defensive only;
// the analyzer is pure and should never produce one in practice.
type AnalysisError struct {
	Stage   string
	Message string
}

// Error implements the error interface
func (e *AnalysisError) Error() string {
	return fmt.Sprintf("analysis failed during %s: %s", e.Stage, e.Message)
}

// CacheError represents a persistence-layer failure. Callers treat cache
// writes as an optimization and must swallow this error after logging it.
type CacheError struct {
	Op  string
	Key string
	Err error
}

// Error implements the error interface
func (e *CacheError) Error() string {
	return fmt.Sprintf("cache %s failed for key '%s': %v", e.Op, e.Key, e.Err)
}

// Unwrap returns the underlying I/O error
func (e *CacheError) Unwrap() error {
	return e.Err
}

// IsInput checks if an error is an InputError
func IsInput(err error) bool {
	var inputErr *InputError
	return errors.As(err, &inputErr)
}

// IsNoResults checks if an error is a NoResultsError
func IsNoResults(err error) bool {
	var noResultsErr *NoResultsError
	return errors.As(err, &noResultsErr)
}

// IsAnalysis checks if an error is an AnalysisError
func IsAnalysis(err error) bool {
	var analysisErr *AnalysisError
	return errors.As(err, &analysisErr)
}

// IsCache checks if an error is a CacheError
func IsCache(err error) bool {
	var cacheErr *CacheError
	return errors.As(err, &cacheErr)
}

// WrapError wraps an error with additional context
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
