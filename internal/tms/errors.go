package tms

import (
	"errors"
	"fmt"
)

// SourceError wraps a remote collection failure with the operation and
// project it belongs to. Transport failures are never swallowed: a partial
// suite list would corrupt every hierarchy derivation downstream, so they
// always propagate to the caller.
type SourceError struct {
	// Op names the failed operation (e.g. "suites", "testcases").
	Op string

	// ProjectKey is the project whose collection was being fetched.
	ProjectKey string

	// Err is the underlying failure from the source implementation.
	Err error
}

// Error implements the error interface for SourceError.
func (e *SourceError) Error() string {
	return fmt.Sprintf("fetching %s for project %s: %v", e.Op, e.ProjectKey, e.Err)
}

// Unwrap exposes the underlying error for errors.Is/As chains.
func (e *SourceError) Unwrap() error {
	return e.Err
}

// IsSourceError checks if an error is or wraps a SourceError.
func IsSourceError(err error) bool {
	var srcErr *SourceError
	return errors.As(err, &srcErr)
}

// ProjectNotFoundError indicates that a source has no data for the
// requested project key.
type ProjectNotFoundError struct {
	ProjectKey string
}

// Error implements the error interface for ProjectNotFoundError.
func (e *ProjectNotFoundError) Error() string {
	return fmt.Sprintf("project %s not found", e.ProjectKey)
}

// IsProjectNotFound checks if an error is or wraps a ProjectNotFoundError.
func IsProjectNotFound(err error) bool {
	var nfErr *ProjectNotFoundError
	return errors.As(err, &nfErr)
}
