package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors
var (
	// ErrInvalidURL indicates the repository URL could not be parsed
	ErrInvalidURL = errors.New("invalid repository URL")

	// ErrGitNotFound indicates no git executable is available on PATH
	ErrGitNotFound = errors.New("git executable not found")
)

// CloneError represents a failed clone invocation
type CloneError struct {
	URL      string
	ExitCode int
	Stderr   string
	Err      error
}

func (e *CloneError) Error() string {
	if e.Stderr != "" {
		return fmt.Sprintf("clone failed for %s (exit %d): %s", e.URL, e.ExitCode, e.Stderr)
	}
	return fmt.Sprintf("clone failed for %s: %v", e.URL, e.Err)
}

func (e *CloneError) Unwrap() error {
	return e.Err
}

// NewCloneError creates a new CloneError
func NewCloneError(url string, exitCode int, stderr string, err error) *CloneError {
	return &CloneError{
		URL:      url,
		ExitCode: exitCode,
		Stderr:   stderr,
		Err:      err,
	}
}

// PathError represents a failure preparing the destination directory
type PathError struct {
	Path string
	Err  error
}

func (e *PathError) Error() string {
	return fmt.Sprintf("cannot prepare directory %s: %v", e.Path, e.Err)
}

func (e *PathError) Unwrap() error {
	return e.Err
}

// NewPathError creates a new PathError
func NewPathError(path string, err error) *PathError {
	return &PathError{Path: path, Err: err}
}
