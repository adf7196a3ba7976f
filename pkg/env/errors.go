// pkg/env/errors.go
package env

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates no active environment could be detected
	ErrNotFound = errors.New("environment not found")

	// ErrRuntimeUnavailable indicates the interpreter version could not be determined
	ErrRuntimeUnavailable = errors.New("runtime unavailable")
)

// NotFoundError reports a missing or unusable environment root
type NotFoundError struct {
	VarName string // Variable that should carry the root
	Root    string // Root that was found but is unusable, if any
	Err     error  // Underlying error, if any
}

func (e *NotFoundError) Error() string {
	if e.Root != "" {
		return fmt.Sprintf("environment root %s from %s is not usable: %v. Please activate a valid environment.", e.Root, e.VarName, e.Err)
	}
	return fmt.Sprintf("no active environment found (%s is not set). Please activate the environment.", e.VarName)
}

// Is matches ErrNotFound
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

func (e *NotFoundError) Unwrap() error {
	return e.Err
}
