// errors.go
package extbuild

import (
	"fmt"

	"github.com/arc-language/extbuild/pkg/env"
	"github.com/arc-language/extbuild/pkg/extension"
	"github.com/arc-language/extbuild/pkg/manifest"
	"github.com/arc-language/extbuild/pkg/platform"
)

var (
	// ErrEnvironmentNotFound indicates no active environment was detected
	ErrEnvironmentNotFound = env.ErrNotFound

	// ErrRuntimeUnavailable indicates the interpreter version could not be determined
	ErrRuntimeUnavailable = env.ErrRuntimeUnavailable

	// ErrInvalidSpec indicates a module spec without a name or sources
	ErrInvalidSpec = extension.ErrInvalidSpec

	// ErrInvalidManifest indicates an unusable project manifest
	ErrInvalidManifest = manifest.ErrInvalidManifest

	// ErrCompilerNotFound indicates no C++ compiler is available
	ErrCompilerNotFound = platform.ErrCompilerNotFound
)

// Error wraps an error with additional context
type Error struct {
	Op     string // Operation that failed
	Module string // Extension module if applicable
	Err    error  // Underlying error
}

func (e *Error) Error() string {
	if e.Module != "" {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Module, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
