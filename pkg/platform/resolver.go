// pkg/platform/resolver.go
package platform

import (
	"errors"
	"fmt"

	"github.com/arc-language/extbuild/pkg/core"
)

// ErrCompilerNotFound indicates no C++ compiler could be selected
var ErrCompilerNotFound = errors.New("no C++ compiler found")

// ResolveCompiler resolves which compiler to use based on platform and config
func ResolveCompiler(platform *Platform, config *core.Config) (string, error) {
	// Priority:
	// 1. User-specified compiler in config (trusted as-is, may be a full path)
	// 2. Platform preferred compiler
	// 3. First available compiler
	if config != nil && config.Compiler != "" {
		return config.Compiler, nil
	}
	if platform.Preferred != "" {
		return platform.Preferred, nil
	}
	if len(platform.Available) > 0 {
		return platform.Available[0], nil
	}
	return "", fmt.Errorf("%w on %s (tried %v)", ErrCompilerNotFound, platform.OS, knownCompilers)
}
