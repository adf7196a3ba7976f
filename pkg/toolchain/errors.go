// pkg/toolchain/errors.go
package toolchain

import (
	"fmt"
	"strings"
)

// CompileError carries a compiler failure and its verbatim output
type CompileError struct {
	Module string   // Module being compiled
	Output []string // Lines of compiler output
	Err    error    // Error returned by the compiler process
}

// Error formats the failure as:
//
//	prime_ext: compiler failed: exit status 1
//
//	Compiler output:
//	ext.cpp:1:10: fatal error: boost/python.hpp: No such file or directory
func (e *CompileError) Error() string {
	prefix := fmt.Sprintf("%s: compiler failed: %v", e.Module, e.Err)
	if len(e.Output) == 0 {
		return prefix
	}
	return fmt.Sprintf("%s\n\nCompiler output:\n%s", prefix, strings.Join(e.Output, "\n"))
}

func (e *CompileError) Unwrap() error {
	return e.Err
}
