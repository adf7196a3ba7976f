// pkg/toolchain/driver.go
package toolchain

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/tliron/commonlog"

	"github.com/arc-language/extbuild/pkg/env"
	"github.com/arc-language/extbuild/pkg/extension"
	"github.com/arc-language/extbuild/pkg/platform"
)

var (
	execCommandContext = exec.CommandContext
	execLookPath       = exec.LookPath

	log = commonlog.GetLogger("extbuild.toolchain")
)

// defaultModuleSuffix is used when the interpreter reported no extension suffix
const defaultModuleSuffix = ".so"

// Result contains the output and status of compiling one module
type Result struct {
	Module  string   // Module name
	Output  string   // Path of the compiled module file
	Command []string // Full compiler invocation
	Lines   []string // Combined compiler output
	Success bool
}

// Driver compiles descriptors into loadable extension modules with a single
// compile-and-link invocation of a C++ driver per module
type Driver struct {
	Compiler  string          // C++ driver (e.g., g++, clang++)
	Family    platform.Family // Selects the shared-module flags
	OutputDir string          // Directory receiving module files
	Env       []string        // Extra KEY=VALUE variables for the compiler
	Verbose   bool
}

// Name returns the compiler name
func (d *Driver) Name() string {
	return d.Compiler
}

// ModulePath returns the file a descriptor compiles to
func (d *Driver) ModulePath(e *env.Environment, desc *extension.Descriptor) string {
	suffix := e.Runtime.ExtSuffix
	if suffix == "" {
		suffix = defaultModuleSuffix
	}
	return filepath.Join(d.OutputDir, desc.ModuleName+suffix)
}

// Command returns the compiler invocation for a descriptor, program first
func (d *Driver) Command(e *env.Environment, desc *extension.Descriptor) []string {
	args := []string{d.Compiler}
	args = append(args, d.Family.SharedModuleFlags()...)
	args = append(args, desc.CompileArgs...)

	for _, dir := range desc.IncludeDirs {
		args = append(args, "-I"+dir)
	}
	args = append(args, "-I"+e.PythonIncludeDir())

	args = append(args, desc.Sources...)

	for _, dir := range desc.LibraryDirs {
		args = append(args, "-L"+dir)
	}
	for _, lib := range desc.Libraries {
		args = append(args, "-l"+lib)
	}
	args = append(args, desc.LinkArgs...)

	args = append(args, "-o", d.ModulePath(e, desc))
	return args
}

// Compile runs the compiler for one descriptor. A failing compiler is
// reported with its output untouched.
func (d *Driver) Compile(ctx context.Context, e *env.Environment, desc *extension.Descriptor) (*Result, error) {
	command := d.Command(e, desc)
	result := &Result{
		Module:  desc.ModuleName,
		Output:  d.ModulePath(e, desc),
		Command: command,
	}

	if err := os.MkdirAll(d.OutputDir, 0755); err != nil {
		return result, fmt.Errorf("creating output directory: %w", err)
	}

	log.Infof("compiling %s -> %s", desc.ModuleName, result.Output)
	if d.Verbose {
		log.Noticef("Running: %s", strings.Join(command, " "))
	}

	//nolint:gosec // Command is assembled from the build plan
	cmd := execCommandContext(ctx, command[0], command[1:]...)
	cmd.Env = append(cmd.Environ(), d.Env...)

	output, err := cmd.CombinedOutput()
	if len(output) > 0 {
		result.Lines = strings.Split(strings.TrimRight(string(output), "\n"), "\n")
	}

	if err != nil {
		return result, &CompileError{Module: desc.ModuleName, Output: result.Lines, Err: err}
	}

	result.Success = true
	return result, nil
}
