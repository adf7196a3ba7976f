// pkg/env/types.go
package env

import (
	"fmt"
	"path/filepath"
)

// Layout defines where headers and libraries live relative to an environment root
type Layout struct {
	Include    string // Relative path to the include directory
	Lib        string // Relative path to the library directory
	ThirdParty string // Relative path to the bundled third-party headers
	Bin        string // Relative path to the interpreter directory
}

// Runtime describes the interpreter installed in an environment
type Runtime struct {
	Major        int      // Major version (e.g., 3)
	Minor        int      // Minor version (e.g., 11)
	SitePackages []string // Site-package locations reported by the interpreter, in search order
	ExtSuffix    string   // Extension module filename suffix (e.g., ".cpython-311-x86_64-linux-gnu.so")
	IncludeDir   string   // Interpreter header directory, empty if not reported
}

// Version returns the "<major>.<minor>" version string
func (r Runtime) Version() string {
	return fmt.Sprintf("%d.%d", r.Major, r.Minor)
}

// Library represents a resolved library name
type Library struct {
	Name     string // Link name (e.g., "boost_python311")
	Path     string // Absolute path of the matching file, empty on fallback
	Type     string // Extension of the matching file: ".so", ".dylib", ".a"
	IsStatic bool   // True for .a files
}

// Found reports whether the name was matched against a file on disk
func (l *Library) Found() bool {
	return l.Path != ""
}

// Candidate is one naming hypothesis for a native library
type Candidate struct {
	Pattern    string   // Name without the lib prefix and extension
	Extensions []string // Extensions to probe, in order
}

// Environment is a resolved package environment. It is immutable once
// returned by a Resolver and safe for concurrent reads.
type Environment struct {
	Root         string  // Environment root (e.g., /opt/conda/envs/prime-env)
	SitePackages string  // Primary site-packages directory
	Runtime      Runtime // Interpreter the environment provides
	Layout       Layout  // Directory layout below Root
}

// IncludeDir returns the environment's header directory
func (e *Environment) IncludeDir() string {
	return filepath.Join(e.Root, e.Layout.Include)
}

// LibDir returns the environment's library directory
func (e *Environment) LibDir() string {
	return filepath.Join(e.Root, e.Layout.Lib)
}

// ThirdPartyIncludeDir returns the bundled third-party header directory
func (e *Environment) ThirdPartyIncludeDir() string {
	return filepath.Join(e.Root, e.Layout.ThirdParty)
}

// PythonIncludeDir returns the interpreter header directory
func (e *Environment) PythonIncludeDir() string {
	if e.Runtime.IncludeDir != "" {
		return e.Runtime.IncludeDir
	}
	return filepath.Join(e.IncludeDir(), "python"+e.Runtime.Version())
}

// CompanionDir returns the site-packages subdirectory of a companion package
func (e *Environment) CompanionDir(name string) string {
	return filepath.Join(e.SitePackages, name)
}

// CompilerFlags holds compiler and linker flags derived from an environment
type CompilerFlags struct {
	IncludeFlags []string // -I flags
	LibraryFlags []string // -L flags
	LinkFlags    []string // -l flags
}
