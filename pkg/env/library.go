// pkg/env/library.go
package env

import (
	"fmt"
	"os"
	"path/filepath"
)

// Candidates returns the naming hypotheses for an ambiguous library, in
// priority order: the bare name, the name suffixed with <major><minor>, then
// the name suffixed with <major>.
func Candidates(base string, rt Runtime) []Candidate {
	patterns := []string{
		base,
		fmt.Sprintf("%s%d%d", base, rt.Major, rt.Minor),
		fmt.Sprintf("%s%d", base, rt.Major),
	}

	candidates := make([]Candidate, 0, len(patterns))
	for _, p := range patterns {
		candidates = append(candidates, Candidate{
			Pattern:    p,
			Extensions: GetLibraryExtensions(),
		})
	}
	return candidates
}

// ResolveLibraryName returns the first candidate for base that has a
// lib<name><ext> file in the library directory. When nothing matches, the bare
// base name is returned with an empty Path; a wrong guess is left for the
// linker to report.
func (e *Environment) ResolveLibraryName(base string) *Library {
	libDir := e.LibDir()

	for _, c := range Candidates(base, e.Runtime) {
		for _, ext := range c.Extensions {
			fullPath := filepath.Join(libDir, "lib"+c.Pattern+ext)

			if fileExists(fullPath) {
				log.Debugf("resolved library %s -> %s (%s)", base, c.Pattern, fullPath)
				return &Library{
					Name:     c.Pattern,
					Path:     fullPath,
					Type:     ext,
					IsStatic: isStaticExtension(ext),
				}
			}
		}
	}

	log.Noticef("no file found for library %s in %s, using bare name", base, libDir)
	return &Library{Name: base}
}

// HasLibrary checks if an exact library name exists in the environment
func (e *Environment) HasLibrary(name string) bool {
	for _, ext := range GetLibraryExtensions() {
		if fileExists(filepath.Join(e.LibDir(), "lib"+name+ext)) {
			return true
		}
	}
	return false
}

// GetCompilerFlags returns the -I, -L and -l flags for the given libraries
func (e *Environment) GetCompilerFlags(libraries ...string) CompilerFlags {
	flags := CompilerFlags{
		IncludeFlags: []string{"-I" + e.IncludeDir(), "-I" + e.PythonIncludeDir()},
		LibraryFlags: []string{"-L" + e.LibDir()},
	}
	for _, lib := range libraries {
		flags.LinkFlags = append(flags.LinkFlags, "-l"+lib)
	}
	return flags
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
