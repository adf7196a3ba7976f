// pkg/extension/builder.go
package extension

import (
	"fmt"

	"github.com/arc-language/extbuild/pkg/env"
)

// DefaultCompanions are the site-packages directories that carry headers:
// the binding bridge, the domain library and the adapter package
var DefaultCompanions = []string{"scitbx", "cctbx", "boost_adaptbx"}

// DefaultOptimization is the baseline optimisation flag
const DefaultOptimization = "-O3"

// Options tunes descriptor assembly
type Options struct {
	Companions   []string // Site-packages subdirectories added to the include path
	Optimization string   // Baseline compile flag
}

func (o *Options) companions() []string {
	if o == nil || o.Companions == nil {
		return DefaultCompanions
	}
	return o.Companions
}

func (o *Options) optimization() string {
	if o == nil || o.Optimization == "" {
		return DefaultOptimization
	}
	return o.Optimization
}

// Build assembles the descriptor of one module against an environment.
// libraries are link names in link order, already resolved. Build only
// constructs paths; nothing is read from or written to disk.
func Build(spec Spec, e *env.Environment, libraries []string, opts *Options) (*Descriptor, error) {
	if spec.Name == "" {
		return nil, fmt.Errorf("%w: module name is required", ErrInvalidSpec)
	}
	if len(spec.Sources) == 0 {
		return nil, fmt.Errorf("%w: module %s has no sources", ErrInvalidSpec, spec.Name)
	}

	includeDirs := []string{}
	includeDirs = appendUnique(includeDirs, e.IncludeDir(), e.SitePackages)
	for _, c := range opts.companions() {
		includeDirs = appendUnique(includeDirs, e.CompanionDir(c))
	}
	includeDirs = appendUnique(includeDirs, e.ThirdPartyIncludeDir())

	return &Descriptor{
		ModuleName:  spec.Name,
		Sources:     cloneStrings(spec.Sources),
		IncludeDirs: includeDirs,
		LibraryDirs: []string{e.LibDir()},
		Libraries:   appendUnique([]string{}, libraries...),
		CompileArgs: []string{opts.optimization()},
		LinkArgs:    []string{},
		Language:    LanguageCXX,
	}, nil
}
