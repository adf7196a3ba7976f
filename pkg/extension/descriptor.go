// pkg/extension/descriptor.go
package extension

import (
	"errors"
)

// ErrInvalidSpec indicates a module spec cannot produce a descriptor
var ErrInvalidSpec = errors.New("invalid extension spec")

// Language of the extension sources
type Language string

// LanguageCXX is the only language extensions are compiled as
const LanguageCXX Language = "c++"

// Spec names one extension module and its sources
type Spec struct {
	Name    string   `json:"name" yaml:"name" toml:"name"`
	Sources []string `json:"sources" yaml:"sources" toml:"sources"`
}

// Descriptor is the fully-specified compile and link description of one
// extension module. IncludeDirs order is significant: the compiler uses the
// first directory containing a header.
type Descriptor struct {
	ModuleName  string   `json:"module" yaml:"module"`
	Sources     []string `json:"sources" yaml:"sources"`
	IncludeDirs []string `json:"include_dirs" yaml:"include_dirs"`
	LibraryDirs []string `json:"library_dirs" yaml:"library_dirs"`
	Libraries   []string `json:"libraries" yaml:"libraries"`
	CompileArgs []string `json:"compile_args" yaml:"compile_args"`
	LinkArgs    []string `json:"link_args" yaml:"link_args"`
	Language    Language `json:"language" yaml:"language"`
}

// Clone returns a deep copy of d
func (d *Descriptor) Clone() *Descriptor {
	return &Descriptor{
		ModuleName:  d.ModuleName,
		Sources:     cloneStrings(d.Sources),
		IncludeDirs: cloneStrings(d.IncludeDirs),
		LibraryDirs: cloneStrings(d.LibraryDirs),
		Libraries:   cloneStrings(d.Libraries),
		CompileArgs: cloneStrings(d.CompileArgs),
		LinkArgs:    cloneStrings(d.LinkArgs),
		Language:    d.Language,
	}
}

// Plan is the ordered set of descriptors for one build invocation. Order only
// matters for diagnostics; descriptors are independent.
type Plan []*Descriptor

// Modules returns the module names in plan order
func (p Plan) Modules() []string {
	names := make([]string, 0, len(p))
	for _, d := range p {
		names = append(names, d.ModuleName)
	}
	return names
}

// cloneStrings copies s, keeping nil as an empty slice so serialized
// descriptors always carry every list
func cloneStrings(s []string) []string {
	out := make([]string, len(s))
	copy(out, s)
	return out
}

// appendUnique appends values not already present, keeping first occurrence
func appendUnique(dst []string, values ...string) []string {
	for _, v := range values {
		if v == "" {
			continue
		}
		dup := false
		for _, existing := range dst {
			if existing == v {
				dup = true
				break
			}
		}
		if !dup {
			dst = append(dst, v)
		}
	}
	return dst
}
