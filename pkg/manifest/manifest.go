// Package manifest handles extbuild.toml project configuration.
package manifest

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/arc-language/extbuild/pkg/extension"
)

// FileName is the manifest file looked up in project directories
const FileName = "extbuild.toml"

// ErrInvalidManifest indicates a manifest that parsed but cannot be used
var ErrInvalidManifest = errors.New("invalid manifest")

// Manifest represents an extbuild.toml project configuration
type Manifest struct {
	Project    Project          `toml:"project"`
	Libraries  Libraries        `toml:"libraries"`
	Companions []string         `toml:"companions"`
	Extensions []extension.Spec `toml:"extension"`

	// Dir is the directory containing the manifest (set at load time)
	Dir string `toml:"-"`
}

// Project contains project metadata
type Project struct {
	Name    string `toml:"name"`
	Version string `toml:"version"`
}

// Libraries names the native libraries every extension links, in link order
type Libraries struct {
	Domain    string `toml:"domain"`    // Domain library (e.g., cctbx)
	Bridge    string `toml:"bridge"`    // Binding-bridge companion library
	Ambiguous string `toml:"ambiguous"` // Base name resolved against the environment
}

// Default returns the built-in project: the two extension modules of the
// crystallography post-refinement package linked against cctbx
func Default() *Manifest {
	m := &Manifest{
		Project: Project{Name: "prime", Version: "0.1.0"},
		Extensions: []extension.Spec{
			{Name: "prime_ext", Sources: []string{filepath.Join("src", "prime", "ext.cpp")}},
			{Name: "prime_index_ambiguity_ext", Sources: []string{filepath.Join("src", "prime", "index_ambiguity", "ext.cpp")}},
		},
	}
	m.applyDefaults()
	return m
}

// Load parses the manifest in dir
func Load(dir string) (*Manifest, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}

	var m Manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse error in %s: %w", path, err)
	}

	m.Dir, err = filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("cannot resolve path %s: %w", dir, err)
	}

	m.applyDefaults()
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return &m, nil
}

// FindAndLoad walks up from startDir to find a manifest, then loads it.
// Returns nil if no manifest is found.
func FindAndLoad(startDir string) (*Manifest, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return nil, err
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, FileName)); err == nil {
			return Load(dir)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached root
			return nil, nil
		}
		dir = parent
	}
}

func (m *Manifest) applyDefaults() {
	if m.Libraries.Domain == "" {
		m.Libraries.Domain = "cctbx"
	}
	if m.Libraries.Bridge == "" {
		m.Libraries.Bridge = "scitbx_boost_python"
	}
	if m.Libraries.Ambiguous == "" {
		m.Libraries.Ambiguous = "boost_python"
	}
	if m.Companions == nil {
		m.Companions = append([]string{}, extension.DefaultCompanions...)
	}
}

// Validate checks that every extension has a unique name and at least one source
func (m *Manifest) Validate() error {
	seen := make(map[string]bool)
	for i, ext := range m.Extensions {
		if ext.Name == "" {
			return fmt.Errorf("%w: extension #%d has no name", ErrInvalidManifest, i+1)
		}
		if seen[ext.Name] {
			return fmt.Errorf("%w: extension %s declared twice", ErrInvalidManifest, ext.Name)
		}
		seen[ext.Name] = true
		if len(ext.Sources) == 0 {
			return fmt.Errorf("%w: extension %s has no sources", ErrInvalidManifest, ext.Name)
		}
	}
	return nil
}

// Specs returns the extension specs with sources resolved against the
// manifest directory. Absolute sources are kept as-is.
func (m *Manifest) Specs() []extension.Spec {
	specs := make([]extension.Spec, 0, len(m.Extensions))
	for _, ext := range m.Extensions {
		sources := make([]string, 0, len(ext.Sources))
		for _, src := range ext.Sources {
			if !filepath.IsAbs(src) && m.Dir != "" {
				src = filepath.Join(m.Dir, src)
			}
			sources = append(sources, src)
		}
		specs = append(specs, extension.Spec{Name: ext.Name, Sources: sources})
	}
	return specs
}

// Select returns the specs whose names are listed, in manifest order.
// An empty list selects everything.
func (m *Manifest) Select(names ...string) ([]extension.Spec, error) {
	specs := m.Specs()
	if len(names) == 0 {
		return specs, nil
	}

	want := make(map[string]bool, len(names))
	for _, n := range names {
		want[n] = true
	}

	var selected []extension.Spec
	for _, s := range specs {
		if want[s.Name] {
			selected = append(selected, s)
			delete(want, s.Name)
		}
	}
	for _, n := range names {
		if want[n] {
			return nil, fmt.Errorf("%w: no extension named %s", ErrInvalidManifest, n)
		}
	}
	return selected, nil
}
