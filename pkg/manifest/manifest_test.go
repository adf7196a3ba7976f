package manifest

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleManifest = `
companions = ["scitbx", "cctbx"]

[project]
name = "prime"
version = "0.2.0"

[libraries]
ambiguous = "boost_python"

[[extension]]
name = "prime_ext"
sources = ["src/prime/ext.cpp"]

[[extension]]
name = "prime_index_ambiguity_ext"
sources = ["src/prime/index_ambiguity/ext.cpp", "/abs/extra.cpp"]
`

func writeManifest(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(content), 0o644))
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, sampleManifest)

	m, err := Load(dir)

	require.NoError(t, err)
	assert.Equal(t, "prime", m.Project.Name)
	assert.Equal(t, "0.2.0", m.Project.Version)
	assert.Equal(t, []string{"scitbx", "cctbx"}, m.Companions)
	assert.Equal(t, Libraries{Domain: "cctbx", Bridge: "scitbx_boost_python", Ambiguous: "boost_python"}, m.Libraries)
	require.Len(t, m.Extensions, 2)
	assert.Equal(t, "prime_index_ambiguity_ext", m.Extensions[1].Name)

	abs, err := filepath.Abs(dir)
	require.NoError(t, err)
	assert.Equal(t, abs, m.Dir)
}

func TestLoad_Defaults(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, "[project]\nname = \"x\"\n")

	m, err := Load(dir)

	require.NoError(t, err)
	assert.Equal(t, []string{"scitbx", "cctbx", "boost_adaptbx"}, m.Companions)
	assert.Equal(t, "cctbx", m.Libraries.Domain)
	assert.Empty(t, m.Extensions)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		invalid bool
	}{
		{name: "syntax", content: "[project\nname = 1"},
		{name: "no_name", content: "[[extension]]\nsources = [\"a.cpp\"]\n", invalid: true},
		{name: "no_sources", content: "[[extension]]\nname = \"a\"\n", invalid: true},
		{name: "duplicate", content: "[[extension]]\nname = \"a\"\nsources = [\"a.cpp\"]\n[[extension]]\nname = \"a\"\nsources = [\"b.cpp\"]\n", invalid: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeManifest(t, dir, tt.content)

			_, err := Load(dir)

			require.Error(t, err)
			assert.Equal(t, tt.invalid, errors.Is(err, ErrInvalidManifest))
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(t.TempDir())
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestFindAndLoad(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, sampleManifest)
	nested := filepath.Join(root, "src", "prime")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	m, err := FindAndLoad(nested)

	require.NoError(t, err)
	require.NotNil(t, m)
	assert.Equal(t, "prime", m.Project.Name)
}

func TestFindAndLoad_NotFound(t *testing.T) {
	// temp dirs are not expected to sit below a project manifest
	m, err := FindAndLoad(t.TempDir())

	require.NoError(t, err)
	assert.Nil(t, m)
}

func TestSpecs(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, sampleManifest)
	m, err := Load(dir)
	require.NoError(t, err)

	specs := m.Specs()

	require.Len(t, specs, 2)
	assert.Equal(t, []string{filepath.Join(m.Dir, "src", "prime", "ext.cpp")}, specs[0].Sources)
	assert.Equal(t, "/abs/extra.cpp", specs[1].Sources[1])
	assert.Equal(t, "src/prime/ext.cpp", m.Extensions[0].Sources[0], "manifest entries stay relative")
}

func TestSelect(t *testing.T) {
	m := Default()

	all, err := m.Select()
	require.NoError(t, err)
	assert.Len(t, all, 2)

	one, err := m.Select("prime_index_ambiguity_ext")
	require.NoError(t, err)
	require.Len(t, one, 1)
	assert.Equal(t, "prime_index_ambiguity_ext", one[0].Name)

	ordered, err := m.Select("prime_index_ambiguity_ext", "prime_ext")
	require.NoError(t, err)
	assert.Equal(t, "prime_ext", ordered[0].Name, "selection keeps manifest order")

	_, err = m.Select("missing_ext")
	assert.ErrorIs(t, err, ErrInvalidManifest)
}

func TestDefault(t *testing.T) {
	m := Default()

	require.NoError(t, m.Validate())
	assert.Equal(t, "boost_python", m.Libraries.Ambiguous)
	assert.Equal(t, "scitbx_boost_python", m.Libraries.Bridge)
	assert.Equal(t, filepath.Join("src", "prime", "ext.cpp"), m.Extensions[0].Sources[0])
}
