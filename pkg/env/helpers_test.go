package env

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// newTestEnv lays out a minimal environment root and returns it resolved
// against python 3.11 with no reported site-packages
func newTestEnv(t *testing.T) *Environment {
	t.Helper()
	root := t.TempDir()
	for _, dir := range []string{"include/boost", "lib/python3.11/site-packages"} {
		require.NoError(t, os.MkdirAll(filepath.Join(root, dir), 0o755))
	}

	rt := Runtime{Major: 3, Minor: 11}
	return &Environment{
		Root:         root,
		SitePackages: SitePackages(root, rt),
		Runtime:      rt,
		Layout:       GetLayout("linux"),
	}
}

func touch(t require.TestingT, path string) {
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte{}, 0o644))
}

func lookupFrom(vars map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := vars[key]
		return v, ok
	}
}
