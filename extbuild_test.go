package extbuild

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arc-language/extbuild/pkg/env"
	"github.com/arc-language/extbuild/pkg/extension"
	"github.com/arc-language/extbuild/pkg/platform"
	"github.com/arc-language/extbuild/pkg/toolchain"
)

func newOrchestrator(t *testing.T, root string) *Orchestrator {
	t.Helper()
	vars := map[string]string{}
	if root != "" {
		vars[env.DefaultVarName] = root
	}
	return &Orchestrator{
		Resolver: &env.Resolver{
			Lookup: func(k string) (string, bool) {
				v, ok := vars[k]
				return v, ok
			},
			PythonVersion: "3.11",
			GOOS:          "linux",
		},
		Family:    platform.MacOS,
		Libraries: Libraries{Domain: "cctbx", Bridge: "scitbx_boost_python", Ambiguous: "boost_python"},
	}
}

func specs(n int) []Spec {
	out := make([]Spec, n)
	for i := range out {
		out[i] = Spec{Name: fmt.Sprintf("mod_%02d", i), Sources: []string{fmt.Sprintf("src/mod_%02d.cpp", i)}}
	}
	return out
}

func TestBuildAll(t *testing.T) {
	root := t.TempDir()
	libDir := filepath.Join(root, "lib")
	require.NoError(t, os.MkdirAll(libDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(libDir, "libboost_python311.so"), nil, 0o644))

	plan, err := newOrchestrator(t, root).BuildAll(context.Background(), specs(2))

	require.NoError(t, err)
	require.Equal(t, 2, plan.Len())
	assert.Equal(t, root, plan.Environment.Root)
	assert.Equal(t, "boost_python311", plan.Library.Name)
	assert.True(t, plan.Library.Found())

	for _, d := range plan.Descriptors {
		assert.Equal(t, []string{"cctbx", "scitbx_boost_python", "boost_python311"}, d.Libraries)
		assert.Equal(t, []string{"-O3", "-std=c++11", "-stdlib=libc++"}, d.CompileArgs)
		assert.Equal(t, []string{"-stdlib=libc++"}, d.LinkArgs)
	}
	assert.Equal(t, plan.Descriptors[0].IncludeDirs, plan.Descriptors[1].IncludeDirs)
}

func TestBuildAll_UnresolvedLibraryFallsBack(t *testing.T) {
	plan, err := newOrchestrator(t, t.TempDir()).BuildAll(context.Background(), specs(1))

	require.NoError(t, err)
	assert.False(t, plan.Library.Found())
	assert.Equal(t, "boost_python", plan.Descriptors[0].Libraries[2])
}

func TestBuildAll_NoSpecs(t *testing.T) {
	plan, err := newOrchestrator(t, t.TempDir()).BuildAll(context.Background(), nil)

	require.NoError(t, err)
	assert.NotNil(t, plan.Descriptors)
	assert.Zero(t, plan.Len())
}

func TestBuildAll_EnvironmentNotFound(t *testing.T) {
	for _, n := range []int{0, 1, 5} {
		t.Run(fmt.Sprintf("%d_specs", n), func(t *testing.T) {
			plan, err := newOrchestrator(t, "").BuildAll(context.Background(), specs(n))

			assert.Nil(t, plan)
			assert.ErrorIs(t, err, ErrEnvironmentNotFound)

			var opErr *Error
			require.ErrorAs(t, err, &opErr)
			assert.Equal(t, "resolve environment", opErr.Op)
		})
	}
}

func TestBuildAll_InvalidSpec(t *testing.T) {
	in := append(specs(2), Spec{Name: "broken"})

	plan, err := newOrchestrator(t, t.TempDir()).BuildAll(context.Background(), in)

	assert.Nil(t, plan)
	assert.ErrorIs(t, err, ErrInvalidSpec)
	assert.Contains(t, err.Error(), "broken")
}

func TestBuildAll_ParallelKeepsOrder(t *testing.T) {
	o := newOrchestrator(t, t.TempDir())
	o.Parallel = 4
	in := specs(25)

	plan, err := o.BuildAll(context.Background(), in)

	require.NoError(t, err)
	require.Equal(t, len(in), plan.Len())
	for i, d := range plan.Descriptors {
		assert.Equal(t, in[i].Name, d.ModuleName)
	}
}

type fakeCompiler struct {
	failOn   string
	toolsErr error
	compiled []string
}

func (f *fakeCompiler) Compile(ctx context.Context, e *env.Environment, d *extension.Descriptor) (*toolchain.Result, error) {
	f.compiled = append(f.compiled, d.ModuleName)
	if d.ModuleName == f.failOn {
		return &toolchain.Result{Module: d.ModuleName}, errors.New("exit status 1")
	}
	return &toolchain.Result{Module: d.ModuleName, Success: true}, nil
}

func (f *fakeCompiler) CheckTools() error {
	return f.toolsErr
}

func TestRun(t *testing.T) {
	o := newOrchestrator(t, t.TempDir())
	plan, err := o.BuildAll(context.Background(), specs(3))
	require.NoError(t, err)
	compiler := &fakeCompiler{}

	results, err := o.Run(context.Background(), plan, compiler)

	require.NoError(t, err)
	assert.Len(t, results, 3)
	assert.Equal(t, plan.Descriptors.Modules(), compiler.compiled)
}

func TestRun_StopsAtFirstFailure(t *testing.T) {
	o := newOrchestrator(t, t.TempDir())
	plan, err := o.BuildAll(context.Background(), specs(3))
	require.NoError(t, err)
	compiler := &fakeCompiler{failOn: "mod_01"}

	results, err := o.Run(context.Background(), plan, compiler)

	require.Error(t, err)
	assert.Equal(t, []string{"mod_00", "mod_01"}, compiler.compiled)
	assert.Len(t, results, 2)
	assert.EqualError(t, err, "compile mod_01: exit status 1")
}

func TestRun_ToolCheckFailure(t *testing.T) {
	o := newOrchestrator(t, t.TempDir())
	plan, err := o.BuildAll(context.Background(), specs(1))
	require.NoError(t, err)
	compiler := &fakeCompiler{toolsErr: errors.New("g++ not found in PATH")}

	_, err = o.Run(context.Background(), plan, compiler)

	assert.ErrorContains(t, err, "check tools")
	assert.Empty(t, compiler.compiled)
}
