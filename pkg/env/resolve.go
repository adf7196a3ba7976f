// pkg/env/resolve.go
package env

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strconv"
	"strings"
)

// Resolver discovers the active environment. All host state it consults is
// injected, so a Resolver can be pointed at fixtures in tests.
type Resolver struct {
	// VarName is the variable holding the environment root (default CONDA_PREFIX)
	VarName string

	// Lookup reads a variable; the CLI passes os.LookupEnv
	Lookup func(string) (string, bool)

	// Interpreter reports the runtime version and site-package locations.
	// Nil skips the query and infers the version from the filesystem.
	Interpreter Interpreter

	// PythonVersion pins "<major>.<minor>" and skips runtime discovery
	PythonVersion string

	// GOOS selects the directory layout (default runtime.GOOS)
	GOOS string
}

// Resolve locates the environment root, determines its runtime and
// site-packages directory. It fails with an error matching ErrNotFound when
// the root variable is unset or points at an unusable directory.
func (r *Resolver) Resolve(ctx context.Context) (*Environment, error) {
	varName := r.VarName
	if varName == "" {
		varName = DefaultVarName
	}

	var root string
	if r.Lookup != nil {
		if v, ok := r.Lookup(varName); ok {
			root = strings.TrimSpace(v)
		}
	}
	if root == "" {
		return nil, &NotFoundError{VarName: varName}
	}

	if err := checkReadableDir(root); err != nil {
		return nil, &NotFoundError{VarName: varName, Root: root, Err: err}
	}

	goos := r.GOOS
	if goos == "" {
		goos = runtime.GOOS
	}
	layout := GetLayout(goos)

	rt, err := r.resolveRuntime(ctx, root)
	if err != nil {
		return nil, err
	}

	e := &Environment{
		Root:    root,
		Runtime: *rt,
		Layout:  layout,
	}
	e.SitePackages = SitePackages(root, *rt)

	log.Infof("environment %s (python %s, site-packages %s)", e.Root, rt.Version(), e.SitePackages)
	return e, nil
}

// SitePackages returns the first site-package location the runtime reported,
// or <root>/lib/python<major>.<minor>/site-packages when it reported none.
func SitePackages(root string, rt Runtime) string {
	if len(rt.SitePackages) > 0 {
		return rt.SitePackages[0]
	}
	return filepath.Join(root, "lib", "python"+rt.Version(), "site-packages")
}

func (r *Resolver) resolveRuntime(ctx context.Context, root string) (*Runtime, error) {
	if r.PythonVersion != "" {
		major, minor, ok := ParseVersion(r.PythonVersion)
		if !ok {
			return nil, fmt.Errorf("%w: invalid python version %q", ErrRuntimeUnavailable, r.PythonVersion)
		}
		return &Runtime{Major: major, Minor: minor}, nil
	}

	if r.Interpreter != nil {
		rt, err := r.Interpreter.Query(ctx, root)
		if err == nil {
			return rt, nil
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		log.Noticef("querying interpreter failed, inferring version from %s: %v", root, err)
	}

	rt, err := InferRuntime(root)
	if err != nil {
		return nil, err
	}
	return rt, nil
}

// InferRuntime derives the runtime version from the highest
// <root>/lib/python<major>.<minor> directory. The result reports no
// site-package locations.
func InferRuntime(root string) (*Runtime, error) {
	matches, err := filepath.Glob(filepath.Join(root, "lib", "python*.*"))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRuntimeUnavailable, err)
	}

	var found []Runtime
	for _, m := range matches {
		if !dirExists(m) {
			continue
		}
		major, minor, ok := ParseVersion(strings.TrimPrefix(filepath.Base(m), "python"))
		if !ok {
			continue
		}
		found = append(found, Runtime{Major: major, Minor: minor})
	}

	if len(found) == 0 {
		return nil, fmt.Errorf("%w: no python<major>.<minor> directory under %s", ErrRuntimeUnavailable, filepath.Join(root, "lib"))
	}

	sort.Slice(found, func(i, j int) bool {
		if found[i].Major != found[j].Major {
			return found[i].Major > found[j].Major
		}
		return found[i].Minor > found[j].Minor
	})

	return &found[0], nil
}

// ParseVersion parses "<major>.<minor>[.<patch>...]"
func ParseVersion(version string) (major, minor int, ok bool) {
	parts := strings.Split(strings.TrimSpace(version), ".")
	if len(parts) < 2 {
		return 0, 0, false
	}

	var err error
	major, err = strconv.Atoi(parts[0])
	if err != nil || major < 0 {
		return 0, 0, false
	}

	minor, err = strconv.Atoi(parts[1])
	if err != nil || minor < 0 {
		return 0, 0, false
	}

	return major, minor, true
}

func checkReadableDir(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", path)
	}

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	return f.Close()
}
