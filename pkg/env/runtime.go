// pkg/env/runtime.go
package env

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
)

var execCommandContext = exec.CommandContext

// Interpreter reports the runtime an environment provides
type Interpreter interface {
	Query(ctx context.Context, root string) (*Runtime, error)
}

// querySource prints the interpreter facts the resolver needs as one JSON object
const querySource = `import json, site, sys, sysconfig
sp = site.getsitepackages() if hasattr(site, "getsitepackages") else []
print(json.dumps({
    "major": sys.version_info[0],
    "minor": sys.version_info[1],
    "site_packages": sp,
    "ext_suffix": sysconfig.get_config_var("EXT_SUFFIX") or "",
    "include": sysconfig.get_paths().get("include", ""),
}))`

// PythonInterpreter queries the python executable of an environment
type PythonInterpreter struct {
	// Path overrides the executable; empty uses the one inside the root
	Path string

	// GOOS selects the executable location (default runtime.GOOS)
	GOOS string
}

type runtimeReport struct {
	Major        int      `json:"major"`
	Minor        int      `json:"minor"`
	SitePackages []string `json:"site_packages"`
	ExtSuffix    string   `json:"ext_suffix"`
	Include      string   `json:"include"`
}

// Executable returns the interpreter path used for root
func (p *PythonInterpreter) Executable(root string) string {
	if p.Path != "" {
		return p.Path
	}
	goos := p.GOOS
	if goos == "" {
		goos = runtime.GOOS
	}
	if goos == "windows" {
		return filepath.Join(root, "python.exe")
	}
	return filepath.Join(root, "bin", "python")
}

// Query runs the interpreter and parses its report
func (p *PythonInterpreter) Query(ctx context.Context, root string) (*Runtime, error) {
	python := p.Executable(root)

	cmd := execCommandContext(ctx, python, "-c", querySource)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("running %s: %w: %s", python, err, strings.TrimSpace(stderr.String()))
	}

	return parseRuntimeReport(out)
}

func parseRuntimeReport(data []byte) (*Runtime, error) {
	var report runtimeReport
	if err := json.Unmarshal(bytes.TrimSpace(data), &report); err != nil {
		return nil, fmt.Errorf("parsing interpreter report: %w", err)
	}
	if report.Major <= 0 {
		return nil, fmt.Errorf("interpreter reported invalid version %d.%d", report.Major, report.Minor)
	}

	return &Runtime{
		Major:        report.Major,
		Minor:        report.Minor,
		SitePackages: report.SitePackages,
		ExtSuffix:    report.ExtSuffix,
		IncludeDir:   report.Include,
	}, nil
}
