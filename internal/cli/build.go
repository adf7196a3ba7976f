// internal/cli/build.go
package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arc-language/extbuild/pkg/platform"
	"github.com/arc-language/extbuild/pkg/toolchain"
)

var (
	buildOutput string
	buildJobs   int
	buildDryRun bool
)

var buildCmd = &cobra.Command{
	Use:   "build [module...]",
	Short: "Build extension modules",
	Long: `Build every extension module of the project, or only the named ones.

Examples:
  extbuild build
  extbuild build prime_ext
  extbuild build --output build/lib --dry-run`,
	RunE: runBuild,
}

func init() {
	addBuildFlags(buildCmd)
}

func addBuildFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&buildOutput, "output", "o", "", "directory receiving compiled modules (default from config)")
	cmd.Flags().IntVarP(&buildJobs, "jobs", "j", 0, "descriptors assembled in parallel")
	cmd.Flags().BoolVar(&buildDryRun, "dry-run", false, "print compiler invocations without running them")
}

func runBuild(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	w := cmd.OutOrStdout()

	if buildOutput != "" {
		config.OutputDir = buildOutput
	}
	if buildJobs > 0 {
		config.Jobs = buildJobs
	}

	m, err := loadManifest()
	if err != nil {
		return err
	}
	specs, err := m.Select(args...)
	if err != nil {
		return err
	}

	plat := platform.Detect()
	if config.Debug {
		fmt.Fprintf(w, "Platform: %s\n", plat)
	}

	orch := newOrchestrator(m, plat)
	plan, err := orch.BuildAll(ctx, specs)
	if err != nil {
		return err
	}

	compiler, err := platform.ResolveCompiler(plat, config)
	if err != nil {
		return err
	}

	driver := &toolchain.Driver{
		Compiler:  compiler,
		Family:    plat.Family,
		OutputDir: config.OutputDir,
		Verbose:   verbose,
	}

	if buildDryRun {
		for _, d := range plan.Descriptors {
			fmt.Fprintln(w, strings.Join(driver.Command(plan.Environment, d), " "))
		}
		return nil
	}

	fmt.Fprintf(w, "Using compiler: %s\n", driver.Name())

	results, err := orch.Run(ctx, plan, driver)
	for _, r := range results {
		if r.Success {
			fmt.Fprintf(w, "✓ %s -> %s\n", r.Module, r.Output)
		} else {
			fmt.Fprintf(cmd.ErrOrStderr(), "✗ %s\n", r.Module)
		}
	}
	return err
}
