// internal/cli/root.go
package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"

	"github.com/arc-language/extbuild"
	"github.com/arc-language/extbuild/pkg/core"
	"github.com/arc-language/extbuild/pkg/env"
	"github.com/arc-language/extbuild/pkg/extension"
	"github.com/arc-language/extbuild/pkg/manifest"
	"github.com/arc-language/extbuild/pkg/platform"
)

var (
	cfgFile      string
	manifestPath string
	debug        bool
	verbose      bool
	config       *core.Config

	// lookupEnv is the only place the process environment is read
	lookupEnv = os.LookupEnv
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "extbuild",
	Short: "Build native extension modules against a package environment",
	Long: `extbuild - native extension builder

Locates the active package environment, resolves the boost.python library
name it ships and compiles each extension module listed in extbuild.toml
against the environment's headers and libraries.`,
	Version:       "0.1.0",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runBuild,
}

// Execute executes the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/extbuild/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&manifestPath, "manifest", "", "project manifest or its directory (default: search upward for extbuild.toml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print compiler invocations")

	addBuildFlags(rootCmd)

	// Add commands
	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(envCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	var err error
	config, err = core.LoadConfig(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		config = core.DefaultConfig()
	}

	// Override config with flags
	if debug {
		config.Debug = true
	}

	verbosity := 0
	switch {
	case config.Debug:
		verbosity = 2
	case verbose:
		verbosity = 1
	}
	commonlog.Configure(verbosity, nil)
}

// loadManifest loads the manifest named by --manifest, the nearest
// extbuild.toml above the working directory, or the built-in project
func loadManifest() (*manifest.Manifest, error) {
	if manifestPath != "" {
		dir := manifestPath
		if strings.HasSuffix(dir, ".toml") {
			dir = filepath.Dir(dir)
		}
		return manifest.Load(dir)
	}

	cwd, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	m, err := manifest.FindAndLoad(cwd)
	if err != nil {
		return nil, err
	}
	if m == nil {
		m = manifest.Default()
		m.Dir = cwd
	}
	return m, nil
}

// newResolver builds the environment resolver from configuration
func newResolver() *env.Resolver {
	return &env.Resolver{
		VarName:       config.EnvVar,
		Lookup:        lookupEnv,
		Interpreter:   &env.PythonInterpreter{Path: config.Python},
		PythonVersion: config.PythonVersion,
	}
}

// newOrchestrator wires the planning pipeline for a manifest and platform
func newOrchestrator(m *manifest.Manifest, plat *platform.Platform) *extbuild.Orchestrator {
	return &extbuild.Orchestrator{
		Resolver:  newResolver(),
		Family:    plat.Family,
		Libraries: m.Libraries,
		Options: extension.Options{
			Companions:   m.Companions,
			Optimization: config.Optimization,
		},
		Standard: config.CXXStandard,
		Parallel: config.Jobs,
	}
}
