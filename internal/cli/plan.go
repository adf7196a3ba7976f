// internal/cli/plan.go
package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/arc-language/extbuild"
	"github.com/arc-language/extbuild/pkg/extension"
	"github.com/arc-language/extbuild/pkg/platform"
)

var planFormat string

var planCmd = &cobra.Command{
	Use:   "plan [module...]",
	Short: "Print the build plan without compiling",
	Long: `Resolve the environment and print the descriptor of every extension module.

Examples:
  extbuild plan
  extbuild plan --format json
  extbuild plan prime_ext --format yaml`,
	RunE: runPlan,
}

func init() {
	planCmd.Flags().StringVarP(&planFormat, "format", "f", "text", "output format (text, json, yaml)")
}

// planDocument is the serialized form of a plan
type planDocument struct {
	Root         string                  `json:"root" yaml:"root"`
	Python       string                  `json:"python" yaml:"python"`
	SitePackages string                  `json:"site_packages" yaml:"site_packages"`
	Extensions   []*extension.Descriptor `json:"extensions" yaml:"extensions"`
}

func runPlan(cmd *cobra.Command, args []string) error {
	m, err := loadManifest()
	if err != nil {
		return err
	}
	specs, err := m.Select(args...)
	if err != nil {
		return err
	}

	plan, err := newOrchestrator(m, platform.Detect()).BuildAll(cmd.Context(), specs)
	if err != nil {
		return err
	}

	return writePlan(cmd.OutOrStdout(), plan, planFormat)
}

func writePlan(w io.Writer, plan *extbuild.BuildPlan, format string) error {
	doc := planDocument{
		Root:         plan.Environment.Root,
		Python:       plan.Environment.Runtime.Version(),
		SitePackages: plan.Environment.SitePackages,
		Extensions:   plan.Descriptors,
	}

	switch format {
	case "text", "":
		renderPlan(w, plan)
		return nil
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown format %q (want text, json or yaml)", format)
	}
}
