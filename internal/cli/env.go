// internal/cli/env.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arc-language/extbuild/pkg/platform"
)

var envCmd = &cobra.Command{
	Use:   "env",
	Short: "Show the active environment and platform",
	Long:  `Display the resolved environment, the boost.python library name, companion packages and available compilers.`,
	RunE:  runEnv,
}

func runEnv(cmd *cobra.Command, args []string) error {
	w := cmd.OutOrStdout()

	m, err := loadManifest()
	if err != nil {
		return err
	}

	e, err := newResolver().Resolve(cmd.Context())
	if err != nil {
		return err
	}

	plat := platform.Detect()

	fmt.Fprintln(w, titleStyle.Render("Environment"))
	renderField(w, "root", e.Root)
	renderField(w, "python", e.Runtime.Version())
	renderField(w, "site-packages", e.SitePackages)
	renderField(w, "include", e.IncludeDir())
	renderField(w, "lib", e.LibDir())

	lib := e.ResolveLibraryName(m.Libraries.Ambiguous)
	if lib.Found() {
		renderField(w, m.Libraries.Ambiguous, fmt.Sprintf("%s (%s)", lib.Name, lib.Path))
	} else {
		renderField(w, m.Libraries.Ambiguous, warnStyle.Render(lib.Name+" (no file found)"))
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, titleStyle.Render("Companions"))
	for _, name := range m.Companions {
		version := "-"
		if rec := e.FindPackage(name); rec != nil {
			version = rec.Version
		}
		renderField(w, name, version)
	}
	for _, name := range e.MissingCompanions(m.Companions) {
		fmt.Fprintln(w, warnStyle.Render(fmt.Sprintf("warning: %s not found in %s", name, e.SitePackages)))
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, titleStyle.Render("Platform"))
	renderField(w, "os", fmt.Sprintf("%s/%s (%s)", plat.OS, plat.Arch, plat.Family))
	renderList(w, "compilers", plat.Available)
	if compiler, err := platform.ResolveCompiler(plat, config); err == nil {
		renderField(w, "selected", compiler)
	}
	flags := e.GetCompilerFlags(m.Libraries.Domain, m.Libraries.Bridge, lib.Name)
	renderList(w, "flags", append(append(flags.IncludeFlags, flags.LibraryFlags...), flags.LinkFlags...))

	return nil
}
