// internal/cli/render.go
package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/arc-language/extbuild"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Width(14)
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
)

func renderField(w io.Writer, label string, value any) {
	fmt.Fprintln(w, lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(label), fmt.Sprint(value)))
}

func renderList(w io.Writer, label string, values []string) {
	if len(values) == 0 {
		renderField(w, label, "-")
		return
	}
	renderField(w, label, strings.Join(values, "\n"))
}

// renderPlan writes a human-readable plan
func renderPlan(w io.Writer, plan *extbuild.BuildPlan) {
	e := plan.Environment
	fmt.Fprintln(w, titleStyle.Render("Environment"))
	renderField(w, "root", e.Root)
	renderField(w, "python", e.Runtime.Version())
	renderField(w, "site-packages", e.SitePackages)
	if plan.Library != nil && plan.Library.Name != "" {
		lib := plan.Library.Name
		if !plan.Library.Found() {
			lib += " " + warnStyle.Render("(not found, left to the linker)")
		}
		renderField(w, "boost.python", lib)
	}

	for _, d := range plan.Descriptors {
		fmt.Fprintln(w)
		fmt.Fprintln(w, titleStyle.Render(d.ModuleName))
		renderList(w, "sources", d.Sources)
		renderList(w, "include dirs", d.IncludeDirs)
		renderList(w, "library dirs", d.LibraryDirs)
		renderList(w, "libraries", d.Libraries)
		renderList(w, "compile args", d.CompileArgs)
		renderList(w, "link args", d.LinkArgs)
	}
}
