// pkg/toolchain/toolcheck.go
package toolchain

import (
	"fmt"
	"strings"
)

// ToolRequirement describes a build tool dependency
type ToolRequirement struct {
	Name         string   // Primary binary name
	Alternatives []string // Binaries that also satisfy the requirement
	Optional     bool     // Missing optional tools don't fail the check
	Purpose      string   // Why the tool is needed
}

// RequiredTools returns the tools the driver needs
func (d *Driver) RequiredTools() []ToolRequirement {
	return []ToolRequirement{
		{
			Name:    d.Compiler,
			Purpose: "C++ compiler for extension modules",
		},
	}
}

// CheckTools verifies the compiler is available before any module is built
func (d *Driver) CheckTools() error {
	return CheckRequiredTools(d.RequiredTools())
}

// CheckToolAvailable checks if a tool is available in the system PATH
func CheckToolAvailable(tool string) error {
	if _, err := execLookPath(tool); err != nil {
		return fmt.Errorf("%s not found in PATH", tool)
	}
	return nil
}

// CheckRequiredTools verifies all required tools are available and reports
// every missing one in a single error
func CheckRequiredTools(requirements []ToolRequirement) error {
	var missingTools []string

	for _, req := range requirements {
		found := CheckToolAvailable(req.Name) == nil

		if !found {
			for _, alt := range req.Alternatives {
				if CheckToolAvailable(alt) == nil {
					found = true
					break
				}
			}
		}

		if !found && !req.Optional {
			if req.Purpose != "" {
				missingTools = append(missingTools, fmt.Sprintf("%s (%s)", req.Name, req.Purpose))
			} else {
				missingTools = append(missingTools, req.Name)
			}
		}
	}

	switch len(missingTools) {
	case 0:
		return nil
	case 1:
		return fmt.Errorf("%s not found in PATH", missingTools[0])
	default:
		return fmt.Errorf("missing required tools: %s", strings.Join(missingTools, ", "))
	}
}
