// pkg/platform/detect.go
package platform

import (
	"fmt"
	"runtime"
)

// Family groups operating systems that share compiler flag conventions
type Family string

const (
	// MacOS uses clang with libc++
	MacOS Family = "macos"
	// Linux uses gcc or clang with the system standard library
	Linux Family = "linux"
	// Other receives no platform flags
	Other Family = "other"
)

// knownCompilers are the C++ drivers probed on PATH, in probe order
var knownCompilers = []string{"c++", "clang++", "g++"}

// Platform represents the detected build platform
type Platform struct {
	OS        string   // linux, darwin, windows
	Arch      string   // amd64, arm64
	Family    Family   // Flag convention for OS
	Available []string // C++ compilers found on PATH
	Preferred string   // Preferred compiler
}

// FamilyOf maps a GOOS value to its flag family
func FamilyOf(goos string) Family {
	switch goos {
	case "darwin":
		return MacOS
	case "linux":
		return Linux
	default:
		return Other
	}
}

// Detect detects the current platform and available compilers
func Detect() *Platform {
	return detect(runtime.GOOS, runtime.GOARCH)
}

func detect(goos, goarch string) *Platform {
	p := &Platform{
		OS:        goos,
		Arch:      goarch,
		Family:    FamilyOf(goos),
		Available: []string{},
	}

	for _, c := range knownCompilers {
		if commandExists(c) {
			p.Available = append(p.Available, c)
		}
	}

	// Determine preferred compiler based on OS
	switch p.Family {
	case MacOS:
		if contains(p.Available, "clang++") {
			p.Preferred = "clang++"
		}
	case Linux:
		if contains(p.Available, "g++") {
			p.Preferred = "g++"
		}
	}

	if p.Preferred == "" && len(p.Available) > 0 {
		p.Preferred = p.Available[0]
	}

	return p
}

// String returns a string representation of the platform
func (p *Platform) String() string {
	return fmt.Sprintf("%s/%s (%s, compilers: %v, preferred: %s)",
		p.OS, p.Arch, p.Family, p.Available, p.Preferred)
}
