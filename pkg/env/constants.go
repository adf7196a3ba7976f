// pkg/env/constants.go
package env

import (
	"path/filepath"
)

// DefaultVarName is the variable an activated environment exports with its root
const DefaultVarName = "CONDA_PREFIX"

// GetLayout returns the environment directory structure for an operating system
func GetLayout(goos string) Layout {
	switch goos {
	case "windows":
		return getWindowsLayout()
	default:
		return getUnixLayout()
	}
}

// Unix environments keep headers and libraries directly under the root:
// include/boost/python.hpp, lib/libboost_python311.so
func getUnixLayout() Layout {
	return Layout{
		Include:    "include",
		Lib:        "lib",
		ThirdParty: filepath.Join("include", "boost"),
		Bin:        "bin",
	}
}

// Windows environments nest native files below Library/
func getWindowsLayout() Layout {
	return Layout{
		Include:    filepath.Join("Library", "include"),
		Lib:        filepath.Join("Library", "lib"),
		ThirdParty: filepath.Join("Library", "include", "boost"),
		Bin:        "",
	}
}

// GetLibraryExtensions returns the file extensions probed when resolving a
// library name. The order is fixed across platforms so resolution is
// reproducible.
func GetLibraryExtensions() []string {
	return []string{".so", ".dylib", ".a"}
}

// isStaticExtension reports whether ext names a static archive
func isStaticExtension(ext string) bool {
	return ext == ".a" || ext == ".lib"
}
