// pkg/platform/flags.go
package platform

// DefaultStandard is the language standard requested on platforms that take one
const DefaultStandard = "c++11"

// stdlibFlag selects the LLVM standard library
const stdlibFlag = "-stdlib=libc++"

// CompileFlags returns the compiler flags a family requires. Unknown families
// get none.
func (f Family) CompileFlags(standard string) []string {
	if standard == "" {
		standard = DefaultStandard
	}
	switch f {
	case MacOS:
		return []string{"-std=" + standard, stdlibFlag}
	case Linux:
		return []string{"-std=" + standard}
	default:
		return nil
	}
}

// LinkFlags returns the linker flags a family requires
func (f Family) LinkFlags() []string {
	if f == MacOS {
		return []string{stdlibFlag}
	}
	return nil
}

// SharedModuleFlags returns the flags that make the linker emit a loadable
// extension module rather than an executable
func (f Family) SharedModuleFlags() []string {
	if f == MacOS {
		return []string{"-bundle", "-undefined", "dynamic_lookup"}
	}
	return []string{"-shared", "-fPIC"}
}
