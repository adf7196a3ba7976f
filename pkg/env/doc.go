// pkg/env/doc.go

/*
Package env resolves the package environment native extensions are built against.

It handles:
  - Discovering the active environment root from an injected variable lookup
  - Querying the environment's interpreter for its version and site-packages
  - Resolving library names that differ between builds of the same library
  - Reading installed-package records for diagnostics

Basic Usage:

	r := &env.Resolver{Lookup: os.LookupEnv, Interpreter: &env.PythonInterpreter{}}

	e, err := r.Resolve(ctx)
	if errors.Is(err, env.ErrNotFound) {
		// ask the user to activate the environment
	}

	lib := e.ResolveLibraryName("boost_python")
	fmt.Println(lib.Name) // boost_python311

Library Naming:

Distributions name the boost.python library differently: libboost_python.so,
libboost_python311.so or libboost_python3.so. ResolveLibraryName probes these
in that order and falls back to the bare name when none exists, leaving a wrong
guess for the linker to report.
*/
package env
