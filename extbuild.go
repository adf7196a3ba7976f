// extbuild.go
package extbuild

import (
	"context"

	"github.com/tliron/commonlog"
	"golang.org/x/sync/errgroup"

	"github.com/arc-language/extbuild/pkg/env"
	"github.com/arc-language/extbuild/pkg/extension"
	"github.com/arc-language/extbuild/pkg/manifest"
	"github.com/arc-language/extbuild/pkg/platform"
	"github.com/arc-language/extbuild/pkg/toolchain"
)

// Re-export types for convenience
type (
	Environment = env.Environment
	Library     = env.Library
	Descriptor  = extension.Descriptor
	Spec        = extension.Spec
	Libraries   = manifest.Libraries
	Result      = toolchain.Result
)

var log = commonlog.GetLogger("extbuild")

// EnvironmentResolver locates the active environment
type EnvironmentResolver interface {
	Resolve(ctx context.Context) (*env.Environment, error)
}

// Compiler turns one descriptor into a loadable module
type Compiler interface {
	Compile(ctx context.Context, e *env.Environment, d *extension.Descriptor) (*toolchain.Result, error)
}

// ToolChecker is implemented by compilers that can verify their tools up front
type ToolChecker interface {
	CheckTools() error
}

// BuildPlan is the outcome of planning: the environment every descriptor was
// assembled against and the descriptors in input order
type BuildPlan struct {
	Environment *env.Environment
	Library     *env.Library // Resolution of the ambiguous library
	Descriptors extension.Plan
}

// Len returns the number of descriptors
func (p *BuildPlan) Len() int {
	return len(p.Descriptors)
}

// Orchestrator composes environment discovery, library resolution,
// descriptor assembly and flag injection into a build plan
type Orchestrator struct {
	Resolver  EnvironmentResolver
	Family    platform.Family    // Platform whose flags are injected
	Libraries manifest.Libraries // Link names; Ambiguous is resolved against the environment
	Options   extension.Options  // Companions and baseline flag
	Standard  string             // Language standard (default c++11)
	Parallel  int                // Descriptors assembled concurrently; <= 1 is sequential
}

// BuildAll resolves the environment once, then builds and injects one
// descriptor per spec. Environment failures abort before any descriptor is
// built and no partial plan is returned.
func (o *Orchestrator) BuildAll(ctx context.Context, specs []extension.Spec) (*BuildPlan, error) {
	e, err := o.Resolver.Resolve(ctx)
	if err != nil {
		return nil, &Error{Op: "resolve environment", Err: err}
	}

	lib := &env.Library{}
	if o.Libraries.Ambiguous != "" {
		lib = e.ResolveLibraryName(o.Libraries.Ambiguous)
	}
	libraries := o.linkNames(lib.Name)

	descriptors := make(extension.Plan, len(specs))
	build := func(i int) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		d, err := extension.Build(specs[i], e, libraries, &o.Options)
		if err != nil {
			return &Error{Op: "build descriptor", Module: specs[i].Name, Err: err}
		}
		descriptors[i] = extension.InjectPlatformFlags(d, o.Family, o.Standard)
		return nil
	}

	if o.Parallel > 1 {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(o.Parallel)
		for i := range specs {
			i := i
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				return build(i)
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
	} else {
		for i := range specs {
			if err := build(i); err != nil {
				return nil, err
			}
		}
	}

	log.Infof("planned %d extension module(s): %v", len(descriptors), descriptors.Modules())
	return &BuildPlan{
		Environment: e,
		Library:     lib,
		Descriptors: descriptors,
	}, nil
}

// Run hands every descriptor of the plan to the compiler in plan order and
// stops at the first failure, returning the compiler's error unchanged inside
// an *Error. Results of modules compiled so far are returned either way.
func (o *Orchestrator) Run(ctx context.Context, plan *BuildPlan, compiler Compiler) ([]*toolchain.Result, error) {
	if checker, ok := compiler.(ToolChecker); ok {
		if err := checker.CheckTools(); err != nil {
			return nil, &Error{Op: "check tools", Err: err}
		}
	}

	var results []*toolchain.Result
	for _, d := range plan.Descriptors {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		result, err := compiler.Compile(ctx, plan.Environment, d)
		if result != nil {
			results = append(results, result)
		}
		if err != nil {
			return results, &Error{Op: "compile", Module: d.ModuleName, Err: err}
		}
	}

	return results, nil
}

// linkNames returns the libraries every extension links, in link order:
// domain library, bridge companion, then the resolved ambiguous library
func (o *Orchestrator) linkNames(resolved string) []string {
	var names []string
	for _, n := range []string{o.Libraries.Domain, o.Libraries.Bridge, resolved} {
		if n != "" {
			names = append(names, n)
		}
	}
	return names
}
