// pkg/extension/inject.go
package extension

import "github.com/arc-language/extbuild/pkg/platform"

// InjectPlatformFlags returns a copy of d with the flags the platform family
// requires appended. Families without a policy get an unchanged copy.
func InjectPlatformFlags(d *Descriptor, family platform.Family, standard string) *Descriptor {
	out := d.Clone()
	out.CompileArgs = append(out.CompileArgs, family.CompileFlags(standard)...)
	out.LinkArgs = append(out.LinkArgs, family.LinkFlags()...)
	return out
}
