// Package resolve implements the resolution pass (§4.6): a pure
// transformation producing a new environment whose declarations are
// structurally identical to the originals except that every type-name
// occurrence is rewritten to its absolute form, using an injected
// NameResolver and the lexical context computed for each site.
package resolve

import (
	"github.com/aki19035vc/rbs/context"
	"github.com/aki19035vc/rbs/typing"
)

// NameResolver is the external collaborator the environment calls but
// does not implement: given a (possibly relative) type name and the
// lexical context it was referenced from, it returns the name's absolute
// form, or ok=false if lookup fails. On ok=false the resolution pass
// retains the original name so that an upstream diagnostics subsystem
// can collect the failure; NameResolver itself never errors.
type NameResolver interface {
	Resolve(name typing.TypeName, ctx *context.Context) (typing.TypeName, bool)
}

// NameResolverFunc adapts a plain function to NameResolver.
type NameResolverFunc func(typing.TypeName, *context.Context) (typing.TypeName, bool)

func (f NameResolverFunc) Resolve(name typing.TypeName, ctx *context.Context) (typing.TypeName, bool) {
	return f(name, ctx)
}
