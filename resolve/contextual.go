package resolve

import (
	"github.com/aki19035vc/rbs/context"
	"github.com/aki19035vc/rbs/env"
	"github.com/aki19035vc/rbs/typing"
)

// ContextualResolver is a minimal, concrete NameResolver: given a relative
// name, it walks outward from the innermost enclosing context to the
// root, returning the first prefixing that names something in Env. An
// already-absolute name is returned as-is if Env recognizes it, or
// reported unresolved otherwise.
//
// This is deliberately not a full language-level name resolver -- it does
// no import resolution, no search through mixed-in modules, no
// overload-aware disambiguation. It exists to give cmd/sigtool something
// real to drive the resolution pass with, and to serve as a template for
// a host tool's own resolver.
type ContextualResolver struct {
	Env *env.Environment
}

// Resolve implements NameResolver.
func (r *ContextualResolver) Resolve(name typing.TypeName, ctx *context.Context) (typing.TypeName, bool) {
	if name.IsAbsolute() {
		if r.Env.IsTypeName(name) {
			return name, true
		}

		return typing.TypeName{}, false
	}

	for c := ctx; c != nil; c = c.Parent {
		candidate := name.WithPrefix(c.Name.ToNamespace())
		if r.Env.IsTypeName(candidate) {
			return candidate, true
		}
	}

	root := name.Absolute()
	if r.Env.IsTypeName(root) {
		return root, true
	}

	return typing.TypeName{}, false
}
