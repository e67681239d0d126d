// Package context builds the lexical nesting context used by the external
// name resolver (§4.5 of the declaration-environment design): a
// right-recursive cons-list of absolute class/module names, mirroring the
// enclosing scope at a declaration's site of appearance.
package context

import "github.com/aki19035vc/rbs/typing"

// Context is a persistent, parent-pointer cons-list of absolute
// class/module names, innermost last. A nil *Context denotes the root
// scope (top-level, no enclosing class/module) -- spec.md's "None"
// sentinel.
type Context struct {
	Parent *Context
	Name   typing.TypeName
}

// Calculate builds the context for a declaration nested inside the given
// ordered sequence of enclosing class/module declarations, outermost
// first. An empty sequence yields nil (top-level).
//
// Each step's absolute name is computed from the previous step's: the
// first declaration's own name is simply coerced absolute, and every
// subsequent declaration's (possibly relative) name is prefixed with the
// namespace the previous step introduced.
func Calculate(outer []Named) *Context {
	var ctx *Context

	for _, d := range outer {
		var abs typing.TypeName
		if ctx == nil {
			abs = d.Name().Absolute()
		} else {
			abs = d.Name().WithPrefix(ctx.Name.ToNamespace())
		}

		ctx = &Context{Parent: ctx, Name: abs}
	}

	return ctx
}

// Named is the minimal interface Calculate needs from an enclosing
// declaration. ast.Decl satisfies it.
type Named interface {
	Name() typing.TypeName
}

// Append extends ctx by one more enclosing declaration, in the same
// fashion as one more step of Calculate. It is used by the resolution pass
// to derive inner_context from outer_context without recomputing the
// entire chain.
func Append(ctx *Context, d Named) *Context {
	var abs typing.TypeName
	if ctx == nil {
		abs = d.Name().Absolute()
	} else {
		abs = d.Name().WithPrefix(ctx.Name.ToNamespace())
	}

	return &Context{Parent: ctx, Name: abs}
}

// AppendName extends ctx by one more enclosing name that is already
// known to be absolute (as is the case in the resolution pass, where the
// enclosing declaration's name has already been reprefixed). It is
// equivalent to Append but skips the redundant WithPrefix/Absolute
// coercion.
func AppendName(ctx *Context, absName typing.TypeName) *Context {
	return &Context{Parent: ctx, Name: absName}
}
