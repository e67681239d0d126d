package env

import (
	"github.com/aki19035vc/rbs/ast"
	"github.com/aki19035vc/rbs/context"
	"github.com/aki19035vc/rbs/typing"
)

// Entry is the parent interface of every value an Environment's kind
// tables store. It exists so introspection code (§4.7) and the broader
// lookup accessors (§4.3) can return a single polymorphic value and
// type-switch on it.
type Entry interface {
	// EntryName is the fully-qualified absolute name this entry is stored
	// under.
	EntryName() typing.TypeName

	entryTag()
}

// FragKind distinguishes the two multi-fragment declaration kinds (Class
// and Module) and the two alias kinds (ClassAlias and ModuleAlias), since
// typing.KindClassModule alone does not -- insertion (§4.1) must reject a
// class fragment meeting a module entry, and vice versa.
type FragKind int

const (
	FragClass FragKind = iota
	FragModule
)

func (k FragKind) String() string {
	if k == FragModule {
		return "module"
	}

	return "class"
}

// -----------------------------------------------------------------------------

// Fragment is one declaration occurrence contributing to a (possibly
// multi-fragment) class or module entry.
type Fragment struct {
	Decl  ast.Decl
	Outer []ast.Decl

	ctxComputed bool
	ctx         *context.Context
}

// Context returns this fragment's lexical context, per §4.5: memoized on
// first call.
func (f *Fragment) Context() *context.Context {
	if !f.ctxComputed {
		outer := make([]context.Named, len(f.Outer)+1)
		for i, d := range f.Outer {
			outer[i] = d
		}
		outer[len(f.Outer)] = f.Decl

		f.ctx = context.Calculate(outer)
		f.ctxComputed = true
	}

	return f.ctx
}

// -----------------------------------------------------------------------------

// MultiEntry is the multi-fragment entry kind storing Class or Module
// declarations. All fragments share FragKind; validate_type_params (§4.2)
// is memoized here, not per fragment.
type MultiEntry struct {
	Name     typing.TypeName
	FragKind FragKind
	Fragments []*Fragment

	primaryComputed bool
	primaryIdx      int
	primaryErr      error
}

func (e *MultiEntry) EntryName() typing.TypeName { return e.Name }
func (*MultiEntry) entryTag()                    {}

// append returns a new MultiEntry with frag appended, leaving e and its
// backing slice untouched -- fragment lists are append-only but
// copy-on-write, so that Environment.Copy() never risks two independent
// copies aliasing the same growable slice.
func (e *MultiEntry) append(frag *Fragment) *MultiEntry {
	frags := make([]*Fragment, len(e.Fragments)+1)
	copy(frags, e.Fragments)
	frags[len(e.Fragments)] = frag

	return &MultiEntry{
		Name:      e.Name,
		FragKind:  e.FragKind,
		Fragments: frags,
	}
}

// IsClass reports whether this entry denotes a class (as opposed to a
// module).
func (e *MultiEntry) IsClass() bool { return e.FragKind == FragClass }

// IsModule reports whether this entry denotes a module.
func (e *MultiEntry) IsModule() bool { return e.FragKind == FragModule }

// -----------------------------------------------------------------------------

// InterfaceEntry is a single-fragment interface declaration.
type InterfaceEntry struct {
	Name  typing.TypeName
	Decl  *ast.InterfaceDecl
	Outer []ast.Decl
}

func (e *InterfaceEntry) EntryName() typing.TypeName { return e.Name }
func (*InterfaceEntry) entryTag()                    {}

// TypeAliasEntry is a single-fragment type-alias declaration.
type TypeAliasEntry struct {
	Name  typing.TypeName
	Decl  *ast.TypeAliasDecl
	Outer []ast.Decl
}

func (e *TypeAliasEntry) EntryName() typing.TypeName { return e.Name }
func (*TypeAliasEntry) entryTag()                    {}

// ConstantEntry is a single-fragment constant declaration.
type ConstantEntry struct {
	Name  typing.TypeName
	Decl  *ast.ConstantDecl
	Outer []ast.Decl
}

func (e *ConstantEntry) EntryName() typing.TypeName { return e.Name }
func (*ConstantEntry) entryTag()                    {}

// GlobalEntry is a single-fragment global-variable declaration. Globals
// live in their own namespace (invariant 2), never colliding with
// classes, interfaces, aliases, or constants.
type GlobalEntry struct {
	Name  typing.TypeName
	Decl  *ast.GlobalDecl
	Outer []ast.Decl
}

func (e *GlobalEntry) EntryName() typing.TypeName { return e.Name }
func (*GlobalEntry) entryTag()                    {}

// AliasEntry is a single-fragment class-alias or module-alias declaration.
type AliasEntry struct {
	Name     typing.TypeName
	FragKind FragKind
	Decl     ast.Decl // *ast.ClassAliasDecl or *ast.ModuleAliasDecl
	OldName  typing.TypeName
	Outer    []ast.Decl
}

func (e *AliasEntry) EntryName() typing.TypeName { return e.Name }
func (*AliasEntry) entryTag()                    {}

// IsClassAlias reports whether this alias entry is a class alias.
func (e *AliasEntry) IsClassAlias() bool { return e.FragKind == FragClass }

// IsModuleAlias reports whether this alias entry is a module alias.
func (e *AliasEntry) IsModuleAlias() bool { return e.FragKind == FragModule }
