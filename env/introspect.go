package env

import (
	"github.com/aki19035vc/rbs/ast"
	"github.com/aki19035vc/rbs/typing"
)

// BuffersDecls groups the top-level declarations by their source buffer,
// as exposed through each declaration's optional location. Declarations
// with no location are silently dropped, matching spec §9's explicit
// note to preserve that behavior rather than "fix" it.
func (e *Environment) BuffersDecls() map[*ast.Buffer][]ast.Decl {
	grouped := make(map[*ast.Buffer][]ast.Decl)

	for _, d := range e.declarations {
		loc := d.Loc()
		if loc == nil || loc.Buffer == nil {
			continue
		}

		grouped[loc.Buffer] = append(grouped[loc.Buffer], d)
	}

	return grouped
}

// Buffers returns the deduplicated set of source buffers referenced by
// e's top-level declarations.
func (e *Environment) Buffers() []*ast.Buffer {
	grouped := e.BuffersDecls()

	buffers := make([]*ast.Buffer, 0, len(grouped))
	for b := range grouped {
		buffers = append(buffers, b)
	}

	return buffers
}

// Reject returns a new environment containing exactly the top-level
// declarations for which predicate returns false, by re-inserting them
// one at a time into a fresh Environment -- so the result is fully
// re-validated: a rejection that happens to remove the first fragment of
// a multi-fragment class, for instance, does not leave a dangling entry
// behind.
func (e *Environment) Reject(predicate func(ast.Decl) bool) (*Environment, error) {
	out := New()
	out.Logger = e.Logger

	for _, d := range e.declarations {
		if predicate(d) {
			continue
		}

		if err := out.Insert(d); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// ClassModuleNames returns the names of every class/module entry, in no
// particular order.
func (e *Environment) ClassModuleNames() []typing.TypeName {
	names := make([]typing.TypeName, 0, len(e.classDecls))
	for _, entry := range e.classDecls {
		names = append(names, entry.Name)
	}

	return names
}

// AliasNames returns the names of every class/module alias entry, in no
// particular order.
func (e *Environment) AliasNames() []typing.TypeName {
	names := make([]typing.TypeName, 0, len(e.classAliasDecls))
	for _, entry := range e.classAliasDecls {
		names = append(names, entry.Name)
	}

	return names
}

// TableSizes is the debug inspector returning the per-table entry count.
type TableSizes struct {
	Classes      int
	Interfaces   int
	TypeAliases  int
	Constants    int
	ClassAliases int
	Globals      int
}

// Inspect returns e's per-table sizes.
func (e *Environment) Inspect() TableSizes {
	return TableSizes{
		Classes:      len(e.classDecls),
		Interfaces:   len(e.interfaceDecls),
		TypeAliases:  len(e.typeAliasDecls),
		Constants:    len(e.constantDecls),
		ClassAliases: len(e.classAliasDecls),
		Globals:      len(e.globalDecls),
	}
}
