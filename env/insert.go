package env

import (
	"github.com/aki19035vc/rbs/ast"
	"github.com/aki19035vc/rbs/typing"
)

// insert dispatches a declaration into the appropriate kind table,
// implementing spec §4.1. outer is the path of enclosing class/module
// declarations at decl's site of appearance; ns is the namespace decl's
// own (possibly relative) name is prefixed with.
func (e *Environment) insert(decl ast.Decl, outer []ast.Decl, ns typing.Namespace) error {
	switch d := decl.(type) {
	case *ast.ClassDecl:
		return e.insertClassOrModule(decl, d.Members, d.Decls, FragClass, outer, ns)
	case *ast.ModuleDecl:
		return e.insertClassOrModule(decl, d.Members, d.Decls, FragModule, outer, ns)
	case *ast.InterfaceDecl:
		return e.insertInterface(d, outer, ns)
	case *ast.TypeAliasDecl:
		return e.insertTypeAlias(d, outer, ns)
	case *ast.ConstantDecl:
		return e.insertConstant(d, outer, ns)
	case *ast.GlobalDecl:
		return e.insertGlobal(d, outer, ns)
	case *ast.ClassAliasDecl:
		return e.insertAlias(decl, d.OldName, FragClass, outer, ns)
	case *ast.ModuleAliasDecl:
		return e.insertAlias(decl, d.OldName, FragModule, outer, ns)
	default:
		return internalf("insert: unrecognized declaration kind %T", decl)
	}
}

// insertClassOrModule implements the "Class / Module fragment" rule: a
// cross-kind collision with a constant or an alias fails outright; a
// same-kind-table collision either appends a fragment (kinds match) or
// fails (a class fragment meeting a module entry, or vice versa).
func (e *Environment) insertClassOrModule(decl ast.Decl, members []ast.Member, nested []ast.Decl, fragKind FragKind, outer []ast.Decl, ns typing.Namespace) error {
	name := decl.Name().WithPrefix(ns)
	key := name.Key()

	if existing, ok := e.constantDecls[key]; ok {
		return &DuplicatedDeclarationError{Name: name, NewDecl: decl, Existing: []ast.Decl{existing.Decl}}
	}

	if existing, ok := e.classAliasDecls[key]; ok {
		return &DuplicatedDeclarationError{Name: name, NewDecl: decl, Existing: []ast.Decl{existing.Decl}}
	}

	entry, ok := e.classDecls[key]
	if !ok {
		entry = &MultiEntry{Name: name, FragKind: fragKind}
	} else if entry.FragKind != fragKind {
		return &DuplicatedDeclarationError{Name: name, NewDecl: decl, Existing: fragmentDecls(entry)}
	}

	e.classDecls[key] = entry.append(&Fragment{Decl: decl, Outer: outer})
	e.trace("inserted %s fragment %s", fragKind, name)

	innerOuter := appendDecl(outer, decl)
	innerNS := name.ToNamespace()

	_ = members // members are resolved in place, not re-inserted

	for _, nd := range nested {
		if err := e.insert(nd, innerOuter, innerNS); err != nil {
			return err
		}
	}

	return nil
}

// insertInterface implements the "Interface" rule: a same-kind collision
// fails. Per the Open Question resolution (SPEC_FULL §4), this raises
// uniformly rather than silently overwriting.
func (e *Environment) insertInterface(d *ast.InterfaceDecl, outer []ast.Decl, ns typing.Namespace) error {
	name := d.Name().WithPrefix(ns)
	key := name.Key()

	if existing, ok := e.interfaceDecls[key]; ok {
		return &DuplicatedDeclarationError{Name: name, NewDecl: d, Existing: []ast.Decl{existing.Decl}}
	}

	e.interfaceDecls[key] = &InterfaceEntry{Name: name, Decl: d, Outer: outer}
	e.trace("inserted interface %s", name)
	return nil
}

// insertTypeAlias implements the "TypeAlias" rule.
func (e *Environment) insertTypeAlias(d *ast.TypeAliasDecl, outer []ast.Decl, ns typing.Namespace) error {
	name := d.Name().WithPrefix(ns)
	key := name.Key()

	if existing, ok := e.typeAliasDecls[key]; ok {
		return &DuplicatedDeclarationError{Name: name, NewDecl: d, Existing: []ast.Decl{existing.Decl}}
	}

	e.typeAliasDecls[key] = &TypeAliasEntry{Name: name, Decl: d, Outer: outer}
	e.trace("inserted type alias %s", name)
	return nil
}

// insertGlobal implements the "Global" rule. Globals live in their own
// namespace (invariant 2): a global never collides with a class,
// interface, alias, or constant of the same name.
func (e *Environment) insertGlobal(d *ast.GlobalDecl, outer []ast.Decl, ns typing.Namespace) error {
	name := d.Name().WithPrefix(ns)
	key := name.Key()

	if existing, ok := e.globalDecls[key]; ok {
		return &DuplicatedDeclarationError{Name: name, NewDecl: d, Existing: []ast.Decl{existing.Decl}}
	}

	e.globalDecls[key] = &GlobalEntry{Name: name, Decl: d, Outer: outer}
	e.trace("inserted global %s", name)
	return nil
}

// insertConstant implements the "Constant" rule: a constant collides with
// an entry of any kind at the same name.
func (e *Environment) insertConstant(d *ast.ConstantDecl, outer []ast.Decl, ns typing.Namespace) error {
	name := d.Name().WithPrefix(ns)
	key := name.Key()

	if existing, decls, ok := e.anyEntryAt(key); ok {
		_ = existing
		return &DuplicatedDeclarationError{Name: name, NewDecl: d, Existing: decls}
	}

	e.constantDecls[key] = &ConstantEntry{Name: name, Decl: d, Outer: outer}
	e.trace("inserted constant %s", name)
	return nil
}

// insertAlias implements the "ClassAlias / ModuleAlias" rule: keyed by
// new_name.with_prefix(namespace), colliding with an entry of any kind.
// old_name is recorded verbatim, possibly still relative.
func (e *Environment) insertAlias(decl ast.Decl, oldName typing.TypeName, fragKind FragKind, outer []ast.Decl, ns typing.Namespace) error {
	name := decl.Name().WithPrefix(ns)
	key := name.Key()

	if _, decls, ok := e.anyEntryAt(key); ok {
		return &DuplicatedDeclarationError{Name: name, NewDecl: decl, Existing: decls}
	}

	e.classAliasDecls[key] = &AliasEntry{Name: name, FragKind: fragKind, Decl: decl, OldName: oldName, Outer: outer}
	e.trace("inserted %s alias %s = %s", fragKind, name, oldName)
	return nil
}

// anyEntryAt checks every kind table except globalDecls (globals occupy
// their own namespace, per invariant 2) for an entry keyed at key.
func (e *Environment) anyEntryAt(key string) (Entry, []ast.Decl, bool) {
	if entry, ok := e.classDecls[key]; ok {
		return entry, fragmentDecls(entry), true
	}
	if entry, ok := e.interfaceDecls[key]; ok {
		return entry, []ast.Decl{entry.Decl}, true
	}
	if entry, ok := e.typeAliasDecls[key]; ok {
		return entry, []ast.Decl{entry.Decl}, true
	}
	if entry, ok := e.constantDecls[key]; ok {
		return entry, []ast.Decl{entry.Decl}, true
	}
	if entry, ok := e.classAliasDecls[key]; ok {
		return entry, []ast.Decl{entry.Decl}, true
	}

	return nil, nil, false
}

func fragmentDecls(entry *MultiEntry) []ast.Decl {
	decls := make([]ast.Decl, len(entry.Fragments))
	for i, f := range entry.Fragments {
		decls[i] = f.Decl
	}

	return decls
}

func appendDecl(outer []ast.Decl, decl ast.Decl) []ast.Decl {
	next := make([]ast.Decl, len(outer)+1)
	copy(next, outer)
	next[len(outer)] = decl
	return next
}
